package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"purposee_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type InteractionService struct {
	Dynamo *DynamoService
	Decks  *DeckStore
}

// LikeResult reports the outcome of a like: either a plain like or a mutual
// match with its new match id.
type LikeResult struct {
	Matched bool   `json:"matched"`
	MatchID string `json:"matchId,omitempty"`
}

// RecordLike stores a like from likerID to likedID and creates a Match when
// the like is mutual. The super-like flag is stored for display surfaces but
// never changes ranking.
func (s *InteractionService) RecordLike(ctx context.Context, likerID, likedID string, isSuperLike bool) (*LikeResult, error) {
	if likerID == likedID {
		return nil, errors.New("users cannot like themselves")
	}

	like := models.Like{
		LikerID:     likerID,
		LikedID:     likedID,
		IsSuperLike: isSuperLike,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.LikesTable, like); err != nil {
		return nil, fmt.Errorf("failed to save like: %w", err)
	}

	// A recorded like changes the liker's deck inputs.
	s.Decks.Invalidate(ctx, likerID)

	mutual, err := s.hasLiked(ctx, likedID, likerID)
	if err != nil {
		return nil, err
	}
	if !mutual {
		return &LikeResult{Matched: false}, nil
	}

	match := models.Match{
		MatchID:   uuid.NewString(),
		UserA:     likerID,
		UserB:     likedID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.MatchesTable, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	log.Printf("🎉 Match created: %s ❤️ %s (%s)", likerID, likedID, match.MatchID)

	return &LikeResult{Matched: true, MatchID: match.MatchID}, nil
}

// RecordPass stores a pass from userID on targetID
func (s *InteractionService) RecordPass(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return errors.New("users cannot pass on themselves")
	}

	pass := models.Pass{
		UserID:    userID,
		TargetID:  targetID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.PassesTable, pass); err != nil {
		return fmt.Errorf("failed to save pass: %w", err)
	}

	s.Decks.Invalidate(ctx, userID)
	return nil
}

// hasLiked checks whether likerID has a stored like on likedID
func (s *InteractionService) hasLiked(ctx context.Context, likerID, likedID string) (bool, error) {
	key := map[string]types.AttributeValue{
		"likerId": &types.AttributeValueMemberS{Value: likerID},
		"likedId": &types.AttributeValueMemberS{Value: likedID},
	}
	_, err := s.Dynamo.GetItem(ctx, models.LikesTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check like %s -> %s: %w", likerID, likedID, err)
	}
	return true, nil
}

// GetLikedIDs returns the set of user ids the viewer has liked
func (s *InteractionService) GetLikedIDs(ctx context.Context, viewerID string) (map[string]struct{}, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.LikesTable, "likerId = :likerId",
		map[string]types.AttributeValue{":likerId": &types.AttributeValueMemberS{Value: viewerID}}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes sent by %s: %w", viewerID, err)
	}

	ids := make(map[string]struct{}, len(items))
	for _, item := range items {
		var like models.Like
		if err := attributevalue.UnmarshalMap(item, &like); err != nil {
			continue
		}
		ids[like.LikedID] = struct{}{}
	}
	return ids, nil
}

// GetPassedIDs returns the set of user ids the viewer has passed on
func (s *InteractionService) GetPassedIDs(ctx context.Context, viewerID string) (map[string]struct{}, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.PassesTable, "userId = :userId",
		map[string]types.AttributeValue{":userId": &types.AttributeValueMemberS{Value: viewerID}}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch passes by %s: %w", viewerID, err)
	}

	ids := make(map[string]struct{}, len(items))
	for _, item := range items {
		var pass models.Pass
		if err := attributevalue.UnmarshalMap(item, &pass); err != nil {
			continue
		}
		ids[pass.TargetID] = struct{}{}
	}
	return ids, nil
}

// GetLikerIDs returns the set of user ids who liked the viewer
func (s *InteractionService) GetLikerIDs(ctx context.Context, viewerID string) (map[string]struct{}, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.LikesTable, models.LikesByLikedIndex,
		"likedId = :likedId",
		map[string]types.AttributeValue{":likedId": &types.AttributeValueMemberS{Value: viewerID}}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes received by %s: %w", viewerID, err)
	}

	ids := make(map[string]struct{}, len(items))
	for _, item := range items {
		var like models.Like
		if err := attributevalue.UnmarshalMap(item, &like); err != nil {
			continue
		}
		ids[like.LikerID] = struct{}{}
	}
	return ids, nil
}

// Rewind undoes the viewer's most recent like or pass. Premium only; the
// caller checks entitlement.
func (s *InteractionService) Rewind(ctx context.Context, viewerID string) (string, error) {
	likeItems, err := s.Dynamo.QueryItems(ctx, models.LikesTable, "likerId = :likerId",
		map[string]types.AttributeValue{":likerId": &types.AttributeValueMemberS{Value: viewerID}}, 0)
	if err != nil {
		return "", fmt.Errorf("failed to fetch likes for rewind: %w", err)
	}
	passItems, err := s.Dynamo.QueryItems(ctx, models.PassesTable, "userId = :userId",
		map[string]types.AttributeValue{":userId": &types.AttributeValueMemberS{Value: viewerID}}, 0)
	if err != nil {
		return "", fmt.Errorf("failed to fetch passes for rewind: %w", err)
	}

	var latestLike models.Like
	for _, item := range likeItems {
		var like models.Like
		if err := attributevalue.UnmarshalMap(item, &like); err != nil {
			continue
		}
		if like.CreatedAt > latestLike.CreatedAt {
			latestLike = like
		}
	}

	var latestPass models.Pass
	for _, item := range passItems {
		var pass models.Pass
		if err := attributevalue.UnmarshalMap(item, &pass); err != nil {
			continue
		}
		if pass.CreatedAt > latestPass.CreatedAt {
			latestPass = pass
		}
	}

	if latestLike.CreatedAt == "" && latestPass.CreatedAt == "" {
		return "", errors.New("nothing to rewind")
	}

	// RFC3339 strings compare chronologically.
	if latestLike.CreatedAt > latestPass.CreatedAt {
		key := map[string]types.AttributeValue{
			"likerId": &types.AttributeValueMemberS{Value: latestLike.LikerID},
			"likedId": &types.AttributeValueMemberS{Value: latestLike.LikedID},
		}
		if err := s.Dynamo.DeleteItem(ctx, models.LikesTable, key); err != nil {
			return "", fmt.Errorf("failed to rewind like: %w", err)
		}
		s.Decks.Invalidate(ctx, viewerID)
		return latestLike.LikedID, nil
	}

	key := map[string]types.AttributeValue{
		"userId":   &types.AttributeValueMemberS{Value: latestPass.UserID},
		"targetId": &types.AttributeValueMemberS{Value: latestPass.TargetID},
	}
	if err := s.Dynamo.DeleteItem(ctx, models.PassesTable, key); err != nil {
		return "", fmt.Errorf("failed to rewind pass: %w", err)
	}
	s.Decks.Invalidate(ctx, viewerID)
	return latestPass.TargetID, nil
}
