package services

import (
	"context"
	"fmt"
	"time"

	"purposee_server/models"
	"purposee_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ProfileService struct {
	Dynamo *DynamoService
}

// AddProfile adds a new user profile to DynamoDB
func (ps *ProfileService) AddProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := ps.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile retrieves a user profile by ID
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// GetCandidatePool scans every profile except the viewer's own. Eligibility
// (photos, pause, invisible mode, gender direction, distance) is decided by
// the ranking engine, not here, so the pool stays a plain snapshot.
func (ps *ProfileService) GetCandidatePool(ctx context.Context, viewerID string) ([]models.Profile, error) {
	var pool []models.Profile
	err := ps.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "userId") != viewerID
	}, nil, &pool)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate pool: %w", err)
	}
	return pool, nil
}

// UpdateProfile updates selected string attributes of an existing profile
func (ps *ProfileService) UpdateProfile(ctx context.Context, userID string, updates map[string]string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		updateExpression += " #" + k + " = :" + k + ","
		expressionAttributeValues[":"+k] = &types.AttributeValueMemberS{Value: v}
		expressionAttributeNames["#"+k] = k
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ps.Dynamo.UpdateItem(ctx, models.ProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.Profile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &updatedProfile, nil
}

// SetPaused toggles the paused flag; paused profiles never enter anyone's deck
func (ps *ProfileService) SetPaused(ctx context.Context, userID string, paused bool) error {
	return ps.setFlag(ctx, userID, "isPaused", paused)
}

// SetInvisibleMode toggles invisible mode; premium only
func (ps *ProfileService) SetInvisibleMode(ctx context.Context, userID string, invisible bool) error {
	profile, err := ps.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if invisible && !profile.IsPremium {
		return fmt.Errorf("invisible mode requires premium: user %s", userID)
	}
	return ps.setFlag(ctx, userID, "isInvisibleMode", invisible)
}

func (ps *ProfileService) setFlag(ctx context.Context, userID, attribute string, value bool) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	_, err := ps.Dynamo.UpdateItem(ctx, models.ProfilesTable, "SET #attr = :value", key,
		map[string]types.AttributeValue{":value": &types.AttributeValueMemberBOOL{Value: value}},
		map[string]string{"#attr": attribute},
	)
	if err != nil {
		return fmt.Errorf("failed to set %s for user %s: %w", attribute, userID, err)
	}
	return nil
}

// DeleteProfile removes a user profile from DynamoDB
func (ps *ProfileService) DeleteProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ps.Dynamo.DeleteItem(ctx, models.ProfilesTable, key)
}
