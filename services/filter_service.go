package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"purposee_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type FilterService struct {
	Dynamo *DynamoService
	Decks  *DeckStore
}

// GetFilterState returns the viewer's stored filters, falling back to
// defaults for users who never saved any.
func (fs *FilterService) GetFilterState(ctx context.Context, userID string) (*models.FilterState, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := fs.Dynamo.GetItem(ctx, models.FilterSettingsTable, key)
	if errors.Is(err, ErrItemNotFound) {
		defaults := models.DefaultFilterState(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}

	var state models.FilterState
	if err := attributevalue.UnmarshalMap(item, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter state: %w", err)
	}
	state.Normalize()
	return &state, nil
}

// SaveFilterState normalizes and stores the viewer's filters, then drops the
// viewer's deck so the next read re-ranks with the new settings.
func (fs *FilterService) SaveFilterState(ctx context.Context, state models.FilterState) (*models.FilterState, error) {
	if state.UserID == "" {
		return nil, errors.New("userId is required")
	}

	state.Normalize()
	state.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := fs.Dynamo.PutItem(ctx, models.FilterSettingsTable, state); err != nil {
		return nil, fmt.Errorf("failed to save filter state: %w", err)
	}

	fs.Decks.Invalidate(ctx, state.UserID)
	return &state, nil
}

// ResetFilterState restores defaults for the viewer
func (fs *FilterService) ResetFilterState(ctx context.Context, userID string) (*models.FilterState, error) {
	return fs.SaveFilterState(ctx, models.DefaultFilterState(userID))
}
