package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"purposee_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type BoostService struct {
	Dynamo   *DynamoService
	Profiles *ProfileService
}

// Boost window sold in the app.
const boostDuration = 30 * time.Minute

// BoostStatus describes the viewer's current boost.
type BoostStatus struct {
	Active    bool   `json:"active"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// ActivateBoost turns on the viewer's boost for the standard window. While
// active the profile is force-ranked to the top of every deck that contains
// it. Premium only.
func (bs *BoostService) ActivateBoost(ctx context.Context, userID string) (*BoostStatus, error) {
	profile, err := bs.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.IsPremium {
		return nil, errors.New("boost requires premium")
	}
	if profile.BoostActiveAt(time.Now()) {
		return nil, errors.New("boost already active")
	}

	expiresAt := time.Now().UTC().Add(boostDuration).Format(time.RFC3339)
	if err := bs.writeBoost(ctx, userID, true, expiresAt); err != nil {
		return nil, err
	}

	log.Printf("🚀 Boost activated for %s until %s", userID, expiresAt)
	return &BoostStatus{Active: true, ExpiresAt: expiresAt}, nil
}

// GetBoostStatus reports the viewer's boost state, clearing a stale active
// flag left behind by an expired boost.
func (bs *BoostService) GetBoostStatus(ctx context.Context, userID string) (*BoostStatus, error) {
	profile, err := bs.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.BoostIsActive && !profile.BoostActiveAt(time.Now()) {
		if err := bs.writeBoost(ctx, userID, false, ""); err != nil {
			log.Printf("⚠️ Failed to clear expired boost for %s: %v", userID, err)
		}
		return &BoostStatus{Active: false}, nil
	}

	if !profile.BoostIsActive {
		return &BoostStatus{Active: false}, nil
	}
	return &BoostStatus{Active: true, ExpiresAt: profile.BoostExpiresAt}, nil
}

func (bs *BoostService) writeBoost(ctx context.Context, userID string, active bool, expiresAt string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	_, err := bs.Dynamo.UpdateItem(ctx, models.ProfilesTable,
		"SET boostIsActive = :active, boostExpiresAt = :expiresAt", key,
		map[string]types.AttributeValue{
			":active":    &types.AttributeValueMemberBOOL{Value: active},
			":expiresAt": &types.AttributeValueMemberS{Value: expiresAt},
		}, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to write boost state for %s: %w", userID, err)
	}
	return nil
}
