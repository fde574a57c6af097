package models

import "time"

// Profile defines the structure for user profiles
type Profile struct {
	UserID           string    `dynamodbav:"userId" json:"userId"`
	Name             string    `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Bio              string    `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Gender           string    `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Seeking          []string  `dynamodbav:"seeking,omitempty" json:"seeking,omitempty"`
	Latitude         *float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude        *float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	Denomination     string    `dynamodbav:"denomination,omitempty" json:"denomination,omitempty"`
	ChurchName       string    `dynamodbav:"churchName,omitempty" json:"churchName,omitempty"`
	ChurchFrequency  string    `dynamodbav:"churchFrequency,omitempty" json:"churchFrequency,omitempty"`
	RelationshipGoal string    `dynamodbav:"relationshipGoal,omitempty" json:"relationshipGoal,omitempty"`
	KeyValues        []string  `dynamodbav:"keyValues,omitempty" json:"keyValues,omitempty"`
	Interests        []string  `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Photos           []*string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	IsVerified       bool      `dynamodbav:"isVerified,omitempty" json:"isVerified,omitempty"`
	IsPremium        bool      `dynamodbav:"isPremium,omitempty" json:"isPremium,omitempty"`
	IsInvisibleMode  bool      `dynamodbav:"isInvisibleMode,omitempty" json:"isInvisibleMode,omitempty"`
	IsPaused         bool      `dynamodbav:"isPaused,omitempty" json:"isPaused,omitempty"`
	BoostIsActive    bool      `dynamodbav:"boostIsActive,omitempty" json:"boostIsActive,omitempty"`
	BoostExpiresAt   string    `dynamodbav:"boostExpiresAt,omitempty" json:"boostExpiresAt,omitempty"`
	CreatedAt        string    `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// HasPhoto reports whether the profile carries at least one non-null photo.
func (p Profile) HasPhoto() bool {
	for _, photo := range p.Photos {
		if photo != nil && *photo != "" {
			return true
		}
	}
	return false
}

// HasLocation reports whether both coordinates are present.
func (p Profile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Seeks reports whether the profile owner is interested in the given gender.
func (p Profile) Seeks(gender string) bool {
	for _, g := range p.Seeking {
		if g == gender {
			return true
		}
	}
	return false
}

// BoostActiveAt reports whether the profile's boost is live at the given instant.
// A boost row with a missing or unparsable expiry is treated as expired.
func (p Profile) BoostActiveAt(now time.Time) bool {
	if !p.BoostIsActive || p.BoostExpiresAt == "" {
		return false
	}
	expiresAt, err := time.Parse(time.RFC3339, p.BoostExpiresAt)
	if err != nil {
		return false
	}
	return expiresAt.After(now)
}

// ProfilesTable is the DynamoDB table name for user profiles
const ProfilesTable = "Profiles"
