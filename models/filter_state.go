package models

// AgeRange bounds the candidate age window. Min is never above Max once normalized.
type AgeRange struct {
	Min int `dynamodbav:"min" json:"min"`
	Max int `dynamodbav:"max" json:"max"`
}

// FilterState holds a viewer's discovery filter settings.
//
// The advanced fields (Denominations, ChurchFrequencies, RelationshipGoals,
// VerifiedOnly, ChurchName) only take effect for premium viewers; the ranking
// engine ignores them otherwise even when populated.
type FilterState struct {
	UserID            string   `dynamodbav:"userId" json:"userId"`
	AgeRange          AgeRange `dynamodbav:"ageRange" json:"ageRange"`
	Distance          int      `dynamodbav:"distance" json:"distance"`
	Denominations     []string `dynamodbav:"denominations,omitempty" json:"denominations,omitempty"`
	ChurchFrequencies []string `dynamodbav:"churchFrequencies,omitempty" json:"churchFrequencies,omitempty"`
	RelationshipGoals []string `dynamodbav:"relationshipGoals,omitempty" json:"relationshipGoals,omitempty"`
	VerifiedOnly      bool     `dynamodbav:"verifiedOnly,omitempty" json:"verifiedOnly,omitempty"`
	ChurchName        string   `dynamodbav:"churchName,omitempty" json:"churchName,omitempty"`
	UpdatedAt         string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DefaultFilterState returns the filters a fresh account starts with.
func DefaultFilterState(userID string) FilterState {
	return FilterState{
		UserID:   userID,
		AgeRange: AgeRange{Min: 18, Max: 99},
		Distance: 100,
	}
}

// Normalize repairs out-of-order age bounds and a non-positive distance.
// Called on every mutation so min <= max always holds in storage.
func (f *FilterState) Normalize() {
	if f.AgeRange.Min < 18 {
		f.AgeRange.Min = 18
	}
	if f.AgeRange.Max < f.AgeRange.Min {
		f.AgeRange.Max = f.AgeRange.Min
	}
	if f.Distance <= 0 {
		f.Distance = 100
	}
}

// FilterSettingsTable is the DynamoDB table name for per-user filter settings
const FilterSettingsTable = "FilterSettings"
