package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	item := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: "u-1"},
		"count":  &types.AttributeValueMemberN{Value: "3"},
	}
	assert.Equal(t, "u-1", ExtractString(item, "userId"))
	assert.Equal(t, "", ExtractString(item, "missing"))
	assert.Equal(t, "", ExtractString(item, "count"))
}

func TestExtractBool(t *testing.T) {
	item := map[string]types.AttributeValue{
		"isPaused": &types.AttributeValueMemberBOOL{Value: true},
	}
	assert.True(t, ExtractBool(item, "isPaused"))
	assert.False(t, ExtractBool(item, "missing"))
}

func TestExtractFirstPhoto(t *testing.T) {
	item := map[string]types.AttributeValue{
		"photos": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberNULL{Value: true},
			&types.AttributeValueMemberS{Value: ""},
			&types.AttributeValueMemberS{Value: "a.jpg"},
		}},
	}
	assert.Equal(t, "a.jpg", ExtractFirstPhoto(item, "photos"))
	assert.Equal(t, "", ExtractFirstPhoto(map[string]types.AttributeValue{}, "photos"))
}
