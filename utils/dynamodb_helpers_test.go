package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	item := map[string]types.AttributeValue{
		"senderId": &types.AttributeValueMemberS{Value: "alice"},
		"count":    &types.AttributeValueMemberN{Value: "3"},
	}

	assert.Equal(t, "alice", ExtractString(item, "senderId"))
	assert.Equal(t, "", ExtractString(item, "count")) // wrong type
	assert.Equal(t, "", ExtractString(item, "missing"))
}

func TestExtractBool(t *testing.T) {
	item := map[string]types.AttributeValue{
		"isUnread": &types.AttributeValueMemberBOOL{Value: true},
		"name":     &types.AttributeValueMemberS{Value: "x"},
	}

	assert.True(t, ExtractBool(item, "isUnread"))
	assert.False(t, ExtractBool(item, "name"))
	assert.False(t, ExtractBool(item, "missing"))
}
