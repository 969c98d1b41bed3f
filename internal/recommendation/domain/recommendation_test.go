package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelationshipType(t *testing.T) {
	for _, name := range []string{"GO_TOGETHER", "CROSS_SELL", "UP_SELL", "ACCESSORY"} {
		parsed, err := ParseRelationshipType(name)
		require.NoError(t, err)
		assert.Equal(t, name, parsed.String())
		assert.True(t, parsed.Valid())
	}
}

func TestParseRelationshipTypeRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "up_sell", "FRIENDS", "GO TOGETHER"} {
		_, err := ParseRelationshipType(name)
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "relationship", ve.Field)
	}
}

func TestRecommendationKeyLess(t *testing.T) {
	a := RecommendationKey{ProductID: 1, RecommendationProductID: 2}
	b := RecommendationKey{ProductID: 1, RecommendationProductID: 3}
	c := RecommendationKey{ProductID: 2, RecommendationProductID: 1}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
	assert.False(t, a.Less(a))
}

func TestRecommendationKeyEquality(t *testing.T) {
	a := RecommendationKey{ProductID: 1, RecommendationProductID: 2}
	b := RecommendationKey{ProductID: 1, RecommendationProductID: 2}
	assert.Equal(t, a, b)

	rec := Recommendation{ProductID: 1, RecommendationProductID: 2, Relationship: UpSell}
	assert.Equal(t, a, rec.Key())
}

func TestSerializeRoundTrip(t *testing.T) {
	rec := Recommendation{
		ProductID:               1,
		RecommendationProductID: 2,
		Relationship:            UpSell,
		Likes:                   3,
		Dislikes:                1,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	// Relationship is serialized by symbolic name, not ordinal
	assert.Contains(t, string(data), `"relationship":"UP_SELL"`)

	decoded, err := DecodeRecommendation(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, rec.ProductID, decoded.ProductID)
	assert.Equal(t, rec.RecommendationProductID, decoded.RecommendationProductID)
	assert.Equal(t, rec.Relationship, decoded.Relationship)
}

func TestDecodeRecommendationMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing product_id", `{}`, "product_id"},
		{"missing recommendation_product_id", `{"product_id":1}`, "recommendation_product_id"},
		{"missing relationship", `{"product_id":1,"recommendation_product_id":2}`, "relationship"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecommendation(strings.NewReader(tt.body))
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestDecodeRecommendationBadBody(t *testing.T) {
	for _, body := range []string{`"this is not an object"`, `not json at all`, ``} {
		_, err := DecodeRecommendation(strings.NewReader(body))
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Message, "bad or no data")
	}
}

func TestDecodeRecommendationUnknownRelationship(t *testing.T) {
	_, err := DecodeRecommendation(strings.NewReader(`{"product_id":1,"recommendation_product_id":2,"relationship":"BEST_FRIENDS"}`))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
