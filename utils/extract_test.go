package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suggestionPayload struct {
	FoodItems []string `json:"food_items"`
	Products  []string `json:"products"`
}

func TestExtractJSONFenceIdempotence(t *testing.T) {
	plain := `{"food_items": ["Cake"], "products": ["Lights"]}`

	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare json", raw: plain},
		{name: "fenced with language tag", raw: "```json\n" + plain + "\n```"},
		{name: "fenced without language tag", raw: "```\n" + plain + "\n```"},
		{name: "fence with trailing newline", raw: "```json\n" + plain + "\n```\n"},
	}

	var want suggestionPayload
	require.NoError(t, ExtractJSON(plain, &want, "food_items", "products"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got suggestionPayload
			require.NoError(t, ExtractJSON(tt.raw, &got, "food_items", "products"))
			assert.Equal(t, want, got)
		})
	}
}

func TestExtractJSONRecoversEmbeddedObject(t *testing.T) {
	raw := "Sure! Here is your selection:\n{\"food_items\": [\"Pizza\"], \"products\": []}\nLet me know if you need anything else."

	var got suggestionPayload
	require.NoError(t, ExtractJSON(raw, &got, "food_items", "products"))
	assert.Equal(t, []string{"Pizza"}, got.FoodItems)
	assert.Empty(t, got.Products)
}

func TestExtractJSONMalformedInput(t *testing.T) {
	tests := []string{
		"",
		"I could not find anything suitable.",
		"{\"food_items\": [unterminated",
		"``` not even json ```",
		"[1, 2, 3]",
	}

	for _, raw := range tests {
		var got suggestionPayload
		err := ExtractJSON(raw, &got, "food_items", "products")
		assert.ErrorIs(t, err, ErrExtractionFailed, "input %q", raw)
	}
}

func TestExtractJSONRejectsWrongKeys(t *testing.T) {
	// Structurally valid JSON with the wrong field names must not be
	// accepted as a zero-value result.
	raw := `{"meals": ["Cake"], "items": ["Lights"]}`

	var got suggestionPayload
	err := ExtractJSON(raw, &got, "food_items", "products")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractJSONPartialKeys(t *testing.T) {
	raw := `{"food_items": ["Cake"]}`

	var got suggestionPayload
	err := ExtractJSON(raw, &got, "food_items", "products")
	assert.ErrorIs(t, err, ErrExtractionFailed)

	require.NoError(t, ExtractJSON(raw, &got, "food_items"))
	assert.Equal(t, []string{"Cake"}, got.FoodItems)
}
