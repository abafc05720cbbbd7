package services

import (
	"PlanMate/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var selectionFoodResults = map[string][]models.MenuItem{
	"Veggie Pizza": {
		{ID: "f1", Name: "Veggie Pizza", RestaurantID: "r1", Price: 12, Review: rating(4.8)},
		{ID: "f2", Name: "Veggie Pizza", RestaurantID: "r2", Price: 10, Review: rating(4.2)},
	},
	"Chocolate Cake": {
		{ID: "f3", Name: "Chocolate Cake", RestaurantID: "r1", Price: 20, Review: rating(4.9)},
	},
}

var selectionProductResults = map[string][]map[string]any{
	"Party Poppers": {
		{"product_id": "p1", "product_name": "Party Poppers", "price": 5},
	},
}

func TestSelectCollapsesDuplicateFoodNames(t *testing.T) {
	// The model repeats the same dish from two restaurants; only the
	// first survives.
	completer := &fakeCompleter{response: `{
		"food_selection": [
			{"item_name": "Veggie Pizza", "item_id": "f1", "quantity": 2, "price": 12, "reviews": 4.8, "restaurant_id": "r1"},
			{"item_name": "Veggie Pizza", "item_id": "f2", "quantity": 1, "price": 10, "reviews": 4.2, "restaurant_id": "r2"}
		],
		"product_selection": [
			{"product_name": "Party Poppers", "product_id": "p1", "quantity": 3, "price": 5}
		]
	}`}
	service := &SelectionService{OpenAI: completer}

	result := service.Select(context.Background(), "birthday", selectionFoodResults, selectionProductResults)

	require.Len(t, result.FoodSelection, 1)
	assert.Equal(t, "Veggie Pizza", result.FoodSelection[0].ItemName)
	assert.Equal(t, models.FlexString("r1"), result.FoodSelection[0].RestaurantID)
	require.Len(t, result.ProductSelection, 1)
}

func TestSelectDropsUnbackedNames(t *testing.T) {
	completer := &fakeCompleter{response: `{
		"food_selection": [
			{"item_name": "Chocolate Cake", "item_id": "f3", "quantity": 1, "restaurant_id": "r1"},
			{"item_name": "Phantom Pie", "item_id": "x9", "quantity": 1, "restaurant_id": "r9"}
		],
		"product_selection": []
	}`}
	service := &SelectionService{OpenAI: completer}

	result := service.Select(context.Background(), "birthday", selectionFoodResults, selectionProductResults)

	require.Len(t, result.FoodSelection, 1)
	assert.Equal(t, "Chocolate Cake", result.FoodSelection[0].ItemName)
}

func TestSelectReturnsEmptyOnBackendError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("backend down")}
	service := &SelectionService{OpenAI: completer}

	result := service.Select(context.Background(), "birthday", selectionFoodResults, selectionProductResults)

	assert.NotNil(t, result.FoodSelection)
	assert.Empty(t, result.FoodSelection)
	assert.NotNil(t, result.ProductSelection)
	assert.Empty(t, result.ProductSelection)
}

func TestSelectReturnsEmptyOnUnparsableOutput(t *testing.T) {
	completer := &fakeCompleter{response: "Here are my thoughts on the matter..."}
	service := &SelectionService{OpenAI: completer}

	result := service.Select(context.Background(), "birthday", selectionFoodResults, selectionProductResults)

	assert.Empty(t, result.FoodSelection)
	assert.Empty(t, result.ProductSelection)
}

func TestSelectToleratesQuotedNumericFields(t *testing.T) {
	// Quantities and ids sometimes come back quoted; both shapes parse.
	completer := &fakeCompleter{response: `{
		"food_selection": [
			{"item_name": "Chocolate Cake", "item_id": 42, "quantity": "2", "price": "20", "restaurant_id": "r1"}
		],
		"product_selection": []
	}`}
	service := &SelectionService{OpenAI: completer}

	result := service.Select(context.Background(), "birthday", selectionFoodResults, selectionProductResults)

	require.Len(t, result.FoodSelection, 1)
	assert.Equal(t, models.FlexString("42"), result.FoodSelection[0].ItemID)
	assert.Equal(t, models.FlexInt(2), result.FoodSelection[0].Quantity)
}
