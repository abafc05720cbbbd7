package services

import (
	"PlanMate/config/logger"
	"PlanMate/models"
	"PlanMate/utils"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const selectionSystemPrompt = `You are an intelligent assistant helping to select both food items and products for a user event (like birthday, picnic, trips etc.). You are given the user's request and available search results for both food items and products.

Your job is to analyse the suitability of items and products based on reviews, descriptions, and prices to fulfill the event requirements while staying within budget. Produce the final output with the best item or product for each of the suggested items.

Return only a JSON object with two arrays in the following format:
{
    "food_selection": [
        {
            "item_name": "name of the food item",
            "item_id": "ID of the food item",
            "quantity": "number of items to order",
            "price": "price of this single item not multiplied by quantity",
            "reviews": "rating or reviews of the item",
            "restaurant_id": "ID of the restaurant as in the items data",
            "image_url": "URL of the food item image",
            "description": "brief description of the food item"
        }
    ],
    "product_selection": [
        {
            "product_name": "name of the product",
            "product_id": "ID of the product",
            "quantity": "number of products to order",
            "price": "price of this single product not multiplied by quantity",
            "reviews": "rating or reviews of the product",
            "category": "category of the product",
            "description": "brief description of the product",
            "producturl": "URL of the product image"
        }
    ]
}

Be budget-conscious, prioritize high reviews and variety.
STRICT INSTRUCTIONS:
- Do not include any additional text or explanations.
- Do not repeat the same item from different restaurants.
- Do not repeat the same product.
- Ensure the output is a valid JSON object.
- Consider the synergy between food and products for the event.
- Preserve the data of the food items and products as provided in the search results.`

// SelectionService turns aggregated search results into one concrete
// line item per suggested name. There is no deterministic fallback here:
// when the model fails, the result is explicitly empty.
type SelectionService struct {
	OpenAI ChatCompleter
}

func NewSelectionService() *SelectionService {
	return &SelectionService{
		OpenAI: NewOpenAIService(),
	}
}

// Select invokes the backend once with both search result maps serialized
// in full and post-validates the returned selection against them.
func (s *SelectionService) Select(ctx context.Context, query string, foodResults map[string][]models.MenuItem, productResults map[string][]map[string]any) models.SelectionResult {
	foodJSON, _ := json.Marshal(foodResults)
	productJSON, _ := json.Marshal(productResults)

	userMessage := fmt.Sprintf("User Request: %s\nAvailable Food Items: %s\nAvailable Products: %s",
		query, string(foodJSON), string(productJSON))

	raw, err := s.OpenAI.ChatCompletion(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: selectionSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userMessage},
	}, ChatOptions{Temperature: 0, MaxTokens: 1024, TopP: 1})
	if err != nil {
		logger.GetLogger().Warn("selection completion failed", zap.Error(err))
		return models.EmptySelectionResult()
	}

	logger.GetLogger().Debug("raw selection response", zap.String("response", raw))

	var selection models.SelectionResult
	if err := utils.ExtractJSON(raw, &selection, "food_selection", "product_selection"); err != nil {
		logger.GetLogger().Warn("selection output could not be parsed", zap.Error(err))
		return models.EmptySelectionResult()
	}

	return validateSelection(selection, foodResults, productResults)
}

// validateSelection drops line items whose names have no backing search
// entry and collapses duplicate names to their first occurrence. The
// same-item-different-venue case collapses to one line item as well.
func validateSelection(selection models.SelectionResult, foodResults map[string][]models.MenuItem, productResults map[string][]map[string]any) models.SelectionResult {
	foodBacked := make(map[string]bool, len(foodResults))
	for name, records := range foodResults {
		if len(records) > 0 {
			foodBacked[strings.ToLower(name)] = true
		}
	}
	productBacked := make(map[string]bool, len(productResults))
	for name, records := range productResults {
		if len(records) > 0 {
			productBacked[strings.ToLower(name)] = true
		}
	}

	validated := models.EmptySelectionResult()

	seenFood := map[string]bool{}
	for _, item := range selection.FoodSelection {
		key := strings.ToLower(item.ItemName)
		if !foodBacked[key] || seenFood[key] {
			continue
		}
		seenFood[key] = true
		validated.FoodSelection = append(validated.FoodSelection, item)
	}

	seenProducts := map[string]bool{}
	for _, item := range selection.ProductSelection {
		key := strings.ToLower(item.ProductName)
		if !productBacked[key] || seenProducts[key] {
			continue
		}
		seenProducts[key] = true
		validated.ProductSelection = append(validated.ProductSelection, item)
	}

	return validated
}
