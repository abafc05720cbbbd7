package services

import (
	"PlanMate/config/logger"
	"PlanMate/models"
	"PlanMate/utils"
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	maxNamesInPrompt  = 50
	maxSuggestionsPer = 8
)

const suggestionSystemPrompt = `You are a smart assistant for an e-commerce platform. Given a user's request for planning an event or outing, suggest both food items and products needed for that event.

You must ONLY suggest items from the provided available lists. Choose items that are most suitable for the requested event.

Return ONLY a valid JSON object in this exact format and do not include any additional text or explanations:
{
    "food_items": ["item1", "item2", "item3"],
    "products": ["product1", "product2", "product3"]
}

Rules:
- Select an ample amount of food items and products maximum 8 each
- Only use items from the provided lists
- No additional text or explanations
- Must be valid JSON format`

// SuggestionService maps a free-text request to catalog names via the
// generative backend, falling back to keyword matching when that fails.
type SuggestionService struct {
	OpenAI   ChatCompleter
	Fallback *FallbackService
}

func NewSuggestionService() *SuggestionService {
	return &SuggestionService{
		OpenAI:   NewOpenAIService(),
		Fallback: NewFallbackService(),
	}
}

// Suggest always returns a SuggestionSet; every failure path ends in the
// fallback engine, which cannot fail.
func (s *SuggestionService) Suggest(ctx context.Context, query string, foodNames, productNames []string) models.SuggestionSet {
	userMessage := fmt.Sprintf(
		"User Request: %s\n\nAvailable Food Items: %s\nAvailable Products: %s\n\nSelect appropriate items for this request and return only the JSON object.",
		query,
		strings.Join(truncateNames(foodNames), ", "),
		strings.Join(truncateNames(productNames), ", "),
	)

	raw, err := s.OpenAI.ChatCompletion(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: suggestionSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userMessage},
	}, ChatOptions{Temperature: 0.1, MaxTokens: 500, TopP: 0.9})
	if err != nil {
		logger.GetLogger().Warn("suggestion completion failed", zap.Error(err))
		return s.Fallback.Suggest(query, foodNames, productNames)
	}

	logger.GetLogger().Debug("raw suggestion response", zap.String("response", raw))

	var suggestions models.SuggestionSet
	if err := utils.ExtractJSON(raw, &suggestions, "food_items", "products"); err != nil {
		logger.GetLogger().Warn("suggestion output could not be parsed", zap.Error(err))
		return s.Fallback.Suggest(query, foodNames, productNames)
	}

	// The model is instructed to stay inside the catalog lists but is not
	// trusted to: invented names are filtered out here, and a category
	// that filters down to nothing is refilled by the fallback engine.
	suggestions.FoodItems = filterToCatalog(suggestions.FoodItems, foodNames)
	suggestions.Products = filterToCatalog(suggestions.Products, productNames)

	if len(suggestions.FoodItems) == 0 || len(suggestions.Products) == 0 {
		fallback := s.Fallback.Suggest(query, foodNames, productNames)
		if len(suggestions.FoodItems) == 0 {
			suggestions.FoodItems = fallback.FoodItems
		}
		if len(suggestions.Products) == 0 {
			suggestions.Products = fallback.Products
		}
	}

	return suggestions
}

// truncateNames bounds prompt size; names past position 50 are invisible
// to the model and can never be suggested.
func truncateNames(names []string) []string {
	if len(names) > maxNamesInPrompt {
		return names[:maxNamesInPrompt]
	}
	return names
}

func filterToCatalog(suggested, available []string) []string {
	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[strings.ToLower(name)] = true
	}

	kept := []string{}
	seen := map[string]bool{}
	for _, name := range suggested {
		if len(kept) >= maxSuggestionsPer {
			break
		}
		key := strings.ToLower(name)
		if known[key] && !seen[key] {
			seen[key] = true
			kept = append(kept, name)
		}
	}
	return kept
}
