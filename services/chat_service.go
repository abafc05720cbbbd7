package services

import (
	"PlanMate/config/logger"
	"PlanMate/models"
	"PlanMate/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const refinementSystemPrompt = `You are a helpful assistant refining food and product selections based on user follow-up instructions.
Given the current selection and user instructions, return a revised version.

Format:
{
    "food_selection": [...],
    "product_selection": [...]
}

Do not repeat items unnecessarily.
Return only the JSON object.`

// CatalogProvider is the name-list lookup the pipeline needs up front
type CatalogProvider interface {
	GetFoodItemNames(ctx context.Context) ([]string, error)
	GetProductNames(ctx context.Context) ([]string, error)
}

// ChatService orchestrates the full pipeline: suggestion, search,
// selection, and the session-scoped refinement loop.
type ChatService struct {
	Catalog     CatalogProvider
	Suggestions *SuggestionService
	Search      *SearchService
	Selection   *SelectionService
	OpenAI      ChatCompleter
	Sessions    *SessionStore
}

func NewChatService() *ChatService {
	openAIService := NewOpenAIService()
	return &ChatService{
		Catalog:     NewCatalogService(),
		Suggestions: NewSuggestionService(),
		Search:      NewSearchService(),
		Selection:   NewSelectionService(),
		OpenAI:      openAIService,
		Sessions:    NewSessionStore(),
	}
}

// StartChat runs the pipeline end to end for a fresh request and stores
// the resulting session. Catalog failures degrade to empty name lists;
// every stage below that has its own degraded mode, so this never fails.
func (s *ChatService) StartChat(ctx context.Context, query string) *models.ConversationSession {
	foodNames, err := s.Catalog.GetFoodItemNames(ctx)
	if err != nil {
		logger.GetLogger().Warn("fetching food item names failed", zap.Error(err))
		foodNames = []string{}
	}
	productNames, err := s.Catalog.GetProductNames(ctx)
	if err != nil {
		logger.GetLogger().Warn("fetching product names failed", zap.Error(err))
		productNames = []string{}
	}

	suggestions := s.Suggestions.Suggest(ctx, query, foodNames, productNames)

	foodResults := s.Search.SearchFoodItems(ctx, suggestions.FoodItems)
	productResults := s.Search.SearchProducts(ctx, suggestions.Products)

	finalSelection := s.Selection.Select(ctx, query, foodResults, productResults)

	session := &models.ConversationSession{
		ChatHistory:          []models.ChatMessage{{Role: "user", Content: query}},
		FoodItems:            suggestions.FoodItems,
		Products:             suggestions.Products,
		FoodSearchResults:    foodResults,
		ProductSearchResults: productResults,
		FinalSelection:       finalSelection,
	}
	s.Sessions.Create(session)

	return session
}

// Refine revises an existing selection from a follow-up instruction. The
// response is parsed strictly: no extraction ladder here, a malformed
// completion surfaces as an error and leaves the stored selection alone
// (only the user turn remains appended). The session lock serializes
// concurrent refinements of the same session.
func (s *ChatService) Refine(ctx context.Context, sessionID, message string) (models.SelectionResult, []models.ChatMessage, error) {
	session, found := s.Sessions.Get(sessionID)
	if !found {
		return models.SelectionResult{}, nil, utils.NewCustomError(http.StatusNotFound, "Invalid session ID")
	}

	lock := s.Sessions.Lock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session.ChatHistory = append(session.ChatHistory, models.ChatMessage{Role: "user", Content: message})

	currentSelection, err := json.MarshalIndent(session.FinalSelection, "", "  ")
	if err != nil {
		return models.SelectionResult{}, nil, err
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: refinementSystemPrompt},
	}
	for _, turn := range session.ChatHistory {
		messages = append(messages, openai.ChatCompletionMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("Current Selection:\n%s", string(currentSelection)),
	})

	raw, err := s.OpenAI.ChatCompletion(ctx, messages, ChatOptions{Temperature: 0.2, MaxTokens: 1024, TopP: 1})
	if err != nil {
		return models.SelectionResult{}, nil, err
	}

	var revised models.SelectionResult
	if err := json.Unmarshal([]byte(raw), &revised); err != nil {
		logger.GetLogger().Warn("refinement output could not be parsed",
			zap.String("session_id", sessionID), zap.Error(err))
		return models.SelectionResult{}, nil, fmt.Errorf("revised selection is not valid JSON: %w", err)
	}

	session.FinalSelection = revised
	session.ChatHistory = append(session.ChatHistory, models.ChatMessage{Role: "assistant", Content: raw})

	return revised, session.ChatHistory, nil
}
