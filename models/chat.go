package models

import "encoding/json"

// SuggestionSet holds catalog names proposed for an event, at most 8 per
// category, all drawn from the catalog name lists.
type SuggestionSet struct {
	FoodItems []string `json:"food_items"`
	Products  []string `json:"products"`
}

// ChatMessage is one turn of a conversation session
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FoodLineItem is one selected food entry. Price and Reviews are kept as
// raw JSON so whatever the search results carried survives the round trip
// through the model untouched.
type FoodLineItem struct {
	ItemName     string          `json:"item_name"`
	ItemID       FlexString      `json:"item_id"`
	Quantity     FlexInt         `json:"quantity"`
	Price        json.RawMessage `json:"price"`
	Reviews      json.RawMessage `json:"reviews"`
	RestaurantID FlexString      `json:"restaurant_id"`
	ImageURL     string          `json:"image_url"`
	Description  string          `json:"description"`
	ProductURL   string          `json:"producturl,omitempty"`
}

// ProductLineItem is one selected product entry from commerce search results
type ProductLineItem struct {
	ProductName string          `json:"product_name"`
	ProductID   FlexString      `json:"product_id"`
	Quantity    FlexInt         `json:"quantity"`
	Price       json.RawMessage `json:"price"`
	Reviews     json.RawMessage `json:"reviews"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ProductURL  string          `json:"producturl"`
}

// SelectionResult is the structured output of the final selection and
// refinement stages. Names are unique within each list.
type SelectionResult struct {
	FoodSelection    []FoodLineItem    `json:"food_selection"`
	ProductSelection []ProductLineItem `json:"product_selection"`
}

// EmptySelectionResult returns the explicit degraded-mode result with
// non-nil, zero-length lists so the JSON shape stays stable.
func EmptySelectionResult() SelectionResult {
	return SelectionResult{
		FoodSelection:    []FoodLineItem{},
		ProductSelection: []ProductLineItem{},
	}
}

// ConversationSession is the per-session state mutated by refinement turns
type ConversationSession struct {
	SessionID            string                      `json:"session_id"`
	ChatHistory          []ChatMessage               `json:"chat_history"`
	FoodItems            []string                    `json:"food_items"`
	Products             []string                    `json:"products"`
	FoodSearchResults    map[string][]MenuItem       `json:"food_search_results"`
	ProductSearchResults map[string][]map[string]any `json:"product_search_results"`
	FinalSelection       SelectionResult             `json:"final_selection"`
}
