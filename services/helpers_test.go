package services

import (
	"PlanMate/models"
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// fakeCompleter scripts the generative backend for tests
type fakeCompleter struct {
	response string
	err      error
	respond  func(messages []openai.ChatCompletionMessage) (string, error)
	calls    int
}

func (f *fakeCompleter) ChatCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, opts ChatOptions) (string, error) {
	f.calls++
	if f.respond != nil {
		return f.respond(messages)
	}
	return f.response, f.err
}

// fakeFoodFinder serves canned catalog rows per name
type fakeFoodFinder struct {
	rows map[string][]models.MenuItem
}

func (f *fakeFoodFinder) GetTopRatedFoodItems(ctx context.Context, name string, limit int) ([]models.MenuItem, error) {
	rows := f.rows[name]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// fakeCatalog serves fixed name lists
type fakeCatalog struct {
	food     []string
	products []string
}

func (f *fakeCatalog) GetFoodItemNames(ctx context.Context) ([]string, error) {
	return f.food, nil
}

func (f *fakeCatalog) GetProductNames(ctx context.Context) ([]string, error) {
	return f.products, nil
}

func rating(v float64) *float64 {
	return &v
}
