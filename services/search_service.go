package services

import (
	"PlanMate/config/logger"
	"PlanMate/models"
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	maxResultsPerName = 3
	searchWorkers     = 4
)

// FoodFinder is the catalog lookup needed by the aggregator
type FoodFinder interface {
	GetTopRatedFoodItems(ctx context.Context, name string, limit int) ([]models.MenuItem, error)
}

// ProductSearcher is the commerce-backend lookup needed by the aggregator
type ProductSearcher interface {
	SearchProducts(ctx context.Context, name string) ([]map[string]any, error)
}

// SearchService resolves suggested names to concrete purchasable records.
// Per-name lookups are independent and run on a bounded worker pool; a
// failed lookup yields an empty entry and never aborts the batch.
type SearchService struct {
	Catalog  FoodFinder
	Commerce ProductSearcher
}

func NewSearchService() *SearchService {
	return &SearchService{
		Catalog:  NewCatalogService(),
		Commerce: NewCommerceService(),
	}
}

// SearchFoodItems fetches the top rated catalog rows for each name
func (s *SearchService) SearchFoodItems(ctx context.Context, names []string) map[string][]models.MenuItem {
	results := make(map[string][]models.MenuItem, len(names))
	var mu sync.Mutex

	s.forEachName(names, func(name string) {
		items, err := s.Catalog.GetTopRatedFoodItems(ctx, name, maxResultsPerName)
		if err != nil {
			logger.GetLogger().Warn("food search failed",
				zap.String("name", name), zap.Error(err))
			items = []models.MenuItem{}
		}
		if items == nil {
			items = []models.MenuItem{}
		}
		mu.Lock()
		results[name] = items
		mu.Unlock()
	})

	return results
}

// SearchProducts queries the commerce backend for each name, preserving
// the record order each response came back in.
func (s *SearchService) SearchProducts(ctx context.Context, names []string) map[string][]map[string]any {
	results := make(map[string][]map[string]any, len(names))
	var mu sync.Mutex

	s.forEachName(names, func(name string) {
		records, err := s.Commerce.SearchProducts(ctx, name)
		if err != nil {
			logger.GetLogger().Warn("product search failed",
				zap.String("name", name), zap.Error(err))
			records = []map[string]any{}
		}
		if records == nil {
			records = []map[string]any{}
		}
		if len(records) > maxResultsPerName {
			records = records[:maxResultsPerName]
		}
		mu.Lock()
		results[name] = records
		mu.Unlock()
	})

	return results
}

func (s *SearchService) forEachName(names []string, lookup func(name string)) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, searchWorkers)

	for _, name := range names {
		wg.Add(1)
		sem <- struct{}{}
		go func(n string) {
			defer wg.Done()
			defer func() { <-sem }()
			lookup(n)
		}(name)
	}

	wg.Wait()
}
