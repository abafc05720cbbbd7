package services

import (
	"PlanMate/config/logger"
	"PlanMate/models"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	maxMatchesPerKeyword  = 2
	maxFallbackPerKind    = 5
	randomFallbackSamples = 3
)

// keywordBucket pairs the food and product keywords of one event type
type keywordBucket struct {
	food     []string
	products []string
}

// Buckets are checked in this order; the first matching trigger wins.
var fallbackBuckets = []struct {
	triggers []string
	bucket   keywordBucket
}{
	{
		triggers: []string{"birthday", "party"},
		bucket: keywordBucket{
			food:     []string{"cake", "burger", "pizza", "brownie", "cupcake", "muffin"},
			products: []string{"lights", "poppers", "curtain", "towels"},
		},
	},
	{
		triggers: []string{"picnic", "outdoor"},
		bucket: keywordBucket{
			food:     []string{"sandwich", "chips", "juice", "water", "snacks"},
			products: []string{"towels", "wipes", "storage", "bag"},
		},
	},
	{
		triggers: []string{"dinner", "meal"},
		bucket: keywordBucket{
			food:     []string{"biryani", "curry", "naan", "rice", "dal"},
			products: []string{"plates", "storage", "cleaner"},
		},
	},
}

var defaultBucket = keywordBucket{
	food:     []string{"burger", "pizza", "coffee", "tea", "snacks"},
	products: []string{"storage", "cleaner", "towels"},
}

// FallbackService produces deterministic keyword-based suggestions when
// the generative backend fails. It never errors and never calls the model.
type FallbackService struct {
	rng *rand.Rand
}

func NewFallbackService() *FallbackService {
	return &FallbackService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewFallbackServiceWithSeed fixes the random sampling for reproducibility
func NewFallbackServiceWithSeed(seed int64) *FallbackService {
	return &FallbackService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Suggest classifies the request into an event bucket and matches its
// keywords against the catalog name lists.
func (s *FallbackService) Suggest(query string, foodNames, productNames []string) models.SuggestionSet {
	bucket := classifyQuery(query)

	logger.GetLogger().Info("using fallback suggestions",
		zap.String("query", query),
	)

	suggestedFood := s.matchKeywords(bucket.food, foodNames)
	suggestedProducts := s.matchKeywords(bucket.products, productNames)

	return models.SuggestionSet{
		FoodItems: suggestedFood,
		Products:  suggestedProducts,
	}
}

func classifyQuery(query string) keywordBucket {
	queryLower := strings.ToLower(query)
	for _, entry := range fallbackBuckets {
		for _, trigger := range entry.triggers {
			if strings.Contains(queryLower, trigger) {
				return entry.bucket
			}
		}
	}
	return defaultBucket
}

// matchKeywords collects up to 2 case-insensitive substring matches per
// keyword, de-duplicated by first occurrence and capped at 5. When nothing
// matches it samples up to 3 catalog names at random as a last resort.
func (s *FallbackService) matchKeywords(keywords, available []string) []string {
	matched := []string{}
	seen := map[string]bool{}

	for _, keyword := range keywords {
		keywordLower := strings.ToLower(keyword)
		count := 0
		for _, name := range available {
			if count >= maxMatchesPerKeyword {
				break
			}
			if strings.Contains(strings.ToLower(name), keywordLower) {
				count++
				if !seen[name] {
					seen[name] = true
					matched = append(matched, name)
				}
			}
		}
	}

	if len(matched) > maxFallbackPerKind {
		matched = matched[:maxFallbackPerKind]
	}

	if len(matched) == 0 && len(available) > 0 {
		sampleSize := randomFallbackSamples
		if sampleSize > len(available) {
			sampleSize = len(available)
		}
		for _, idx := range s.rng.Perm(len(available))[:sampleSize] {
			matched = append(matched, available[idx])
		}
	}

	return matched
}
