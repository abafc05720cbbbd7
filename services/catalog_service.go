package services

import (
	"PlanMate/config/database"
	"PlanMate/models"
	"PlanMate/utils"
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// CatalogService is the read-only gateway to the food and product tables
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		DB: database.GetPostgresClient(),
	}
}

// GetFoodItemNames returns the distinct food item names, sorted by name
func (s *CatalogService) GetFoodItemNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Model(&models.MenuItem{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error
	return names, err
}

// GetProductNames returns the distinct product names, sorted by name
func (s *CatalogService) GetProductNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Model(&models.ProductItem{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error
	return names, err
}

// GetTopRatedFoodItems returns up to limit rows matching the name
// case-insensitively, best rated first, unrated rows last.
func (s *CatalogService) GetTopRatedFoodItems(ctx context.Context, name string, limit int) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("review DESC NULLS LAST").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// GetFoodItemDetails returns the first row matching the exact name
func (s *CatalogService) GetFoodItemDetails(ctx context.Context, name string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewCustomError(http.StatusNotFound, "Food item not found")
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetProductDetails returns the first product row matching the exact name
func (s *CatalogService) GetProductDetails(ctx context.Context, name string) (*models.ProductItem, error) {
	var item models.ProductItem
	err := s.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewCustomError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetProductCategories lists the distinct non-null product categories
func (s *CatalogService) GetProductCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.DB.WithContext(ctx).
		Model(&models.ProductItem{}).
		Distinct("category").
		Where("category IS NOT NULL").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// GetProductsByCategory lists the distinct product names in a category
func (s *CatalogService) GetProductsByCategory(ctx context.Context, category string) ([]string, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Model(&models.ProductItem{}).
		Distinct("name").
		Where("category = ?", category).
		Order("name").
		Pluck("name", &names).Error
	return names, err
}
