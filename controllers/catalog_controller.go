package controllers

import (
	"PlanMate/services"
	"PlanMate/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{
		CatalogService: services.NewCatalogService(),
	}
}

func (c *CatalogController) GetProductCategories(ctx *gin.Context) {
	categories, err := c.CatalogService.GetProductCategories(ctx.Request.Context())
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusInternalServerError, "Error fetching categories")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Categories fetched successfully", categories)
}

func (c *CatalogController) GetProductsByCategory(ctx *gin.Context) {
	category := ctx.Query("category")
	if category == "" {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Category is required")
		return
	}

	products, err := c.CatalogService.GetProductsByCategory(ctx.Request.Context(), category)
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusInternalServerError, "Error fetching products")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Products fetched successfully", products)
}

func (c *CatalogController) GetFoodItemDetails(ctx *gin.Context) {
	name := ctx.Param("name")

	item, err := c.CatalogService.GetFoodItemDetails(ctx.Request.Context(), name)
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			utils.ErrorResponse(ctx, customErr.StatusCode, customErr.Message)
			return
		}
		utils.ErrorResponse(ctx, http.StatusInternalServerError, "Error fetching food item")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Food item fetched successfully", item)
}

func (c *CatalogController) GetProductDetails(ctx *gin.Context) {
	name := ctx.Param("name")

	item, err := c.CatalogService.GetProductDetails(ctx.Request.Context(), name)
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			utils.ErrorResponse(ctx, customErr.StatusCode, customErr.Message)
			return
		}
		utils.ErrorResponse(ctx, http.StatusInternalServerError, "Error fetching product")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Product fetched successfully", item)
}
