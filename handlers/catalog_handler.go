package handlers

import (
	"PlanMate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCatalogRoutes(router *gin.RouterGroup, catalogController *controllers.CatalogController) {
	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("/products/categories", catalogController.GetProductCategories)
		catalogGroup.GET("/products", catalogController.GetProductsByCategory)
		catalogGroup.GET("/products/:name", catalogController.GetProductDetails)
		catalogGroup.GET("/food/:name", catalogController.GetFoodItemDetails)
	}
}
