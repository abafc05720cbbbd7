package handlers

import (
	"PlanMate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCartRoutes(router *gin.RouterGroup, cartController *controllers.CartController) {
	cartGroup := router.Group("/cart")
	{
		cartGroup.POST("/add-all", cartController.AddAllToCart)
	}
}
