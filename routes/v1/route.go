package route

import (
	"PlanMate/controllers"
	"PlanMate/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	chatController := controllers.NewChatController()
	cartController := controllers.NewCartController()
	catalogController := controllers.NewCatalogController()

	base := router.Group("")
	{
		handlers.RegisterChatRoutes(base, chatController)
		handlers.RegisterCartRoutes(base, cartController)
		handlers.RegisterCatalogRoutes(base, catalogController)
	}
}
