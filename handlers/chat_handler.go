package handlers

import (
	"PlanMate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.RouterGroup, chatController *controllers.ChatController) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.POST("/start", chatController.StartChat)
		chatGroup.POST("/continue", chatController.ContinueChat)
	}

	router.GET("/health", chatController.HealthCheck)
}
