package controllers

import (
	"PlanMate/services"
	"PlanMate/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *services.ChatService
}

func NewChatController() *ChatController {
	return &ChatController{
		ChatService: services.NewChatService(),
	}
}

type StartChatRequest struct {
	Query string `json:"query" binding:"required"`
}

type ContinueChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// StartChat runs the full pipeline for a new event request
func (c *ChatController) StartChat(ctx *gin.Context) {
	var req StartChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Query is required")
		return
	}

	session := c.ChatService.StartChat(ctx.Request.Context(), req.Query)

	ctx.JSON(http.StatusOK, gin.H{
		"session_id":    session.SessionID,
		"initial_query": req.Query,
		"suggestions": gin.H{
			"food_items": session.FoodItems,
			"products":   session.Products,
		},
		"final_selection": session.FinalSelection,
	})
}

// ContinueChat refines the stored selection with a follow-up instruction.
// Refinement failures surface as 502: they are upstream model faults.
func (c *ChatController) ContinueChat(ctx *gin.Context) {
	var req ContinueChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Session ID and message are required")
		return
	}

	revised, history, err := c.ChatService.Refine(ctx.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			utils.ErrorResponse(ctx, customErr.StatusCode, customErr.Message)
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to process revision",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"revised_selection": revised,
		"chat_history":      history,
	})
}

// HealthCheck reports service liveness
func (c *ChatController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "API is running",
	})
}
