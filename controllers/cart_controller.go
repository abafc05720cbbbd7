package controllers

import (
	"PlanMate/models"
	"PlanMate/services"
	"PlanMate/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Demo account used for cart submissions until real identity exists
const cartUserID = "5d320bcc-5ccd-4510-aace-695a3d864c18"

type CartController struct {
	CommerceService *services.CommerceService
}

func NewCartController() *CartController {
	return &CartController{
		CommerceService: services.NewCommerceService(),
	}
}

type AddAllRequest struct {
	FoodSelection []models.FoodLineItem `json:"food_selection" binding:"required"`
}

// AddAllToCart submits every food line item to the commerce cart.
// Product line items are intentionally not submitted here. Failures are
// reported per item; one bad item never aborts the batch.
func (c *CartController) AddAllToCart(ctx *gin.Context) {
	var req AddAllRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || len(req.FoodSelection) == 0 {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Missing food_selection")
		return
	}

	added := []services.CartPayload{}
	failed := []gin.H{}

	for _, item := range req.FoodSelection {
		if item.ItemID == "" || item.RestaurantID == "" {
			failed = append(failed, gin.H{"item": item, "reason": "missing item_id or restaurant_id"})
			continue
		}

		quantity := int(item.Quantity)
		if quantity < 1 {
			quantity = 1
		}

		productURL := item.ProductURL
		if productURL == "" {
			productURL = item.ImageURL
		}

		payload := services.CartPayload{
			UserID:       cartUserID,
			RestaurantID: string(item.RestaurantID),
			ItemID:       string(item.ItemID),
			Quantity:     quantity,
			ProductURL:   productURL,
		}

		if err := c.CommerceService.AddToCart(ctx.Request.Context(), payload); err != nil {
			failed = append(failed, gin.H{"item": item, "reason": err.Error()})
			continue
		}
		added = append(added, payload)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "completed",
		"added":  added,
		"failed": failed,
	})
}
