package controllers

import (
	"PlanMate/models"
	"PlanMate/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartRouter(baseURL string, client *http.Client) (*gin.Engine, *CartController) {
	gin.SetMode(gin.TestMode)
	controller := &CartController{
		CommerceService: &services.CommerceService{BaseURL: baseURL, Client: client},
	}
	router := gin.New()
	router.POST("/cart/add-all", controller.AddAllToCart)
	return router, controller
}

func TestAddAllPartialFailure(t *testing.T) {
	var cartCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cart/add", r.URL.Path)
		atomic.AddInt32(&cartCalls, 1)

		var payload services.CartPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotEmpty(t, payload.UserID)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	router, _ := newCartRouter(server.URL, server.Client())

	body := gin.H{"food_selection": []models.FoodLineItem{
		{ItemName: "Chocolate Cake", ItemID: "f1", Quantity: 2, RestaurantID: "r1", ImageURL: "http://img/cake.png"},
		{ItemName: "Veggie Pizza", Quantity: 1, RestaurantID: "r2"}, // no item_id
	}}

	recorder := postJSON(t, router, "/cart/add-all", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Status string                 `json:"status"`
		Added  []services.CartPayload `json:"added"`
		Failed []map[string]any       `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.Equal(t, "completed", resp.Status)
	require.Len(t, resp.Added, 1)
	assert.Equal(t, "f1", resp.Added[0].ItemID)
	assert.Equal(t, "http://img/cake.png", resp.Added[0].ProductURL)
	require.Len(t, resp.Failed, 1)
	assert.Contains(t, resp.Failed[0]["reason"], "item_id")

	// only the valid item reached the commerce backend
	assert.Equal(t, int32(1), atomic.LoadInt32(&cartCalls))
}

func TestAddAllCommerceRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of stock", http.StatusConflict)
	}))
	defer server.Close()

	router, _ := newCartRouter(server.URL, server.Client())

	body := gin.H{"food_selection": []models.FoodLineItem{
		{ItemName: "Chocolate Cake", ItemID: "f1", Quantity: 1, RestaurantID: "r1"},
	}}

	recorder := postJSON(t, router, "/cart/add-all", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Added  []services.CartPayload `json:"added"`
		Failed []map[string]any       `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Empty(t, resp.Added)
	require.Len(t, resp.Failed, 1)
	assert.Contains(t, resp.Failed[0]["reason"], "out of stock")
}

func TestAddAllMissingSelection(t *testing.T) {
	router, _ := newCartRouter("http://127.0.0.1:1", http.DefaultClient)

	recorder := postJSON(t, router, "/cart/add-all", gin.H{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "error")
}

func TestAddAllPrefersProductURL(t *testing.T) {
	var gotURLs []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload services.CartPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotURLs = append(gotURLs, payload.ProductURL)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	router, _ := newCartRouter(server.URL, server.Client())

	body := gin.H{"food_selection": []models.FoodLineItem{
		{ItemName: "Chocolate Cake", ItemID: "f1", RestaurantID: "r1", ProductURL: "http://shop/cake", ImageURL: "http://img/cake.png"},
		{ItemName: "Veggie Pizza", ItemID: "f2", RestaurantID: "r2", ImageURL: "http://img/pizza.png"},
	}}

	recorder := postJSON(t, router, "/cart/add-all", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	// producturl wins when present, image_url is the fallback
	assert.Equal(t, []string{"http://shop/cake", "http://img/pizza.png"}, gotURLs)
}

func TestAddAllDefaultsQuantityToOne(t *testing.T) {
	var gotQuantity int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload services.CartPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotQuantity = payload.Quantity
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	router, _ := newCartRouter(server.URL, server.Client())

	body := gin.H{"food_selection": []models.FoodLineItem{
		{ItemName: "Chocolate Cake", ItemID: "f1", RestaurantID: "r1"},
	}}

	recorder := postJSON(t, router, "/cart/add-all", body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, gotQuantity)
}
