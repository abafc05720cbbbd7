package services

import (
	"PlanMate/config/environment"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// CartPayload is the body of one cart-add call to the commerce backend
type CartPayload struct {
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id"`
	ItemID       string `json:"item_id"`
	Quantity     int    `json:"quantity"`
	ProductURL   string `json:"producturl"`
}

// CommerceService is the client for the external commerce backend:
// product search and cart mutation.
type CommerceService struct {
	BaseURL string
	Client  *http.Client
}

func NewCommerceService() *CommerceService {
	return &CommerceService{
		BaseURL: environment.GetServerURL(),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SearchProducts looks a product up by name. Record order is returned as
// received; a non-success status is an error the caller degrades on.
func (s *CommerceService) SearchProducts(ctx context.Context, name string) ([]map[string]any, error) {
	searchURL := fmt.Sprintf("%s/search/product/%s", s.BaseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product search returned status %d", resp.StatusCode)
	}

	var records []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("error decoding product search response: %w", err)
	}
	return records, nil
}

// AddToCart submits one line item to the commerce cart
func (s *CommerceService) AddToCart(ctx context.Context, payload CartPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/cart/add", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("cart add request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cart add rejected: %s", string(respBody))
	}
	return nil
}
