package backend

import (
	"context"
	"fmt"
	"net/http"

	"pos-console/internal/domain"
)

type wireProfile struct {
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
}

type wireInventoryValue struct {
	TotalValue float64 `json:"total_value"`
}

type wireTopProduct struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

// GetProfile fetches the authenticated user behind the token.
func (c *Client) GetProfile(ctx context.Context, token string) (*domain.Profile, error) {
	var wire wireProfile
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &wire); err != nil {
		return nil, err
	}
	return &domain.Profile{Username: wire.Username, PictureURL: wire.ProfilePic}, nil
}

// InventoryValue fetches the total value of the stock on hand, in
// cents. The data service computes it as Σ(price × stock).
func (c *Client) InventoryValue(ctx context.Context, token string) (int64, error) {
	var wire wireInventoryValue
	if err := c.do(ctx, http.MethodGet, "/inventory/value", token, nil, &wire); err != nil {
		return 0, err
	}
	return centsFromAmount(wire.TotalValue), nil
}

// TopProducts fetches the best sellers ranked by units sold.
func (c *Client) TopProducts(ctx context.Context, token string) ([]domain.TopProduct, error) {
	var wire []wireTopProduct
	if err := c.do(ctx, http.MethodGet, "/inventory/top/units", token, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.TopProduct, 0, len(wire))
	for _, w := range wire {
		out = append(out, domain.TopProduct{ProductID: w.ProductID, Name: w.Name, UnitsSold: w.UnitsSold})
	}
	return out, nil
}

// LowStock fetches the products whose stock sits below the threshold.
func (c *Client) LowStock(ctx context.Context, token string, threshold int) ([]domain.Product, error) {
	var wire []wireProduct
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/inventory/low-stock/%d", threshold), token, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}
