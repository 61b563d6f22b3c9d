package backend

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"pos-console/internal/domain"
)

type wireSale struct {
	SalesID     int64   `json:"sales_id"`
	CustomerID  int64   `json:"customer_id"`
	TotalAmount float64 `json:"total_amount"`
	CreatedAt   string  `json:"created_at"`
}

type createSaleRequest struct {
	CustomerID  int64   `json:"customer_id"`
	TotalAmount float64 `json:"total_amount"`
}

type createSaleResponse struct {
	SalesID int64 `json:"sales_id"`
}

type createSaleItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (w wireSale) toDomain() domain.Sale {
	created, _ := time.Parse(time.RFC3339, w.CreatedAt)
	return domain.Sale{
		ID:         w.SalesID,
		CustomerID: w.CustomerID,
		TotalCents: centsFromAmount(w.TotalAmount),
		CreatedAt:  created,
	}
}

// ListSales fetches past sale headers.
func (c *Client) ListSales(ctx context.Context, token string) ([]domain.Sale, error) {
	var wire []wireSale
	if err := c.do(ctx, http.MethodGet, "/sales", token, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Sale, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// CreateSale creates the sale header and returns the server-assigned
// sale identifier. Line items are attached afterwards one by one.
func (c *Client) CreateSale(ctx context.Context, token string, customerID, totalCents int64) (int64, error) {
	body := createSaleRequest{CustomerID: customerID, TotalAmount: amountFromCents(totalCents)}
	var resp createSaleResponse
	if err := c.do(ctx, http.MethodPost, "/sales", token, body, &resp); err != nil {
		return 0, err
	}
	return resp.SalesID, nil
}

// AddSaleItem attaches one line item to an existing sale.
func (c *Client) AddSaleItem(ctx context.Context, token string, saleID, productID int64, quantity int) error {
	body := createSaleItemRequest{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/sales/"+strconv.FormatInt(saleID, 10)+"/items", token, body, nil)
}
