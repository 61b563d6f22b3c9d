package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"pos-console/internal/domain"
)

// ProductInput carries the editable product fields. Price is in cents;
// the wire conversion to a decimal amount happens here.
type ProductInput struct {
	Name       string
	PriceCents int64
	Stock      int
	Category   string
}

type wireProduct struct {
	ProductID  int64   `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	Category   string  `json:"category"`
	PictureURL string  `json:"picture_url"`
}

type wireProductInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category,omitempty"`
}

func (w wireProduct) toDomain() domain.Product {
	return domain.Product{
		ID:         w.ProductID,
		Name:       w.Name,
		PriceCents: centsFromAmount(w.Price),
		Stock:      w.Stock,
		Category:   w.Category,
		PictureURL: w.PictureURL,
	}
}

func (in ProductInput) toWire() wireProductInput {
	return wireProductInput{
		Name:     in.Name,
		Price:    amountFromCents(in.PriceCents),
		Stock:    in.Stock,
		Category: in.Category,
	}
}

// ListInventory fetches all products.
func (c *Client) ListInventory(ctx context.Context, token string) ([]domain.Product, error) {
	var wire []wireProduct
	if err := c.do(ctx, http.MethodGet, "/inventory", token, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// CreateProduct adds a product.
func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) error {
	return c.do(ctx, http.MethodPost, "/inventory", token, in.toWire(), nil)
}

// UpdateProduct replaces the editable fields of a product.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, in ProductInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/inventory/%d", id), token, in.toWire(), nil)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/inventory/%d", id), token, nil, nil)
}

// UploadProductPicture sends a product image as multipart form data.
func (c *Client) UploadProductPicture(ctx context.Context, token string, id int64, filename string, file io.Reader) error {
	return c.upload(ctx, fmt.Sprintf("/inventory/%d/upload-picture", id), token, "image", filename, file)
}

// UpdateStock rewrites a product with a new stock level, keeping the
// name and price from the given cart line snapshot. Used for the
// optional post-sale stock decrement; the read-modify-write is not
// atomic against concurrent sales.
func (c *Client) UpdateStock(ctx context.Context, token string, line domain.CartLine, stock int) error {
	in := ProductInput{
		Name:       line.ProductName,
		PriceCents: line.UnitPriceCents,
		Stock:      stock,
	}
	return c.UpdateProduct(ctx, token, line.ProductID, in)
}
