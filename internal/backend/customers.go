package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"pos-console/internal/domain"
)

// CustomerInput carries the editable customer fields.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

type wireCustomer struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PictureURL string `json:"picture_url"`
}

type wireCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (w wireCustomer) toDomain() domain.Customer {
	return domain.Customer{
		ID:         w.CustomerID,
		Name:       w.Name,
		Email:      w.Email,
		Phone:      w.Phone,
		PictureURL: w.PictureURL,
	}
}

// ListCustomers fetches all customer records.
func (c *Client) ListCustomers(ctx context.Context, token string) ([]domain.Customer, error) {
	var wire []wireCustomer
	if err := c.do(ctx, http.MethodGet, "/customers", token, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// CreateCustomer adds a customer record.
func (c *Client) CreateCustomer(ctx context.Context, token string, in CustomerInput) error {
	body := wireCustomerInput{Name: in.Name, Email: in.Email, Phone: in.Phone}
	return c.do(ctx, http.MethodPost, "/customers", token, body, nil)
}

// UpdateCustomer replaces the editable fields of a customer.
func (c *Client) UpdateCustomer(ctx context.Context, token string, id int64, in CustomerInput) error {
	body := wireCustomerInput{Name: in.Name, Email: in.Email, Phone: in.Phone}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), token, body, nil)
}

// DeleteCustomer removes a customer record.
func (c *Client) DeleteCustomer(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), token, nil, nil)
}

// UploadCustomerPicture sends a profile image as multipart form data.
func (c *Client) UploadCustomerPicture(ctx context.Context, token string, id int64, filename string, file io.Reader) error {
	return c.upload(ctx, fmt.Sprintf("/customers/%d/upload-picture", id), token, "image", filename, file)
}
