package domain

import "time"

// Sale is a completed sale header as returned by the data service.
// Line items live behind the sales items endpoint and are attached
// individually after the header is created.
type Sale struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}
