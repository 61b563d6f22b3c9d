package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the backend rejected the bearer credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnreachable indicates the backend could not be reached at all.
	ErrUnreachable = errors.New("backend unreachable")
)

// ValidationError blocks a sale submission: missing customer, empty
// cart, non-positive quantity.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidation builds a ValidationError with the given message.
func NewValidation(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// StockWarning flags a cart line whose quantity exceeds the product's
// last-known stock. It is non-fatal: the line is skipped on submit
// while the rest of the sale goes through.
type StockWarning struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}

func (w StockWarning) String() string {
	return "not enough stock for " + w.ProductName
}
