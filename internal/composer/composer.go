package composer

import (
	"context"
	"fmt"
	"sync"

	"pos-console/internal/domain"
)

// SaleBackend is the slice of the data service the composer needs to
// turn a staged cart into a recorded sale.
type SaleBackend interface {
	CreateSale(ctx context.Context, token string, customerID, totalCents int64) (int64, error)
	AddSaleItem(ctx context.Context, token string, saleID, productID int64, quantity int) error
	UpdateStock(ctx context.Context, token string, line domain.CartLine, stock int) error
}

// Composer stages one not-yet-submitted sale: a selected customer, an
// ordered list of cart lines and the derived total. It lives in memory
// only and is discarded on submit or logout.
type Composer struct {
	mu         sync.Mutex
	customerID int64
	lines      []domain.CartLine
}

// SubmitResult reports what a submission produced: the server-assigned
// sale ID and any non-fatal stock warnings for skipped lines.
type SubmitResult struct {
	SaleID   int64                 `json:"salesId"`
	Warnings []domain.StockWarning `json:"warnings,omitempty"`
}

func New() *Composer {
	return &Composer{}
}

// SelectCustomer sets the customer the sale will be recorded against.
// Zero clears the selection.
func (c *Composer) SelectCustomer(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerID = id
}

func (c *Composer) CustomerID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customerID
}

// Lines returns a copy of the staged cart lines in order.
func (c *Composer) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// AddLine merges the product into the cart: an existing line for the
// same product gains quantity 1, otherwise a new quantity-1 line is
// appended with the price and stock snapshotted from the product.
func (c *Composer) AddLine(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ProductID:      p.ID,
		ProductName:    p.Name,
		UnitPriceCents: p.PriceCents,
		KnownStock:     p.Stock,
		Quantity:       1,
	})
}

// UpdateLineQuantity sets the quantity of one line. Quantities below 1
// are rejected with a ValidationError.
func (c *Composer) UpdateLineQuantity(index, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(index); err != nil {
		return err
	}
	if quantity < 1 {
		return domain.NewValidation("quantity must be at least 1")
	}
	c.lines[index].Quantity = quantity
	return nil
}

// UpdateLineProduct swaps the product behind one line, re-snapshotting
// price and stock from the newly chosen product. Quantity is kept.
func (c *Composer) UpdateLineProduct(index int, p domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(index); err != nil {
		return err
	}
	line := &c.lines[index]
	line.ProductID = p.ID
	line.ProductName = p.Name
	line.UnitPriceCents = p.PriceCents
	line.KnownStock = p.Stock
	return nil
}

// RemoveLine drops one line from the cart.
func (c *Composer) RemoveLine(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// TotalCents derives the cart total. Pure with respect to state:
// calling it twice with no edits in between yields the same value.
func (c *Composer) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalOf(c.lines)
}

// Validate checks the cart is submittable. A missing customer or an
// empty cart is a ValidationError. Lines whose quantity exceeds the
// last-known stock produce warnings instead of blocking; the stock
// check is best effort, stock may change between check and commit.
func (c *Composer) Validate() ([]domain.StockWarning, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Composer) validateLocked() ([]domain.StockWarning, error) {
	if c.customerID == 0 {
		return nil, domain.NewValidation("select a customer")
	}
	if len(c.lines) == 0 {
		return nil, domain.NewValidation("add at least one product")
	}
	var warnings []domain.StockWarning
	for _, line := range c.lines {
		if line.Quantity > line.KnownStock {
			warnings = append(warnings, domain.StockWarning{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Requested:   line.Quantity,
				Available:   line.KnownStock,
			})
		}
	}
	return warnings, nil
}

// Submit records the sale: header first, then each line in order, each
// call awaited before the next. Lines flagged by Validate are skipped;
// the remaining lines still submit. With adjustStock set, each
// submitted line's product is rewritten to its decremented stock
// afterwards. The sequence is not transactional: a failure mid-way
// leaves earlier steps in place and no compensation is attempted. On
// success the composer resets to an empty cart.
func (c *Composer) Submit(ctx context.Context, token string, b SaleBackend, adjustStock bool) (*SubmitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	warnings, err := c.validateLocked()
	if err != nil {
		return nil, err
	}

	skip := make(map[int64]bool, len(warnings))
	for _, w := range warnings {
		skip[w.ProductID] = true
	}

	saleID, err := b.CreateSale(ctx, token, c.customerID, totalOf(c.lines))
	if err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	for _, line := range c.lines {
		if skip[line.ProductID] {
			continue
		}
		if err := b.AddSaleItem(ctx, token, saleID, line.ProductID, line.Quantity); err != nil {
			return nil, fmt.Errorf("create sale item for product %d: %w", line.ProductID, err)
		}
	}

	if adjustStock {
		for _, line := range c.lines {
			if skip[line.ProductID] {
				continue
			}
			if err := b.UpdateStock(ctx, token, line, line.KnownStock-line.Quantity); err != nil {
				return nil, fmt.Errorf("adjust stock for product %d: %w", line.ProductID, err)
			}
		}
	}

	c.customerID = 0
	c.lines = nil
	return &SubmitResult{SaleID: saleID, Warnings: warnings}, nil
}

// Reset discards the staged cart.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerID = 0
	c.lines = nil
}

func (c *Composer) checkIndex(index int) error {
	if index < 0 || index >= len(c.lines) {
		return domain.NewValidation("no such cart line")
	}
	return nil
}

func totalOf(lines []domain.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.TotalCents()
	}
	return total
}
