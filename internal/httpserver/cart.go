package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"pos-console/internal/domain"

	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	CustomerID int64             `json:"customerId"`
	Lines      []domain.CartLine `json:"lines"`
	TotalCents int64             `json:"totalCents"`
}

type selectCustomerRequest struct {
	CustomerID int64 `json:"customerId"`
}

type addLineRequest struct {
	ProductID int64 `json:"productId"`
}

type updateLineRequest struct {
	Quantity  *int   `json:"quantity"`
	ProductID *int64 `json:"productId"`
}

func (h *handlers) getCart(c *gin.Context) {
	info, _ := currentSession(c)
	cart := h.deps.Carts.Get(info.ID)
	c.JSON(http.StatusOK, cartResponse{
		CustomerID: cart.CustomerID(),
		Lines:      cart.Lines(),
		TotalCents: cart.TotalCents(),
	})
}

func (h *handlers) selectCartCustomer(c *gin.Context) {
	var req selectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CustomerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId required"})
		return
	}
	info, _ := currentSession(c)
	h.deps.Carts.Get(info.ID).SelectCustomer(req.CustomerID)
	c.Status(http.StatusNoContent)
}

// addCartLine stages one unit of the chosen product. The product is
// looked up in the current inventory so the line snapshots price and
// stock as known right now; neither is re-fetched later.
func (h *handlers) addCartLine(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
		return
	}

	info, _ := currentSession(c)
	product, err := h.findProduct(c, req.ProductID)
	if err != nil {
		h.backendError(c, err)
		return
	}

	cart := h.deps.Carts.Get(info.ID)
	cart.AddLine(*product)
	c.JSON(http.StatusOK, cartResponse{
		CustomerID: cart.CustomerID(),
		Lines:      cart.Lines(),
		TotalCents: cart.TotalCents(),
	})
}

func (h *handlers) updateCartLine(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	var req updateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity == nil && req.ProductID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity or productId required"})
		return
	}

	info, _ := currentSession(c)
	cart := h.deps.Carts.Get(info.ID)

	// Resolve the product before touching the line, and apply the
	// quantity (which carries the validation that can reject the
	// request) before the swap: a rejected edit leaves the line as it
	// was, even when the request carried both fields.
	var product *domain.Product
	if req.ProductID != nil {
		p, err := h.findProduct(c, *req.ProductID)
		if err != nil {
			h.backendError(c, err)
			return
		}
		product = p
	}
	if req.Quantity != nil {
		if err := cart.UpdateLineQuantity(index, *req.Quantity); err != nil {
			h.backendError(c, err)
			return
		}
	}
	if product != nil {
		if err := cart.UpdateLineProduct(index, *product); err != nil {
			h.backendError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, cartResponse{
		CustomerID: cart.CustomerID(),
		Lines:      cart.Lines(),
		TotalCents: cart.TotalCents(),
	})
}

func (h *handlers) removeCartLine(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	info, _ := currentSession(c)
	cart := h.deps.Carts.Get(info.ID)
	if err := cart.RemoveLine(index); err != nil {
		h.backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse{
		CustomerID: cart.CustomerID(),
		Lines:      cart.Lines(),
		TotalCents: cart.TotalCents(),
	})
}

func (h *handlers) submitCart(c *gin.Context) {
	info, _ := currentSession(c)
	cart := h.deps.Carts.Get(info.ID)

	result, err := cart.Submit(c.Request.Context(), info.Session.Token, h.deps.Backend, h.deps.StockAdjust)
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// findProduct resolves a product by ID from the inventory list; the
// data service has no single-product endpoint.
func (h *handlers) findProduct(c *gin.Context, id int64) (*domain.Product, error) {
	info, _ := currentSession(c)
	products, err := h.deps.Backend.ListInventory(c.Request.Context(), info.Session.Token)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
}

func pathIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return 0, false
	}
	return index, true
}
