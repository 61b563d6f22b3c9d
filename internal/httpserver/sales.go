package httpserver

import (
	"net/http"
	"sync"

	"pos-console/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listSales(c *gin.Context) {
	info, _ := currentSession(c)
	sales, err := h.deps.Backend.ListSales(c.Request.Context(), info.Session.Token)
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

// saleForm loads everything the sale entry page needs in one shot.
// The three list fetches have no ordering dependency, so they run
// concurrently and are joined before the response is built.
func (h *handlers) saleForm(c *gin.Context) {
	info, _ := currentSession(c)
	ctx := c.Request.Context()
	token := info.Session.Token

	var (
		customers []domain.Customer
		products  []domain.Product
		sales     []domain.Sale

		customersErr error
		productsErr  error
		salesErr     error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		customers, customersErr = h.deps.Backend.ListCustomers(ctx, token)
	}()
	go func() {
		defer wg.Done()
		products, productsErr = h.deps.Backend.ListInventory(ctx, token)
	}()
	go func() {
		defer wg.Done()
		sales, salesErr = h.deps.Backend.ListSales(ctx, token)
	}()
	wg.Wait()

	for _, err := range []error{customersErr, productsErr, salesErr} {
		if err != nil {
			h.backendError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"inventory": products,
		"sales":     sales,
	})
}
