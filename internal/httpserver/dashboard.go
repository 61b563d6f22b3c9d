package httpserver

import (
	"net/http"
	"sync"

	"pos-console/internal/domain"

	"github.com/gin-gonic/gin"
)

// lowStockThreshold is the stock level below which a product shows up
// on the dashboard's low-stock list.
const lowStockThreshold = 5

type dashboardResponse struct {
	Username            string              `json:"username"`
	PictureURL          string              `json:"pictureUrl,omitempty"`
	InventoryValueCents int64               `json:"inventoryValueCents"`
	TopProducts         []domain.TopProduct `json:"topProducts"`
	LowStock            []domain.Product    `json:"lowStock"`
	TotalCustomers      int                 `json:"totalCustomers"`
}

// dashboard aggregates the landing-page figures: who is logged in, the
// value of the stock on hand, the best sellers, the products running
// low and the customer count. The five fetches are independent, so
// they run concurrently and are joined before the response is built.
func (h *handlers) dashboard(c *gin.Context) {
	info, _ := currentSession(c)
	ctx := c.Request.Context()
	token := info.Session.Token

	var (
		profile   *domain.Profile
		value     int64
		top       []domain.TopProduct
		low       []domain.Product
		customers []domain.Customer

		profileErr   error
		valueErr     error
		topErr       error
		lowErr       error
		customersErr error
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		profile, profileErr = h.deps.Backend.GetProfile(ctx, token)
	}()
	go func() {
		defer wg.Done()
		value, valueErr = h.deps.Backend.InventoryValue(ctx, token)
	}()
	go func() {
		defer wg.Done()
		top, topErr = h.deps.Backend.TopProducts(ctx, token)
	}()
	go func() {
		defer wg.Done()
		low, lowErr = h.deps.Backend.LowStock(ctx, token, lowStockThreshold)
	}()
	go func() {
		defer wg.Done()
		customers, customersErr = h.deps.Backend.ListCustomers(ctx, token)
	}()
	wg.Wait()

	for _, err := range []error{profileErr, valueErr, topErr, lowErr, customersErr} {
		if err != nil {
			h.backendError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dashboardResponse{
		Username:            profile.Username,
		PictureURL:          profile.PictureURL,
		InventoryValueCents: value,
		TopProducts:         top,
		LowStock:            low,
		TotalCustomers:      len(customers),
	})
}
