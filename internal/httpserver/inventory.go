package httpserver

import (
	"net/http"
	"strings"

	"pos-console/internal/backend"

	"github.com/gin-gonic/gin"
)

type productRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Stock      int    `json:"stock"`
	Category   string `json:"category"`
}

func (r productRequest) validate() (backend.ProductInput, string) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return backend.ProductInput{}, "name required"
	}
	if r.PriceCents <= 0 {
		return backend.ProductInput{}, "price must be positive"
	}
	if r.Stock < 0 {
		return backend.ProductInput{}, "stock must not be negative"
	}
	return backend.ProductInput{
		Name:       name,
		PriceCents: r.PriceCents,
		Stock:      r.Stock,
		Category:   strings.TrimSpace(r.Category),
	}, ""
}

func (h *handlers) listInventory(c *gin.Context) {
	info, _ := currentSession(c)
	products, err := h.deps.Backend.ListInventory(c.Request.Context(), info.Session.Token)
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in, msg := req.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	info, _ := currentSession(c)
	if err := h.deps.Backend.CreateProduct(c.Request.Context(), info.Session.Token, in); err != nil {
		h.backendError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *handlers) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in, msg := req.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	info, _ := currentSession(c)
	if err := h.deps.Backend.UpdateProduct(c.Request.Context(), info.Session.Token, id, in); err != nil {
		h.backendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	info, _ := currentSession(c)
	if err := h.deps.Backend.DeleteProduct(c.Request.Context(), info.Session.Token, id); err != nil {
		h.backendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) uploadProductPicture(c *gin.Context) {
	h.uploadPicture(c, h.deps.Backend.UploadProductPicture)
}
