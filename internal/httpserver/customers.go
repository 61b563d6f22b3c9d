package httpserver

import (
	"net/http"
	"strings"

	"pos-console/internal/backend"

	"github.com/gin-gonic/gin"
)

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r customerRequest) validate() (backend.CustomerInput, string) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return backend.CustomerInput{}, "name required"
	}
	email := strings.TrimSpace(r.Email)
	if email == "" || !strings.Contains(email, "@") {
		return backend.CustomerInput{}, "valid email required"
	}
	return backend.CustomerInput{Name: name, Email: email, Phone: strings.TrimSpace(r.Phone)}, ""
}

func (h *handlers) listCustomers(c *gin.Context) {
	info, _ := currentSession(c)
	customers, err := h.deps.Backend.ListCustomers(c.Request.Context(), info.Session.Token)
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *handlers) createCustomer(c *gin.Context) {
	var req customerRequest
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
	if err := h.deps.Backend.CreateCustomer(c.Request.Context(), info.Session.Token, in); err != nil {
		h.backendError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *handlers) updateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req customerRequest
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
	if err := h.deps.Backend.UpdateCustomer(c.Request.Context(), info.Session.Token, id, in); err != nil {
		h.backendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	info, _ := currentSession(c)
	if err := h.deps.Backend.DeleteCustomer(c.Request.Context(), info.Session.Token, id); err != nil {
		h.backendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) uploadCustomerPicture(c *gin.Context) {
	h.uploadPicture(c, h.deps.Backend.UploadCustomerPicture)
}
