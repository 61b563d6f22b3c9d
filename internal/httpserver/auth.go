package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"pos-console/internal/backend"
	"pos-console/internal/domain"
	"pos-console/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// login exchanges credentials with the data service and opens a
// console session around the issued bearer token.
func (h *handlers) login(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	res, err := h.deps.Backend.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.backendError(c, err)
		return
	}

	h.openSession(c, res)
}

// register creates the account and logs straight in, mirroring the
// register-then-login flow of the console UI.
func (h *handlers) register(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	res, err := h.deps.Backend.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.backendError(c, err)
		return
	}

	h.openSession(c, res)
}

func (h *handlers) logout(c *gin.Context) {
	info, ok := currentSession(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	if err := h.deps.Sessions.Delete(c.Request.Context(), info.ID); err != nil {
		h.logger.Printf("delete session %s: %v", info.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	h.deps.Carts.Drop(info.ID)
	c.Status(http.StatusNoContent)
}

func (h *handlers) openSession(c *gin.Context, res *backend.AuthResult) {
	id := uuid.NewString()
	s := session.Session{Token: res.Token, Username: res.Username}
	if err := h.deps.Sessions.Put(c.Request.Context(), id, s); err != nil {
		h.logger.Printf("store session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open session"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse{Token: id, Username: res.Username})
}

func bindCredentials(c *gin.Context) (credentialsRequest, bool) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return req, false
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return req, false
	}
	return req, true
}
