package httpserver

import (
	"errors"
	"net/http"

	"pos-console/internal/domain"

	"github.com/gin-gonic/gin"
)

// backendError maps a backend-call failure to the console's error
// taxonomy. An unauthorized answer means the stored credential is
// dead: the session and its cart are cleared before the UI is told to
// log in again. Unreachable backends surface as a banner-worthy 502,
// never as a retry.
func (h *handlers) backendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		if info, ok := currentSession(c); ok {
			if derr := h.deps.Sessions.Delete(c.Request.Context(), info.ID); derr != nil {
				h.logger.Printf("clear session %s: %v", info.ID, derr)
			}
			h.deps.Carts.Drop(info.ID)
		}
		abortUnauthorized(c)
	case errors.Is(err, domain.ErrUnreachable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "cannot connect to the data service"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Printf("backend call failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
