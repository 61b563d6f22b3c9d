package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"pos-console/internal/domain"
	"pos-console/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionCtxKey = "console.session"

type sessionInfo struct {
	ID      string
	Session session.Session
}

// authMiddleware resolves the bearer session ID against the store and
// attaches the session to the request. Unknown or expired IDs get a
// 401 with a login redirect hint for the UI.
func authMiddleware(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := bearerToken(c.GetHeader("Authorization"))
		if id == "" {
			abortUnauthorized(c)
			return
		}
		s, err := sessions.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session store unavailable"})
			return
		}
		c.Set(sessionCtxKey, sessionInfo{ID: id, Session: *s})
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func currentSession(c *gin.Context) (sessionInfo, bool) {
	v, ok := c.Get(sessionCtxKey)
	if !ok {
		return sessionInfo{}, false
	}
	info, ok := v.(sessionInfo)
	return info, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "session expired, please login again",
		"redirect": "/login",
	})
}
