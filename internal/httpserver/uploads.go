package httpserver

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxPictureSize caps uploads at 5MB, matching what the backend's
// picture endpoints accept.
const maxPictureSize = 5 << 20

var allowedPictureExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type uploadFunc func(ctx context.Context, token string, id int64, filename string, file io.Reader) error

// uploadPicture validates the incoming image form file and passes it
// through to the backend's multipart endpoint.
func (h *handlers) uploadPicture(c *gin.Context, upload uploadFunc) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	if header.Size > maxPictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size must be less than 5MB"})
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPictureExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload a valid image file (JPG, PNG, GIF)"})
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Printf("open upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer file.Close()

	info, _ := currentSession(c)
	if err := upload(c.Request.Context(), info.Session.Token, id, header.Filename, file); err != nil {
		h.backendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the numeric :id path parameter, answering the request
// itself when the value is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
