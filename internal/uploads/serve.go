package uploads

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/storage/object"
)

// ServeImage returns a handler streaming stored images for /uploads/*key.
// Works for both local and S3 backends.
func ServeImage(store object.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimLeft(c.Param("key"), "/")
		if key == "" {
			c.Status(http.StatusNotFound)
			return
		}

		r, err := store.Open(c.Request.Context(), key)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		defer r.Close()

		var sniff [512]byte
		n, readErr := io.ReadFull(r, sniff[:])
		if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
			c.Status(http.StatusInternalServerError)
			return
		}

		c.Header("Content-Type", http.DetectContentType(sniff[:n]))
		c.Header("Cache-Control", "public, max-age=86400")
		c.Status(http.StatusOK)
		if n > 0 {
			if _, err := c.Writer.Write(sniff[:n]); err != nil {
				return
			}
		}
		_, _ = io.Copy(c.Writer, r)
	}
}
