package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

// DecompressRequest transparently inflates gzip encoded request bodies.
// Any other non-identity Content-Encoding is rejected with 415.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding")))
		switch encoding {
		case "", "identity":
			c.Next()
			return
		case "gzip", "x-gzip":
		default:
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.ErrorResponse{Error: "unsupported content encoding"})
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed gzip body"})
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
