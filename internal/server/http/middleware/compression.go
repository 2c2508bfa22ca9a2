package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxDecompressedBody caps the size of an inflated request body.
const MaxDecompressedBody = 1 << 20

// DecompressRequest inflates gzip encoded request bodies.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isGzip(c.GetHeader("Content-Encoding")) {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, reader, MaxDecompressedBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}

func isGzip(encoding string) bool {
	for _, part := range strings.Split(encoding, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "gzip", "x-gzip":
			return true
		}
	}
	return false
}
