package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidateContentType rejects logo requests that are not form posts.
// File validation itself happens in the handlers.
func ValidateContentType() gin.HandlerFunc {
	allowed := []string{"multipart/form-data", "application/x-www-form-urlencoded"}

	return func(ctx *gin.Context) {
		contentType := ctx.GetHeader("Content-Type")

		for _, t := range allowed {
			if strings.Contains(contentType, t) {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
			"success": false,
			"error":   "Content-Type must be multipart/form-data or application/x-www-form-urlencoded",
		})
	}
}
