package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Notebook/internal/handler/http/dto"
)

const basicPrefix = "Basic "

// RequestValidator rejects malformed requests before authentication is
// attempted. It runs strictly after logging and strictly before the
// authentication stage. A Basic Authorization header that cannot be
// decoded is a client error, not a failed login.
func RequestValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if isBasicHeader(header) && !wellFormedBasic(header) {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Malformed Authorization header"})
			return
		}
		c.Next()
	}
}

func isBasicHeader(header string) bool {
	return len(header) >= len(basicPrefix) && strings.EqualFold(header[:len(basicPrefix)], basicPrefix)
}

func wellFormedBasic(header string) bool {
	payload, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(basicPrefix):]))
	if err != nil {
		return false
	}
	return strings.Contains(string(payload), ":")
}
