package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the endpoints reachable without credentials.
type PublicHandler struct{}

func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

// Contact returns the public contact information
func (h *PublicHandler) Contact(c *gin.Context) {
	MessageHandler(c, http.StatusOK, "Contact us at support@notebook.example.com")
}

// Ping is a public liveness endpoint
func (h *PublicHandler) Ping(c *gin.Context) {
	MessageHandler(c, http.StatusOK, "pong")
}
