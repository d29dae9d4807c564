package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o header de correlação aceito e devolvido
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey é a chave do ID no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um UUID novo
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retorna o ID da requisição, ou "" fora do middleware
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}
