package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/domain/ports"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler informa se o processo e o banco respondem
type HealthHandler struct {
	env      string
	database ports.DatabaseProbe
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(env string, database ports.DatabaseProbe) *HealthHandler {
	return &HealthHandler{env: env, database: database}
}

// Health responde 200 mesmo sem banco: o site público continua no ar
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status, database := "ok", "up"
	if err := h.database.Ping(ctx); err != nil {
		status, database = "degraded", "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"env":      h.env,
		"database": database,
	})
}
