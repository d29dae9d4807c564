package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/handlers/dto"
	"github.com/rafabene/casadf-backend/internal/handlers/middleware"
)

// parseID lê um parâmetro de rota numérico positivo; responde 400 quando inválido
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		dto.BadRequest(c)
		return 0, false
	}
	return id, true
}

// respondError registra falhas inesperadas e responde com Problem Details
func respondError(c *gin.Context, logger ports.Logger, err error) {
	if dto.ErrorStatus(err) >= http.StatusInternalServerError {
		logger.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", middleware.GetRequestID(c),
		)
	}
	dto.RespondError(c, err)
}
