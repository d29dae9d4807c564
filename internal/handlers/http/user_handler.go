package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/handlers/dto"
	"github.com/rafabene/casadf-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// SignIn registra o login vindo do provedor OAuth.
// Sem banco o login é aceito e responde 204.
func (h *UserHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c)
		return
	}

	user, err := h.userService.SignIn(c.Request.Context(), services.SignInInput{
		OpenID:      req.OpenID,
		Name:        req.Name,
		Email:       req.Email,
		LoginMethod: req.LoginMethod,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if user == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// GetUserByOpenID busca um usuário pela identidade externa
func (h *UserHandler) GetUserByOpenID(c *gin.Context) {
	user, err := h.userService.GetByOpenID(c.Request.Context(), c.Param("openId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
