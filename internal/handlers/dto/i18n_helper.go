package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/handlers/middleware"
	"github.com/rafabene/casadf-backend/internal/infrastructure/i18n"
)

// fallbackLanguage é usado quando o middleware de idioma não rodou
const fallbackLanguage = "pt-BR"

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.not_found.detail", map[string]any{"Resource": "Imóvel"})
func T(c *gin.Context, key string, params ...map[string]any) string {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return fallbackLanguage
}
