package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage escolhe o idioma da requisição.
// Prioridade: ?lang=, depois Accept-Language, depois o idioma padrão.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" && m.i18nService.Supports(queryLang) {
			lang = queryLang
		}
		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.i18nService.DefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage retorna o primeiro idioma suportado do header, na ordem enviada.
// "pt" casa com "pt-BR" quando só a variante regional existe.
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	supported := m.i18nService.Languages()
	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}
		if lang == "" {
			continue
		}

		if m.i18nService.Supports(lang) {
			return lang
		}

		base, _, _ := strings.Cut(lang, "-")
		for _, candidate := range supported {
			candidateBase, _, _ := strings.Cut(candidate, "-")
			if strings.EqualFold(base, candidateBase) {
				return candidate
			}
		}
	}

	return ""
}
