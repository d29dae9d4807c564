package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/handlers/middleware"
)

const (
	// BaseURLContextKey guarda o prefixo dos URIs de tipo de problema
	BaseURLContextKey = "base_url"
	defaultBaseURL    = "http://localhost:8080"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	problems.Problem
	RequestID string            `json:"request_id,omitempty"`
	Errors    []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ListResponse envelopa listagens
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// NewListResponse cria um envelope; listas nil viram [] no JSON
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Total: len(items)}
}

// NewErrorResponseI18n cria uma resposta de erro com título e detalhe traduzidos
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]any) ErrorResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return ErrorResponse{
		Problem: problems.Problem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
		RequestID: middleware.GetRequestID(c),
	}
}

// WriteProblem encerra a requisição com o corpo application/problem+json
func WriteProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// BadRequest responde 400 para corpo ou parâmetros ilegíveis
func BadRequest(c *gin.Context) {
	WriteProblem(c, NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		"error.bad_request.detail",
		http.StatusBadRequest,
	))
}

// NotFound responde 404 para o recurso informado (chave i18n resource.*)
func NotFound(c *gin.Context, resourceKey string) {
	WriteProblem(c, NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]any{"Resource": T(c, resourceKey)},
	))
}

var notFoundResources = []struct {
	err error
	key string
}{
	{domainerrors.ErrUserNotFound, "resource.user"},
	{domainerrors.ErrPropertyNotFound, "resource.property"},
	{domainerrors.ErrLeadNotFound, "resource.lead"},
	{domainerrors.ErrPostNotFound, "resource.post"},
}

// ErrorStatus retorna o status HTTP correspondente a um erro de domínio
func ErrorStatus(err error) int {
	for _, r := range notFoundResources {
		if errors.Is(err, r.err) {
			return http.StatusNotFound
		}
	}
	switch {
	case errors.Is(err, domainerrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUniqueViolation):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrDatabaseUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError converte um erro de domínio em Problem Details
func RespondError(c *gin.Context, err error) {
	for _, r := range notFoundResources {
		if errors.Is(err, r.err) {
			NotFound(c, r.key)
			return
		}
	}

	status := ErrorStatus(err)
	switch status {
	case http.StatusBadRequest:
		response := NewErrorResponseI18n(c, domainerrors.ProblemTypeValidation, "error.validation.title", "error.validation.detail", status)
		var domainErr *domainerrors.DomainError
		if errors.As(err, &domainErr) && domainErr.Field != "" {
			response.Errors = []ValidationError{{Field: domainErr.Field, Message: domainErr.Message}}
		}
		WriteProblem(c, response)
	case http.StatusConflict:
		WriteProblem(c, NewErrorResponseI18n(c, domainerrors.ProblemTypeConflict, "error.conflict.title", "error.unique_violation", status))
	case http.StatusServiceUnavailable:
		WriteProblem(c, NewErrorResponseI18n(c, domainerrors.ProblemTypeUnavailable, "error.unavailable.title", "error.database_unavailable", status))
	default:
		WriteProblem(c, NewErrorResponseI18n(c, domainerrors.ProblemTypeInternal, "error.internal.title", "error.internal.detail", status))
	}
}
