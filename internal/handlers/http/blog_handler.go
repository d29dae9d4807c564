package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/handlers/dto"
	"github.com/rafabene/casadf-backend/internal/services"
)

// defaultReviewsLimit é o número de depoimentos na home
const defaultReviewsLimit = 6

// BlogHandler expõe o blog público e os depoimentos
type BlogHandler struct {
	blogService *services.BlogService
	logger      ports.Logger
}

// NewBlogHandler cria um novo BlogHandler
func NewBlogHandler(blogService *services.BlogService, logger ports.Logger) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		logger:      logger,
	}
}

// ListPosts lista os posts publicados
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogService.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(posts))
}

// GetPost busca um post publicado pelo slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListCategories lista as categorias do blog
func (h *BlogHandler) ListCategories(c *gin.Context) {
	categories, err := h.blogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(categories))
}

// ListFeaturedReviews lista os depoimentos aprovados em destaque
func (h *BlogHandler) ListFeaturedReviews(c *gin.Context) {
	var query dto.LimitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c)
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultReviewsLimit
	}

	reviews, err := h.blogService.ListFeaturedReviews(c.Request.Context(), query.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(reviews))
}
