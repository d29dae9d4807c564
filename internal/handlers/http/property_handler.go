package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/handlers/dto"
	"github.com/rafabene/casadf-backend/internal/services"
)

// geoJSONMediaType é o content type do feed do mapa
const geoJSONMediaType = "application/geo+json"

// PropertyHandler lida com requisições HTTP do catálogo de imóveis
type PropertyHandler struct {
	propertyService *services.PropertyService
	logger          ports.Logger
}

// NewPropertyHandler cria um novo PropertyHandler
func NewPropertyHandler(propertyService *services.PropertyService, logger ports.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		logger:          logger,
	}
}

// ListProperties lista imóveis com os filtros da query string
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var query dto.PropertyListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c)
		return
	}

	properties, err := h.propertyService.List(c.Request.Context(), query.Filters())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(properties))
}

// ListFeatured lista os destaques da home
func (h *PropertyHandler) ListFeatured(c *gin.Context) {
	var query dto.LimitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c)
		return
	}
	if query.Limit == 0 {
		query.Limit = repositories.DefaultFeaturedLimit
	}

	properties, err := h.propertyService.ListFeatured(c.Request.Context(), query.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(properties))
}

// Map retorna os imóveis filtrados como GeoJSON FeatureCollection
func (h *PropertyHandler) Map(c *gin.Context) {
	var query dto.PropertyListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c)
		return
	}

	properties, err := h.propertyService.List(c.Request.Context(), query.Filters())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Type", geoJSONMediaType)
	c.JSON(http.StatusOK, dto.ToFeatureCollection(properties))
}

// GetProperty busca um imóvel por ID
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetPropertyBySlug busca um imóvel pelo slug público
func (h *PropertyHandler) GetPropertyBySlug(c *gin.Context) {
	property, err := h.propertyService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// CreateProperty cadastra um imóvel
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var property entities.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		dto.BadRequest(c)
		return
	}
	property.ID = 0

	created, err := h.propertyService.Create(c.Request.Context(), &property)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateProperty altera os campos enviados
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch entities.PropertyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		dto.BadRequest(c)
		return
	}

	updated, err := h.propertyService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProperty remove um imóvel
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListImages lista as imagens do imóvel
func (h *PropertyHandler) ListImages(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	images, err := h.propertyService.ListImages(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(images))
}

// AddImage associa uma imagem ao imóvel
func (h *PropertyHandler) AddImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreatePropertyImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c)
		return
	}

	image, err := h.propertyService.AddImage(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteImage remove uma imagem
func (h *PropertyHandler) DeleteImage(c *gin.Context) {
	imageID, ok := parseID(c, "imageId")
	if !ok {
		return
	}

	if err := h.propertyService.DeleteImage(c.Request.Context(), imageID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
