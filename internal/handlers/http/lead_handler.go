package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/handlers/dto"
	"github.com/rafabene/casadf-backend/internal/services"
)

// LeadHandler lida com requisições HTTP do funil de vendas
type LeadHandler struct {
	leadService *services.LeadService
	logger      ports.Logger
}

// NewLeadHandler cria um novo LeadHandler
func NewLeadHandler(leadService *services.LeadService, logger ports.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// ListLeads lista leads filtrando por estágio, origem e responsável
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var query dto.LeadListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c)
		return
	}

	leads, err := h.leadService.List(c.Request.Context(), query.Filters())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(leads))
}

// CreateLead registra um lead (formulário do site ou cadastro manual)
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var lead entities.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		dto.BadRequest(c)
		return
	}
	lead.ID = 0
	lead.LastContactedAt = nil
	lead.ConvertedAt = nil

	created, err := h.leadService.Create(c.Request.Context(), &lead)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetLead busca um lead por ID
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead altera os campos enviados
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch entities.LeadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		dto.BadRequest(c)
		return
	}

	updated, err := h.leadService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteLead remove um lead
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeStage move o lead no funil
func (h *LeadHandler) ChangeStage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c)
		return
	}

	lead, err := h.leadService.ChangeStage(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ListInteractions lista o histórico do lead
func (h *LeadHandler) ListInteractions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	interactions, err := h.leadService.ListInteractions(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(interactions))
}

// AddInteraction registra um contato com o lead
func (h *LeadHandler) AddInteraction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c)
		return
	}

	interaction, err := h.leadService.AddInteraction(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, interaction)
}
