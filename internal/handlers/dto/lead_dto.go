package dto

import (
	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/services"
)

// LeadListQuery são os filtros aceitos em GET /leads
type LeadListQuery struct {
	Stage      string `form:"stage"`
	Source     string `form:"source"`
	AssignedTo int64  `form:"assigned_to" binding:"gte=0"`
}

// Filters converte a query para os filtros do repositório
func (q LeadListQuery) Filters() repositories.LeadFilters {
	return repositories.LeadFilters{
		Stage:      entities.LeadStage(q.Stage),
		Source:     entities.LeadSource(q.Source),
		AssignedTo: q.AssignedTo,
	}
}

// ChangeStageRequest move o lead no funil
type ChangeStageRequest struct {
	Stage  string  `json:"stage" binding:"required"`
	UserID *int64  `json:"user_id"`
	Note   *string `json:"note"`
}

// ToInput converte a requisição para o serviço
func (r ChangeStageRequest) ToInput() services.ChangeStageInput {
	return services.ChangeStageInput{
		Stage:  entities.LeadStage(r.Stage),
		UserID: r.UserID,
		Note:   r.Note,
	}
}

// CreateInteractionRequest registra um contato com o lead
type CreateInteractionRequest struct {
	Type        string  `json:"type" binding:"required"`
	UserID      *int64  `json:"user_id"`
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
}

// ToEntity converte a requisição na interação do lead informado
func (r CreateInteractionRequest) ToEntity(leadID int64) *entities.Interaction {
	return &entities.Interaction{
		LeadID:      leadID,
		UserID:      r.UserID,
		Type:        entities.InteractionType(r.Type),
		Subject:     r.Subject,
		Description: r.Description,
	}
}
