package repositories

import (
	"context"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// LeadFilters contém filtros para listagem de leads. Valores zero não filtram.
type LeadFilters struct {
	Stage      entities.LeadStage
	Source     entities.LeadSource
	AssignedTo int64
}

// LeadRepository define a interface para persistência de leads
type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	Update(ctx context.Context, id int64, patch entities.LeadPatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Lead, error)
	List(ctx context.Context, filters LeadFilters) ([]*entities.Lead, error)
	ListByStage(ctx context.Context, stage entities.LeadStage) ([]*entities.Lead, error)
}

// InteractionRepository define a interface para o histórico de leads (somente inserção)
type InteractionRepository interface {
	Create(ctx context.Context, interaction *entities.Interaction) error
	ListByLead(ctx context.Context, leadID int64) ([]*entities.Interaction, error)
	ListByUser(ctx context.Context, userID int64) ([]*entities.Interaction, error)
}

// ClientInterestRepository define a interface para perfis de interesse de clientes
type ClientInterestRepository interface {
	Create(ctx context.Context, interest *entities.ClientInterest) error
	Update(ctx context.Context, id int64, patch entities.ClientInterestPatch) error
	Delete(ctx context.Context, id int64) error
	ListByClient(ctx context.Context, clientID int64) ([]*entities.ClientInterest, error)
}
