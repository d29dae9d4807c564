package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/domain/valueobjects"
)

// LeadService contém a lógica do funil de vendas
type LeadService struct {
	leadRepo        repositories.LeadRepository
	interactionRepo repositories.InteractionRepository
	logger          ports.Logger
}

// NewLeadService cria um novo LeadService
func NewLeadService(
	leadRepo repositories.LeadRepository,
	interactionRepo repositories.InteractionRepository,
	logger ports.Logger,
) *LeadService {
	return &LeadService{
		leadRepo:        leadRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

// Create registra um novo lead com o e-mail normalizado
func (s *LeadService) Create(ctx context.Context, lead *entities.Lead) (*entities.Lead, error) {
	email, err := valueobjects.NormalizeOptional(lead.Email)
	if err != nil {
		return nil, err
	}
	lead.Email = email

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	s.logger.Info("lead created", "id", lead.ID, "source", lead.Source)
	return lead, nil
}

// Get busca um lead por ID
func (s *LeadService) Get(ctx context.Context, id int64) (*entities.Lead, error) {
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.ErrLeadNotFound
	}
	return lead, nil
}

// List lista leads com filtros
func (s *LeadService) List(ctx context.Context, filters repositories.LeadFilters) ([]*entities.Lead, error) {
	return s.leadRepo.List(ctx, filters)
}

// Update altera um lead existente e retorna a versão gravada
func (s *LeadService) Update(ctx context.Context, id int64, patch entities.LeadPatch) (*entities.Lead, error) {
	if patch.Email != nil {
		email, err := valueobjects.NormalizeOptional(patch.Email)
		if err != nil {
			return nil, err
		}
		patch.Email = email
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.leadRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete remove o lead. O histórico de interações permanece.
func (s *LeadService) Delete(ctx context.Context, id int64) error {
	return s.leadRepo.Delete(ctx, id)
}

// ChangeStageInput representa uma mudança de estágio no funil
type ChangeStageInput struct {
	Stage  entities.LeadStage
	UserID *int64
	Note   *string
}

type stageChange struct {
	From entities.LeadStage `json:"from"`
	To   entities.LeadStage `json:"to"`
}

// ChangeStage move o lead no funil e registra uma interação status_change.
// As duas gravações são independentes: não há transação entre elas.
func (s *LeadService) ChangeStage(ctx context.Context, id int64, input ChangeStageInput) (*entities.Lead, error) {
	if !input.Stage.IsValid() {
		return nil, errors.NewValidationError("stage", "has unknown value \""+string(input.Stage)+"\"")
	}

	lead, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead.Stage == input.Stage {
		return lead, nil
	}

	patch := entities.LeadPatch{Stage: &input.Stage}
	if input.Stage == entities.LeadStageFechadoGanho && lead.ConvertedAt == nil {
		now := time.Now().UTC()
		patch.ConvertedAt = &now
	}
	if err := s.leadRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(stageChange{From: lead.Stage, To: input.Stage})
	if err != nil {
		return nil, err
	}
	subject := "stage: " + string(lead.Stage) + " -> " + string(input.Stage)
	interaction := &entities.Interaction{
		LeadID:      id,
		UserID:      input.UserID,
		Type:        entities.InteractionStatusChange,
		Subject:     &subject,
		Description: input.Note,
		Metadata:    datatypes.JSON(metadata),
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	s.logger.Info("lead stage changed", "id", id, "from", lead.Stage, "to", input.Stage)
	return s.Get(ctx, id)
}

// AddInteraction registra um contato com o lead e atualiza last_contacted_at
func (s *LeadService) AddInteraction(ctx context.Context, interaction *entities.Interaction) (*entities.Interaction, error) {
	if _, err := s.Get(ctx, interaction.LeadID); err != nil {
		return nil, err
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	if isContact(interaction.Type) {
		contactedAt := interaction.CreatedAt
		if err := s.leadRepo.Update(ctx, interaction.LeadID, entities.LeadPatch{LastContactedAt: &contactedAt}); err != nil {
			return nil, err
		}
	}
	return interaction, nil
}

// ListInteractions lista o histórico do lead
func (s *LeadService) ListInteractions(ctx context.Context, leadID int64) ([]*entities.Interaction, error) {
	return s.interactionRepo.ListByLead(ctx, leadID)
}

func isContact(t entities.InteractionType) bool {
	return t != entities.InteractionNota && t != entities.InteractionStatusChange
}
