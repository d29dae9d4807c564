package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// LeadRepository implementa repositories.LeadRepository
type LeadRepository struct {
	store store[entities.Lead]
}

// NewLeadRepository cria um novo LeadRepository
func NewLeadRepository(h Handle) repositories.LeadRepository {
	return &LeadRepository{store: newStore[entities.Lead](h, "leads")}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	return r.store.create(ctx, lead)
}

func (r *LeadRepository) Update(ctx context.Context, id int64, patch entities.LeadPatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entities.Lead, error) {
	return r.store.findByID(ctx, id)
}

func (r *LeadRepository) List(ctx context.Context, filters repositories.LeadFilters) ([]*entities.Lead, error) {
	if err := checkEnum("stage", filters.Stage); err != nil {
		return nil, err
	}
	if err := checkEnum("source", filters.Source); err != nil {
		return nil, err
	}

	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		if filters.Stage != "" {
			q = q.Where("stage = ?", filters.Stage)
		}
		if filters.Source != "" {
			q = q.Where("source = ?", filters.Source)
		}
		if filters.AssignedTo != 0 {
			q = q.Where("assigned_to = ?", filters.AssignedTo)
		}
		return q
	})
}

func (r *LeadRepository) ListByStage(ctx context.Context, stage entities.LeadStage) ([]*entities.Lead, error) {
	if err := checkEnum("stage", stage); err != nil {
		return nil, err
	}
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("stage = ?", stage)
	})
}

// InteractionRepository implementa repositories.InteractionRepository
type InteractionRepository struct {
	store store[entities.Interaction]
}

// NewInteractionRepository cria um novo InteractionRepository
func NewInteractionRepository(h Handle) repositories.InteractionRepository {
	return &InteractionRepository{store: newStore[entities.Interaction](h, "interactions")}
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *entities.Interaction) error {
	return r.store.create(ctx, interaction)
}

func (r *InteractionRepository) ListByLead(ctx context.Context, leadID int64) ([]*entities.Interaction, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("lead_id = ?", leadID)
	})
}

func (r *InteractionRepository) ListByUser(ctx context.Context, userID int64) ([]*entities.Interaction, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ?", userID)
	})
}

// ClientInterestRepository implementa repositories.ClientInterestRepository
type ClientInterestRepository struct {
	store store[entities.ClientInterest]
}

// NewClientInterestRepository cria um novo ClientInterestRepository
func NewClientInterestRepository(h Handle) repositories.ClientInterestRepository {
	return &ClientInterestRepository{store: newStore[entities.ClientInterest](h, "client_interests")}
}

func (r *ClientInterestRepository) Create(ctx context.Context, interest *entities.ClientInterest) error {
	return r.store.create(ctx, interest)
}

func (r *ClientInterestRepository) Update(ctx context.Context, id int64, patch entities.ClientInterestPatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *ClientInterestRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *ClientInterestRepository) ListByClient(ctx context.Context, clientID int64) ([]*entities.ClientInterest, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("client_id = ?", clientID)
	})
}
