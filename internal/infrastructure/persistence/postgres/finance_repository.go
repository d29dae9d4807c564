package postgres

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// OwnerRepository implementa repositories.OwnerRepository
type OwnerRepository struct {
	store store[entities.Owner]
}

// NewOwnerRepository cria um novo OwnerRepository
func NewOwnerRepository(h Handle) repositories.OwnerRepository {
	return &OwnerRepository{store: newStore[entities.Owner](h, "owners")}
}

func (r *OwnerRepository) Create(ctx context.Context, owner *entities.Owner) error {
	return r.store.create(ctx, owner)
}

func (r *OwnerRepository) Update(ctx context.Context, id int64, patch entities.OwnerPatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *OwnerRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *OwnerRepository) FindByID(ctx context.Context, id int64) (*entities.Owner, error) {
	return r.store.findByID(ctx, id)
}

func (r *OwnerRepository) List(ctx context.Context, activeOnly bool) ([]*entities.Owner, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		if activeOnly {
			q = q.Where("active = ?", true)
		}
		return q
	})
}

// TransactionRepository implementa repositories.TransactionRepository
type TransactionRepository struct {
	store store[entities.Transaction]
}

// NewTransactionRepository cria um novo TransactionRepository
func NewTransactionRepository(h Handle) repositories.TransactionRepository {
	return &TransactionRepository{store: newStore[entities.Transaction](h, "transactions")}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	return r.store.create(ctx, tx)
}

func (r *TransactionRepository) Update(ctx context.Context, id int64, patch entities.TransactionPatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*entities.Transaction, error) {
	return r.store.findByID(ctx, id)
}

func (r *TransactionRepository) List(ctx context.Context, filters repositories.TransactionFilters) ([]*entities.Transaction, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		if filters.Type != "" {
			q = q.Where("type = ?", filters.Type)
		}
		if filters.Status != "" {
			q = q.Where("status = ?", filters.Status)
		}
		if filters.PropertyID != 0 {
			q = q.Where("property_id = ?", filters.PropertyID)
		}
		if filters.OwnerID != 0 {
			q = q.Where("owner_id = ?", filters.OwnerID)
		}
		if !filters.DueFrom.IsZero() {
			q = q.Where("due_date >= ?", datatypes.Date(filters.DueFrom))
		}
		if !filters.DueTo.IsZero() {
			q = q.Where("due_date <= ?", datatypes.Date(filters.DueTo))
		}
		return q
	})
}

// CommissionRepository implementa repositories.CommissionRepository
type CommissionRepository struct {
	store store[entities.Commission]
}

// NewCommissionRepository cria um novo CommissionRepository
func NewCommissionRepository(h Handle) repositories.CommissionRepository {
	return &CommissionRepository{store: newStore[entities.Commission](h, "commissions")}
}

// Create calcula commission_amount quando não informado
func (r *CommissionRepository) Create(ctx context.Context, commission *entities.Commission) error {
	if commission.CommissionAmount.IsZero() {
		commission.CommissionAmount = commission.ComputeAmount()
	}
	return r.store.create(ctx, commission)
}

func (r *CommissionRepository) Update(ctx context.Context, id int64, patch entities.CommissionPatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *CommissionRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *CommissionRepository) FindByID(ctx context.Context, id int64) (*entities.Commission, error) {
	return r.store.findByID(ctx, id)
}

func (r *CommissionRepository) List(ctx context.Context, filters repositories.CommissionFilters) ([]*entities.Commission, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		if filters.Status != "" {
			q = q.Where("status = ?", filters.Status)
		}
		if filters.PropertyID != 0 {
			q = q.Where("property_id = ?", filters.PropertyID)
		}
		if filters.LeadID != 0 {
			q = q.Where("lead_id = ?", filters.LeadID)
		}
		return q
	})
}
