package repositories

import (
	"context"
	"time"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// OwnerRepository define a interface para proprietários
type OwnerRepository interface {
	Create(ctx context.Context, owner *entities.Owner) error
	Update(ctx context.Context, id int64, patch entities.OwnerPatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Owner, error)
	List(ctx context.Context, activeOnly bool) ([]*entities.Owner, error)
}

// TransactionFilters contém filtros para lançamentos financeiros.
// DueFrom/DueTo são limites inclusivos sobre due_date.
type TransactionFilters struct {
	Type       string
	Status     string
	PropertyID int64
	OwnerID    int64
	DueFrom    time.Time
	DueTo      time.Time
}

// TransactionRepository define a interface para lançamentos financeiros
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	Update(ctx context.Context, id int64, patch entities.TransactionPatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Transaction, error)
	List(ctx context.Context, filters TransactionFilters) ([]*entities.Transaction, error)
}

// CommissionFilters contém filtros para comissões
type CommissionFilters struct {
	Status     string
	PropertyID int64
	LeadID     int64
}

// CommissionRepository define a interface para comissões
type CommissionRepository interface {
	Create(ctx context.Context, commission *entities.Commission) error
	Update(ctx context.Context, id int64, patch entities.CommissionPatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Commission, error)
	List(ctx context.Context, filters CommissionFilters) ([]*entities.Commission, error)
}
