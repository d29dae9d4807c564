package repositories

import (
	"context"
	"time"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// AnalyticsFilters contém filtros para eventos de analytics.
// StartDate/EndDate são limites inclusivos sobre created_at.
type AnalyticsFilters struct {
	EventType  string
	PropertyID int64
	StartDate  time.Time
	EndDate    time.Time
}

// AnalyticsEventRepository define a interface para eventos de analytics
type AnalyticsEventRepository interface {
	Create(ctx context.Context, event *entities.AnalyticsEvent) error
	List(ctx context.Context, filters AnalyticsFilters) ([]*entities.AnalyticsEvent, error)
}

// CampaignSourceRepository define a interface para campanhas
type CampaignSourceRepository interface {
	Create(ctx context.Context, campaign *entities.CampaignSource) error
	Update(ctx context.Context, id int64, patch entities.CampaignSourcePatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.CampaignSource, error)
	List(ctx context.Context, activeOnly bool) ([]*entities.CampaignSource, error)
}
