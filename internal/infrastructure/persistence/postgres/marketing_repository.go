package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// AnalyticsEventRepository implementa repositories.AnalyticsEventRepository
type AnalyticsEventRepository struct {
	store store[entities.AnalyticsEvent]
}

// NewAnalyticsEventRepository cria um novo AnalyticsEventRepository
func NewAnalyticsEventRepository(h Handle) repositories.AnalyticsEventRepository {
	return &AnalyticsEventRepository{store: newStore[entities.AnalyticsEvent](h, "analytics_events")}
}

func (r *AnalyticsEventRepository) Create(ctx context.Context, event *entities.AnalyticsEvent) error {
	return r.store.create(ctx, event)
}

func (r *AnalyticsEventRepository) List(ctx context.Context, filters repositories.AnalyticsFilters) ([]*entities.AnalyticsEvent, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		if filters.EventType != "" {
			q = q.Where("event_type = ?", filters.EventType)
		}
		if filters.PropertyID != 0 {
			q = q.Where("property_id = ?", filters.PropertyID)
		}
		if !filters.StartDate.IsZero() {
			q = q.Where("created_at >= ?", filters.StartDate.UTC())
		}
		if !filters.EndDate.IsZero() {
			q = q.Where("created_at <= ?", filters.EndDate.UTC())
		}
		return q
	})
}

// CampaignSourceRepository implementa repositories.CampaignSourceRepository
type CampaignSourceRepository struct {
	store store[entities.CampaignSource]
}

// NewCampaignSourceRepository cria um novo CampaignSourceRepository
func NewCampaignSourceRepository(h Handle) repositories.CampaignSourceRepository {
	return &CampaignSourceRepository{store: newStore[entities.CampaignSource](h, "campaign_sources")}
}

func (r *CampaignSourceRepository) Create(ctx context.Context, campaign *entities.CampaignSource) error {
	return r.store.create(ctx, campaign)
}

func (r *CampaignSourceRepository) Update(ctx context.Context, id int64, patch entities.CampaignSourcePatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *CampaignSourceRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *CampaignSourceRepository) FindByID(ctx context.Context, id int64) (*entities.CampaignSource, error) {
	return r.store.findByID(ctx, id)
}

func (r *CampaignSourceRepository) List(ctx context.Context, activeOnly bool) ([]*entities.CampaignSource, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		if activeOnly {
			q = q.Where("active = ?", true)
		}
		return q
	})
}
