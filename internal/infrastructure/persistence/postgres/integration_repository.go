package postgres

import (
	"context"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// WebhookLogRepository implementa repositories.WebhookLogRepository
type WebhookLogRepository struct {
	store store[entities.WebhookLog]
}

// NewWebhookLogRepository cria um novo WebhookLogRepository
func NewWebhookLogRepository(h Handle) repositories.WebhookLogRepository {
	return &WebhookLogRepository{store: newStore[entities.WebhookLog](h, "webhook_logs")}
}

func (r *WebhookLogRepository) Create(ctx context.Context, log *entities.WebhookLog) error {
	return r.store.create(ctx, log)
}

func (r *WebhookLogRepository) ListRecent(ctx context.Context, limit int) ([]*entities.WebhookLog, error) {
	if limit <= 0 {
		limit = repositories.DefaultWebhookLogLimit
	}
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Limit(limit)
	})
}

// MessageBufferRepository implementa repositories.MessageBufferRepository
type MessageBufferRepository struct {
	store store[entities.MessageBuffer]
}

// NewMessageBufferRepository cria um novo MessageBufferRepository
func NewMessageBufferRepository(h Handle) repositories.MessageBufferRepository {
	return &MessageBufferRepository{store: newStore[entities.MessageBuffer](h, "message_buffer")}
}

// Enqueue insere a mensagem. message_id repetido retorna ErrUniqueViolation.
func (r *MessageBufferRepository) Enqueue(ctx context.Context, message *entities.MessageBuffer) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	return r.store.create(ctx, message)
}

func (r *MessageBufferRepository) ListUnprocessed(ctx context.Context, limit int) ([]*entities.MessageBuffer, error) {
	if limit <= 0 {
		limit = repositories.DefaultUnprocessedLimit
	}
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("processed = ?", 0).Limit(limit)
	})
}

// MarkProcessed é idempotente e não falha para ids inexistentes
func (r *MessageBufferRepository) MarkProcessed(ctx context.Context, id int64) error {
	db, err := r.store.db(ctx)
	if err != nil {
		return err
	}
	err = db.Model(&entities.MessageBuffer{}).Where("id = ?", id).Update("processed", 1).Error
	return translateError("update message_buffer", err)
}

// AiContextRepository implementa repositories.AiContextRepository
type AiContextRepository struct {
	store store[entities.AiContextStatus]
}

// NewAiContextRepository cria um novo AiContextRepository
func NewAiContextRepository(h Handle) repositories.AiContextRepository {
	return &AiContextRepository{store: newStore[entities.AiContextStatus](h, "ai_context_status")}
}

func (r *AiContextRepository) Append(ctx context.Context, sessionID, phone, message string, role entities.AiRole) (*entities.AiContextStatus, error) {
	entry := &entities.AiContextStatus{
		SessionID: sessionID,
		Phone:     phone,
		Message:   message,
		Role:      role,
	}
	if err := r.store.create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Recent busca as últimas entradas em ordem decrescente e devolve em ordem cronológica
func (r *AiContextRepository) Recent(ctx context.Context, sessionID string, limit int) ([]*entities.AiContextStatus, error) {
	if limit <= 0 {
		limit = repositories.DefaultAiContextLimit
	}
	entries, err := r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("session_id = ?", sessionID).Limit(limit)
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	return entries, nil
}

// SiteSettingsRepository implementa repositories.SiteSettingsRepository
// sobre uma única linha de id fixo.
type SiteSettingsRepository struct {
	store store[entities.SiteSettings]
}

// NewSiteSettingsRepository cria um novo SiteSettingsRepository
func NewSiteSettingsRepository(h Handle) repositories.SiteSettingsRepository {
	return &SiteSettingsRepository{store: newStore[entities.SiteSettings](h, "site_settings")}
}

// Get retorna nil, nil enquanto as configurações não foram gravadas
func (r *SiteSettingsRepository) Get(ctx context.Context) (*entities.SiteSettings, error) {
	return r.store.findByID(ctx, entities.SiteSettingsID)
}

// Update cria a linha na primeira gravação e depois altera apenas os campos informados,
// em um único INSERT ... ON CONFLICT.
func (r *SiteSettingsRepository) Update(ctx context.Context, patch entities.SiteSettingsPatch) error {
	if err := entities.Validate(patch); err != nil {
		return err
	}
	db, err := r.store.db(ctx)
	if err != nil {
		return err
	}

	settings := entities.SiteSettings{ID: entities.SiteSettingsID}
	applyPatch(&settings, patch)

	updates := patchValues(patch)
	updates["updated_at"] = time.Now().UTC()

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&settings).Error
	return translateError("upsert site_settings", err)
}
