package repositories

import (
	"context"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// Limites padrão das consultas de integração
const (
	DefaultWebhookLogLimit  = 100
	DefaultUnprocessedLimit = 100
	DefaultAiContextLimit   = 50
)

// WebhookLogRepository define a interface para o log de webhooks
type WebhookLogRepository interface {
	Create(ctx context.Context, log *entities.WebhookLog) error
	ListRecent(ctx context.Context, limit int) ([]*entities.WebhookLog, error)
}

// MessageBufferRepository define a interface para o buffer de mensagens.
// Não há consumidor aqui: quem drena o buffer chama ListUnprocessed e MarkProcessed.
type MessageBufferRepository interface {
	Enqueue(ctx context.Context, message *entities.MessageBuffer) error
	ListUnprocessed(ctx context.Context, limit int) ([]*entities.MessageBuffer, error)
	MarkProcessed(ctx context.Context, id int64) error
}

// AiContextRepository define a interface para a transcrição de sessões do assistente
type AiContextRepository interface {
	Append(ctx context.Context, sessionID, phone, message string, role entities.AiRole) (*entities.AiContextStatus, error)
	// Recent retorna as últimas `limit` entradas da sessão em ordem cronológica
	Recent(ctx context.Context, sessionID string, limit int) ([]*entities.AiContextStatus, error)
}

// SiteSettingsRepository define a interface para as configurações do site (linha única)
type SiteSettingsRepository interface {
	Get(ctx context.Context) (*entities.SiteSettings, error)
	Update(ctx context.Context, patch entities.SiteSettingsPatch) error
}
