package entities

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookLog guarda chamadas recebidas de integrações (WhatsApp, n8n, portais)
type WebhookLog struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Source       string         `gorm:"type:varchar(50);not null;column:source" json:"source" validate:"required,max=50"`
	Event        string         `gorm:"type:varchar(100);not null;column:event" json:"event" validate:"required,max=100"`
	Payload      datatypes.JSON `gorm:"type:jsonb;column:payload" json:"payload,omitempty"`
	Response     datatypes.JSON `gorm:"type:jsonb;column:response" json:"response,omitempty"`
	Status       WebhookStatus  `gorm:"type:varchar(10);not null;column:status" json:"status" validate:"required,oneof=success error pending"`
	ErrorMessage *string        `gorm:"type:text;column:error_message" json:"error_message"`
	CreatedAt    time.Time      `gorm:"not null;autoCreateTime;index;column:created_at" json:"created_at"`
}

func (WebhookLog) TableName() string {
	return "webhook_logs"
}

// MessageBuffer é uma mensagem de WhatsApp aguardando processamento.
// MessageID é o identificador externo e é único.
type MessageBuffer struct {
	ID        int64       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Phone     string      `gorm:"type:varchar(20);not null;index;column:phone" json:"phone" validate:"required,max=20"`
	MessageID string      `gorm:"type:varchar(255);not null;uniqueIndex;column:message_id" json:"message_id" validate:"required,max=255"`
	Content   *string     `gorm:"type:text;column:content" json:"content"`
	Type      MessageType `gorm:"type:varchar(10);not null;column:type" json:"type" validate:"required,oneof=incoming outgoing"`
	Timestamp time.Time   `gorm:"not null;column:timestamp" json:"timestamp"`
	// Processed é 0 ou 1
	Processed int       `gorm:"not null;default:0;index;column:processed" json:"processed" validate:"oneof=0 1"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (MessageBuffer) TableName() string {
	return "message_buffer"
}

// IsProcessed indica se a mensagem já foi consumida
func (m *MessageBuffer) IsProcessed() bool {
	return m.Processed == 1
}

// AiContextStatus é uma entrada da transcrição de uma sessão com o assistente
type AiContextStatus struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SessionID string    `gorm:"type:varchar(255);not null;index;column:session_id" json:"session_id" validate:"required,max=255"`
	Phone     string    `gorm:"type:varchar(20);not null;column:phone" json:"phone" validate:"required,max=20"`
	Message   string    `gorm:"type:text;not null;column:message" json:"message" validate:"required"`
	Role      AiRole    `gorm:"type:varchar(10);not null;column:role" json:"role" validate:"required,oneof=user assistant system"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (AiContextStatus) TableName() string {
	return "ai_context_status"
}
