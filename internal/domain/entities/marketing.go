package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AnalyticsEvent é um evento de navegação/conversão coletado pelo site
type AnalyticsEvent struct {
	ID         int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	EventType  string         `gorm:"type:varchar(50);not null;index;column:event_type" json:"event_type" validate:"required,max=50"`
	PropertyID *int64         `gorm:"index;column:property_id" json:"property_id"`
	LeadID     *int64         `gorm:"column:lead_id" json:"lead_id"`
	UserID     *int64         `gorm:"column:user_id" json:"user_id"`
	Source     *string        `gorm:"type:varchar(100);column:source" json:"source"`
	Medium     *string        `gorm:"type:varchar(100);column:medium" json:"medium"`
	Campaign   *string        `gorm:"type:varchar(255);column:campaign" json:"campaign"`
	URL        *string        `gorm:"type:varchar(500);column:url" json:"url"`
	Referrer   *string        `gorm:"type:varchar(500);column:referrer" json:"referrer"`
	UserAgent  *string        `gorm:"type:text;column:user_agent" json:"user_agent"`
	IPAddress  *string        `gorm:"type:varchar(45);column:ip_address" json:"ip_address" validate:"omitempty,ip"`
	Metadata   datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;autoCreateTime;index;column:created_at" json:"created_at"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}

// CampaignSource é uma campanha de marketing com orçamento e métricas agregadas
type CampaignSource struct {
	ID          int64               `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string              `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,max=255"`
	Source      string              `gorm:"type:varchar(100);not null;column:source" json:"source" validate:"required,max=100"`
	Medium      *string             `gorm:"type:varchar(100);column:medium" json:"medium"`
	CampaignID  *string             `gorm:"type:varchar(255);column:campaign_id" json:"campaign_id"`
	Budget      decimal.NullDecimal `gorm:"type:numeric(10,2);column:budget" json:"budget"`
	Clicks      int                 `gorm:"default:0;column:clicks" json:"clicks"`
	Impressions int                 `gorm:"default:0;column:impressions" json:"impressions"`
	Conversions int                 `gorm:"default:0;column:conversions" json:"conversions"`
	Active      *bool               `gorm:"default:true;index;column:active" json:"active"`
	StartDate   *datatypes.Date     `gorm:"column:start_date" json:"start_date"`
	EndDate     *datatypes.Date     `gorm:"column:end_date" json:"end_date"`
	Notes       *string             `gorm:"type:text;column:notes" json:"notes"`
	CreatedAt   time.Time           `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (CampaignSource) TableName() string {
	return "campaign_sources"
}

// ConversionRate retorna conversões/cliques, ou zero quando não há cliques
func (c *CampaignSource) ConversionRate() decimal.Decimal {
	if c.Clicks == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(c.Conversions)).Div(decimal.NewFromInt(int64(c.Clicks))).Round(4)
}

type CampaignSourcePatch struct {
	Name        *string              `gorm:"column:name" json:"name" validate:"omitempty,max=255"`
	Source      *string              `gorm:"column:source" json:"source" validate:"omitempty,max=100"`
	Medium      *string              `gorm:"column:medium" json:"medium"`
	CampaignID  *string              `gorm:"column:campaign_id" json:"campaign_id"`
	Budget      *decimal.NullDecimal `gorm:"column:budget" json:"budget"`
	Clicks      *int                 `gorm:"column:clicks" json:"clicks"`
	Impressions *int                 `gorm:"column:impressions" json:"impressions"`
	Conversions *int                 `gorm:"column:conversions" json:"conversions"`
	Active      *bool                `gorm:"column:active" json:"active"`
	StartDate   *datatypes.Date      `gorm:"column:start_date" json:"start_date"`
	EndDate     *datatypes.Date      `gorm:"column:end_date" json:"end_date"`
	Notes       *string              `gorm:"column:notes" json:"notes"`
}
