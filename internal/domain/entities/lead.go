package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Lead é um cliente em potencial acompanhado pelo funil de vendas
type Lead struct {
	ID       int64   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,max=255"`
	Email    *string `gorm:"type:varchar(320);column:email" json:"email" validate:"omitempty,email"`
	Phone    *string `gorm:"type:varchar(20);column:phone" json:"phone" validate:"omitempty,max=20"`
	Whatsapp *string `gorm:"type:varchar(20);column:whatsapp" json:"whatsapp" validate:"omitempty,max=20"`

	Source        LeadSource    `gorm:"type:varchar(20);default:'site';index;column:source" json:"source" validate:"omitempty,oneof=site whatsapp instagram facebook indicacao portal_zap portal_vivareal portal_olx google outro"`
	Stage         LeadStage     `gorm:"type:varchar(20);not null;default:'novo';index;column:stage" json:"stage" validate:"omitempty,oneof=novo contato_inicial qualificado visita_agendada visita_realizada proposta negociacao fechado_ganho fechado_perdido sem_interesse"`
	ClientType    ClientType    `gorm:"type:varchar(20);not null;default:'comprador';column:client_type" json:"client_type" validate:"omitempty,oneof=comprador locatario proprietario"`
	Qualification Qualification `gorm:"type:varchar(20);not null;default:'nao_qualificado';column:qualification" json:"qualification" validate:"omitempty,oneof=quente morno frio nao_qualificado"`
	BuyerProfile  *BuyerProfile `gorm:"type:varchar(20);column:buyer_profile" json:"buyer_profile" validate:"omitempty,oneof=investidor primeira_casa upgrade curioso indeciso"`
	UrgencyLevel  Level         `gorm:"type:varchar(20);default:'media';column:urgency_level" json:"urgency_level" validate:"omitempty,oneof=baixa media alta urgente"`

	InterestedPropertyID   *int64                      `gorm:"column:interested_property_id" json:"interested_property_id"`
	TransactionInterest    TransactionType             `gorm:"type:varchar(20);default:'venda';column:transaction_interest" json:"transaction_interest" validate:"omitempty,oneof=venda locacao ambos"`
	BudgetMin              *int64                      `gorm:"column:budget_min" json:"budget_min"`
	BudgetMax              *int64                      `gorm:"column:budget_max" json:"budget_max"`
	PreferredNeighborhoods datatypes.JSONSlice[string] `gorm:"type:jsonb;column:preferred_neighborhoods" json:"preferred_neighborhoods"`
	PreferredPropertyTypes datatypes.JSONSlice[string] `gorm:"type:jsonb;column:preferred_property_types" json:"preferred_property_types"`

	Notes *string                     `gorm:"type:text;column:notes" json:"notes"`
	Tags  datatypes.JSONSlice[string] `gorm:"type:jsonb;column:tags" json:"tags"`

	AssignedTo *int64 `gorm:"index;column:assigned_to" json:"assigned_to"`
	Score      int    `gorm:"default:0;column:score" json:"score"`
	Priority   Level  `gorm:"type:varchar(20);default:'media';column:priority" json:"priority" validate:"omitempty,oneof=baixa media alta urgente"`

	CreatedAt       time.Time  `gorm:"not null;autoCreateTime;index;column:created_at" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
	LastContactedAt *time.Time `gorm:"column:last_contacted_at" json:"last_contacted_at"`
	ConvertedAt     *time.Time `gorm:"column:converted_at" json:"converted_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// LeadPatch contém os campos alteráveis de um lead. Campos nil não são tocados.
type LeadPatch struct {
	Name                   *string                      `gorm:"column:name" json:"name" validate:"omitempty,max=255"`
	Email                  *string                      `gorm:"column:email" json:"email" validate:"omitempty,email"`
	Phone                  *string                      `gorm:"column:phone" json:"phone" validate:"omitempty,max=20"`
	Whatsapp               *string                      `gorm:"column:whatsapp" json:"whatsapp" validate:"omitempty,max=20"`
	Source                 *LeadSource                  `gorm:"column:source" json:"source" validate:"omitempty,oneof=site whatsapp instagram facebook indicacao portal_zap portal_vivareal portal_olx google outro"`
	Stage                  *LeadStage                   `gorm:"column:stage" json:"stage" validate:"omitempty,oneof=novo contato_inicial qualificado visita_agendada visita_realizada proposta negociacao fechado_ganho fechado_perdido sem_interesse"`
	ClientType             *ClientType                  `gorm:"column:client_type" json:"client_type" validate:"omitempty,oneof=comprador locatario proprietario"`
	Qualification          *Qualification               `gorm:"column:qualification" json:"qualification" validate:"omitempty,oneof=quente morno frio nao_qualificado"`
	BuyerProfile           *BuyerProfile                `gorm:"column:buyer_profile" json:"buyer_profile" validate:"omitempty,oneof=investidor primeira_casa upgrade curioso indeciso"`
	UrgencyLevel           *Level                       `gorm:"column:urgency_level" json:"urgency_level" validate:"omitempty,oneof=baixa media alta urgente"`
	InterestedPropertyID   *int64                       `gorm:"column:interested_property_id" json:"interested_property_id"`
	TransactionInterest    *TransactionType             `gorm:"column:transaction_interest" json:"transaction_interest" validate:"omitempty,oneof=venda locacao ambos"`
	BudgetMin              *int64                       `gorm:"column:budget_min" json:"budget_min"`
	BudgetMax              *int64                       `gorm:"column:budget_max" json:"budget_max"`
	PreferredNeighborhoods *datatypes.JSONSlice[string] `gorm:"column:preferred_neighborhoods" json:"preferred_neighborhoods"`
	PreferredPropertyTypes *datatypes.JSONSlice[string] `gorm:"column:preferred_property_types" json:"preferred_property_types"`
	Notes                  *string                      `gorm:"column:notes" json:"notes"`
	Tags                   *datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	AssignedTo             *int64                       `gorm:"column:assigned_to" json:"assigned_to"`
	Score                  *int                         `gorm:"column:score" json:"score"`
	Priority               *Level                       `gorm:"column:priority" json:"priority" validate:"omitempty,oneof=baixa media alta urgente"`
	LastContactedAt        *time.Time                   `gorm:"column:last_contacted_at" json:"last_contacted_at"`
	ConvertedAt            *time.Time                   `gorm:"column:converted_at" json:"converted_at"`
}

// Interaction é um evento do histórico de um lead. Só é inserido, nunca alterado.
type Interaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	LeadID      int64           `gorm:"not null;index;column:lead_id" json:"lead_id" validate:"required"`
	UserID      *int64          `gorm:"index;column:user_id" json:"user_id"`
	Type        InteractionType `gorm:"type:varchar(20);not null;column:type" json:"type" validate:"required,oneof=ligacao whatsapp email visita reuniao proposta nota status_change"`
	Subject     *string         `gorm:"type:varchar(255);column:subject" json:"subject" validate:"omitempty,max=255"`
	Description *string         `gorm:"type:text;column:description" json:"description"`
	Metadata    datatypes.JSON  `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}

// ClientInterest registra o perfil de busca de um cliente
type ClientInterest struct {
	ID                     int64                       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClientID               int64                       `gorm:"not null;index;column:client_id" json:"client_id" validate:"required"`
	PropertyType           *string                     `gorm:"type:varchar(100);column:property_type" json:"property_type" validate:"omitempty,max=100"`
	InterestType           *InterestType               `gorm:"type:varchar(20);column:interest_type" json:"interest_type" validate:"omitempty,oneof=venda locacao ambos"`
	BudgetMin              *int64                      `gorm:"column:budget_min" json:"budget_min"`
	BudgetMax              *int64                      `gorm:"column:budget_max" json:"budget_max"`
	PreferredNeighborhoods datatypes.JSONSlice[string] `gorm:"type:jsonb;column:preferred_neighborhoods" json:"preferred_neighborhoods"`
	Notes                  *string                     `gorm:"type:text;column:notes" json:"notes"`
	CreatedAt              time.Time                   `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt              time.Time                   `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (ClientInterest) TableName() string {
	return "client_interests"
}

type ClientInterestPatch struct {
	PropertyType           *string                      `gorm:"column:property_type" json:"property_type" validate:"omitempty,max=100"`
	InterestType           *InterestType                `gorm:"column:interest_type" json:"interest_type" validate:"omitempty,oneof=venda locacao ambos"`
	BudgetMin              *int64                       `gorm:"column:budget_min" json:"budget_min"`
	BudgetMax              *int64                       `gorm:"column:budget_max" json:"budget_max"`
	PreferredNeighborhoods *datatypes.JSONSlice[string] `gorm:"column:preferred_neighborhoods" json:"preferred_neighborhoods"`
	Notes                  *string                      `gorm:"column:notes" json:"notes"`
}
