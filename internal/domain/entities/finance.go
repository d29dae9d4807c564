package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Owner é o proprietário de imóveis da carteira
type Owner struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,max=255"`
	CpfCnpj     *string   `gorm:"type:varchar(20);column:cpf_cnpj" json:"cpf_cnpj" validate:"omitempty,max=20"`
	Email       *string   `gorm:"type:varchar(320);column:email" json:"email" validate:"omitempty,email"`
	Phone       *string   `gorm:"type:varchar(20);column:phone" json:"phone"`
	Whatsapp    *string   `gorm:"type:varchar(20);column:whatsapp" json:"whatsapp"`
	Address     *string   `gorm:"type:text;column:address" json:"address"`
	City        *string   `gorm:"type:varchar(100);column:city" json:"city"`
	State       *string   `gorm:"type:varchar(2);column:state" json:"state" validate:"omitempty,len=2"`
	ZipCode     *string   `gorm:"type:varchar(10);column:zip_code" json:"zip_code"`
	BankName    *string   `gorm:"type:varchar(100);column:bank_name" json:"bank_name"`
	BankAgency  *string   `gorm:"type:varchar(20);column:bank_agency" json:"bank_agency"`
	BankAccount *string   `gorm:"type:varchar(30);column:bank_account" json:"bank_account"`
	PixKey      *string   `gorm:"type:varchar(255);column:pix_key" json:"pix_key"`
	Notes       *string   `gorm:"type:text;column:notes" json:"notes"`
	Active      *bool     `gorm:"default:true;index;column:active" json:"active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Owner) TableName() string {
	return "owners"
}

type OwnerPatch struct {
	Name        *string `gorm:"column:name" json:"name" validate:"omitempty,max=255"`
	CpfCnpj     *string `gorm:"column:cpf_cnpj" json:"cpf_cnpj" validate:"omitempty,max=20"`
	Email       *string `gorm:"column:email" json:"email" validate:"omitempty,email"`
	Phone       *string `gorm:"column:phone" json:"phone"`
	Whatsapp    *string `gorm:"column:whatsapp" json:"whatsapp"`
	Address     *string `gorm:"column:address" json:"address"`
	City        *string `gorm:"column:city" json:"city"`
	State       *string `gorm:"column:state" json:"state" validate:"omitempty,len=2"`
	ZipCode     *string `gorm:"column:zip_code" json:"zip_code"`
	BankName    *string `gorm:"column:bank_name" json:"bank_name"`
	BankAgency  *string `gorm:"column:bank_agency" json:"bank_agency"`
	BankAccount *string `gorm:"column:bank_account" json:"bank_account"`
	PixKey      *string `gorm:"column:pix_key" json:"pix_key"`
	Notes       *string `gorm:"column:notes" json:"notes"`
	Active      *bool   `gorm:"column:active" json:"active"`
}

// Transaction é um lançamento financeiro (receita ou despesa).
// Amount usa decimal de ponto fixo, nunca float.
type Transaction struct {
	ID            int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Type          string          `gorm:"type:varchar(50);not null;index;column:type" json:"type" validate:"required,max=50"`
	Category      *string         `gorm:"type:varchar(100);column:category" json:"category"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null;column:amount" json:"amount"`
	Currency      string          `gorm:"type:varchar(3);default:'BRL';column:currency" json:"currency" validate:"omitempty,len=3"`
	PropertyID    *int64          `gorm:"index;column:property_id" json:"property_id"`
	LeadID        *int64          `gorm:"column:lead_id" json:"lead_id"`
	OwnerID       *int64          `gorm:"index;column:owner_id" json:"owner_id"`
	Description   string          `gorm:"type:text;not null;column:description" json:"description" validate:"required"`
	Notes         *string         `gorm:"type:text;column:notes" json:"notes"`
	Status        string          `gorm:"type:varchar(50);default:'pending';index;column:status" json:"status" validate:"omitempty,max=50"`
	PaymentMethod *string         `gorm:"type:varchar(50);column:payment_method" json:"payment_method"`
	PaymentDate   *datatypes.Date `gorm:"column:payment_date" json:"payment_date"`
	DueDate       *datatypes.Date `gorm:"column:due_date" json:"due_date"`
	ReceiptURL    *string         `gorm:"type:varchar(500);column:receipt_url" json:"receipt_url"`
	InvoiceNumber *string         `gorm:"type:varchar(100);column:invoice_number" json:"invoice_number"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type TransactionPatch struct {
	Type          *string          `gorm:"column:type" json:"type" validate:"omitempty,max=50"`
	Category      *string          `gorm:"column:category" json:"category"`
	Amount        *decimal.Decimal `gorm:"column:amount" json:"amount"`
	Currency      *string          `gorm:"column:currency" json:"currency" validate:"omitempty,len=3"`
	PropertyID    *int64           `gorm:"column:property_id" json:"property_id"`
	LeadID        *int64           `gorm:"column:lead_id" json:"lead_id"`
	OwnerID       *int64           `gorm:"column:owner_id" json:"owner_id"`
	Description   *string          `gorm:"column:description" json:"description"`
	Notes         *string          `gorm:"column:notes" json:"notes"`
	Status        *string          `gorm:"column:status" json:"status" validate:"omitempty,max=50"`
	PaymentMethod *string          `gorm:"column:payment_method" json:"payment_method"`
	PaymentDate   *datatypes.Date  `gorm:"column:payment_date" json:"payment_date"`
	DueDate       *datatypes.Date  `gorm:"column:due_date" json:"due_date"`
	ReceiptURL    *string          `gorm:"column:receipt_url" json:"receipt_url"`
	InvoiceNumber *string          `gorm:"column:invoice_number" json:"invoice_number"`
}

// Commission registra a comissão de uma venda. As referências a imóvel,
// lead, proprietário e lançamento não são verificadas nesta camada.
type Commission struct {
	ID                    int64               `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PropertyID            int64               `gorm:"not null;index;column:property_id" json:"property_id" validate:"required"`
	LeadID                int64               `gorm:"not null;index;column:lead_id" json:"lead_id" validate:"required"`
	OwnerID               *int64              `gorm:"column:owner_id" json:"owner_id"`
	SalePrice             decimal.Decimal     `gorm:"type:numeric(12,2);not null;column:sale_price" json:"sale_price"`
	CommissionRate        decimal.Decimal     `gorm:"type:numeric(5,2);not null;column:commission_rate" json:"commission_rate"`
	CommissionAmount      decimal.Decimal     `gorm:"type:numeric(12,2);not null;column:commission_amount" json:"commission_amount"`
	SplitWithAgent        bool                `gorm:"default:false;column:split_with_agent" json:"split_with_agent"`
	AgentName             *string             `gorm:"type:varchar(255);column:agent_name" json:"agent_name"`
	AgentCommissionAmount decimal.NullDecimal `gorm:"type:numeric(12,2);column:agent_commission_amount" json:"agent_commission_amount"`
	Status                string              `gorm:"type:varchar(50);default:'pending';index;column:status" json:"status" validate:"omitempty,max=50"`
	PaymentDate           *datatypes.Date     `gorm:"column:payment_date" json:"payment_date"`
	Notes                 *string             `gorm:"type:text;column:notes" json:"notes"`
	TransactionID         *int64              `gorm:"column:transaction_id" json:"transaction_id"`
	CreatedAt             time.Time           `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt             time.Time           `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Commission) TableName() string {
	return "commissions"
}

// ComputeAmount calcula SalePrice * CommissionRate / 100 arredondado em centavos
func (c *Commission) ComputeAmount() decimal.Decimal {
	return c.SalePrice.Mul(c.CommissionRate).Div(decimal.NewFromInt(100)).Round(2)
}

type CommissionPatch struct {
	OwnerID               *int64               `gorm:"column:owner_id" json:"owner_id"`
	SalePrice             *decimal.Decimal     `gorm:"column:sale_price" json:"sale_price"`
	CommissionRate        *decimal.Decimal     `gorm:"column:commission_rate" json:"commission_rate"`
	CommissionAmount      *decimal.Decimal     `gorm:"column:commission_amount" json:"commission_amount"`
	SplitWithAgent        *bool                `gorm:"column:split_with_agent" json:"split_with_agent"`
	AgentName             *string              `gorm:"column:agent_name" json:"agent_name"`
	AgentCommissionAmount *decimal.NullDecimal `gorm:"column:agent_commission_amount" json:"agent_commission_amount"`
	Status                *string              `gorm:"column:status" json:"status" validate:"omitempty,max=50"`
	PaymentDate           *datatypes.Date      `gorm:"column:payment_date" json:"payment_date"`
	Notes                 *string              `gorm:"column:notes" json:"notes"`
	TransactionID         *int64               `gorm:"column:transaction_id" json:"transaction_id"`
}
