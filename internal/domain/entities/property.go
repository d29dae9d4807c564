package entities

import (
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"gorm.io/datatypes"
)

// ImageRef é um item da galeria embutida no imóvel (coluna jsonb images)
type ImageRef struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Property representa um imóvel do catálogo. Valores monetários em centavos.
type Property struct {
	ID          int64   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string  `gorm:"type:varchar(255);not null;column:title" json:"title" validate:"required,max=255"`
	Description *string `gorm:"type:text;column:description" json:"description"`
	// ReferenceCode é opcional, mas único quando presente
	ReferenceCode *string `gorm:"type:varchar(50);uniqueIndex;column:reference_code" json:"reference_code" validate:"omitempty,max=50"`

	PropertyType    PropertyType    `gorm:"type:varchar(20);not null;index;column:property_type" json:"property_type" validate:"required,oneof=casa apartamento cobertura terreno comercial rural lancamento"`
	TransactionType TransactionType `gorm:"type:varchar(20);not null;index;column:transaction_type" json:"transaction_type" validate:"required,oneof=venda locacao ambos"`

	Address      *string `gorm:"type:varchar(255);column:address" json:"address"`
	Neighborhood *string `gorm:"type:varchar(100);index;column:neighborhood" json:"neighborhood"`
	City         *string `gorm:"type:varchar(100);column:city" json:"city"`
	State        *string `gorm:"type:varchar(2);column:state" json:"state" validate:"omitempty,len=2"`
	ZipCode      *string `gorm:"type:varchar(10);column:zip_code" json:"zip_code"`
	Latitude     *string `gorm:"type:varchar(50);column:latitude" json:"latitude"`
	Longitude    *string `gorm:"type:varchar(50);column:longitude" json:"longitude"`

	SalePrice *int64 `gorm:"column:sale_price" json:"sale_price"`
	RentPrice *int64 `gorm:"column:rent_price" json:"rent_price"`
	CondoFee  *int64 `gorm:"column:condo_fee" json:"condo_fee"`
	IPTU      *int64 `gorm:"column:iptu" json:"iptu"`

	Bedrooms      *int `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms     *int `gorm:"column:bathrooms" json:"bathrooms"`
	Suites        *int `gorm:"column:suites" json:"suites"`
	ParkingSpaces *int `gorm:"column:parking_spaces" json:"parking_spaces"`
	TotalArea     *int `gorm:"column:total_area" json:"total_area"`
	BuiltArea     *int `gorm:"column:built_area" json:"built_area"`

	Features  datatypes.JSONSlice[string]   `gorm:"type:jsonb;column:features" json:"features"`
	Images    datatypes.JSONSlice[ImageRef] `gorm:"type:jsonb;column:images" json:"images"`
	MainImage *string                       `gorm:"type:varchar(500);column:main_image" json:"main_image"`

	Status    PropertyStatus `gorm:"type:varchar(20);not null;default:'disponivel';index;column:status" json:"status" validate:"omitempty,oneof=disponivel reservado vendido alugado inativo"`
	Featured  *bool          `gorm:"default:false;column:featured" json:"featured"`
	Published *bool          `gorm:"default:true;column:published" json:"published"`

	MetaTitle       *string `gorm:"type:varchar(255);column:meta_title" json:"meta_title"`
	MetaDescription *string `gorm:"type:text;column:meta_description" json:"meta_description"`
	Slug            *string `gorm:"type:varchar(255);uniqueIndex;column:slug" json:"slug"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
	CreatedBy *int64    `gorm:"column:created_by" json:"created_by"`
}

func (Property) TableName() string {
	return "properties"
}

// Location converte latitude/longitude textuais em um ponto (lon, lat).
// Retorna false quando as coordenadas estão ausentes ou inválidas.
func (p *Property) Location() (orb.Point, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return orb.Point{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(*p.Latitude), 64)
	if err != nil || lat < -90 || lat > 90 {
		return orb.Point{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(*p.Longitude), 64)
	if err != nil || lon < -180 || lon > 180 {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}

// PropertyPatch contém os campos alteráveis de um imóvel. Campos nil não são tocados.
type PropertyPatch struct {
	Title           *string                        `gorm:"column:title" json:"title" validate:"omitempty,max=255"`
	Description     *string                        `gorm:"column:description" json:"description"`
	ReferenceCode   *string                        `gorm:"column:reference_code" json:"reference_code" validate:"omitempty,max=50"`
	PropertyType    *PropertyType                  `gorm:"column:property_type" json:"property_type" validate:"omitempty,oneof=casa apartamento cobertura terreno comercial rural lancamento"`
	TransactionType *TransactionType               `gorm:"column:transaction_type" json:"transaction_type" validate:"omitempty,oneof=venda locacao ambos"`
	Address         *string                        `gorm:"column:address" json:"address"`
	Neighborhood    *string                        `gorm:"column:neighborhood" json:"neighborhood"`
	City            *string                        `gorm:"column:city" json:"city"`
	State           *string                        `gorm:"column:state" json:"state" validate:"omitempty,len=2"`
	ZipCode         *string                        `gorm:"column:zip_code" json:"zip_code"`
	Latitude        *string                        `gorm:"column:latitude" json:"latitude"`
	Longitude       *string                        `gorm:"column:longitude" json:"longitude"`
	SalePrice       *int64                         `gorm:"column:sale_price" json:"sale_price"`
	RentPrice       *int64                         `gorm:"column:rent_price" json:"rent_price"`
	CondoFee        *int64                         `gorm:"column:condo_fee" json:"condo_fee"`
	IPTU            *int64                         `gorm:"column:iptu" json:"iptu"`
	Bedrooms        *int                           `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms       *int                           `gorm:"column:bathrooms" json:"bathrooms"`
	Suites          *int                           `gorm:"column:suites" json:"suites"`
	ParkingSpaces   *int                           `gorm:"column:parking_spaces" json:"parking_spaces"`
	TotalArea       *int                           `gorm:"column:total_area" json:"total_area"`
	BuiltArea       *int                           `gorm:"column:built_area" json:"built_area"`
	Features        *datatypes.JSONSlice[string]   `gorm:"column:features" json:"features"`
	Images          *datatypes.JSONSlice[ImageRef] `gorm:"column:images" json:"images"`
	MainImage       *string                        `gorm:"column:main_image" json:"main_image"`
	Status          *PropertyStatus                `gorm:"column:status" json:"status" validate:"omitempty,oneof=disponivel reservado vendido alugado inativo"`
	Featured        *bool                          `gorm:"column:featured" json:"featured"`
	Published       *bool                          `gorm:"column:published" json:"published"`
	MetaTitle       *string                        `gorm:"column:meta_title" json:"meta_title"`
	MetaDescription *string                        `gorm:"column:meta_description" json:"meta_description"`
	Slug            *string                        `gorm:"column:slug" json:"slug"`
}

// PropertyImage é uma imagem enviada para o storage e associada a um imóvel.
// PropertyID não é chave estrangeira: apagar o imóvel não apaga as imagens.
type PropertyImage struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PropertyID   int64     `gorm:"not null;index;column:property_id" json:"property_id" validate:"required"`
	ImageURL     string    `gorm:"type:varchar(500);not null;column:image_url" json:"image_url" validate:"required,max=500"`
	ImageKey     string    `gorm:"type:varchar(500);not null;column:image_key" json:"image_key" validate:"required,max=500"`
	IsPrimary    int       `gorm:"not null;default:0;column:is_primary" json:"is_primary" validate:"oneof=0 1"`
	DisplayOrder int       `gorm:"not null;default:0;column:display_order" json:"display_order"`
	Caption      *string   `gorm:"type:varchar(255);column:caption" json:"caption"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}
