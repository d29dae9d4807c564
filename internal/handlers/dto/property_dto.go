package dto

import (
	"github.com/paulmach/orb/geojson"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// PropertyListQuery são os filtros aceitos em GET /properties
type PropertyListQuery struct {
	Status          string `form:"status"`
	TransactionType string `form:"transaction_type"`
	PropertyType    string `form:"property_type"`
	Neighborhood    string `form:"neighborhood"`
	MinPrice        int64  `form:"min_price" binding:"gte=0"`
	MaxPrice        int64  `form:"max_price" binding:"gte=0"`
	MinArea         int    `form:"min_area" binding:"gte=0"`
	MaxArea         int    `form:"max_area" binding:"gte=0"`
	Bedrooms        int    `form:"bedrooms" binding:"gte=0"`
	Bathrooms       int    `form:"bathrooms" binding:"gte=0"`
}

// Filters converte a query para os filtros do repositório
func (q PropertyListQuery) Filters() repositories.PropertyFilters {
	return repositories.PropertyFilters{
		Status:          entities.PropertyStatus(q.Status),
		TransactionType: entities.TransactionType(q.TransactionType),
		PropertyType:    entities.PropertyType(q.PropertyType),
		Neighborhood:    q.Neighborhood,
		MinPrice:        q.MinPrice,
		MaxPrice:        q.MaxPrice,
		MinArea:         q.MinArea,
		MaxArea:         q.MaxArea,
		Bedrooms:        q.Bedrooms,
		Bathrooms:       q.Bathrooms,
	}
}

// LimitQuery é o parâmetro ?limit= das vitrines
type LimitQuery struct {
	Limit int `form:"limit" binding:"gte=0,lte=100"`
}

// CreatePropertyImageRequest associa ao imóvel uma imagem já enviada ao storage
type CreatePropertyImageRequest struct {
	ImageURL     string  `json:"image_url" binding:"required,max=500"`
	ImageKey     string  `json:"image_key" binding:"required,max=500"`
	IsPrimary    bool    `json:"is_primary"`
	DisplayOrder int     `json:"display_order"`
	Caption      *string `json:"caption"`
}

// ToEntity converte a requisição na entidade do imóvel informado
func (r CreatePropertyImageRequest) ToEntity(propertyID int64) *entities.PropertyImage {
	image := &entities.PropertyImage{
		PropertyID:   propertyID,
		ImageURL:     r.ImageURL,
		ImageKey:     r.ImageKey,
		DisplayOrder: r.DisplayOrder,
		Caption:      r.Caption,
	}
	if r.IsPrimary {
		image.IsPrimary = 1
	}
	return image
}

// ToFeatureCollection monta o GeoJSON do mapa de imóveis.
// Imóveis sem coordenadas válidas ficam de fora.
func ToFeatureCollection(properties []*entities.Property) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range properties {
		point, ok := p.Location()
		if !ok {
			continue
		}

		f := geojson.NewFeature(point)
		f.ID = p.ID
		f.Properties["title"] = p.Title
		f.Properties["property_type"] = p.PropertyType
		f.Properties["transaction_type"] = p.TransactionType
		f.Properties["status"] = p.Status
		if p.Slug != nil {
			f.Properties["slug"] = *p.Slug
		}
		if p.SalePrice != nil {
			f.Properties["sale_price"] = *p.SalePrice
		}
		if p.RentPrice != nil {
			f.Properties["rent_price"] = *p.RentPrice
		}
		if p.MainImage != nil {
			f.Properties["main_image"] = *p.MainImage
		}
		fc.Append(f)
	}
	return fc
}
