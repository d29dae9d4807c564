package repositories

import (
	"context"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// DefaultFeaturedLimit é o tamanho padrão das vitrines de destaque
const DefaultFeaturedLimit = 6

// PropertyFilters contém filtros para listagem de imóveis.
// Valores zero significam "sem filtro"; preço e área são limites inclusivos.
type PropertyFilters struct {
	Status          entities.PropertyStatus
	TransactionType entities.TransactionType
	PropertyType    entities.PropertyType
	Neighborhood    string // busca por substring
	MinPrice        int64  // centavos, sobre sale_price
	MaxPrice        int64
	MinArea         int // m², sobre total_area
	MaxArea         int
	Bedrooms        int
	Bathrooms       int
}

// PropertyRepository define a interface para persistência de imóveis
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	Update(ctx context.Context, id int64, patch entities.PropertyPatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Property, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Property, error)
	List(ctx context.Context, filters PropertyFilters) ([]*entities.Property, error)
	ListFeatured(ctx context.Context, limit int) ([]*entities.Property, error)
}

// PropertyImageRepository define a interface para imagens de imóveis
type PropertyImageRepository interface {
	Create(ctx context.Context, image *entities.PropertyImage) error
	ListByProperty(ctx context.Context, propertyID int64) ([]*entities.PropertyImage, error)
	Delete(ctx context.Context, id int64) error
}
