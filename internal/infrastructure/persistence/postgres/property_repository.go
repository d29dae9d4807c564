package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// PropertyRepository implementa repositories.PropertyRepository
type PropertyRepository struct {
	store store[entities.Property]
}

// NewPropertyRepository cria um novo PropertyRepository
func NewPropertyRepository(h Handle) repositories.PropertyRepository {
	return &PropertyRepository{store: newStore[entities.Property](h, "properties")}
}

func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	return r.store.create(ctx, property)
}

func (r *PropertyRepository) Update(ctx context.Context, id int64, patch entities.PropertyPatch) error {
	return r.store.update(ctx, id, patch)
}

// Delete não remove as imagens do imóvel
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *PropertyRepository) FindByID(ctx context.Context, id int64) (*entities.Property, error) {
	return r.store.findByID(ctx, id)
}

func (r *PropertyRepository) FindBySlug(ctx context.Context, slug string) (*entities.Property, error) {
	return r.store.first(ctx, "slug = ?", slug)
}

func (r *PropertyRepository) List(ctx context.Context, filters repositories.PropertyFilters) ([]*entities.Property, error) {
	if err := checkEnum("status", filters.Status); err != nil {
		return nil, err
	}
	if err := checkEnum("transaction_type", filters.TransactionType); err != nil {
		return nil, err
	}
	if err := checkEnum("property_type", filters.PropertyType); err != nil {
		return nil, err
	}

	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		if filters.Status != "" {
			q = q.Where("status = ?", filters.Status)
		}
		if filters.TransactionType != "" {
			q = q.Where("transaction_type = ?", filters.TransactionType)
		}
		if filters.PropertyType != "" {
			q = q.Where("property_type = ?", filters.PropertyType)
		}
		if filters.Neighborhood != "" {
			q = q.Where("neighborhood LIKE ?", "%"+filters.Neighborhood+"%")
		}
		if filters.MinPrice != 0 {
			q = q.Where("sale_price >= ?", filters.MinPrice)
		}
		if filters.MaxPrice != 0 {
			q = q.Where("sale_price <= ?", filters.MaxPrice)
		}
		if filters.MinArea != 0 {
			q = q.Where("total_area >= ?", filters.MinArea)
		}
		if filters.MaxArea != 0 {
			q = q.Where("total_area <= ?", filters.MaxArea)
		}
		if filters.Bedrooms != 0 {
			q = q.Where("bedrooms = ?", filters.Bedrooms)
		}
		if filters.Bathrooms != 0 {
			q = q.Where("bathrooms = ?", filters.Bathrooms)
		}
		return q
	})
}

func (r *PropertyRepository) ListFeatured(ctx context.Context, limit int) ([]*entities.Property, error) {
	if limit <= 0 {
		limit = repositories.DefaultFeaturedLimit
	}
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("featured = ?", true).Limit(limit)
	})
}

// PropertyImageRepository implementa repositories.PropertyImageRepository
type PropertyImageRepository struct {
	store store[entities.PropertyImage]
}

// NewPropertyImageRepository cria um novo PropertyImageRepository
func NewPropertyImageRepository(h Handle) repositories.PropertyImageRepository {
	return &PropertyImageRepository{store: newStore[entities.PropertyImage](h, "property_images")}
}

func (r *PropertyImageRepository) Create(ctx context.Context, image *entities.PropertyImage) error {
	return r.store.create(ctx, image)
}

// ListByProperty ordena por display_order decrescente
func (r *PropertyImageRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*entities.PropertyImage, error) {
	db, err := r.store.db(ctx)
	if err != nil {
		return nil, err
	}

	var images []*entities.PropertyImage
	err = db.Where("property_id = ?", propertyID).
		Order("display_order DESC").
		Order("id ASC").
		Find(&images).Error
	if err != nil {
		return nil, translateError("list property_images", err)
	}
	return images, nil
}

func (r *PropertyImageRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}
