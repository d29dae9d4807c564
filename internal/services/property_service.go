package services

import (
	"context"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// PropertyService contém a lógica de negócio do catálogo de imóveis
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	imageRepo    repositories.PropertyImageRepository
	logger       ports.Logger
}

// NewPropertyService cria um novo PropertyService
func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	imageRepo repositories.PropertyImageRepository,
	logger ports.Logger,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		logger:       logger,
	}
}

// Create cadastra um imóvel
func (s *PropertyService) Create(ctx context.Context, property *entities.Property) (*entities.Property, error) {
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	s.logger.Info("property created", "id", property.ID, "type", property.PropertyType)
	return property, nil
}

// Get busca um imóvel por ID
func (s *PropertyService) Get(ctx context.Context, id int64) (*entities.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}
	return property, nil
}

// GetBySlug busca um imóvel pelo slug público
func (s *PropertyService) GetBySlug(ctx context.Context, slug string) (*entities.Property, error) {
	property, err := s.propertyRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}
	return property, nil
}

// Update altera um imóvel existente e retorna a versão gravada
func (s *PropertyService) Update(ctx context.Context, id int64, patch entities.PropertyPatch) (*entities.Property, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete remove o imóvel. As imagens enviadas permanecem.
func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("property deleted", "id", id)
	return nil
}

// List lista imóveis com filtros
func (s *PropertyService) List(ctx context.Context, filters repositories.PropertyFilters) ([]*entities.Property, error) {
	return s.propertyRepo.List(ctx, filters)
}

// ListFeatured lista os imóveis em destaque da home
func (s *PropertyService) ListFeatured(ctx context.Context, limit int) ([]*entities.Property, error) {
	return s.propertyRepo.ListFeatured(ctx, limit)
}

// AddImage associa uma imagem já enviada ao storage a um imóvel existente
func (s *PropertyService) AddImage(ctx context.Context, image *entities.PropertyImage) (*entities.PropertyImage, error) {
	if _, err := s.Get(ctx, image.PropertyID); err != nil {
		return nil, err
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// ListImages lista as imagens de um imóvel
func (s *PropertyService) ListImages(ctx context.Context, propertyID int64) ([]*entities.PropertyImage, error) {
	return s.imageRepo.ListByProperty(ctx, propertyID)
}

// DeleteImage remove uma imagem
func (s *PropertyService) DeleteImage(ctx context.Context, id int64) error {
	return s.imageRepo.Delete(ctx, id)
}
