package services

import (
	"context"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/domain/valueobjects"
)

// SettingsService gerencia as configurações públicas do site
type SettingsService struct {
	settingsRepo repositories.SiteSettingsRepository
	logger       ports.Logger
}

// NewSettingsService cria um novo SettingsService
func NewSettingsService(settingsRepo repositories.SiteSettingsRepository, logger ports.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get retorna as configurações; antes da primeira gravação retorna uma linha vazia
func (s *SettingsService) Get(ctx context.Context) (*entities.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &entities.SiteSettings{ID: entities.SiteSettingsID}, nil
	}
	return settings, nil
}

// Update grava os campos informados e retorna as configurações resultantes
func (s *SettingsService) Update(ctx context.Context, patch entities.SiteSettingsPatch) (*entities.SiteSettings, error) {
	if patch.Email != nil {
		email, err := valueobjects.NormalizeOptional(patch.Email)
		if err != nil {
			return nil, err
		}
		patch.Email = email
	}
	if err := s.settingsRepo.Update(ctx, patch); err != nil {
		return nil, err
	}
	s.logger.Info("site settings updated")
	return s.Get(ctx)
}
