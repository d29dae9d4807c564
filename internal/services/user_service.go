package services

import (
	"context"
	"time"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SignInInput representa os dados recebidos do provedor OAuth no login
type SignInInput struct {
	OpenID      string
	Name        *string
	Email       *string
	LoginMethod *string
}

// SignIn registra o login: cria o usuário ou atualiza seus dados e last_signed_in
func (s *UserService) SignIn(ctx context.Context, input SignInInput) (*entities.User, error) {
	email, err := valueobjects.NormalizeOptional(input.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	upsert := entities.UserUpsert{
		OpenID:       input.OpenID,
		LastSignedIn: &now,
	}
	if input.Name != nil {
		upsert.Name = entities.Some(*input.Name)
	}
	if email != nil {
		upsert.Email = entities.Some(*email)
	}
	if input.LoginMethod != nil {
		upsert.LoginMethod = entities.Some(*input.LoginMethod)
	}

	if err := s.userRepo.Upsert(ctx, upsert); err != nil {
		return nil, err
	}

	s.logger.Info("user signed in", "open_id", input.OpenID)

	// Sem banco o upsert é ignorado e a busca retorna nil
	return s.userRepo.FindByOpenID(ctx, input.OpenID)
}

// GetByOpenID busca um usuário pela identidade externa
func (s *UserService) GetByOpenID(ctx context.Context, openID string) (*entities.User, error) {
	user, err := s.userRepo.FindByOpenID(ctx, openID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}
