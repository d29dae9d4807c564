package repositories

import (
	"context"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
//
// Ao contrário dos demais repositórios, Upsert e FindByOpenID não falham quando
// o banco não está disponível: registram um aviso e retornam sem efeito.
type UserRepository interface {
	Upsert(ctx context.Context, input entities.UserUpsert) error
	FindByOpenID(ctx context.Context, openID string) (*entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
}
