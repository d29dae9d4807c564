package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm/clause"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository.
// Upsert e FindByOpenID degradam silenciosamente sem banco; FindByID falha.
type UserRepository struct {
	store       store[entities.User]
	log         ports.Logger
	ownerOpenID string
}

// NewUserRepository cria um novo UserRepository. ownerOpenID é a identidade
// promovida a admin em todo upsert (vazio desabilita a regra).
func NewUserRepository(h Handle, log ports.Logger, ownerOpenID string) repositories.UserRepository {
	return &UserRepository{
		store:       newStore[entities.User](h, "users"),
		log:         log.With("repository", "users"),
		ownerOpenID: ownerOpenID,
	}
}

// Upsert insere ou atualiza pelo open_id. A regra do dono vem depois do Role
// informado: o dono é sempre admin, mesmo que a entrada peça outro papel.
func (r *UserRepository) Upsert(ctx context.Context, input entities.UserUpsert) error {
	if strings.TrimSpace(input.OpenID) == "" {
		return domainerrors.NewValidationError("open_id", "is required for upsert")
	}
	if input.Role != nil && !input.Role.IsValid() {
		return domainerrors.NewValidationError("role", "has unknown value \""+string(*input.Role)+"\"")
	}

	db, err := r.store.db(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrDatabaseUnavailable) {
			r.log.Warn("cannot upsert user: database not available", "open_id", input.OpenID)
			return nil
		}
		return err
	}

	now := time.Now().UTC()
	user := entities.User{OpenID: input.OpenID}
	updates := map[string]any{}

	copyNullable := func(column string, value entities.Nullable[string], dst **string) {
		if !value.Set {
			return
		}
		*dst = value.Value
		updates[column] = value.Value
	}
	copyNullable("name", input.Name, &user.Name)
	copyNullable("email", input.Email, &user.Email)
	copyNullable("login_method", input.LoginMethod, &user.LoginMethod)

	if input.LastSignedIn != nil {
		user.LastSignedIn = input.LastSignedIn.UTC()
		updates["last_signed_in"] = user.LastSignedIn
	}

	if input.Role != nil {
		user.Role = *input.Role
		updates["role"] = *input.Role
	}
	if r.isOwner(input.OpenID) {
		user.Role = entities.RoleAdmin
		updates["role"] = entities.RoleAdmin
	}

	if user.LastSignedIn.IsZero() {
		user.LastSignedIn = now
	}
	if len(updates) == 0 {
		updates["last_signed_in"] = now
	}
	updates["updated_at"] = now

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&user).Error
	if err != nil {
		r.log.Error("failed to upsert user", "open_id", input.OpenID, "error", err)
		return translateError("upsert users", err)
	}
	return nil
}

func (r *UserRepository) FindByOpenID(ctx context.Context, openID string) (*entities.User, error) {
	user, err := r.store.first(ctx, "open_id = ?", openID)
	if errors.Is(err, domainerrors.ErrDatabaseUnavailable) {
		r.log.Warn("cannot get user: database not available", "open_id", openID)
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.store.findByID(ctx, id)
}

func (r *UserRepository) isOwner(openID string) bool {
	return r.ownerOpenID != "" && openID == r.ownerOpenID
}
