package dto

import (
	"time"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"open_id"`
	Name         *string   `json:"name,omitempty"`
	Email        *string   `json:"email,omitempty"`
	LoginMethod  *string   `json:"login_method,omitempty"`
	Role         string    `json:"role"`
	LastSignedIn time.Time `json:"last_signed_in"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		OpenID:       user.OpenID,
		Name:         user.Name,
		Email:        user.Email,
		LoginMethod:  user.LoginMethod,
		Role:         string(user.Role),
		LastSignedIn: user.LastSignedIn,
		CreatedAt:    user.CreatedAt,
	}
}

// SignInRequest são os dados do provedor OAuth repassados pelo frontend
type SignInRequest struct {
	OpenID      string  `json:"open_id" binding:"required,max=64"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	LoginMethod *string `json:"login_method"`
}
