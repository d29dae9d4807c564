package entities

import (
	"time"
)

// User representa um usuário autenticado via provedor externo (OAuth).
// OpenID é a identidade externa e é única.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OpenID       string    `gorm:"type:varchar(64);not null;uniqueIndex;column:open_id" json:"open_id"`
	Name         *string   `gorm:"type:text;column:name" json:"name"`
	Email        *string   `gorm:"type:varchar(320);column:email" json:"email"`
	LoginMethod  *string   `gorm:"type:varchar(64);column:login_method" json:"login_method"`
	Role         Role      `gorm:"type:varchar(16);not null;default:'user';column:role" json:"role"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
	LastSignedIn time.Time `gorm:"not null;column:last_signed_in" json:"last_signed_in"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// Nullable distingue "não informado" (Set=false) de "informado como nulo"
// (Set=true, Value=nil) em entradas parciais.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Some cria um Nullable informado com valor
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null cria um Nullable informado explicitamente como nulo
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UserUpsert é a entrada do upsert de login. OpenID é obrigatório;
// os demais campos só são gravados quando informados.
type UserUpsert struct {
	OpenID       string
	Name         Nullable[string]
	Email        Nullable[string]
	LoginMethod  Nullable[string]
	Role         *Role
	LastSignedIn *time.Time
}
