package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid verifica se o role pertence ao domínio fechado
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin verifica se o role é administrativo
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
