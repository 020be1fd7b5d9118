package entity

// Role rol cerrado de un usuario. Las decisiones de acceso se toman por
// pertenencia a un RoleSet, nunca comparando strings sueltos del cliente.
type Role string

// Roles válidos para User.
const (
	RoleAdmin     Role = "ADMIN"
	RoleExecutive Role = "EXECUTIVE"
	RoleInternal  Role = "INTERNAL"
	RoleFreelance Role = "FREELANCE"
)

// Valid indica si el rol pertenece al enum.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleExecutive, RoleInternal, RoleFreelance:
		return true
	}
	return false
}

// RoleSet conjunto finito de roles usado como allow-list de acceso.
type RoleSet map[Role]struct{}

// NewRoleSet construye un conjunto a partir de roles.
func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Contains indica si el rol está en el conjunto.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// Allows aplica la regla del gate: rol en el conjunto O is_admin.
func (s RoleSet) Allows(r Role, isAdmin bool) bool {
	return isAdmin || s.Contains(r)
}

// Conjuntos nombrados usados por el gate de acceso.
var (
	RoleSetAll                    = NewRoleSet(RoleAdmin, RoleExecutive, RoleInternal, RoleFreelance)
	RoleSetAdminExecutive         = NewRoleSet(RoleAdmin, RoleExecutive)
	RoleSetAdminExecutiveInternal = NewRoleSet(RoleAdmin, RoleExecutive, RoleInternal)
)
