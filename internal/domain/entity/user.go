package entity

// Roles válidos para User. Conjunto cerrado: cada ruta declara explícitamente
// los roles que acepta; no hay jerarquía implícita (admin no hereda vendor).
const (
	RoleAdmin         = "admin"
	RoleTenderCreator = "tender-creator"
	RoleVendor        = "vendor"
)

// ValidRole indica si el string pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTenderCreator, RoleVendor:
		return true
	}
	return false
}

// User es la identidad que el gate de autenticación adjunta al request.
// Se carga fresca de la base en CADA request (sin cache) para que una
// desactivación aplique de inmediato. Una identidad con IsActive=false
// nunca llega al contexto del request.
//
// El set de columnas id, email, first_name, last_name, role, is_active es un
// contrato con el gate: cambiarlo cambia la forma de la identidad.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      string // admin, tender-creator, vendor
	IsActive  bool
}

// FullName nombre para mensajes y notificaciones.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
