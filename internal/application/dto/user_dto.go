package dto

import "time"

// UserResponse identidad expuesta al cliente. Phone viaja descifrado solo en
// las rutas de lectura autorizadas; la contraseña nunca sale del dominio.
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	IsAdmin   bool       `json:"is_admin"`
	IsActive  bool       `json:"is_active"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// UpdateUserRequest edición parcial de una identidad (campos opcionales).
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Role  *string `json:"role"`
}
