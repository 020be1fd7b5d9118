package entity

import "time"

// User representa una identidad del sistema (personal del organizador de eventos).
// Nunca se elimina físicamente: la baja es soft (IsActive=false, EndedAt),
// y la baja invalida de inmediato el refresh token almacenado en el Session Store.
type User struct {
	ID             string
	Name           string
	Email          string // único, comparado case-insensitive
	PasswordCipher string // ciphertext determinístico, se compara ciphertext-a-ciphertext
	PhoneCipher    string // teléfono cifrado en reposo
	Role           Role
	IsAdmin        bool // ortogonal a Role en los checks del gate
	IsActive       bool
	StartedAt      time.Time
	EndedAt        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
