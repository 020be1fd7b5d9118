package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AckRequest renovación del access token; el refresh token viaja en cookie.
type AckRequest struct {
	ID string `json:"id"`
}

// CheckTokenRequest verificación de un token de registro (no lo consume).
type CheckTokenRequest struct {
	Token string `json:"token"`
}

// RegisterRequest alta de una identidad; el token de registro (ya cifrado)
// viaja como query param.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// GenTokenResponse token de registro recién generado: valor opaco y su forma
// cifrada (la que se incluye en el link de invitación).
type GenTokenResponse struct {
	Token     string `json:"token"`
	Encrypted string `json:"encrypted"`
	Role      string `json:"role"`
	Duration  int    `json:"duration"` // segundos
}

// CheckTokenResponse validez de un token de registro.
type CheckTokenResponse struct {
	Valid bool `json:"valid"`
}
