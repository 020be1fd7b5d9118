package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la identidad mínima que necesita
// el gate RBAC: id, nombre, rol y el flag is_admin. Role e IsAdmin se leen
// siempre del token decodificado, nunca de headers del cliente.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Role    string `json:"role"` // ADMIN | EXECUTIVE | INTERNAL | FREELANCE
	IsAdmin bool   `json:"is_admin"`
}

// Config expiraciones y secrets de las dos familias de tokens. Secrets
// distintos a propósito: comprometer el secret de una familia no permite
// forjar la otra.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessExp     time.Duration // escala de minutos
	RefreshExp    time.Duration // escala de días
	Issuer        string
}

// GenerateAccess genera el access token de vida corta, firmado con el secret
// de access. Es stateless: nunca se persiste del lado del servidor.
func GenerateAccess(cfg Config, userID, name, role string, isAdmin bool) (string, error) {
	return generate(cfg.AccessSecret, cfg.Issuer, cfg.AccessExp, userID, name, role, isAdmin)
}

// GenerateRefresh genera el refresh token de vida larga, firmado con el secret
// de refresh. Su validez real depende además de la entrada en el Session Store.
func GenerateRefresh(cfg Config, userID, name, role string, isAdmin bool) (string, error) {
	return generate(cfg.RefreshSecret, cfg.Issuer, cfg.RefreshExp, userID, name, role, isAdmin)
}

func generate(secret, issuer string, exp time.Duration, userID, name, role string, isAdmin bool) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
		UserID:  userID,
		Name:    name,
		Role:    role,
		IsAdmin: isAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración contra el secret indicado y devuelve los
// claims. Retorna error si el token es inválido, expirado o con firma
// incorrecta; los callers deben tratar cualquier error como "no autenticado"
// sin exponer el detalle criptográfico al cliente.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, keyFunc(secret))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("jwt: claims inválidos")
	}
	return claims, nil
}

// ParseExpired decodifica el token aceptando expiración vencida (la firma sí
// se verifica). Se usa en logout, donde el refresh token solo sirve para
// extraer el id de la sesión a invalidar.
func ParseExpired(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, keyFunc(secret), jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("jwt: claims inválidos")
	}
	return claims, nil
}

func keyFunc(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}
}
