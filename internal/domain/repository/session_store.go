package repository

import (
	"context"
	"time"
)

// SessionStore puerto del key-value store de sesiones (Redis). Única pieza de
// estado mutable compartida entre requests; se accede por operaciones
// atómicas por llave, sin locking explícito. Get devuelve domain.ErrNotFound
// si la llave no existe o ya expiró su TTL.
type SessionStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}
