package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore almacén de sesiones y tokens de registro sobre Redis.
// La expiración es responsabilidad del TTL de cada clave.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore construye el adaptador.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Set guarda el valor con el TTL indicado. Sobrescribe la clave si ya existe,
// lo que garantiza una única sesión activa por usuario.
func (s *SessionStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Get devuelve el valor de la clave o domain.ErrNotFound si no existe
// (sesión cerrada o TTL vencido).
func (s *SessionStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Del elimina la clave. Borrar una clave inexistente no es error.
func (s *SessionStore) Del(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
