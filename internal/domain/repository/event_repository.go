package repository

import (
	"context"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// EventRepository define el puerto de persistencia para Event.
// UpdateStatus lleva ctx porque participa en la transacción de cierre
// (status DONE + liberación de reservas en un solo commit). El update es
// condicional al status actual: si la fila ya no está en current (otro
// request ganó la carrera entre la validación y el commit), retorna
// ErrInvalidTransition sin tocar la fila.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	List(limit, offset int) ([]*entity.Event, error)
	UpdateStatus(ctx context.Context, id string, current, next status.Event) error
}
