package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación de EventRepository sobre PostgreSQL (usable con pool o tx).
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

const eventColumns = `id, proposal_id, name, venue, start_date, end_date, status, created_at, updated_at`

// Create persiste un nuevo evento.
func (r *EventRepo) Create(ev *entity.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ev.ID, ev.ProposalID, ev.Name, ev.Venue, ev.StartDate, ev.EndDate, string(ev.Status), ev.CreatedAt, ev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var ev entity.Event
	var st string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ev.ID, &ev.ProposalID, &ev.Name, &ev.Venue, &ev.StartDate, &ev.EndDate, &st, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	ev.Status = status.Event(st)
	return &ev, nil
}

// List lista eventos con paginación.
func (r *EventRepo) List(limit, offset int) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var ev entity.Event
		var st string
		if err := rows.Scan(&ev.ID, &ev.ProposalID, &ev.Name, &ev.Venue, &ev.StartDate, &ev.EndDate, &st, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Status = status.Event(st)
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// UpdateStatus persiste una transición ya validada. Con ctx de la transacción
// de cierre cuando next es DONE. El predicado sobre el status actual hace el
// update atómico: si un cierre rival hizo commit entre la validación y esta
// transacción, cero filas afectadas y el segundo cierre aborta (la liberación
// de reservas nunca corre dos veces).
func (r *EventRepo) UpdateStatus(ctx context.Context, id string, current, next status.Event) error {
	query := `UPDATE events SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`
	tag, err := r.q.Exec(ctx, query, id, string(current), string(next))
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}
