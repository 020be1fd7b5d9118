package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, event_id, name, description, assignee_id, status, due_date, created_at, updated_at`

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(t *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.EventID, t.Name, t.Description, t.AssigneeID, string(t.Status), t.DueDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t entity.Task
	var st string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.EventID, &t.Name, &t.Description, &t.AssigneeID, &st, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	t.Status = status.Task(st)
	return &t, nil
}

// ListByEvent lista las tareas de un evento con paginación.
func (r *TaskRepo) ListByEvent(eventID string, limit, offset int) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE event_id = $1 ORDER BY due_date ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, eventID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		var st string
		if err := rows.Scan(&t.ID, &t.EventID, &t.Name, &t.Description, &t.AssigneeID, &st, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Status = status.Task(st)
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateStatus persiste una transición ya validada por el caso de uso.
func (r *TaskRepo) UpdateStatus(id string, next status.Task) error {
	query := `UPDATE tasks SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, string(next))
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}

// Assign fija el asignado de la tarea.
func (r *TaskRepo) Assign(id, userID string) error {
	query := `UPDATE tasks SET assignee_id = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, userID)
	if err != nil {
		return fmt.Errorf("assign task: %w", err)
	}
	return nil
}
