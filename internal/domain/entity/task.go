package entity

import (
	"time"

	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// Task tarea operativa de un evento, asignable a un usuario.
type Task struct {
	ID          string
	EventID     string
	Name        string
	Description string
	AssigneeID  *string
	Status      status.Task
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
