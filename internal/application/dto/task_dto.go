package dto

import "time"

// CreateTaskRequest alta de una tarea de evento (nace en PENDING).
type CreateTaskRequest struct {
	EventID     string    `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
}

// AssignTaskRequest asignación de una tarea a un usuario.
type AssignTaskRequest struct {
	UserID string `json:"user_id"`
}

// TaskResponse tarea expuesta al cliente.
type TaskResponse struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AssigneeID  *string   `json:"assignee_id,omitempty"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
