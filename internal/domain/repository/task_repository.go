package repository

import (
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	ListByEvent(eventID string, limit, offset int) ([]*entity.Task, error)
	UpdateStatus(id string, next status.Task) error
	Assign(id, userID string) error
}
