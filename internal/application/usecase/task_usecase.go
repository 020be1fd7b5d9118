package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// TaskUseCase casos de uso de tareas operativas de un evento.
type TaskUseCase struct {
	repo      repository.TaskRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, eventRepo repository.EventRepository, userRepo repository.UserRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, eventRepo: eventRepo, userRepo: userRepo}
}

// Create crea una tarea en PENDING bajo un evento existente.
func (uc *TaskUseCase) Create(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.EventID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	ev, err := uc.eventRepo.GetByID(in.EventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		EventID:     in.EventID,
		Name:        in.Name,
		Description: in.Description,
		Status:      status.TaskPending,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetByID obtiene una tarea por ID.
func (uc *TaskUseCase) GetByID(id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	return toTaskResponse(task), nil
}

// ListByEvent lista las tareas de un evento.
func (uc *TaskUseCase) ListByEvent(eventID string, limit, offset int) ([]*dto.TaskResponse, error) {
	list, err := uc.repo.ListByEvent(eventID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(list))
	for _, task := range list {
		out = append(out, toTaskResponse(task))
	}
	return out, nil
}

// UpdateStatus aplica una transición del grafo de Task.
func (uc *TaskUseCase) UpdateStatus(id string, next status.Task) (*dto.TaskResponse, error) {
	if !next.Valid() {
		return nil, domain.ErrInvalidInput
	}
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !task.Status.CanTransition(next) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.repo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	task.Status = next
	task.UpdatedAt = time.Now()
	return toTaskResponse(task), nil
}

// Assign asigna la tarea a un usuario activo. Una tarea ya asignada responde
// conflicto; primero debe liberarse.
func (uc *TaskUseCase) Assign(id, userID string) (*dto.TaskResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.AssigneeID != nil {
		return nil, domain.ErrConflict
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.Assign(id, userID); err != nil {
		return nil, err
	}
	task.AssigneeID = &userID
	task.UpdatedAt = time.Now()
	return toTaskResponse(task), nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          t.ID,
		EventID:     t.EventID,
		Name:        t.Name,
		Description: t.Description,
		AssigneeID:  t.AssigneeID,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
