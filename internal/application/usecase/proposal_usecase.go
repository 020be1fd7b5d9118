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

// ProposalUseCase casos de uso de propuestas comerciales. El status solo se
// muta vía la tabla de transiciones; nunca se asigna arbitrariamente.
type ProposalUseCase struct {
	repo repository.ProposalRepository
}

// NewProposalUseCase construye el caso de uso.
func NewProposalUseCase(repo repository.ProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo}
}

// Create crea una propuesta en DRAFT.
func (uc *ProposalUseCase) Create(in dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	if in.Name == "" || in.ClientName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Proposal{
		ID:         uuid.New().String(),
		Name:       in.Name,
		ClientName: in.ClientName,
		Venue:      in.Venue,
		EventDate:  in.EventDate,
		Status:     status.ProposalDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProposalResponse(p), nil
}

// GetByID obtiene una propuesta por ID.
func (uc *ProposalUseCase) GetByID(id string) (*dto.ProposalResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProposalResponse(p), nil
}

// List lista propuestas con paginación.
func (uc *ProposalUseCase) List(limit, offset int) ([]*dto.ProposalResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProposalResponse(p))
	}
	return out, nil
}

// UpdateStatus aplica una transición del grafo de Proposal. Un next fuera del
// enum es ErrInvalidInput; una arista no permitida es ErrInvalidTransition.
func (uc *ProposalUseCase) UpdateStatus(id string, next status.Proposal) (*dto.ProposalResponse, error) {
	if !next.Valid() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !p.Status.CanTransition(next) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.repo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	p.Status = next
	p.UpdatedAt = time.Now()
	return toProposalResponse(p), nil
}

func toProposalResponse(p *entity.Proposal) *dto.ProposalResponse {
	return &dto.ProposalResponse{
		ID:         p.ID,
		Name:       p.Name,
		ClientName: p.ClientName,
		Venue:      p.Venue,
		EventDate:  p.EventDate,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
