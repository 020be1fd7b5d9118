package repository

import (
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// ProposalRepository define el puerto de persistencia para Proposal.
type ProposalRepository interface {
	Create(proposal *entity.Proposal) error
	GetByID(id string) (*entity.Proposal, error)
	List(limit, offset int) ([]*entity.Proposal, error)
	Update(proposal *entity.Proposal) error
	UpdateStatus(id string, next status.Proposal) error
}
