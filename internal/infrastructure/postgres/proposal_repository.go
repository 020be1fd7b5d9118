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

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementación de ProposalRepository sobre PostgreSQL.
type ProposalRepo struct {
	q Querier
}

// NewProposalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProposalRepository(q Querier) *ProposalRepo {
	return &ProposalRepo{q: q}
}

const proposalColumns = `id, name, client_name, venue, event_date, status, created_at, updated_at`

// Create persiste una nueva propuesta.
func (r *ProposalRepo) Create(p *entity.Proposal) error {
	query := `
		INSERT INTO proposals (` + proposalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.ClientName, p.Venue, p.EventDate, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}
	return nil
}

// GetByID obtiene una propuesta por ID.
func (r *ProposalRepo) GetByID(id string) (*entity.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1`
	var p entity.Proposal
	var st string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.ClientName, &p.Venue, &p.EventDate, &st, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal by id: %w", err)
	}
	p.Status = status.Proposal(st)
	return &p, nil
}

// List lista propuestas con paginación.
func (r *ProposalRepo) List(limit, offset int) ([]*entity.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proposal
	for rows.Next() {
		var p entity.Proposal
		var st string
		if err := rows.Scan(&p.ID, &p.Name, &p.ClientName, &p.Venue, &p.EventDate, &st, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		p.Status = status.Proposal(st)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una propuesta.
func (r *ProposalRepo) Update(p *entity.Proposal) error {
	query := `
		UPDATE proposals SET name = $2, client_name = $3, venue = $4, event_date = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.ClientName, p.Venue, p.EventDate, string(p.Status), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proposal: %w", err)
	}
	return nil
}

// UpdateStatus persiste una transición ya validada por el caso de uso.
func (r *ProposalRepo) UpdateStatus(id string, next status.Proposal) error {
	query := `UPDATE proposals SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, string(next))
	if err != nil {
		return fmt.Errorf("update proposal status: %w", err)
	}
	return nil
}
