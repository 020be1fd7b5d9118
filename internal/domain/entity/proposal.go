package entity

import (
	"time"

	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// Proposal propuesta comercial de un evento; su Status solo se muta a través
// de la tabla de transiciones de status.
type Proposal struct {
	ID         string
	Name       string
	ClientName string
	Venue      string
	EventDate  time.Time
	Status     status.Proposal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
