package entity

import (
	"time"

	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// Event evento en ejecución (normalmente nace de una Proposal aceptada).
// Su Status avanza por el pipeline PLANNING→...→DONE; llegar a DONE libera
// las cantidades reservadas de inventario de sus partidas de presupuesto.
type Event struct {
	ID         string
	ProposalID *string
	Name       string
	Venue      string
	StartDate  time.Time
	EndDate    time.Time
	Status     status.Event
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
