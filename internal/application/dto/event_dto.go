package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEventRequest alta de un evento (nace en PLANNING) con sus partidas
// de presupuesto plan iniciales.
type CreateEventRequest struct {
	ProposalID *string             `json:"proposal_id"`
	Name       string              `json:"name"`
	Venue      string              `json:"venue"`
	StartDate  time.Time           `json:"start_date"`
	EndDate    time.Time           `json:"end_date"`
	Budget     []BudgetItemRequest `json:"budget"`
}

// BudgetItemRequest partida de presupuesto de un evento.
type BudgetItemRequest struct {
	InventoryID *string         `json:"inventory_id"`
	Kind        string          `json:"kind"` // PLAN | ACTUAL
	Name        string          `json:"name"`
	Qty         decimal.Decimal `json:"qty"`
	Price       decimal.Decimal `json:"price"`
}

// EventResponse evento expuesto al cliente.
type EventResponse struct {
	ID         string    `json:"id"`
	ProposalID *string   `json:"proposal_id,omitempty"`
	Name       string    `json:"name"`
	Venue      string    `json:"venue"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
