package dto

import "time"

// CreateProposalRequest alta de una propuesta (nace en DRAFT).
type CreateProposalRequest struct {
	Name       string    `json:"name"`
	ClientName string    `json:"client_name"`
	Venue      string    `json:"venue"`
	EventDate  time.Time `json:"event_date"`
}

// UpdateStatusRequest transición de status solicitada por el cliente.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ProposalResponse propuesta expuesta al cliente.
type ProposalResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientName string    `json:"client_name"`
	Venue      string    `json:"venue"`
	EventDate  time.Time `json:"event_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
