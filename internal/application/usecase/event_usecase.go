package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// EventUseCase casos de uso de eventos. El avance de status sigue el pipeline
// PLANNING→...→DONE; cerrar el evento (DONE) libera las reservas de
// inventario de su presupuesto dentro de una sola transacción.
type EventUseCase struct {
	repo       repository.EventRepository
	budgetRepo repository.BudgetItemRepository
	txRunner   EventTxRunner
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository, budgetRepo repository.BudgetItemRepository, txRunner EventTxRunner) *EventUseCase {
	return &EventUseCase{repo: repo, budgetRepo: budgetRepo, txRunner: txRunner}
}

// Create crea un evento en PLANNING junto con sus partidas de presupuesto.
func (uc *EventUseCase) Create(in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, b := range in.Budget {
		if b.Kind != entity.BudgetKindPlan && b.Kind != entity.BudgetKindActual {
			return nil, domain.ErrInvalidInput
		}
		if b.Qty.LessThan(decimal.Zero) || b.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	ev := &entity.Event{
		ID:         uuid.New().String(),
		ProposalID: in.ProposalID,
		Name:       in.Name,
		Venue:      in.Venue,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     status.EventPlanning,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ev); err != nil {
		return nil, err
	}
	for _, b := range in.Budget {
		item := &entity.BudgetItem{
			ID:          uuid.New().String(),
			EventID:     ev.ID,
			InventoryID: b.InventoryID,
			Kind:        b.Kind,
			Name:        b.Name,
			Qty:         b.Qty,
			Price:       b.Price,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.budgetRepo.Create(item); err != nil {
			return nil, err
		}
	}
	return toEventResponse(ev), nil
}

// GetByID obtiene un evento por ID.
func (uc *EventUseCase) GetByID(id string) (*dto.EventResponse, error) {
	ev, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, nil
	}
	return toEventResponse(ev), nil
}

// List lista eventos con paginación.
func (uc *EventUseCase) List(limit, offset int) ([]*dto.EventResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EventResponse, 0, len(list))
	for _, ev := range list {
		out = append(out, toEventResponse(ev))
	}
	return out, nil
}

// UpdateStatus aplica una transición del pipeline. Para DONE, el cambio de
// status y la liberación de reservas se ejecutan en una transacción: si algo
// falla se revierte todo junto, sin decrementos parciales.
func (uc *EventUseCase) UpdateStatus(ctx context.Context, id string, next status.Event) (*dto.EventResponse, error) {
	if !next.Valid() {
		return nil, domain.ErrInvalidInput
	}
	ev, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, domain.ErrNotFound
	}
	if !ev.Status.CanTransition(next) {
		return nil, domain.ErrInvalidTransition
	}

	// El update condicional sobre ev.Status cierra la ventana entre esta
	// validación y el commit: de dos cierres concurrentes solo uno encuentra
	// la fila en el status validado; el otro aborta dentro de la transacción
	// y la liberación de reservas corre una sola vez.
	if next == status.EventDone {
		err = uc.txRunner.Run(ctx, func(
			eventRepo repository.EventRepository,
			budgetRepo repository.BudgetItemRepository,
			inventoryRepo repository.InventoryRepository,
		) error {
			if err := eventRepo.UpdateStatus(ctx, id, ev.Status, next); err != nil {
				return err
			}
			return releaseReservations(ctx, id, budgetRepo, inventoryRepo)
		})
	} else {
		err = uc.repo.UpdateStatus(ctx, id, ev.Status, next)
	}
	if err != nil {
		return nil, err
	}
	ev.Status = next
	ev.UpdatedAt = time.Now()
	return toEventResponse(ev), nil
}

// releaseReservations decrementa item_qty_reserved una sola vez por cada
// inventario distinto referenciado por las partidas PLAN o ACTUAL del evento.
// Si un inventario aparece en ambos presupuestos se libera una vez, con la
// cantidad de la primera partida encontrada (PLAN tiene prioridad).
func releaseReservations(ctx context.Context, eventID string, budgetRepo repository.BudgetItemRepository, inventoryRepo repository.InventoryRepository) error {
	items, err := budgetRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return err
	}

	qtyByInventory := make(map[string]decimal.Decimal)
	var order []string
	collect := func(kind string) {
		for _, it := range items {
			if it.Kind != kind || it.InventoryID == nil {
				continue
			}
			if _, seen := qtyByInventory[*it.InventoryID]; seen {
				continue
			}
			qtyByInventory[*it.InventoryID] = it.Qty
			order = append(order, *it.InventoryID)
		}
	}
	collect(entity.BudgetKindPlan)
	collect(entity.BudgetKindActual)

	for _, invID := range order {
		if err := inventoryRepo.DecrementReserved(ctx, invID, qtyByInventory[invID]); err != nil {
			return err
		}
	}
	return nil
}

func toEventResponse(ev *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:         ev.ID,
		ProposalID: ev.ProposalID,
		Name:       ev.Name,
		Venue:      ev.Venue,
		StartDate:  ev.StartDate,
		EndDate:    ev.EndDate,
		Status:     string(ev.Status),
		CreatedAt:  ev.CreatedAt,
		UpdatedAt:  ev.UpdatedAt,
	}
}
