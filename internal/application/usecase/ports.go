package usecase

import (
	"context"

	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// EventTxRunner ejecuta el cierre de un evento dentro de una transacción:
// el cambio de status a DONE y los decrementos de reservas de inventario
// hacen commit juntos o se revierten juntos.
type EventTxRunner interface {
	Run(ctx context.Context, fn func(
		eventRepo repository.EventRepository,
		budgetRepo repository.BudgetItemRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
