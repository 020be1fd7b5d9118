package repository

import (
	"context"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
)

// BudgetItemRepository define el puerto de persistencia para partidas de
// presupuesto. ListByEvent devuelve tanto PLAN como ACTUAL.
type BudgetItemRepository interface {
	Create(item *entity.BudgetItem) error
	ListByEvent(ctx context.Context, eventID string) ([]*entity.BudgetItem, error)
}
