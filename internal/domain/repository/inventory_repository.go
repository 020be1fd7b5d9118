package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para Inventory.
// DecrementReserved lleva ctx porque se invoca dentro de la transacción de
// cierre de evento.
type InventoryRepository interface {
	Create(item *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	List(limit, offset int) ([]*entity.Inventory, error)
	DecrementReserved(ctx context.Context, id string, qty decimal.Decimal) error
}
