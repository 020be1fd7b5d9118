package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest alta de un ítem de inventario.
type CreateInventoryRequest struct {
	Name    string          `json:"name"`
	ItemQty decimal.Decimal `json:"item_qty"`
}

// InventoryResponse ítem de inventario con sus contadores.
type InventoryResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ItemQty         decimal.Decimal `json:"item_qty"`
	ItemQtyReserved decimal.Decimal `json:"item_qty_reserved"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
