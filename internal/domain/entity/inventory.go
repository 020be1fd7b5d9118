package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory ítem de inventario propio (mobiliario, equipos, etc.).
// ItemQtyReserved lleva las cantidades comprometidas por eventos en curso;
// se decrementa al cerrar el evento (status DONE).
type Inventory struct {
	ID              string
	Name            string
	ItemQty         decimal.Decimal
	ItemQtyReserved decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
