package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de presupuesto de un evento.
const (
	BudgetKindPlan   = "PLAN"   // presupuesto planeado
	BudgetKindActual = "ACTUAL" // presupuesto ejecutado
)

// BudgetItem partida de presupuesto de un evento. Si InventoryID no es nil la
// partida compromete inventario propio y participa en la liberación de
// reservas al cerrar el evento.
type BudgetItem struct {
	ID          string
	EventID     string
	InventoryID *string
	Kind        string // PLAN | ACTUAL
	Name        string
	Qty         decimal.Decimal
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
