package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.BudgetItemRepository = (*BudgetItemRepo)(nil)

// BudgetItemRepo implementación de BudgetItemRepository sobre PostgreSQL.
type BudgetItemRepo struct {
	q Querier
}

// NewBudgetItemRepository construye el adaptador.
func NewBudgetItemRepository(q Querier) *BudgetItemRepo {
	return &BudgetItemRepo{q: q}
}

const budgetItemColumns = `id, event_id, inventory_id, kind, name, qty, price, created_at, updated_at`

// Create persiste una partida de presupuesto.
func (r *BudgetItemRepo) Create(item *entity.BudgetItem) error {
	query := `
		INSERT INTO budget_items (` + budgetItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.EventID, item.InventoryID, item.Kind, item.Name, item.Qty, item.Price, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert budget item: %w", err)
	}
	return nil
}

// ListByEvent devuelve todas las partidas de un evento, PLAN primero para que
// el cierre de evento priorice la cantidad planeada.
func (r *BudgetItemRepo) ListByEvent(ctx context.Context, eventID string) ([]*entity.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE event_id = $1 ORDER BY kind DESC, created_at ASC`
	rows, err := r.q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	defer rows.Close()
	var list []*entity.BudgetItem
	for rows.Next() {
		var item entity.BudgetItem
		if err := rows.Scan(&item.ID, &item.EventID, &item.InventoryID, &item.Kind, &item.Name, &item.Qty, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan budget item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
