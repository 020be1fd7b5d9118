package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, name, item_qty, item_qty_reserved, created_at, updated_at`

// Create persiste un nuevo ítem de inventario.
func (r *InventoryRepo) Create(item *entity.Inventory) error {
	query := `
		INSERT INTO inventories (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.ItemQty, item.ItemQtyReserved, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1`
	var item entity.Inventory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.Name, &item.ItemQty, &item.ItemQtyReserved, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by id: %w", err)
	}
	return &item, nil
}

// List lista los ítems de inventario con paginación.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var item entity.Inventory
		if err := rows.Scan(&item.ID, &item.Name, &item.ItemQty, &item.ItemQtyReserved, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// DecrementReserved libera cantidad reservada de un ítem. GREATEST evita que
// la columna quede negativa si la reserva ya fue liberada.
func (r *InventoryRepo) DecrementReserved(ctx context.Context, id string, qty decimal.Decimal) error {
	query := `
		UPDATE inventories
		SET item_qty_reserved = GREATEST(item_qty_reserved - $2, 0), updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, qty)
	if err != nil {
		return fmt.Errorf("decrement reserved: %w", err)
	}
	return nil
}
