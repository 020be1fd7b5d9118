package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// InventoryUseCase casos de uso de inventario propio. Los contadores de
// reserva solo se mueven por la liberación al cerrar eventos, nunca por
// asignación directa desde la API.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create crea un ítem de inventario con reserva en cero.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.Name == "" || in.ItemQty.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Inventory{
		ID:              uuid.New().String(),
		Name:            in.Name,
		ItemQty:         in.ItemQty,
		ItemQtyReserved: decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toInventoryResponse(item), nil
}

// List lista inventario con paginación.
func (uc *InventoryUseCase) List(limit, offset int) ([]*dto.InventoryResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toInventoryResponse(item))
	}
	return out, nil
}

func toInventoryResponse(i *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:              i.ID,
		Name:            i.Name,
		ItemQty:         i.ItemQty,
		ItemQtyReserved: i.ItemQtyReserved,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
