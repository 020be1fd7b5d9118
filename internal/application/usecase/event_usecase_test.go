package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo { return &fakeEventRepo{events: map[string]*entity.Event{}} }

func (r *fakeEventRepo) Create(ev *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[ev.ID] = ev
	return nil
}

func (r *fakeEventRepo) GetByID(id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev, ok := r.events[id]; ok {
		copia := *ev
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeEventRepo) List(limit, offset int) ([]*entity.Event, error) { return nil, nil }

// UpdateStatus replica el update condicional del adaptador real: cero filas
// afectadas si el status actual ya no es current.
func (r *fakeEventRepo) UpdateStatus(_ context.Context, id string, current, next status.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[id]
	if !ok || ev.Status != current {
		return domain.ErrInvalidTransition
	}
	ev.Status = next
	return nil
}

type fakeBudgetRepo struct {
	items []*entity.BudgetItem
}

func (r *fakeBudgetRepo) Create(item *entity.BudgetItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeBudgetRepo) ListByEvent(_ context.Context, eventID string) ([]*entity.BudgetItem, error) {
	var out []*entity.BudgetItem
	for _, it := range r.items {
		if it.EventID == eventID {
			out = append(out, it)
		}
	}
	return out, nil
}

// fakeInventoryRepo registra cada decremento aplicado para inspección.
type fakeInventoryRepo struct {
	decrements map[string][]decimal.Decimal
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{decrements: map[string][]decimal.Decimal{}}
}

func (r *fakeInventoryRepo) Create(*entity.Inventory) error { return nil }

func (r *fakeInventoryRepo) GetByID(string) (*entity.Inventory, error) { return nil, nil }

func (r *fakeInventoryRepo) List(int, int) ([]*entity.Inventory, error) { return nil, nil }
func (r *fakeInventoryRepo) DecrementReserved(_ context.Context, id string, qty decimal.Decimal) error {
	r.decrements[id] = append(r.decrements[id], qty)
	return nil
}

// fakeTxRunner pasa los fakes directamente al callback, sin transacción real.
type fakeTxRunner struct {
	events    *fakeEventRepo
	budgets   *fakeBudgetRepo
	inventory *fakeInventoryRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.EventRepository,
	repository.BudgetItemRepository,
	repository.InventoryRepository,
) error) error {
	return fn(r.events, r.budgets, r.inventory)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newEventFixture(t *testing.T, st status.Event) (*usecase.EventUseCase, *fakeEventRepo, *fakeBudgetRepo, *fakeInventoryRepo, string) {
	t.Helper()
	events := newFakeEventRepo()
	budgets := &fakeBudgetRepo{}
	inventory := newFakeInventoryRepo()
	runner := &fakeTxRunner{events: events, budgets: budgets, inventory: inventory}
	uc := usecase.NewEventUseCase(events, budgets, runner)

	now := time.Now()
	ev := &entity.Event{ID: "ev1", Name: "Boda García", Status: st, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, events.Create(ev))
	return uc, events, budgets, inventory, ev.ID
}

func strptr(s string) *string { return &s }

func budgetLine(eventID, kind string, inventoryID *string, qty int64) *entity.BudgetItem {
	return &entity.BudgetItem{
		ID:          kind + "-" + eventID,
		EventID:     eventID,
		InventoryID: inventoryID,
		Kind:        kind,
		Name:        "partida",
		Qty:         decimal.NewFromInt(qty),
		Price:       decimal.NewFromInt(1000),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_TransicionValida(t *testing.T) {
	uc, events, _, _, id := newEventFixture(t, status.EventPlanning)

	out, err := uc.UpdateStatus(context.Background(), id, status.EventBudgeting)
	require.NoError(t, err)
	assert.Equal(t, "BUDGETING", out.Status)
	assert.Equal(t, status.EventBudgeting, events.events[id].Status)
}

func TestUpdateStatus_SaltoDeEtapa_EsTransicionInvalida(t *testing.T) {
	uc, _, _, _, id := newEventFixture(t, status.EventPlanning)

	_, err := uc.UpdateStatus(context.Background(), id, status.EventReporting)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_StatusFueraDelEnum_EsEntradaInvalida(t *testing.T) {
	uc, _, _, _, id := newEventFixture(t, status.EventPlanning)

	_, err := uc.UpdateStatus(context.Background(), id, status.Event("CERRADO"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_EventoInexistente_EsNotFound(t *testing.T) {
	uc, _, _, _, _ := newEventFixture(t, status.EventPlanning)

	_, err := uc.UpdateStatus(context.Background(), "no-existe", status.EventBudgeting)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cierre (DONE) y liberación de reservas
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_Done_LiberaReservasUnaVezPorInventario(t *testing.T) {
	uc, _, budgets, inventory, id := newEventFixture(t, status.EventReporting)

	// inv-a aparece en PLAN y en ACTUAL: debe liberarse UNA sola vez (cantidad
	// del PLAN). inv-b solo en ACTUAL. Las partidas sin inventario no cuentan.
	budgets.items = []*entity.BudgetItem{
		budgetLine(id, entity.BudgetKindPlan, strptr("inv-a"), 10),
		budgetLine(id, entity.BudgetKindActual, strptr("inv-a"), 12),
		budgetLine(id, entity.BudgetKindActual, strptr("inv-b"), 3),
		budgetLine(id, entity.BudgetKindPlan, nil, 99),
	}

	out, err := uc.UpdateStatus(context.Background(), id, status.EventDone)
	require.NoError(t, err)
	assert.Equal(t, "DONE", out.Status)

	require.Len(t, inventory.decrements["inv-a"], 1, "inv-a referenciado por ambos presupuestos se libera exactamente una vez")
	assert.True(t, inventory.decrements["inv-a"][0].Equal(decimal.NewFromInt(10)))
	require.Len(t, inventory.decrements["inv-b"], 1)
	assert.True(t, inventory.decrements["inv-b"][0].Equal(decimal.NewFromInt(3)))
	assert.Len(t, inventory.decrements, 2)
}

func TestUpdateStatus_Done_SinPartidasDeInventario_NoDecrementaNada(t *testing.T) {
	uc, _, budgets, inventory, id := newEventFixture(t, status.EventReporting)
	budgets.items = []*entity.BudgetItem{budgetLine(id, entity.BudgetKindPlan, nil, 5)}

	_, err := uc.UpdateStatus(context.Background(), id, status.EventDone)
	require.NoError(t, err)
	assert.Empty(t, inventory.decrements)
}

// gatedTxRunner retiene cada transacción hasta que todos los cierres
// concurrentes hayan validado su transición, y después las ejecuta en serie:
// reproduce la ventana entre la validación fuera de la transacción y el
// commit.
type gatedTxRunner struct {
	inner   *fakeTxRunner
	arrived chan struct{}
	release chan struct{}
	mu      sync.Mutex
}

func (r *gatedTxRunner) Run(ctx context.Context, fn func(
	repository.EventRepository,
	repository.BudgetItemRepository,
	repository.InventoryRepository,
) error) error {
	r.arrived <- struct{}{}
	<-r.release
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Run(ctx, fn)
}

// Dos cierres concurrentes que validaron REPORTING→DONE antes de que
// cualquiera hiciera commit: solo uno gana; el otro recibe transición
// inválida y las reservas se liberan exactamente una vez.
func TestUpdateStatus_CierresConcurrentes_LiberanUnaSolaVez(t *testing.T) {
	events := newFakeEventRepo()
	budgets := &fakeBudgetRepo{}
	inventory := newFakeInventoryRepo()
	runner := &gatedTxRunner{
		inner:   &fakeTxRunner{events: events, budgets: budgets, inventory: inventory},
		arrived: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	uc := usecase.NewEventUseCase(events, budgets, runner)

	now := time.Now()
	require.NoError(t, events.Create(&entity.Event{ID: "ev1", Name: "Gala anual", Status: status.EventReporting, CreatedAt: now, UpdatedAt: now}))
	budgets.items = []*entity.BudgetItem{budgetLine("ev1", entity.BudgetKindPlan, strptr("inv-a"), 10)}

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := uc.UpdateStatus(context.Background(), "ev1", status.EventDone)
			errs <- err
		}()
	}
	// Ambos validaron; recién ahora se permiten los commits.
	<-runner.arrived
	<-runner.arrived
	close(runner.release)

	var fallas []error
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			fallas = append(fallas, err)
		}
	}
	require.Len(t, fallas, 1, "exactamente un cierre debe abortar")
	assert.ErrorIs(t, fallas[0], domain.ErrInvalidTransition)
	require.Len(t, inventory.decrements["inv-a"], 1, "la liberación corre una sola vez aunque ambos cierres hayan validado")
	assert.Equal(t, status.EventDone, events.events["ev1"].Status)
}

func TestUpdateStatus_DoneEsTerminal(t *testing.T) {
	uc, _, _, _, id := newEventFixture(t, status.EventDone)

	_, err := uc.UpdateStatus(context.Background(), id, status.EventPlanning)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NaceEnPlanningConPresupuesto(t *testing.T) {
	events := newFakeEventRepo()
	budgets := &fakeBudgetRepo{}
	inventory := newFakeInventoryRepo()
	uc := usecase.NewEventUseCase(events, budgets, &fakeTxRunner{events: events, budgets: budgets, inventory: inventory})

	out, err := uc.Create(dto.CreateEventRequest{
		Name:  "Congreso Andino",
		Venue: "Centro de Convenciones",
		Budget: []dto.BudgetItemRequest{
			{Kind: entity.BudgetKindPlan, Name: "Sillas", Qty: decimal.NewFromInt(200), Price: decimal.NewFromInt(1500), InventoryID: strptr("inv-sillas")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "PLANNING", out.Status)
	require.Len(t, budgets.items, 1)
	assert.Equal(t, out.ID, budgets.items[0].EventID)
}

func TestCreate_KindDePresupuestoInvalido_EsError(t *testing.T) {
	events := newFakeEventRepo()
	uc := usecase.NewEventUseCase(events, &fakeBudgetRepo{}, &fakeTxRunner{})

	_, err := uc.Create(dto.CreateEventRequest{
		Name:   "Evento",
		Budget: []dto.BudgetItemRequest{{Kind: "PROYECTADO", Qty: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
