package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// ProposalHandler maneja propuestas comerciales.
type ProposalHandler struct {
	uc *usecase.ProposalUseCase
}

// NewProposalHandler construye el handler de propuestas.
func NewProposalHandler(uc *usecase.ProposalUseCase) *ProposalHandler {
	return &ProposalHandler{uc: uc}
}

// Create crea una propuesta en DRAFT.
func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProposalRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	prop, err := h.uc.Create(in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "propuesta creada", prop)
}

// GetByID obtiene una propuesta por ID.
func (h *ProposalHandler) GetByID(c *fiber.Ctx) error {
	prop, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	if prop == nil {
		return failFromErr(c, domain.ErrNotFound)
	}
	return ok(c, fiber.StatusOK, "propuesta encontrada", prop)
}

// List lista propuestas con paginación.
func (h *ProposalHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "paginación inválida")
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "propuestas listadas", list)
}

// UpdateStatus aplica una transición del grafo de propuestas.
func (h *ProposalHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	prop, err := h.uc.UpdateStatus(c.Params("id"), status.Proposal(in.Status))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "status actualizado", prop)
}
