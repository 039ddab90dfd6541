package http

import (
	"github.com/KarenButarello/CRUD-Hotel/internal/application"
	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type GuestHandler struct {
	service *application.GuestService
}

// NewGuestHandler creates a new guest handler.
func NewGuestHandler(service *application.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

// ListAll returns every registered guest.
func (h *GuestHandler) ListAll(c *fiber.Ctx) error {
	guests, err := h.service.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(guests)
}

// GetByID returns a single guest by ID.
func (h *GuestHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid guest ID")
	}

	guest, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(guest)
}

// GetByName returns the guest whose name matches exactly.
func (h *GuestHandler) GetByName(c *fiber.Ctx) error {
	name, err := urlParam(c, "name")
	if err != nil {
		return respondBadRequest(c, "invalid guest name")
	}

	guest, err := h.service.GetByName(name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(guest)
}

// Create registers a new guest.
func (h *GuestHandler) Create(c *fiber.Ctx) error {
	var req GuestRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validateRequest(req); err != nil {
		return respondError(c, err)
	}

	guest := &domain.Guest{
		Name:     req.Name,
		Phone:    req.Phone,
		Document: req.Document,
		Email:    req.Email,
	}
	if req.BirthDate != nil {
		guest.BirthDate = *req.BirthDate
	}

	created, err := h.service.Create(guest)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(created)
}

// Update applies a partial guest update; absent fields stay unchanged.
func (h *GuestHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid guest ID")
	}

	var update domain.GuestUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	guest, err := h.service.Update(id, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(guest)
}

// Delete removes a guest.
func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid guest ID")
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "guest deleted",
	})
}
