package http

import (
	"github.com/KarenButarello/CRUD-Hotel/internal/application"
	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type ReservationHandler struct {
	service *application.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(service *application.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List returns every reservation, projected.
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	reservations, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reservations)
}

// GetByID returns a single reservation, projected.
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid reservation ID")
	}

	reservation, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reservation)
}

// Create books a room for a guest.
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var req CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validateRequest(req); err != nil {
		return respondError(c, err)
	}

	reservation, err := h.service.Create(application.CreateReservationCommand{
		CheckIn:       *req.CheckIn,
		CheckOut:      *req.CheckOut,
		GuestID:       req.GuestID,
		RoomID:        req.RoomID,
		OccupantCount: req.OccupantCount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reservation)
}

// Update applies a partial reservation update; absent fields stay unchanged.
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid reservation ID")
	}

	var update domain.ReservationUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	reservation, err := h.service.Update(id, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reservation)
}

// Cancel cancels a reservation and returns the acknowledgment.
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid reservation ID")
	}

	ack, err := h.service.Cancel(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ack)
}
