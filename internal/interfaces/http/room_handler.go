package http

import (
	"github.com/KarenButarello/CRUD-Hotel/internal/application"
	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
	services "github.com/KarenButarello/CRUD-Hotel/internal/service"
	"github.com/gofiber/fiber/v2"
)

type RoomHandler struct {
	service *application.RoomService
	storage *services.S3Service
}

// NewRoomHandler creates a new room handler. The storage service may be nil
// when image uploads are not configured.
func NewRoomHandler(service *application.RoomService, storage *services.S3Service) *RoomHandler {
	return &RoomHandler{service: service, storage: storage}
}

// ListAll returns every room.
func (h *RoomHandler) ListAll(c *fiber.Ctx) error {
	rooms, err := h.service.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rooms)
}

// GetByID returns a single room by ID.
func (h *RoomHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid room ID")
	}

	room, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(room)
}

// ListAvailable returns the bookable rooms. No availability means an empty
// list, not an error.
func (h *RoomHandler) ListAvailable(c *fiber.Ctx) error {
	rooms, err := h.service.ListAvailable()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rooms)
}

// Create seeds a new room.
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validateRequest(req); err != nil {
		return respondError(c, err)
	}

	room := &domain.Room{
		Number:    req.Number,
		Capacity:  req.Capacity,
		Type:      domain.RoomType(req.Type),
		Price:     req.Price,
		Available: true,
	}
	if req.Available != nil {
		room.Available = *req.Available
	}

	created, err := h.service.Create(room)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(created)
}

// UploadImage stores a room photo in S3 and records its URL.
func (h *RoomHandler) UploadImage(c *fiber.Ctx) error {
	if h.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "image storage is not configured",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid room ID")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return respondBadRequest(c, "missing image file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondBadRequest(c, "unreadable image file")
	}

	url, err := h.storage.UploadFile(file, fileHeader)
	if err != nil {
		return respondError(c, err)
	}

	image, err := h.service.AttachImage(id, url)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(image)
}

// ListImages returns the photos attached to a room.
func (h *RoomHandler) ListImages(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondBadRequest(c, "invalid room ID")
	}

	images, err := h.service.ListImages(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(images)
}
