package http

import (
	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
	"github.com/go-playground/validator/v10"
)

// GuestRequest is the payload for registering a new guest. Dates arrive as
// dd/MM/yyyy.
type GuestRequest struct {
	Name      string       `json:"name" validate:"required"`
	BirthDate *domain.Date `json:"birthDate" validate:"required"`
	Phone     string       `json:"phone" validate:"required"`
	Document  string       `json:"document" validate:"required,document"`
	Email     *string      `json:"email" validate:"omitempty,email"`
}

// CreateRoomRequest is the payload for seeding a new room.
type CreateRoomRequest struct {
	Number    int     `json:"number" validate:"required"`
	Capacity  int     `json:"capacity" validate:"required,min=1"`
	Type      string  `json:"type" validate:"required"`
	Price     float64 `json:"price" validate:"min=0"`
	Available *bool   `json:"available"`
}

// CreateReservationRequest is the payload for booking a room.
type CreateReservationRequest struct {
	CheckIn       *domain.Date `json:"checkin" validate:"required"`
	CheckOut      *domain.Date `json:"checkout" validate:"required"`
	GuestID       int          `json:"guestId" validate:"required"`
	RoomID        int          `json:"roomId" validate:"required"`
	OccupantCount int          `json:"occupantCount" validate:"required,min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("document", func(fl validator.FieldLevel) bool {
		return domain.ValidDocument(fl.Field().String())
	})
	return v
}
