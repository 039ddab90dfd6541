package domain

import "time"

// RoomType is the closed set of room categories.
type RoomType string

const (
	RoomTypeSingle    RoomType = "SINGLE"
	RoomTypeDouble    RoomType = "DOUBLE"
	RoomTypeTriple    RoomType = "TRIPLE"
	RoomTypeExecutive RoomType = "EXECUTIVE"
	RoomTypeFamily    RoomType = "FAMILY"
)

// Valid reports whether rt names a known room category.
func (rt RoomType) Valid() bool {
	switch rt {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTriple, RoomTypeExecutive, RoomTypeFamily:
		return true
	default:
		return false
	}
}

// Room represents a hotel room. Available is the single source of truth for
// whether the room may be attached to a new reservation.
type Room struct {
	ID        int      `json:"id"`
	Number    int      `json:"number"`
	Capacity  int      `json:"capacity"`
	Type      RoomType `json:"type"`
	Price     float64  `json:"price"`
	Available bool     `json:"available"`
}

// RoomImage is a photo attached to a room, stored externally.
type RoomImage struct {
	ID        int       `json:"id"`
	RoomID    int       `json:"roomId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomRepository defines the persistence operations for rooms. Lookup methods
// return (nil, nil) when no row matches. Availability toggles happen inside
// the reservation repository's transactions, never here.
type RoomRepository interface {
	// GetAll returns every room.
	GetAll() ([]Room, error)
	// GetByID returns the room with the given ID.
	GetByID(id int) (*Room, error)
	// GetAvailable returns the rooms whose availability flag is true.
	GetAvailable() ([]Room, error)
	// Create persists a new room and assigns its ID.
	Create(room *Room) error
	// AddImage attaches an uploaded image URL to a room.
	AddImage(roomID int, url string) (*RoomImage, error)
	// GetImages returns the images attached to a room.
	GetImages(roomID int) ([]RoomImage, error)
}
