package application

import (
	"fmt"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
)

type RoomService struct {
	repo domain.RoomRepository
}

// NewRoomService creates a new room service.
func NewRoomService(repo domain.RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

// ListAll returns every room.
func (s *RoomService) ListAll() ([]domain.Room, error) {
	rooms, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	return rooms, nil
}

// GetByID returns the room with the given ID.
func (s *RoomService) GetByID(id int) (*domain.Room, error) {
	room, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up room %d: %w", id, err)
	}
	if room == nil {
		return nil, domain.NotFound("no room found with ID %d", id)
	}
	return room, nil
}

// ListAvailable returns the rooms whose availability flag is true. An empty
// result is returned as an empty list; 404 is reserved for lookups by ID.
func (s *RoomService) ListAvailable() ([]domain.Room, error) {
	rooms, err := s.repo.GetAvailable()
	if err != nil {
		return nil, fmt.Errorf("listing available rooms: %w", err)
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	return rooms, nil
}

// Create validates and persists a new room. Rooms default to available unless
// the request says otherwise.
func (s *RoomService) Create(room *domain.Room) (*domain.Room, error) {
	if room.Number <= 0 {
		return nil, domain.Validation("room number must be greater than zero")
	}
	if room.Capacity <= 0 {
		return nil, domain.Validation("room capacity must be greater than zero")
	}
	if room.Price < 0 {
		return nil, domain.Validation("room price cannot be negative")
	}
	if !room.Type.Valid() {
		return nil, domain.Validation("unknown room type %q", string(room.Type))
	}

	if err := s.repo.Create(room); err != nil {
		return nil, fmt.Errorf("creating room: %w", err)
	}
	return room, nil
}

// AttachImage records an uploaded image URL against an existing room.
func (s *RoomService) AttachImage(roomID int, url string) (*domain.RoomImage, error) {
	if _, err := s.GetByID(roomID); err != nil {
		return nil, err
	}
	image, err := s.repo.AddImage(roomID, url)
	if err != nil {
		return nil, fmt.Errorf("attaching image to room %d: %w", roomID, err)
	}
	return image, nil
}

// ListImages returns the images attached to an existing room.
func (s *RoomService) ListImages(roomID int) ([]domain.RoomImage, error) {
	if _, err := s.GetByID(roomID); err != nil {
		return nil, err
	}
	images, err := s.repo.GetImages(roomID)
	if err != nil {
		return nil, fmt.Errorf("listing images of room %d: %w", roomID, err)
	}
	if images == nil {
		images = []domain.RoomImage{}
	}
	return images, nil
}
