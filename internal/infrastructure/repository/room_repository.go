package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
)

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates the Postgres-backed room repository.
func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) GetAll() ([]domain.Room, error) {
	query := `
		SELECT room_id, number, capacity, room_type, price, available
		FROM room
		ORDER BY room_id
	`
	return r.queryRooms(query)
}

func (r *roomRepository) GetAvailable() ([]domain.Room, error) {
	query := `
		SELECT room_id, number, capacity, room_type, price, available
		FROM room
		WHERE available = TRUE
		ORDER BY room_id
	`
	return r.queryRooms(query)
}

func (r *roomRepository) GetByID(id int) (*domain.Room, error) {
	query := `
		SELECT room_id, number, capacity, room_type, price, available
		FROM room
		WHERE room_id = $1
	`

	var room domain.Room
	err := r.db.QueryRow(query, id).Scan(
		&room.ID, &room.Number, &room.Capacity, &room.Type, &room.Price, &room.Available,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying room: %w", err)
	}
	return &room, nil
}

func (r *roomRepository) Create(room *domain.Room) error {
	query := `
		INSERT INTO room (number, capacity, room_type, price, available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING room_id
	`

	err := r.db.QueryRow(
		query, room.Number, room.Capacity, room.Type, room.Price, room.Available,
	).Scan(&room.ID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Duplicate("room number %d already exists", room.Number)
		}
		return fmt.Errorf("inserting room: %w", err)
	}
	return nil
}

func (r *roomRepository) AddImage(roomID int, url string) (*domain.RoomImage, error) {
	query := `
		INSERT INTO room_image (room_id, url)
		VALUES ($1, $2)
		RETURNING image_id, created_at
	`

	image := domain.RoomImage{RoomID: roomID, URL: url}
	err := r.db.QueryRow(query, roomID, url).Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting room image: %w", err)
	}
	return &image, nil
}

func (r *roomRepository) GetImages(roomID int) ([]domain.RoomImage, error) {
	query := `
		SELECT image_id, room_id, url, created_at
		FROM room_image
		WHERE room_id = $1
		ORDER BY image_id
	`

	rows, err := r.db.Query(query, roomID)
	if err != nil {
		return nil, fmt.Errorf("querying room images: %w", err)
	}
	defer rows.Close()

	var images []domain.RoomImage
	for rows.Next() {
		var image domain.RoomImage
		if err := rows.Scan(&image.ID, &image.RoomID, &image.URL, &image.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning room image: %w", err)
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (r *roomRepository) queryRooms(query string) ([]domain.Room, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		err := rows.Scan(&room.ID, &room.Number, &room.Capacity, &room.Type, &room.Price, &room.Available)
		if err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}
