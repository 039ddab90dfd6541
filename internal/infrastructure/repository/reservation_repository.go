package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
)

type reservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates the Postgres-backed reservation repository.
// Every mutating operation commits the reservation write and its room
// availability toggles in a single transaction.
func NewReservationRepository(db *sql.DB) domain.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetAll() ([]domain.Reservation, error) {
	query := `
		SELECT reservation_id, check_in, check_out, guest_id, room_id, active, occupant_count
		FROM reservation
		ORDER BY reservation_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		err := rows.Scan(
			&res.ID, &res.CheckIn, &res.CheckOut,
			&res.GuestID, &res.RoomID, &res.Active, &res.OccupantCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) GetByID(id int) (*domain.Reservation, error) {
	query := `
		SELECT reservation_id, check_in, check_out, guest_id, room_id, active, occupant_count
		FROM reservation
		WHERE reservation_id = $1
	`

	var res domain.Reservation
	err := r.db.QueryRow(query, id).Scan(
		&res.ID, &res.CheckIn, &res.CheckOut,
		&res.GuestID, &res.RoomID, &res.Active, &res.OccupantCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying reservation: %w", err)
	}
	return &res, nil
}

func (r *reservationRepository) Create(res *domain.Reservation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := setRoomAvailability(tx, res.RoomID, false); err != nil {
		return err
	}

	query := `
		INSERT INTO reservation (check_in, check_out, guest_id, room_id, active, occupant_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING reservation_id
	`

	err = tx.QueryRow(
		query,
		res.CheckIn, res.CheckOut, res.GuestID, res.RoomID, res.Active, res.OccupantCount,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("inserting reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *reservationRepository) Update(res *domain.Reservation, previousRoomID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if previousRoomID != res.RoomID {
		if err := setRoomAvailability(tx, previousRoomID, true); err != nil {
			return err
		}
		if err := setRoomAvailability(tx, res.RoomID, false); err != nil {
			return err
		}
	}

	query := `
		UPDATE reservation
		SET check_in = $1, check_out = $2, room_id = $3, occupant_count = $4
		WHERE reservation_id = $5
	`

	result, err := tx.Exec(query, res.CheckIn, res.CheckOut, res.RoomID, res.OccupantCount, res.ID)
	if err != nil {
		return fmt.Errorf("updating reservation: %w", err)
	}
	if err := requireRows(result, "reservation", res.ID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *reservationRepository) Cancel(id int, roomID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := setRoomAvailability(tx, roomID, true); err != nil {
		return err
	}

	result, err := tx.Exec(`UPDATE reservation SET active = FALSE WHERE reservation_id = $1`, id)
	if err != nil {
		return fmt.Errorf("cancelling reservation: %w", err)
	}
	if err := requireRows(result, "reservation", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func setRoomAvailability(tx *sql.Tx, roomID int, available bool) error {
	result, err := tx.Exec(`UPDATE room SET available = $1 WHERE room_id = $2`, available, roomID)
	if err != nil {
		return fmt.Errorf("updating room availability: %w", err)
	}
	return requireRows(result, "room", roomID)
}
