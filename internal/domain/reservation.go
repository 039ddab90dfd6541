package domain

// Reservation represents a stay booked against one room for one guest. It
// references guest and room strictly by identifier; the referenced records are
// resolved through the repositories at the start of each operation.
type Reservation struct {
	ID            int  `json:"id"`
	CheckIn       Date `json:"checkin"`
	CheckOut      Date `json:"checkout"`
	GuestID       int  `json:"guestId"`
	RoomID        int  `json:"roomId"`
	Active        bool `json:"active"`
	OccupantCount int  `json:"occupantCount"`
}

// ReservationUpdate carries the fields of a partial reservation update. A nil
// field means "leave unchanged".
type ReservationUpdate struct {
	CheckIn       *Date `json:"checkin"`
	CheckOut      *Date `json:"checkout"`
	RoomID        *int  `json:"roomId"`
	OccupantCount *int  `json:"occupantCount"`
}

// ReservationRepository defines the persistence operations for reservations.
// Each mutating operation commits all of its writes, including the room
// availability toggles, in a single transaction so a crash mid-operation
// cannot leave the room and reservation tables inconsistent.
type ReservationRepository interface {
	// GetAll returns every reservation.
	GetAll() ([]Reservation, error)
	// GetByID returns the reservation with the given ID, or (nil, nil).
	GetByID(id int) (*Reservation, error)
	// Create persists the reservation and marks its room unavailable.
	Create(res *Reservation) error
	// Update overwrites the reservation. When previousRoomID differs from
	// res.RoomID, the previous room is released and the new room claimed in
	// the same transaction.
	Update(res *Reservation, previousRoomID int) error
	// Cancel flips the reservation inactive and restores the room's
	// availability.
	Cancel(id int, roomID int) error
}
