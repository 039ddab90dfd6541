package application

import (
	"fmt"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
	"github.com/KarenButarello/CRUD-Hotel/internal/email"
	"go.uber.org/zap"
)

// RoomSummary is the room projection used inside reservation responses. It
// deliberately omits the availability flag so read responses do not leak
// mutable operational state.
type RoomSummary struct {
	ID       int             `json:"id"`
	Number   int             `json:"number"`
	Capacity int             `json:"capacity"`
	Type     domain.RoomType `json:"type"`
	Price    float64         `json:"price"`
}

// ReservationResponse is the read shape of a reservation, with the guest and
// room resolved.
type ReservationResponse struct {
	ID            int          `json:"id"`
	CheckIn       domain.Date  `json:"checkin"`
	CheckOut      domain.Date  `json:"checkout"`
	Guest         domain.Guest `json:"guest"`
	Room          RoomSummary  `json:"room"`
	Active        bool         `json:"active"`
	OccupantCount int          `json:"occupantCount"`
}

// CancellationResponse acknowledges a cancellation. The cancellation date is
// reported here only; it is not persisted on the reservation.
type CancellationResponse struct {
	ReservationID    int         `json:"reservationId"`
	CancellationDate domain.Date `json:"cancellationDate"`
	Success          bool        `json:"success"`
}

// CreateReservationCommand carries the validated input for a new reservation.
type CreateReservationCommand struct {
	CheckIn       domain.Date
	CheckOut      domain.Date
	GuestID       int
	RoomID        int
	OccupantCount int
}

// ReservationService orchestrates the reservation lifecycle: it enforces the
// cross-entity invariants (date ordering, capacity, availability) and hands
// the room-availability side effects to the repository, which commits them
// atomically with the reservation write.
type ReservationService struct {
	repo        domain.ReservationRepository
	roomRepo    domain.RoomRepository
	guestRepo   domain.GuestRepository
	emailClient *email.Client
	logger      *zap.Logger
}

// NewReservationService creates a new reservation lifecycle service. The email
// client may be nil; reservation mail is best effort.
func NewReservationService(
	repo domain.ReservationRepository,
	roomRepo domain.RoomRepository,
	guestRepo domain.GuestRepository,
	emailClient *email.Client,
	logger *zap.Logger,
) *ReservationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReservationService{
		repo:        repo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		emailClient: emailClient,
		logger:      logger,
	}
}

// List returns every reservation, projected. An empty system yields an empty
// list; 404 is reserved for lookups by ID.
func (s *ReservationService) List() ([]ReservationResponse, error) {
	reservations, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}

	responses := make([]ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		projected, err := s.project(&res)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *projected)
	}
	return responses, nil
}

// GetByID returns one reservation, projected.
func (s *ReservationService) GetByID(id int) (*ReservationResponse, error) {
	res, err := s.findReservation(id)
	if err != nil {
		return nil, err
	}
	return s.project(res)
}

// Create validates and persists a new reservation. Every check happens before
// any write; the room-availability flip and the reservation insert then commit
// in one transaction.
func (s *ReservationService) Create(cmd CreateReservationCommand) (*ReservationResponse, error) {
	guest, err := s.findGuest(cmd.GuestID)
	if err != nil {
		return nil, err
	}
	room, err := s.findRoom(cmd.RoomID)
	if err != nil {
		return nil, err
	}

	if err := validatePeriod(cmd.CheckIn, cmd.CheckOut); err != nil {
		return nil, err
	}
	if !room.Available {
		return nil, domain.Unavailable("room is not available for reservation")
	}
	if err := validateOccupants(room, cmd.OccupantCount); err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		CheckIn:       cmd.CheckIn,
		CheckOut:      cmd.CheckOut,
		GuestID:       guest.ID,
		RoomID:        room.ID,
		Active:        true,
		OccupantCount: cmd.OccupantCount,
	}
	if err := s.repo.Create(res); err != nil {
		return nil, fmt.Errorf("creating reservation: %w", err)
	}

	s.sendConfirmation(res, guest, room)

	return &ReservationResponse{
		ID:            res.ID,
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,
		Guest:         *guest,
		Room:          summarize(room),
		Active:        res.Active,
		OccupantCount: res.OccupantCount,
	}, nil
}

// Update applies a partial update to an active reservation. Supplied dates are
// merged with the current ones and re-validated as a pair; capacity is
// re-checked against the target room whenever the occupant count or the room
// changes; a room change releases the old room and claims the new one in the
// same transaction as the reservation write.
func (s *ReservationService) Update(id int, update domain.ReservationUpdate) (*ReservationResponse, error) {
	res, err := s.findReservation(id)
	if err != nil {
		return nil, err
	}
	if !res.Active {
		return nil, domain.Validation("cannot update a cancelled reservation")
	}

	checkIn := res.CheckIn
	checkOut := res.CheckOut
	if update.CheckIn != nil {
		checkIn = *update.CheckIn
	}
	if update.CheckOut != nil {
		checkOut = *update.CheckOut
	}
	if update.CheckIn != nil || update.CheckOut != nil {
		if err := validatePeriod(checkIn, checkOut); err != nil {
			return nil, err
		}
	}

	targetRoomID := res.RoomID
	if update.RoomID != nil {
		targetRoomID = *update.RoomID
	}
	room, err := s.findRoom(targetRoomID)
	if err != nil {
		return nil, err
	}

	occupants := res.OccupantCount
	if update.OccupantCount != nil {
		occupants = *update.OccupantCount
	}
	if update.OccupantCount != nil || targetRoomID != res.RoomID {
		if err := validateOccupants(room, occupants); err != nil {
			return nil, err
		}
	}

	previousRoomID := res.RoomID
	res.CheckIn = checkIn
	res.CheckOut = checkOut
	res.RoomID = targetRoomID
	res.OccupantCount = occupants

	if err := s.repo.Update(res, previousRoomID); err != nil {
		return nil, fmt.Errorf("updating reservation %d: %w", id, err)
	}

	return s.project(res)
}

// Cancel cancels an active reservation whose stay has not finished, restoring
// the room's availability in the same transaction as the status flip.
func (s *ReservationService) Cancel(id int) (*CancellationResponse, error) {
	res, err := s.findReservation(id)
	if err != nil {
		return nil, err
	}

	if res.CheckOut.Before(domain.Today()) {
		return nil, domain.Validation("cannot cancel a finished reservation")
	}
	if !res.Active {
		return nil, domain.Validation("reservation is already cancelled")
	}

	if err := s.repo.Cancel(res.ID, res.RoomID); err != nil {
		return nil, fmt.Errorf("cancelling reservation %d: %w", id, err)
	}

	s.sendCancellation(res)

	return &CancellationResponse{
		ReservationID:    res.ID,
		CancellationDate: domain.Today(),
		Success:          true,
	}, nil
}

func (s *ReservationService) findReservation(id int) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up reservation %d: %w", id, err)
	}
	if res == nil {
		return nil, domain.NotFound("reservation not found")
	}
	return res, nil
}

func (s *ReservationService) findGuest(id int) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up guest %d: %w", id, err)
	}
	if guest == nil {
		return nil, domain.NotFound("guest not found")
	}
	return guest, nil
}

func (s *ReservationService) findRoom(id int) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up room %d: %w", id, err)
	}
	if room == nil {
		return nil, domain.NotFound("room not found")
	}
	return room, nil
}

func (s *ReservationService) project(res *domain.Reservation) (*ReservationResponse, error) {
	guest, err := s.findGuest(res.GuestID)
	if err != nil {
		return nil, err
	}
	room, err := s.findRoom(res.RoomID)
	if err != nil {
		return nil, err
	}
	return &ReservationResponse{
		ID:            res.ID,
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,
		Guest:         *guest,
		Room:          summarize(room),
		Active:        res.Active,
		OccupantCount: res.OccupantCount,
	}, nil
}

func (s *ReservationService) sendConfirmation(res *domain.Reservation, guest *domain.Guest, room *domain.Room) {
	if s.emailClient == nil || guest.Email == nil {
		return
	}
	info := email.ReservationInfo{
		ReservationID: res.ID,
		GuestName:     guest.Name,
		RoomNumber:    room.Number,
		RoomType:      string(room.Type),
		CheckIn:       res.CheckIn.String(),
		CheckOut:      res.CheckOut.String(),
		OccupantCount: res.OccupantCount,
		Price:         room.Price,
	}
	if err := s.emailClient.SendReservationConfirmation(*guest.Email, info); err != nil {
		s.logger.Warn("reservation confirmation email failed",
			zap.Int("reservationId", res.ID),
			zap.Error(err))
	}
}

func (s *ReservationService) sendCancellation(res *domain.Reservation) {
	if s.emailClient == nil {
		return
	}
	guest, err := s.guestRepo.GetByID(res.GuestID)
	if err != nil || guest == nil || guest.Email == nil {
		return
	}
	if err := s.emailClient.SendReservationCancellation(*guest.Email, res.ID, domain.Today().String()); err != nil {
		s.logger.Warn("reservation cancellation email failed",
			zap.Int("reservationId", res.ID),
			zap.Error(err))
	}
}

func summarize(room *domain.Room) RoomSummary {
	return RoomSummary{
		ID:       room.ID,
		Number:   room.Number,
		Capacity: room.Capacity,
		Type:     room.Type,
		Price:    room.Price,
	}
}

func validatePeriod(checkIn, checkOut domain.Date) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return domain.Validation("check-in and check-out dates are required")
	}
	if checkIn.After(checkOut) {
		return domain.Validation("check-in date cannot be after the check-out date")
	}
	return nil
}

func validateOccupants(room *domain.Room, count int) error {
	if count <= 0 {
		return domain.Validation("occupant count must be at least 1")
	}
	if count > room.Capacity {
		return domain.Validation("occupant count exceeds the room capacity")
	}
	return nil
}
