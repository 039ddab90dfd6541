package application

import (
	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
)

// In-memory repositories for the service tests. They count writes so the
// tests can assert that failed validations never touch the stores.

type fakeGuestRepo struct {
	guests []domain.Guest
	nextID int
	writes int
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{nextID: 1}
}

func (r *fakeGuestRepo) GetAll() ([]domain.Guest, error) {
	out := make([]domain.Guest, len(r.guests))
	copy(out, r.guests)
	return out, nil
}

func (r *fakeGuestRepo) GetByID(id int) (*domain.Guest, error) {
	for i := range r.guests {
		if r.guests[i].ID == id {
			guest := r.guests[i]
			return &guest, nil
		}
	}
	return nil, nil
}

func (r *fakeGuestRepo) GetByName(name string) (*domain.Guest, error) {
	for i := range r.guests {
		if r.guests[i].Name == name {
			guest := r.guests[i]
			return &guest, nil
		}
	}
	return nil, nil
}

func (r *fakeGuestRepo) ExistsByDocument(document string) (bool, error) {
	for i := range r.guests {
		if r.guests[i].Document == document {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeGuestRepo) Create(guest *domain.Guest) error {
	guest.ID = r.nextID
	r.nextID++
	r.guests = append(r.guests, *guest)
	r.writes++
	return nil
}

func (r *fakeGuestRepo) Update(guest *domain.Guest) error {
	for i := range r.guests {
		if r.guests[i].ID == guest.ID {
			r.guests[i] = *guest
			r.writes++
			return nil
		}
	}
	return domain.NotFound("no guest found with ID %d", guest.ID)
}

func (r *fakeGuestRepo) Delete(id int) error {
	for i := range r.guests {
		if r.guests[i].ID == id {
			r.guests = append(r.guests[:i], r.guests[i+1:]...)
			r.writes++
			return nil
		}
	}
	return domain.NotFound("no guest found with ID %d", id)
}

type fakeRoomRepo struct {
	rooms  []domain.Room
	nextID int
	writes int
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{nextID: 1}
}

func (r *fakeRoomRepo) GetAll() ([]domain.Room, error) {
	out := make([]domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out, nil
}

func (r *fakeRoomRepo) GetByID(id int) (*domain.Room, error) {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			room := r.rooms[i]
			return &room, nil
		}
	}
	return nil, nil
}

func (r *fakeRoomRepo) GetAvailable() ([]domain.Room, error) {
	var out []domain.Room
	for _, room := range r.rooms {
		if room.Available {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r *fakeRoomRepo) Create(room *domain.Room) error {
	room.ID = r.nextID
	r.nextID++
	r.rooms = append(r.rooms, *room)
	r.writes++
	return nil
}

func (r *fakeRoomRepo) AddImage(roomID int, url string) (*domain.RoomImage, error) {
	r.writes++
	return &domain.RoomImage{ID: 1, RoomID: roomID, URL: url}, nil
}

func (r *fakeRoomRepo) GetImages(roomID int) ([]domain.RoomImage, error) {
	return nil, nil
}

func (r *fakeRoomRepo) setAvailability(id int, available bool) {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			r.rooms[i].Available = available
			return
		}
	}
}

// fakeReservationRepo mimics the transactional contract of the real
// repository: room availability toggles happen together with the reservation
// write.
type fakeReservationRepo struct {
	reservations []domain.Reservation
	rooms        *fakeRoomRepo
	nextID       int
	writes       int
}

func newFakeReservationRepo(rooms *fakeRoomRepo) *fakeReservationRepo {
	return &fakeReservationRepo{rooms: rooms, nextID: 1}
}

func (r *fakeReservationRepo) GetAll() ([]domain.Reservation, error) {
	out := make([]domain.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

func (r *fakeReservationRepo) GetByID(id int) (*domain.Reservation, error) {
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			res := r.reservations[i]
			return &res, nil
		}
	}
	return nil, nil
}

func (r *fakeReservationRepo) Create(res *domain.Reservation) error {
	r.rooms.setAvailability(res.RoomID, false)
	res.ID = r.nextID
	r.nextID++
	r.reservations = append(r.reservations, *res)
	r.writes++
	return nil
}

func (r *fakeReservationRepo) Update(res *domain.Reservation, previousRoomID int) error {
	if previousRoomID != res.RoomID {
		r.rooms.setAvailability(previousRoomID, true)
		r.rooms.setAvailability(res.RoomID, false)
	}
	for i := range r.reservations {
		if r.reservations[i].ID == res.ID {
			r.reservations[i] = *res
			r.writes++
			return nil
		}
	}
	return domain.NotFound("no reservation found with ID %d", res.ID)
}

func (r *fakeReservationRepo) Cancel(id int, roomID int) error {
	r.rooms.setAvailability(roomID, true)
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			r.reservations[i].Active = false
			r.writes++
			return nil
		}
	}
	return domain.NotFound("no reservation found with ID %d", id)
}
