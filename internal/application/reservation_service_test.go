package application

import (
	"testing"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
)

type reservationFixture struct {
	service    *ReservationService
	guests     *fakeGuestRepo
	rooms      *fakeRoomRepo
	res        *fakeReservationRepo
	guest      *domain.Guest
	room       *domain.Room
	secondRoom *domain.Room
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()

	guests := newFakeGuestRepo()
	rooms := newFakeRoomRepo()
	res := newFakeReservationRepo(rooms)

	guest := validGuest()
	if err := guests.Create(guest); err != nil {
		t.Fatalf("seeding guest failed: %v", err)
	}

	room := &domain.Room{Number: 101, Capacity: 1, Type: domain.RoomTypeSingle, Price: 220.00, Available: true}
	if err := rooms.Create(room); err != nil {
		t.Fatalf("seeding room failed: %v", err)
	}
	second := &domain.Room{Number: 102, Capacity: 3, Type: domain.RoomTypeTriple, Price: 340.00, Available: true}
	if err := rooms.Create(second); err != nil {
		t.Fatalf("seeding second room failed: %v", err)
	}
	guests.writes, rooms.writes = 0, 0

	return &reservationFixture{
		service:    NewReservationService(res, rooms, guests, nil, nil),
		guests:     guests,
		rooms:      rooms,
		res:        res,
		guest:      guest,
		room:       room,
		secondRoom: second,
	}
}

func (f *reservationFixture) command() CreateReservationCommand {
	return CreateReservationCommand{
		CheckIn:       domain.Today().AddDays(5),
		CheckOut:      domain.Today().AddDays(7),
		GuestID:       f.guest.ID,
		RoomID:        f.room.ID,
		OccupantCount: 1,
	}
}

func (f *reservationFixture) roomAvailability(t *testing.T, id int) bool {
	t.Helper()
	room, err := f.rooms.GetByID(id)
	if err != nil || room == nil {
		t.Fatalf("room %d missing", id)
	}
	return room.Available
}

func TestReservationCreate(t *testing.T) {
	f := newReservationFixture(t)

	if !f.roomAvailability(t, f.room.ID) {
		t.Fatal("room should start available")
	}

	created, err := f.service.Create(f.command())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected assigned ID 1, got %d", created.ID)
	}
	if !created.Active {
		t.Fatal("new reservation should be active")
	}
	if created.Room.ID != f.room.ID || created.Guest.ID != f.guest.ID {
		t.Fatalf("projection references wrong entities: %+v", created)
	}
	if f.roomAvailability(t, f.room.ID) {
		t.Fatal("room should be unavailable after create")
	}
}

func TestReservationCreateInvalidPeriod(t *testing.T) {
	f := newReservationFixture(t)

	cmd := f.command()
	cmd.CheckIn, cmd.CheckOut = cmd.CheckOut, cmd.CheckIn
	if _, err := f.service.Create(cmd); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.res.writes != 0 || f.rooms.writes != 0 {
		t.Fatalf("validation failure must not write: res=%d rooms=%d", f.res.writes, f.rooms.writes)
	}
	if !f.roomAvailability(t, f.room.ID) {
		t.Fatal("room availability must be unchanged")
	}
}

func TestReservationCreateRoomUnavailable(t *testing.T) {
	f := newReservationFixture(t)
	f.rooms.setAvailability(f.room.ID, false)

	_, err := f.service.Create(f.command())
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected availability error, got %v", err)
	}
	if f.res.writes != 0 {
		t.Fatalf("availability failure must not write, got %d writes", f.res.writes)
	}
	if f.roomAvailability(t, f.room.ID) {
		t.Fatal("room availability must be unchanged")
	}
}

func TestReservationCreateOverCapacity(t *testing.T) {
	f := newReservationFixture(t)

	cmd := f.command()
	cmd.OccupantCount = 2 // room 101 sleeps 1
	if _, err := f.service.Create(cmd); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.res.writes != 0 || f.rooms.writes != 0 {
		t.Fatal("capacity failure must not write")
	}
}

func TestReservationCreateUnknownGuest(t *testing.T) {
	f := newReservationFixture(t)

	cmd := f.command()
	cmd.GuestID = 99
	if _, err := f.service.Create(cmd); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReservationCreateUnknownRoom(t *testing.T) {
	f := newReservationFixture(t)

	cmd := f.command()
	cmd.RoomID = 99
	if _, err := f.service.Create(cmd); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReservationCancel(t *testing.T) {
	f := newReservationFixture(t)

	created, err := f.service.Create(f.command())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	ack, err := f.service.Cancel(created.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if !ack.Success || ack.ReservationID != created.ID {
		t.Fatalf("unexpected ack: %+v", ack)
	}
	if !ack.CancellationDate.Equal(domain.Today()) {
		t.Fatalf("unexpected cancellation date: %s", ack.CancellationDate)
	}
	if !f.roomAvailability(t, f.room.ID) {
		t.Fatal("room should be available again after cancel")
	}

	stored, _ := f.res.GetByID(created.ID)
	if stored.Active {
		t.Fatal("reservation should be inactive after cancel")
	}
}

func TestReservationCancelTwice(t *testing.T) {
	f := newReservationFixture(t)

	created, err := f.service.Create(f.command())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := f.service.Cancel(created.ID); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	// Simulate the room being rebooked in between; the failed second cancel
	// must not touch its availability.
	f.rooms.setAvailability(f.room.ID, false)

	if _, err := f.service.Cancel(created.ID); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.roomAvailability(t, f.room.ID) {
		t.Fatal("failed cancel must not alter room availability")
	}
}

func TestReservationCancelFinishedStay(t *testing.T) {
	f := newReservationFixture(t)

	// A stay that already ended, inserted directly into the store.
	past := &domain.Reservation{
		CheckIn:       domain.Today().AddDays(-10),
		CheckOut:      domain.Today().AddDays(-5),
		GuestID:       f.guest.ID,
		RoomID:        f.room.ID,
		Active:        true,
		OccupantCount: 1,
	}
	if err := f.res.Create(past); err != nil {
		t.Fatalf("seeding past reservation failed: %v", err)
	}

	if _, err := f.service.Cancel(past.ID); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReservationCancelUnknown(t *testing.T) {
	f := newReservationFixture(t)
	if _, err := f.service.Cancel(7); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReservationUpdateDates(t *testing.T) {
	f := newReservationFixture(t)

	created, err := f.service.Create(f.command())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newCheckOut := domain.Today().AddDays(9)
	updated, err := f.service.Update(created.ID, domain.ReservationUpdate{CheckOut: &newCheckOut})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.CheckOut.Equal(newCheckOut) {
		t.Fatalf("checkout not updated: %s", updated.CheckOut)
	}
	if !updated.CheckIn.Equal(created.CheckIn) {
		t.Fatalf("checkin should be preserved: %s", updated.CheckIn)
	}
}

func TestReservationUpdateInvalidMergedPeriod(t *testing.T) {
	f := newReservationFixture(t)

	created, err := f.service.Create(f.command())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	writesBefore := f.res.writes

	// New check-in after the existing check-out.
	badCheckIn := domain.Today().AddDays(15)
	if _, err := f.service.Update(created.ID, domain.ReservationUpdate{CheckIn: &badCheckIn}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.res.writes != writesBefore {
		t.Fatal("failed update must not write")
	}
}

func TestReservationUpdateOverCapacity(t *testing.T) {
	f := newReservationFixture(t)

	created, err := f.service.Create(f.command())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	writesBefore := f.res.writes

	tooMany := 5
	if _, err := f.service.Update(created.ID, domain.ReservationUpdate{OccupantCount: &tooMany}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.res.writes != writesBefore {
		t.Fatal("failed update must not write")
	}
}

func TestReservationUpdateRoomChange(t *testing.T) {
	f := newReservationFixture(t)

	created, err := f.service.Create(f.command())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newRoom := f.secondRoom.ID
	occupants := 3
	updated, err := f.service.Update(created.ID, domain.ReservationUpdate{
		RoomID:        &newRoom,
		OccupantCount: &occupants,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Room.ID != newRoom {
		t.Fatalf("room not repointed: %+v", updated.Room)
	}
	if !f.roomAvailability(t, f.room.ID) {
		t.Fatal("old room should be released")
	}
	if f.roomAvailability(t, newRoom) {
		t.Fatal("new room should be claimed")
	}
}

func TestReservationUpdateRoomChangeValidatesCurrentOccupants(t *testing.T) {
	f := newReservationFixture(t)

	// Book the larger room with 3 occupants, then try to move to the
	// single room without changing the count.
	cmd := f.command()
	cmd.RoomID = f.secondRoom.ID
	cmd.OccupantCount = 3
	created, err := f.service.Create(cmd)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	smallRoom := f.room.ID
	if _, err := f.service.Update(created.ID, domain.ReservationUpdate{RoomID: &smallRoom}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.roomAvailability(t, f.secondRoom.ID) {
		t.Fatal("failed update must not release the current room")
	}
}

func TestReservationUpdateCancelledReservation(t *testing.T) {
	f := newReservationFixture(t)

	created, err := f.service.Create(f.command())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := f.service.Cancel(created.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	occupants := 1
	if _, err := f.service.Update(created.ID, domain.ReservationUpdate{OccupantCount: &occupants}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReservationUpdateUnknown(t *testing.T) {
	f := newReservationFixture(t)
	occupants := 1
	if _, err := f.service.Update(3, domain.ReservationUpdate{OccupantCount: &occupants}); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReservationListEmpty(t *testing.T) {
	f := newReservationFixture(t)
	list, err := f.service.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestReservationListProjectsRoomWithoutAvailability(t *testing.T) {
	f := newReservationFixture(t)
	if _, err := f.service.Create(f.command()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := f.service.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(list))
	}
	// RoomSummary carries no availability field; just check the identity and
	// price made it through the projection.
	if list[0].Room.Number != 101 || list[0].Room.Price != 220.00 {
		t.Fatalf("unexpected room projection: %+v", list[0].Room)
	}
}
