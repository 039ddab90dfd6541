package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
	"github.com/lib/pq"
)

// Postgres error codes used to translate constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type guestRepository struct {
	db *sql.DB
}

// NewGuestRepository creates the Postgres-backed guest repository.
func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) GetAll() ([]domain.Guest, error) {
	query := `
		SELECT guest_id, name, birth_date, phone, document, email
		FROM guest
		ORDER BY guest_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying guests: %w", err)
	}
	defer rows.Close()

	var guests []domain.Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, *guest)
	}
	return guests, rows.Err()
}

func (r *guestRepository) GetByID(id int) (*domain.Guest, error) {
	query := `
		SELECT guest_id, name, birth_date, phone, document, email
		FROM guest
		WHERE guest_id = $1
	`
	return r.queryOne(query, id)
}

func (r *guestRepository) GetByName(name string) (*domain.Guest, error) {
	query := `
		SELECT guest_id, name, birth_date, phone, document, email
		FROM guest
		WHERE name = $1
		ORDER BY guest_id
		LIMIT 1
	`
	return r.queryOne(query, name)
}

func (r *guestRepository) ExistsByDocument(document string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM guest WHERE document = $1)`, document,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking document: %w", err)
	}
	return exists, nil
}

func (r *guestRepository) Create(guest *domain.Guest) error {
	query := `
		INSERT INTO guest (name, birth_date, phone, document, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING guest_id
	`

	err := r.db.QueryRow(
		query,
		guest.Name,
		guest.BirthDate,
		guest.Phone,
		guest.Document,
		nullableString(guest.Email),
	).Scan(&guest.ID)

	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Duplicate("document %s is already registered", guest.Document)
		}
		return fmt.Errorf("inserting guest: %w", err)
	}
	return nil
}

func (r *guestRepository) Update(guest *domain.Guest) error {
	query := `
		UPDATE guest
		SET name = $1, birth_date = $2, phone = $3, document = $4, email = $5
		WHERE guest_id = $6
	`

	result, err := r.db.Exec(
		query,
		guest.Name,
		guest.BirthDate,
		guest.Phone,
		guest.Document,
		nullableString(guest.Email),
		guest.ID,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Duplicate("document %s is already registered", guest.Document)
		}
		return fmt.Errorf("updating guest: %w", err)
	}

	return requireRows(result, "guest", guest.ID)
}

func (r *guestRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM guest WHERE guest_id = $1`, id)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.Validation("guest has reservations and cannot be deleted")
		}
		return fmt.Errorf("deleting guest: %w", err)
	}
	return requireRows(result, "guest", id)
}

func (r *guestRepository) queryOne(query string, arg any) (*domain.Guest, error) {
	guest, err := scanGuest(r.db.QueryRow(query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return guest, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGuest(row rowScanner) (*domain.Guest, error) {
	var guest domain.Guest
	var email sql.NullString

	err := row.Scan(&guest.ID, &guest.Name, &guest.BirthDate, &guest.Phone, &guest.Document, &email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning guest: %w", err)
	}
	if email.Valid {
		guest.Email = &email.String
	}
	return &guest, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func isPgError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

func requireRows(result sql.Result, entity string, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NotFound("no %s found with ID %d", entity, id)
	}
	return nil
}
