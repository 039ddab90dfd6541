package domain

import "regexp"

var documentPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// ValidDocument reports whether document is a national ID in the form
// XXX.XXX.XXX-XX.
func ValidDocument(document string) bool {
	return documentPattern.MatchString(document)
}

// Guest represents a registered hotel guest.
type Guest struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	BirthDate Date    `json:"birthDate"`
	Phone     string  `json:"phone"`
	Document  string  `json:"document"`
	Email     *string `json:"email,omitempty"`
}

// GuestUpdate carries the fields of a partial guest update. A nil field means
// "leave unchanged".
type GuestUpdate struct {
	Name      *string `json:"name"`
	BirthDate *Date   `json:"birthDate"`
	Phone     *string `json:"phone"`
	Document  *string `json:"document"`
	Email     *string `json:"email"`
}

// GuestRepository defines the persistence operations for guests. Lookup
// methods return (nil, nil) when no row matches; the services decide how a
// miss surfaces.
type GuestRepository interface {
	// GetAll returns every guest in insertion order.
	GetAll() ([]Guest, error)
	// GetByID returns the guest with the given ID.
	GetByID(id int) (*Guest, error)
	// GetByName returns the guest whose name matches exactly.
	GetByName(name string) (*Guest, error)
	// ExistsByDocument reports whether a guest with the national ID exists.
	ExistsByDocument(document string) (bool, error)
	// Create persists a new guest and assigns its ID.
	Create(guest *Guest) error
	// Update overwrites an existing guest record.
	Update(guest *Guest) error
	// Delete removes the guest with the given ID.
	Delete(id int) error
}
