package application

import (
	"fmt"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
)

type GuestService struct {
	repo      domain.GuestRepository
	validator Validator
}

// NewGuestService creates a new guest service.
func NewGuestService(repo domain.GuestRepository) *GuestService {
	return &GuestService{repo: repo}
}

// ListAll returns every registered guest. An empty hotel is not an error.
func (s *GuestService) ListAll() ([]domain.Guest, error) {
	guests, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("listing guests: %w", err)
	}
	if guests == nil {
		guests = []domain.Guest{}
	}
	return guests, nil
}

// GetByID returns the guest with the given ID.
func (s *GuestService) GetByID(id int) (*domain.Guest, error) {
	guest, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up guest %d: %w", id, err)
	}
	if guest == nil {
		return nil, domain.NotFound("no guest found with ID %d", id)
	}
	return guest, nil
}

// GetByName returns the guest whose name matches exactly.
func (s *GuestService) GetByName(name string) (*domain.Guest, error) {
	guest, err := s.repo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("looking up guest %q: %w", name, err)
	}
	if guest == nil {
		return nil, domain.NotFound("no guest found with name %q", name)
	}
	return guest, nil
}

// Create validates and persists a new guest. The national ID must not be
// registered already.
func (s *GuestService) Create(guest *domain.Guest) (*domain.Guest, error) {
	if err := s.validator.ValidateName(guest.Name); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateBirthDate(guest.BirthDate); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePhone(guest.Phone); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateDocument(guest.Document); err != nil {
		return nil, err
	}
	if guest.Email != nil {
		if err := s.validator.ValidateEmail(*guest.Email); err != nil {
			return nil, err
		}
	}

	if err := s.checkDocumentFree(guest.Document); err != nil {
		return nil, err
	}

	if err := s.repo.Create(guest); err != nil {
		return nil, fmt.Errorf("creating guest: %w", err)
	}
	return guest, nil
}

// Update applies a partial update. Nil fields are preserved unchanged; a new
// national ID is re-checked for uniqueness before it overwrites the current
// one.
func (s *GuestService) Update(id int, update domain.GuestUpdate) (*domain.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Document != nil && *update.Document != guest.Document {
		if err := s.validator.ValidateDocument(*update.Document); err != nil {
			return nil, err
		}
		if err := s.checkDocumentFree(*update.Document); err != nil {
			return nil, err
		}
		guest.Document = *update.Document
	}

	if update.Name != nil {
		if err := s.validator.ValidateName(*update.Name); err != nil {
			return nil, err
		}
		guest.Name = *update.Name
	}

	if update.Phone != nil {
		if err := s.validator.ValidatePhone(*update.Phone); err != nil {
			return nil, err
		}
		guest.Phone = *update.Phone
	}

	if update.BirthDate != nil {
		if err := s.validator.ValidateBirthDate(*update.BirthDate); err != nil {
			return nil, err
		}
		guest.BirthDate = *update.BirthDate
	}

	if update.Email != nil {
		if err := s.validator.ValidateEmail(*update.Email); err != nil {
			return nil, err
		}
		guest.Email = update.Email
	}

	if err := s.repo.Update(guest); err != nil {
		return nil, fmt.Errorf("updating guest %d: %w", id, err)
	}
	return guest, nil
}

// Delete removes a guest after checking it exists. Guests referenced by
// reservations are protected by the foreign key; the repository surfaces that
// as a validation error.
func (s *GuestService) Delete(id int) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		if domain.IsValidation(err) {
			return err
		}
		return fmt.Errorf("deleting guest %d: %w", id, err)
	}
	return nil
}

func (s *GuestService) checkDocumentFree(document string) error {
	exists, err := s.repo.ExistsByDocument(document)
	if err != nil {
		return fmt.Errorf("checking document %s: %w", document, err)
	}
	if exists {
		return domain.Duplicate("document %s is already registered", document)
	}
	return nil
}
