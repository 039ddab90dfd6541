package application

import (
	"regexp"
	"strings"

	"github.com/KarenButarello/CRUD-Hotel/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// Validator bundles the field-level checks shared by the guest operations.
type Validator struct{}

// ValidateName requires a non-blank name.
func (v *Validator) ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.Validation("name is required")
	}
	return nil
}

// ValidatePhone requires a non-blank phone with 7 to 15 digits.
func (v *Validator) ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return domain.Validation("phone is required")
	}

	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phonePattern.MatchString(clean) {
		return domain.Validation("phone %q must have between 7 and 15 digits", phone)
	}
	return nil
}

// ValidateDocument requires a national ID in the form XXX.XXX.XXX-XX.
func (v *Validator) ValidateDocument(document string) error {
	if strings.TrimSpace(document) == "" {
		return domain.Validation("document is required")
	}
	if !domain.ValidDocument(document) {
		return domain.Validation("document must be in the format XXX.XXX.XXX-XX")
	}
	return nil
}

// ValidateEmail checks the email format.
func (v *Validator) ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return domain.Validation("email %q is not valid", email)
	}
	return nil
}

// ValidateBirthDate requires a birth date that is set and not in the future.
func (v *Validator) ValidateBirthDate(birthDate domain.Date) error {
	if birthDate.IsZero() {
		return domain.Validation("birth date is required")
	}
	if birthDate.After(domain.Today()) {
		return domain.Validation("birth date cannot be in the future")
	}
	return nil
}
