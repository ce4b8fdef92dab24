package checkout

import (
	"fmt"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
)

const maxNotesLength = 5000

// ValidationError lists customer fields that failed validation, keyed by
// field name, in form order.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "invalid customer details: " + strings.Join(msgs, "; ")
}

func ValidateCustomer(c domain.Customer) error {
	required := []struct {
		field string
		value string
		label string
	}{
		{"firstName", c.FirstName, "First name"},
		{"lastName", c.LastName, "Last name"},
		{"email", c.Email, "Email"},
		{"phone", c.Phone, "Phone number"},
		{"address", c.Address, "Address"},
		{"city", c.City, "City"},
		{"state", c.State, "State"},
		{"zipCode", c.ZipCode, "Zip code"},
		{"country", c.Country, "Country"},
	}

	var errs []FieldError
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FieldError{Field: r.field, Message: r.label + " is required"})
		}
	}

	if len(c.Notes) > maxNotesLength {
		errs = append(errs, FieldError{
			Field:   "orderNotes",
			Message: fmt.Sprintf("Order notes must be at most %d characters", maxNotesLength),
		})
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	return nil
}
