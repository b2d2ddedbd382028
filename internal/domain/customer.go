package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Customer represents a caller known to the system
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Email     *string

	ExternalID *string // id assigned by the CRM backend, if any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer validates and constructs a customer.
// Phone must contain at least 10 digits after stripping formatting;
// names must be non-empty after trimming whitespace.
func NewCustomer(firstName, lastName, phone string, email *string) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, fmt.Errorf("%w: firstName must not be empty", ErrValidation)
	}

	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return nil, fmt.Errorf("%w: lastName must not be empty", ErrValidation)
	}

	if digits := CleanPhone(phone); len(digits) < MinPhoneDigits {
		return nil, fmt.Errorf("%w: phone must contain at least %d digits", ErrValidation, MinPhoneDigits)
	}

	if email != nil && !strings.Contains(*email, "@") {
		return nil, fmt.Errorf("%w: email is malformed", ErrValidation)
	}

	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Email:     email,
	}, nil
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CleanPhone strips all non-digit characters from a phone number.
// "(555) 123-4567" -> "5551234567"
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
