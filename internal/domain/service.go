package domain

import (
	"fmt"
	"strings"
)

// Service represents a bookable service offering
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
	IsActive        bool
	Category        *string
}

// NewService validates and constructs a service offering
func NewService(id, name string, durationMinutes int, price float64, category *string) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if durationMinutes > MaxDurationMinutes {
		return nil, fmt.Errorf("%w: duration must not exceed %d minutes", ErrValidation, MaxDurationMinutes)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	return &Service{
		ID:              id,
		Name:            name,
		DurationMinutes: durationMinutes,
		Price:           price,
		IsActive:        true,
		Category:        category,
	}, nil
}
