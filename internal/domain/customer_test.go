package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callassist/CallAssist-BookingService/pkg/ptr"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		c, err := NewCustomer("John", "Smith", "(555) 123-4567", nil)
		require.NoError(t, err)
		assert.Equal(t, "John Smith", c.FullName())
	})

	t.Run("formatted phone passes digit check", func(t *testing.T) {
		_, err := NewCustomer("John", "Smith", "+1 555-123-4567", nil)
		assert.NoError(t, err)
	})

	t.Run("trims names", func(t *testing.T) {
		c, err := NewCustomer("  John ", " Smith ", "5551234567", nil)
		require.NoError(t, err)
		assert.Equal(t, "John", c.FirstName)
		assert.Equal(t, "Smith", c.LastName)
	})

	t.Run("empty first name", func(t *testing.T) {
		_, err := NewCustomer("  ", "Smith", "5551234567", nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty last name", func(t *testing.T) {
		_, err := NewCustomer("John", "", "5551234567", nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("phone too short", func(t *testing.T) {
		_, err := NewCustomer("John", "Smith", "123", nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := NewCustomer("John", "Smith", "5551234567", ptr.Ptr("not-an-email"))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("valid email", func(t *testing.T) {
		c, err := NewCustomer("John", "Smith", "5551234567", ptr.Ptr("john@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", *c.Email)
	})
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "5551234567", CleanPhone("(555) 123-4567"))
	assert.Equal(t, "15551234567", CleanPhone("+1 555 123 4567"))
	assert.Equal(t, "", CleanPhone("abc"))
}
