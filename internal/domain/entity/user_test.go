package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coremocks "github.com/parlayhq/wager-engine/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("u-1", "ayse", "100.00", RoleUser, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "ayse", user.Username)
		assert.Equal(t, int64(10000), user.BalanceCents())
		assert.Equal(t, "100.00", user.Balance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.False(t, user.IsAdmin())
	})

	t.Run("Username is trimmed", func(t *testing.T) {
		user, err := NewUser("u-1", "  mehmet  ", "0", RoleAdmin, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "mehmet", user.Username)
		assert.True(t, user.IsAdmin())
	})

	t.Run("Empty username rejected", func(t *testing.T) {
		_, err := NewUser("u-1", "   ", "100.00", RoleUser, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		_, err := NewUser("u-1", "ayse", "100.00", Role("OWNER"), mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})

	t.Run("Invalid balance formats rejected", func(t *testing.T) {
		for _, balance := range []string{"", "abc", "100.123", "-5"} {
			_, err := NewUser("u-1", "ayse", balance, RoleUser, mockTime)
			assert.Error(t, err, balance)
		}
	})
}

func TestUserBalanceOperations(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user, err := NewUser("u-1", "ayse", "100.00", RoleUser, mockTime)
	require.NoError(t, err)

	t.Run("CanDebit", func(t *testing.T) {
		assert.True(t, user.CanDebit(10000))
		assert.True(t, user.CanDebit(9999))
		assert.False(t, user.CanDebit(10001))
	})

	t.Run("SetBalanceCents", func(t *testing.T) {
		later := fixedTime.Add(time.Hour)
		laterTime := coremocks.NewMockTimeProvider(t)
		laterTime.EXPECT().Now().Return(later)

		user.SetBalanceCents(2500, laterTime)

		assert.Equal(t, int64(2500), user.BalanceCents())
		assert.Equal(t, "25.00", user.Balance())
		assert.Equal(t, later, user.UpdatedAt)
	})
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("USER"))
	assert.True(t, IsValidRole("ADMIN"))
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole(""))
}
