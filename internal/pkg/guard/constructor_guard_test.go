package guard_test

import (
	"errors"
	"testing"

	"cherry/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows the intended embedding pattern on a
// small value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type passcode struct {
		value string
		guard guard.ConstructorGuard
	}

	errPasscodeNotConstructed := errors.New("passcode must be created via newPasscode")

	newPasscode := func(value string) (passcode, error) {
		if value == "" {
			return passcode{}, errors.New("value is required")
		}
		return passcode{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		p, err := newPasscode("8888")

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPasscodeNotConstructed))
		assert.Equal(t, "8888", p.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p passcode

		err := p.guard.Validate(errPasscodeNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errPasscodeNotConstructed, err)
	})
}
