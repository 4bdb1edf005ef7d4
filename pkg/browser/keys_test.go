package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey_Valid(t *testing.T) {
	valid := []string{
		"Enter",
		"Tab",
		"Escape",
		"ArrowDown",
		"F5",
		"a",
		"Z",
		"7",
		"+",
		"KeyA",
		"Digit3",
		"Control",
		"Control+a",
		"Control+Shift+t",
		"Shift+Tab",
		"ControlOrMeta+c",
		"Meta+ArrowLeft",
	}
	for _, key := range valid {
		t.Run(key, func(t *testing.T) {
			assert.NoError(t, ValidateKey(key))
		})
	}
}

func TestValidateKey_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"Entr",
		"enter",
		"Control+",
		"Ctrl+a",
		"Control+Entr",
		"abc",
		"Key1",
		"DigitX",
	}
	for _, key := range invalid {
		name := key
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			err := ValidateKey(key)
			require.Error(t, err)

			var typed *Error
			require.True(t, errors.As(err, &typed))
			assert.Equal(t, KindValidation, typed.Kind)
		})
	}
}
