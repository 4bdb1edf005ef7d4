package browser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Formatting(t *testing.T) {
	err := ValidationErrorf("selector is required")
	assert.Equal(t, "validation_error: selector is required", err.Error())

	cause := errors.New("connection refused")
	wrapped := SessionErrorf(cause, "browser launch failed")
	assert.Equal(t, "session_error: browser launch failed: connection refused", wrapped.Error())
	assert.Equal(t, cause, errors.Unwrap(wrapped))
}

func TestError_KindsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind ErrorKind
	}{
		{"validation", ValidationErrorf("bad"), KindValidation},
		{"session", SessionErrorf(nil, "dead"), KindSession},
		{"not found", ElementNotFoundf("none"), KindElementNotFound},
		{"not interactable", NotInteractablef(nil, "hidden"), KindNotInteractable},
		{"wait timeout", WaitTimeoutf("slow"), KindWaitTimeout},
		{"navigation timeout", NavigationTimeoutf(nil, "slow"), KindNavigationTimeout},
		{"script", ScriptErrorf(nil, "boom"), KindScript},
		{"serialization", SerializationErrorf("cycle"), KindSerialization},
		{"unknown", Unknownf(nil, "odd"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Classify(nil))
	})

	t.Run("typed error passes through", func(t *testing.T) {
		original := ElementNotFoundf("no match for %q", "#missing")
		classified := Classify(original)
		assert.Same(t, original, classified)
	})

	t.Run("wrapped typed error is recovered", func(t *testing.T) {
		original := WaitTimeoutf("too slow")
		wrapped := fmt.Errorf("during wait: %w", original)
		classified := Classify(wrapped)
		require.NotNil(t, classified)
		assert.Equal(t, KindWaitTimeout, classified.Kind)
	})

	t.Run("untyped error becomes unknown", func(t *testing.T) {
		classified := Classify(errors.New("something odd"))
		require.NotNil(t, classified)
		assert.Equal(t, KindUnknown, classified.Kind)
		assert.ErrorContains(t, classified, "something odd")
	})
}

func TestIsDriverTimeout(t *testing.T) {
	assert.True(t, isDriverTimeout(errors.New("Timeout 30000ms exceeded")))
	assert.False(t, isDriverTimeout(errors.New("element not visible")))
	assert.False(t, isDriverTimeout(nil))
}

func TestIsTargetClosed(t *testing.T) {
	assert.True(t, isTargetClosed(errors.New("Target closed")))
	assert.True(t, isTargetClosed(errors.New("Target page, context or browser has been closed")))
	assert.False(t, isTargetClosed(errors.New("Timeout 30000ms exceeded")))
	assert.False(t, isTargetClosed(nil))
}
