package browser

import (
	"encoding/json"
	"testing"
	"time"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	type input struct {
		Selector string `json:"selector"`
	}

	t.Run("valid arguments", func(t *testing.T) {
		var v input
		require.NoError(t, parseArgs(json.RawMessage(`{"selector":"#main"}`), &v))
		assert.Equal(t, "#main", v.Selector)
	})

	t.Run("unknown field fails", func(t *testing.T) {
		var v input
		err := parseArgs(json.RawMessage(`{"selector":"#main","extra":1}`), &v)
		require.Error(t, err)
		assert.Equal(t, engine.KindValidation, engine.Classify(err).Kind)
	})

	t.Run("mistyped field fails", func(t *testing.T) {
		var v input
		err := parseArgs(json.RawMessage(`{"selector":42}`), &v)
		require.Error(t, err)
		assert.Equal(t, engine.KindValidation, engine.Classify(err).Kind)
	})

	t.Run("malformed json fails", func(t *testing.T) {
		var v input
		err := parseArgs(json.RawMessage(`{"selector":`), &v)
		require.Error(t, err)
		assert.Equal(t, engine.KindValidation, engine.Classify(err).Kind)
	})
}

func TestTimeoutFromMillis(t *testing.T) {
	fallback := 30 * time.Second

	t.Run("nil uses fallback", func(t *testing.T) {
		timeout, err := timeoutFromMillis(nil, fallback)
		require.NoError(t, err)
		assert.Equal(t, fallback, timeout)
	})

	t.Run("value converts to duration", func(t *testing.T) {
		ms := 1500.0
		timeout, err := timeoutFromMillis(&ms, fallback)
		require.NoError(t, err)
		assert.Equal(t, 1500*time.Millisecond, timeout)
	})

	t.Run("out of range fails", func(t *testing.T) {
		for _, ms := range []float64{0, -1, maxTimeoutMillis + 1} {
			value := ms
			_, err := timeoutFromMillis(&value, fallback)
			require.Error(t, err)
			assert.Equal(t, engine.KindValidation, engine.Classify(err).Kind)
		}
	})
}

func TestTimeWindow(t *testing.T) {
	t.Run("both bounds parse", func(t *testing.T) {
		start, end, err := timeWindow("2026-01-02T15:04:05Z", "2026-01-02T16:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), start.UTC())
		assert.Equal(t, time.Date(2026, 1, 2, 16, 0, 0, 0, time.UTC), end.UTC())
	})

	t.Run("empty strings are open ends", func(t *testing.T) {
		start, end, err := timeWindow("", "")
		require.NoError(t, err)
		assert.True(t, start.IsZero())
		assert.True(t, end.IsZero())
	})

	t.Run("non-RFC3339 bounds fail", func(t *testing.T) {
		_, _, err := timeWindow("yesterday", "")
		require.Error(t, err)
		assert.Equal(t, engine.KindValidation, engine.Classify(err).Kind)

		_, _, err = timeWindow("", "2026-01-02 15:04:05")
		require.Error(t, err)
		assert.Equal(t, engine.KindValidation, engine.Classify(err).Kind)
	})

	t.Run("inverted window fails", func(t *testing.T) {
		_, _, err := timeWindow("2026-01-02T16:00:00Z", "2026-01-02T15:00:00Z")
		require.Error(t, err)
		assert.Equal(t, engine.KindValidation, engine.Classify(err).Kind)
	})
}

func TestClipToWindow(t *testing.T) {
	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	entries := []time.Time{
		base,
		base.Add(1 * time.Minute),
		base.Add(2 * time.Minute),
		base.Add(3 * time.Minute),
	}
	self := func(ts time.Time) time.Time { return ts }

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected []time.Time
	}{
		{"open window keeps all", time.Time{}, time.Time{}, entries},
		{"start only", base.Add(2 * time.Minute), time.Time{}, entries[2:]},
		{"end only", time.Time{}, base.Add(1 * time.Minute), entries[:2]},
		{"both bounds inclusive", base.Add(1 * time.Minute), base.Add(2 * time.Minute), entries[1:3]},
		{"window before all entries", base.Add(-2 * time.Hour), base.Add(-1 * time.Hour), []time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clipToWindow(entries, self, tt.start, tt.end))
		})
	}
}

func TestPaginate(t *testing.T) {
	entries := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		offset   int
		limit    int
		expected []int
	}{
		{"no window", 0, 0, []int{1, 2, 3, 4, 5}},
		{"limit only", 0, 2, []int{1, 2}},
		{"offset only", 3, 0, []int{4, 5}},
		{"offset and limit", 1, 2, []int{2, 3}},
		{"offset past end", 10, 0, []int{}},
		{"limit past end", 0, 10, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, paginate(entries, tt.offset, tt.limit))
		})
	}
}
