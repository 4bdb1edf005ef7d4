package browser

import (
	"bytes"
	"encoding/json"
	"time"

	engine "github.com/entrhq/browserd/pkg/browser"
)

// maxTimeoutMillis caps caller-supplied timeouts at 5 minutes.
const maxTimeoutMillis = 300000

// parseArgs decodes raw into v with strict shape checking: unknown fields
// and mistyped values fail as ValidationError before any session work.
func parseArgs(raw json.RawMessage, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return engine.ValidationErrorf("invalid arguments: %v", err)
	}
	return nil
}

// timeoutFromMillis converts an optional caller timeout in milliseconds,
// falling back to the session default.
func timeoutFromMillis(ms *float64, fallback time.Duration) (time.Duration, error) {
	if ms == nil {
		return fallback, nil
	}
	if *ms <= 0 || *ms > maxTimeoutMillis {
		return 0, engine.ValidationErrorf("timeout must be between 1 and %d milliseconds", maxTimeoutMillis)
	}
	return time.Duration(*ms * float64(time.Millisecond)), nil
}

// timeWindow parses the optional RFC 3339 bounds the telemetry read tools
// accept. Empty strings are open ends; a window whose end precedes its start
// is rejected.
func timeWindow(from, to string) (time.Time, time.Time, error) {
	var start, end time.Time
	if from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return start, end, engine.ValidationErrorf("invalid time_from %q: must be RFC 3339 (e.g. 2026-01-02T15:04:05Z)", from)
		}
		start = parsed
	}
	if to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return start, end, engine.ValidationErrorf("invalid time_to %q: must be RFC 3339 (e.g. 2026-01-02T15:04:05Z)", to)
		}
		end = parsed
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return start, end, engine.ValidationErrorf("time_from %s is after time_to %s", from, to)
	}
	return start, end, nil
}

// clipToWindow keeps the entries whose timestamp falls inside the inclusive
// [start, end] bounds. Zero bounds are open ends.
func clipToWindow[T any](entries []T, timestamp func(T) time.Time, start, end time.Time) []T {
	if start.IsZero() && end.IsZero() {
		return entries
	}
	kept := make([]T, 0, len(entries))
	for _, entry := range entries {
		ts := timestamp(entry)
		if !start.IsZero() && ts.Before(start) {
			continue
		}
		if !end.IsZero() && ts.After(end) {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

// paginate applies the optional offset/limit window the telemetry read tools
// accept, preserving arrival order.
func paginate[T any](entries []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(entries) {
		return []T{}
	}
	entries = entries[offset:]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}
