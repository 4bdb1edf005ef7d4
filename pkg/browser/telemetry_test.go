package browser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBuffer_AppendAndSnapshot(t *testing.T) {
	buf := newRingBuffer[int](3)
	buf.Append(1)
	buf.Append(2)

	assert.Equal(t, []int{1, 2}, buf.Snapshot(false))
	assert.Equal(t, 2, buf.Len())
}

func TestRingBuffer_EvictsOldestWhenFull(t *testing.T) {
	buf := newRingBuffer[int](3)
	for i := 1; i <= 5; i++ {
		buf.Append(i)
	}

	assert.Equal(t, []int{3, 4, 5}, buf.Snapshot(false))
	assert.Equal(t, 3, buf.Len())
}

func TestRingBuffer_SnapshotClear(t *testing.T) {
	buf := newRingBuffer[string](10)
	buf.Append("a")
	buf.Append("b")

	snapshot := buf.Snapshot(true)
	assert.Equal(t, []string{"a", "b"}, snapshot)
	assert.Equal(t, 0, buf.Len())

	// Entries after the clear are retained, not lost.
	buf.Append("c")
	assert.Equal(t, []string{"c"}, buf.Snapshot(false))
}

func TestRingBuffer_SnapshotIsACopy(t *testing.T) {
	buf := newRingBuffer[int](5)
	buf.Append(1)

	snapshot := buf.Snapshot(false)
	snapshot[0] = 99
	buf.Append(2)

	assert.Equal(t, []int{1, 2}, buf.Snapshot(false))
}

func TestRingBuffer_DefaultCapacity(t *testing.T) {
	buf := newRingBuffer[int](0)
	assert.Equal(t, DefaultBufferCapacity, buf.capacity)
}

func TestRingBuffer_ConcurrentAppends(t *testing.T) {
	buf := newRingBuffer[int](100)
	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 50; i++ {
				buf.Append(i)
				buf.Snapshot(false)
			}
		}()
	}
	for g := 0; g < 4; g++ {
		<-done
	}
	assert.Equal(t, 100, buf.Len())
}

func TestTelemetryCollector_ConsoleLogs(t *testing.T) {
	collector := NewTelemetryCollector(10, 10)

	assert.Empty(t, collector.ConsoleLogs(false))

	for i := 0; i < 3; i++ {
		collector.console.Append(&ConsoleLogEntry{
			Level:     "log",
			Text:      fmt.Sprintf("message %d", i),
			Timestamp: time.Now().UTC(),
		})
	}

	logs := collector.ConsoleLogs(false)
	require.Len(t, logs, 3)
	assert.Equal(t, "message 0", logs[0].Text)
	assert.Equal(t, "message 2", logs[2].Text)

	// Clearing read returns everything and empties the buffer.
	assert.Len(t, collector.ConsoleLogs(true), 3)
	assert.Empty(t, collector.ConsoleLogs(false))
}

func TestTelemetryCollector_NetworkRequestsAreCopies(t *testing.T) {
	collector := NewTelemetryCollector(10, 10)

	entry := &NetworkRequestEntry{
		URL:       "https://example.com/api",
		Method:    "GET",
		Timestamp: time.Now().UTC(),
	}
	collector.network.Append(entry)

	before := collector.NetworkRequests(false)
	require.Len(t, before, 1)
	assert.Equal(t, 0, before[0].Status)

	// Status backfill after the read must not mutate the returned copy.
	entry.Status = 200
	assert.Equal(t, 0, before[0].Status)

	after := collector.NetworkRequests(false)
	require.Len(t, after, 1)
	assert.Equal(t, 200, after[0].Status)
}

func TestTelemetryCollector_Reset(t *testing.T) {
	collector := NewTelemetryCollector(10, 10)
	collector.console.Append(&ConsoleLogEntry{Text: "stale"})
	collector.network.Append(&NetworkRequestEntry{URL: "https://old.example"})

	collector.Reset()

	assert.Empty(t, collector.ConsoleLogs(false))
	assert.Empty(t, collector.NetworkRequests(false))
	assert.Empty(t, collector.pending)
}

func TestTelemetryCollector_BoundedCapture(t *testing.T) {
	collector := NewTelemetryCollector(2, 2)
	for i := 0; i < 5; i++ {
		collector.console.Append(&ConsoleLogEntry{Text: fmt.Sprintf("m%d", i)})
	}

	logs := collector.ConsoleLogs(false)
	require.Len(t, logs, 2)
	assert.Equal(t, "m3", logs[0].Text)
	assert.Equal(t, "m4", logs[1].Text)
}
