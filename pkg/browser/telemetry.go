package browser

import (
	"fmt"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ringBuffer is a capacity-bounded, arrival-ordered buffer. When full, the
// oldest entry is evicted to make room. Appends and snapshots never share a
// lock with tool execution, so capture keeps up while a call is in flight.
type ringBuffer[T any] struct {
	mu       sync.Mutex
	entries  []T
	capacity int
}

func newRingBuffer[T any](capacity int) *ringBuffer[T] {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	return &ringBuffer[T]{capacity: capacity}
}

func (b *ringBuffer[T]) Append(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = v
		return
	}
	b.entries = append(b.entries, v)
}

// Snapshot returns the buffered entries in arrival order. When clear is set,
// the snapshot and the clear happen under one critical section: no entry is
// both returned and retained, and entries arriving afterwards are kept.
func (b *ringBuffer[T]) Snapshot(clear bool) []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]T, len(b.entries))
	copy(out, b.entries)
	if clear {
		b.entries = b.entries[:0]
	}
	return out
}

func (b *ringBuffer[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = b.entries[:0]
}

func (b *ringBuffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// TelemetryCollector buffers console messages and network requests captured
// from the live page. Subscriptions are established once per session and die
// with the page; Reset is called on restart because the buffers describe the
// replaced session.
type TelemetryCollector struct {
	console *ringBuffer[*ConsoleLogEntry]
	network *ringBuffer[*NetworkRequestEntry]

	// pending maps in-flight requests to their entries so the status can
	// be backfilled when the response resolves.
	pendingMu sync.Mutex
	pending   map[playwright.Request]*NetworkRequestEntry
}

// NewTelemetryCollector creates a collector with the given per-buffer
// capacities.
func NewTelemetryCollector(consoleCapacity, networkCapacity int) *TelemetryCollector {
	return &TelemetryCollector{
		console: newRingBuffer[*ConsoleLogEntry](consoleCapacity),
		network: newRingBuffer[*NetworkRequestEntry](networkCapacity),
		pending: make(map[playwright.Request]*NetworkRequestEntry),
	}
}

// Attach subscribes the collector to a freshly created page. Handlers run on
// the driver's event goroutine and only touch buffer locks.
func (c *TelemetryCollector) Attach(page playwright.Page) {
	page.OnConsole(c.recordConsole)
	page.OnRequest(c.recordRequest)
	page.OnResponse(c.recordResponse)
	page.OnRequestFailed(c.recordRequestFailed)
}

func (c *TelemetryCollector) recordConsole(msg playwright.ConsoleMessage) {
	entry := &ConsoleLogEntry{
		Level:     msg.Type(),
		Text:      msg.Text(),
		Timestamp: time.Now().UTC(),
	}
	if loc := msg.Location(); loc != nil && loc.URL != "" {
		entry.Location = fmt.Sprintf("%s:%d", loc.URL, loc.LineNumber)
	}
	c.console.Append(entry)
}

func (c *TelemetryCollector) recordRequest(req playwright.Request) {
	entry := &NetworkRequestEntry{
		URL:          req.URL(),
		Method:       req.Method(),
		ResourceType: req.ResourceType(),
		Timestamp:    time.Now().UTC(),
	}
	c.pendingMu.Lock()
	c.pending[req] = entry
	c.pendingMu.Unlock()
	c.network.Append(entry)
}

func (c *TelemetryCollector) recordResponse(resp playwright.Response) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	if entry, ok := c.pending[resp.Request()]; ok {
		entry.Status = resp.Status()
		delete(c.pending, resp.Request())
	}
}

func (c *TelemetryCollector) recordRequestFailed(req playwright.Request) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	delete(c.pending, req)
}

// ConsoleLogs returns a point-in-time snapshot of the console buffer in
// arrival order, optionally clearing it atomically.
func (c *TelemetryCollector) ConsoleLogs(clear bool) []ConsoleLogEntry {
	snapshot := c.console.Snapshot(clear)
	out := make([]ConsoleLogEntry, len(snapshot))
	for i, entry := range snapshot {
		out[i] = *entry
	}
	return out
}

// NetworkRequests returns a point-in-time snapshot of the network buffer in
// arrival order, optionally clearing it atomically. The copy is taken under
// pendingMu because status backfill mutates entries in place.
func (c *TelemetryCollector) NetworkRequests(clear bool) []NetworkRequestEntry {
	snapshot := c.network.Snapshot(clear)
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	out := make([]NetworkRequestEntry, len(snapshot))
	for i, entry := range snapshot {
		out[i] = *entry
	}
	return out
}

// Reset discards all buffered telemetry and pending request tracking. Called
// when the session is replaced.
func (c *TelemetryCollector) Reset() {
	c.console.Clear()
	c.network.Clear()
	c.pendingMu.Lock()
	c.pending = make(map[playwright.Request]*NetworkRequestEntry)
	c.pendingMu.Unlock()
}
