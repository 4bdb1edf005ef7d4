package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/logging"
	"github.com/entrhq/browserd/pkg/tools"
	browsertools "github.com/entrhq/browserd/pkg/tools/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() *tools.Dispatcher {
	manager := engine.NewManager(engine.Options{})
	dispatcher := tools.NewDispatcher(nil)
	for _, tool := range browsertools.NewRegistry(manager, nil).Tools() {
		dispatcher.Register(tool)
	}
	return dispatcher
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, _ := logging.NewLogger("test")
	t.Cleanup(func() { logger.Close() })
	return logger
}

func decodeResults(t *testing.T, out *bytes.Buffer) []tools.Result {
	t.Helper()
	var results []tools.Result
	decoder := json.NewDecoder(out)
	for decoder.More() {
		var result tools.Result
		require.NoError(t, decoder.Decode(&result))
		results = append(results, result)
	}
	return results
}

func TestServe_OneEnvelopePerLine(t *testing.T) {
	input := strings.Join([]string{
		`{"name":"navigate_to_url","arguments":{"url":"not-a-url"}}`,
		``,
		`not json at all`,
		`{"name":"no_such_tool"}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	err := serve(context.Background(), newTestDispatcher(), strings.NewReader(input), &out, testLogger(t))
	require.NoError(t, err)

	results := decodeResults(t, &out)
	require.Len(t, results, 3)

	for i, result := range results {
		assert.False(t, result.OK, "result %d", i)
		require.NotNil(t, result.Error, "result %d", i)
		assert.Equal(t, string(engine.KindValidation), result.Error.Kind, "result %d", i)
	}
	assert.Contains(t, results[0].Error.Message, "http or https")
	assert.Contains(t, results[1].Error.Message, "malformed call")
	assert.Contains(t, results[2].Error.Message, "no_such_tool")
}

func TestServe_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	// A blocked reader: serve must return on cancellation without input.
	blocked, unblock := newBlockedReader()
	defer unblock()
	err := serve(ctx, newTestDispatcher(), blocked, &out, testLogger(t))
	require.NoError(t, err)
}

// blockedReader blocks on Read until released, standing in for an idle stdin.
type blockedReader struct {
	release chan struct{}
}

func newBlockedReader() (*blockedReader, func()) {
	r := &blockedReader{release: make(chan struct{})}
	var once sync.Once
	return r, func() { once.Do(func() { close(r.release) }) }
}

func (r *blockedReader) Read(p []byte) (int, error) {
	<-r.release
	return 0, io.EOF
}

func TestServe_ScannerGoroutineExitsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// More lines than serve will ever read: after cancellation the reader
	// goroutine must stop sending instead of blocking forever.
	input := strings.Repeat(`{"name":"no_such_tool"}`+"\n", 100)
	before := runtime.NumGoroutine()

	var out bytes.Buffer
	err := serve(ctx, newTestDispatcher(), strings.NewReader(input), &out, testLogger(t))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, time.Second, 10*time.Millisecond, "reader goroutine still running after serve returned")
}

func TestServe_EOFEndsCleanly(t *testing.T) {
	var out bytes.Buffer
	err := serve(context.Background(), newTestDispatcher(), strings.NewReader(""), &out, testLogger(t))
	require.NoError(t, err)
	assert.Zero(t, out.Len())
}

func TestPrintTools(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printTools(&out, newTestDispatcher()))

	var catalog []struct {
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		Schema      map[string]interface{} `json:"schema"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &catalog))
	require.Len(t, catalog, 14)
	assert.Equal(t, "restart_browser", catalog[0].Name)
	for _, entry := range catalog {
		assert.NotEmpty(t, entry.Description, entry.Name)
		assert.NotNil(t, entry.Schema, entry.Name)
	}
}
