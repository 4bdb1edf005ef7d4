package browser

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Options configures the managed browser session. Values arrive already
// validated from the configuration layer.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// SlowMo delays each driver operation by the given amount, for
	// observing what the browser is doing. Zero disables it.
	SlowMo time.Duration

	// Timeout is the default deadline for navigations and actions.
	Timeout time.Duration

	// PollInterval is the pause between element-state checks in waits.
	PollInterval time.Duration

	// Viewport dimensions for the page.
	ViewportWidth  int
	ViewportHeight int

	// Buffer capacities for captured telemetry.
	ConsoleCapacity int
	NetworkCapacity int

	// InstallDriver downloads the browser binaries on first launch when set.
	InstallDriver bool
}

func (o *Options) applyDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = DefaultViewportWidth
	}
	if o.ViewportHeight <= 0 {
		o.ViewportHeight = DefaultViewportHeight
	}
	if o.ConsoleCapacity <= 0 {
		o.ConsoleCapacity = DefaultBufferCapacity
	}
	if o.NetworkCapacity <= 0 {
		o.NetworkCapacity = DefaultBufferCapacity
	}
}

// Manager owns the single browser session: at most one browser and one page
// exist at any time, and every other component borrows the page transiently
// through EnsureReady. State transitions are guarded by mu; tool-call
// serialization is the dispatcher's job, not the manager's.
type Manager struct {
	mu sync.Mutex

	opts      Options
	telemetry *TelemetryCollector

	pw         *playwright.Playwright
	browser    playwright.Browser
	browserCtx playwright.BrowserContext
	page       playwright.Page

	state   SessionState
	closing bool

	// gen increments on every launch so crash events from a torn-down
	// browser cannot poison the session that replaced it.
	gen int
}

// NewManager creates a manager in the Closed state. The browser launches
// lazily on the first EnsureReady.
func NewManager(opts Options) *Manager {
	opts.applyDefaults()
	return &Manager{
		opts:      opts,
		telemetry: NewTelemetryCollector(opts.ConsoleCapacity, opts.NetworkCapacity),
		state:     StateClosed,
	}
}

// Telemetry returns the collector bound to the managed session.
func (m *Manager) Telemetry() *TelemetryCollector {
	return m.telemetry
}

// State returns the current session state.
func (m *Manager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Timeout returns the configured default operation deadline.
func (m *Manager) Timeout() time.Duration {
	return m.opts.Timeout
}

// PollInterval returns the configured pause between wait condition checks.
func (m *Manager) PollInterval() time.Duration {
	return m.opts.PollInterval
}

// EnsureReady returns the live page, launching the browser if the session is
// Closed and performing exactly one automatic relaunch if it has Crashed. A
// failed relaunch surfaces as SessionError and leaves the session Closed, so
// the next call retries recovery rather than locking out permanently.
func (m *Manager) EnsureReady(ctx context.Context) (playwright.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateReady:
		// A disconnect may not have been observed yet. Probe the handle
		// so we recover here instead of failing the caller's operation.
		if m.browser != nil && m.browser.IsConnected() {
			return m.page, nil
		}
		m.state = StateCrashed
		fallthrough
	case StateCrashed:
		m.teardownLocked()
		if err := m.launchLocked(); err != nil {
			return nil, SessionErrorf(err, "relaunch after crash failed")
		}
		return m.page, nil
	case StateClosed:
		if err := m.launchLocked(); err != nil {
			return nil, SessionErrorf(err, "browser launch failed")
		}
		return m.page, nil
	default:
		return nil, SessionErrorf(nil, "session in unexpected state %s", m.state)
	}
}

// Restart unconditionally tears down any existing browser (ignoring teardown
// errors) and launches a fresh one. It always ends Ready or fails with
// SessionError; it never leaves the session Crashed.
func (m *Manager) Restart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.teardownLocked()
	if err := m.launchLocked(); err != nil {
		return SessionErrorf(err, "restart failed")
	}
	return nil
}

// Shutdown tears down the session and stops the driver.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.teardownLocked()
	if m.pw != nil {
		err := m.pw.Stop()
		m.pw = nil
		return err
	}
	return nil
}

// launchLocked runs the launch sequence: driver, browser, context, page,
// telemetry subscriptions, crash hooks. Caller holds mu.
func (m *Manager) launchLocked() error {
	m.state = StateLaunching

	if m.pw == nil {
		runOpts := &playwright.RunOptions{
			Verbose: false,
			Stdout:  io.Discard,
			Stderr:  io.Discard,
		}
		if m.opts.InstallDriver {
			if err := playwright.Install(runOpts); err != nil {
				m.state = StateClosed
				return err
			}
		}
		pw, err := playwright.Run(runOpts)
		if err != nil {
			m.state = StateClosed
			return err
		}
		m.pw = pw
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(m.opts.Headless),
	}
	if m.opts.SlowMo > 0 {
		launchOpts.SlowMo = playwright.Float(float64(m.opts.SlowMo.Milliseconds()))
	}
	browser, err := m.pw.Chromium.Launch(launchOpts)
	if err != nil {
		m.state = StateClosed
		return err
	}

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  m.opts.ViewportWidth,
			Height: m.opts.ViewportHeight,
		},
	})
	if err != nil {
		browser.Close()
		m.state = StateClosed
		return err
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		browser.Close()
		m.state = StateClosed
		return err
	}
	page.SetDefaultTimeout(float64(m.opts.Timeout.Milliseconds()))

	// Buffers describe the session they were captured from; a new session
	// starts empty.
	m.telemetry.Reset()
	m.telemetry.Attach(page)

	m.gen++
	gen := m.gen
	browser.OnDisconnected(func(playwright.Browser) { m.markCrashed(gen) })
	page.OnCrash(func(playwright.Page) { m.markCrashed(gen) })

	m.browser = browser
	m.browserCtx = browserCtx
	m.page = page
	m.state = StateReady
	return nil
}

// teardownLocked closes page, context and browser in that order, ignoring
// errors: the resources may already be dead. Caller holds mu.
func (m *Manager) teardownLocked() {
	m.closing = true
	if m.page != nil {
		_ = m.page.Close()
		m.page = nil
	}
	if m.browserCtx != nil {
		_ = m.browserCtx.Close()
		m.browserCtx = nil
	}
	if m.browser != nil {
		_ = m.browser.Close()
		m.browser = nil
	}
	m.closing = false
	m.state = StateClosed
}

// markCrashed records an asynchronous browser death so the next EnsureReady
// triggers recovery instead of operating on a dead handle. Disconnects from
// our own teardown, or from a browser that has already been replaced, are
// ignored.
func (m *Manager) markCrashed(gen int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closing || gen != m.gen || m.state != StateReady {
		return
	}
	m.state = StateCrashed
}
