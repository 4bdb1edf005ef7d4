package browser

import (
	"context"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Waiter polls a condition against the live page until it holds or a timeout
// elapses. The loop is explicit rather than delegated to the driver so the
// timing contract is ours: a fixed poll interval, the condition checked
// before the deadline (Satisfied wins the tie), and cancellation observed
// within one interval.
type Waiter struct {
	// Interval between condition checks. Zero means DefaultPollInterval.
	Interval time.Duration
}

// probeFunc reports whether the awaited condition currently holds.
type probeFunc func() (bool, error)

// Wait blocks until the element state holds for selector, failing with
// WaitTimeout once the cumulative elapsed time reaches timeout.
func (w *Waiter) Wait(ctx context.Context, page playwright.Page, selector string, state WaitState, timeout time.Duration) error {
	if !ValidWaitState(state) {
		return ValidationErrorf("invalid wait state %q", state)
	}
	satisfied, err := w.poll(ctx, timeout, func() (bool, error) {
		return checkState(page, selector, state)
	})
	if err != nil {
		return err
	}
	if !satisfied {
		return WaitTimeoutf("element %q did not become %s within %s", selector, state, timeout)
	}
	return nil
}

// poll runs probe at the configured interval until it reports true, the
// timeout elapses, or ctx is cancelled. The final probe happens at or after
// the deadline, never before, so a condition turning true exactly at the
// deadline still counts as satisfied.
func (w *Waiter) poll(ctx context.Context, timeout time.Duration, probe probeFunc) (bool, error) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	start := time.Now()
	for {
		ok, err := probe()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		remaining := timeout - time.Since(start)
		if remaining <= 0 {
			return false, nil
		}
		sleep := interval
		if remaining < sleep {
			sleep = remaining
		}

		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		case <-timer.C:
		}
	}
}

// checkState resolves selector afresh and evaluates the state predicate.
// Handles are never reused across polls: elements may detach at any time.
func checkState(page playwright.Page, selector string, state WaitState) (bool, error) {
	handles, err := Resolve(page, selector)
	if err != nil {
		return false, err
	}

	switch state {
	case WaitAttached:
		return len(handles) > 0, nil
	case WaitDetached:
		return len(handles) == 0, nil
	case WaitVisible:
		return anyVisible(handles), nil
	case WaitHidden:
		return !anyVisible(handles), nil
	default:
		return false, ValidationErrorf("invalid wait state %q", state)
	}
}

func anyVisible(handles []playwright.ElementHandle) bool {
	for _, handle := range handles {
		// A handle that detached between resolution and this check is
		// simply not visible.
		if visible, err := handle.IsVisible(); err == nil && visible {
			return true
		}
	}
	return false
}
