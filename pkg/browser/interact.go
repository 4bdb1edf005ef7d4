package browser

import (
	"context"
	"errors"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Interactor performs click/fill/press actions. Click and fill pre-check
// actionability by waiting for visibility; no implicit post-verification
// happens beyond action completion, so callers re-explore the DOM to confirm
// effects.
type Interactor struct {
	Waiter *Waiter

	// Warnf, when set, receives non-fatal notices such as the
	// first-match-wins policy firing on an ambiguous selector.
	Warnf func(format string, args ...interface{})
}

func (i *Interactor) warnf(format string, args ...interface{}) {
	if i.Warnf != nil {
		i.Warnf(format, args...)
	}
}

// Click clicks the first element matching selector after it becomes visible.
func (i *Interactor) Click(ctx context.Context, page playwright.Page, selector string, timeout time.Duration) error {
	handle, err := i.actionable(ctx, page, selector, timeout)
	if err != nil {
		return err
	}
	if err := handle.Click(playwright.ElementHandleClickOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return classifyActionError(err, "click", selector)
	}
	return nil
}

// Fill replaces the content of the first input matching selector after it
// becomes visible.
func (i *Interactor) Fill(ctx context.Context, page playwright.Page, selector, value string, timeout time.Duration) error {
	handle, err := i.actionable(ctx, page, selector, timeout)
	if err != nil {
		return err
	}
	if err := handle.Fill(value, playwright.ElementHandleFillOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return classifyActionError(err, "fill", selector)
	}
	return nil
}

// Press dispatches a key press to the first element matching selector. The
// key name is validated by the caller before any session work happens.
func (i *Interactor) Press(ctx context.Context, page playwright.Page, selector, key string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	handle, total, err := ResolveOne(page, selector)
	if err != nil {
		return err
	}
	if total > 1 {
		i.warnf("selector %q matched %d elements, pressing key on the first", selector, total)
	}
	if err := handle.Press(key, playwright.ElementHandlePressOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return classifyActionError(err, "press", selector)
	}
	return nil
}

// actionable resolves selector to exactly one target (first match wins on
// ambiguity) and waits for it to become visible. A visibility timeout is
// reported as ElementNotInteractable, distinct from an explicit wait's
// WaitTimeout.
func (i *Interactor) actionable(ctx context.Context, page playwright.Page, selector string, timeout time.Duration) (playwright.ElementHandle, error) {
	_, total, err := ResolveOne(page, selector)
	if err != nil {
		return nil, err
	}
	if total > 1 {
		i.warnf("selector %q matched %d elements, acting on the first", selector, total)
	}

	if err := i.Waiter.Wait(ctx, page, selector, WaitVisible, timeout); err != nil {
		var typed *Error
		if errors.As(err, &typed) && typed.Kind == KindWaitTimeout {
			return nil, NotInteractablef(err, "element %q not visible within %s", selector, timeout)
		}
		return nil, err
	}

	// Re-resolve: the handle from the pre-check may have detached while
	// we waited.
	handle, _, err := ResolveOne(page, selector)
	if err != nil {
		return nil, err
	}
	return handle, nil
}

func classifyActionError(err error, action, selector string) error {
	switch {
	case isTargetClosed(err):
		return SessionErrorf(err, "page closed during %s on %q", action, selector)
	case isDriverTimeout(err):
		return NotInteractablef(err, "%s on %q timed out", action, selector)
	default:
		return Unknownf(err, "%s on %q failed", action, selector)
	}
}
