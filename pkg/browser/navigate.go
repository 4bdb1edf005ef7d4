package browser

import (
	"net/url"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ValidateURL checks that raw is an absolute http(s) URL. Anything else is
// rejected before the session is touched.
func ValidateURL(raw string) error {
	if raw == "" {
		return ValidationErrorf("url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ValidationErrorf("invalid url %q: %v", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ValidationErrorf("url %q must use http or https", raw)
	}
	if parsed.Host == "" {
		return ValidationErrorf("url %q has no host", raw)
	}
	return nil
}

// Navigate loads targetURL in the page, failing with NavigationTimeout when
// the deadline elapses.
func Navigate(page playwright.Page, targetURL string, timeout time.Duration) error {
	_, err := page.Goto(targetURL, playwright.PageGotoOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return classifyNavigationError(err, "navigation to "+targetURL)
}

// Reload reloads the current page with the same timeout semantics as
// Navigate.
func Reload(page playwright.Page, timeout time.Duration) error {
	_, err := page.Reload(playwright.PageReloadOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return classifyNavigationError(err, "reload")
}

func classifyNavigationError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case isDriverTimeout(err):
		return NavigationTimeoutf(err, "%s timed out", what)
	case isTargetClosed(err):
		return SessionErrorf(err, "page closed during %s", what)
	default:
		return Unknownf(err, "%s failed", what)
	}
}
