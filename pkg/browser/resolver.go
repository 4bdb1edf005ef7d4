package browser

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Resolve returns the live element handles matching selector, in document
// order. It never mutates the page. Zero matches is not an error here:
// callers decide whether an empty result is acceptable.
func Resolve(page playwright.Page, selector string) ([]playwright.ElementHandle, error) {
	handles, err := page.QuerySelectorAll(selector)
	if err != nil {
		if strings.Contains(err.Error(), "not a valid selector") {
			return nil, ValidationErrorf("invalid selector %q", selector)
		}
		if isTargetClosed(err) {
			return nil, SessionErrorf(err, "page closed during selector query")
		}
		return nil, Unknownf(err, "selector query failed for %q", selector)
	}
	return handles, nil
}

// ResolveOne returns the first match for selector in document order, failing
// with ElementNotFound on zero matches. The total match count is returned so
// callers can surface the first-match-wins policy when it applies.
func ResolveOne(page playwright.Page, selector string) (playwright.ElementHandle, int, error) {
	handles, err := Resolve(page, selector)
	if err != nil {
		return nil, 0, err
	}
	if len(handles) == 0 {
		return nil, 0, ElementNotFoundf("no element matches selector %q", selector)
	}
	return handles[0], len(handles), nil
}

// ElementText returns the text content of the first element matching
// selector.
func ElementText(page playwright.Page, selector string) (string, error) {
	handle, _, err := ResolveOne(page, selector)
	if err != nil {
		return "", err
	}
	text, err := handle.TextContent()
	if err != nil {
		if isTargetClosed(err) {
			return "", SessionErrorf(err, "page closed while reading text")
		}
		return "", Unknownf(err, "text extraction failed for %q", selector)
	}
	return text, nil
}

// DescribeElements returns a lightweight descriptor for every element
// matching selector, in document order. An empty result is a successful
// empty list.
func DescribeElements(page playwright.Page, selector string) ([]ElementDescriptor, error) {
	handles, err := Resolve(page, selector)
	if err != nil {
		return nil, err
	}
	descriptors := make([]ElementDescriptor, 0, len(handles))
	for i, handle := range handles {
		desc := ElementDescriptor{Index: i}
		if v, err := handle.Evaluate(jsTagName); err == nil {
			desc.Tag, _ = v.(string)
		}
		if v, err := handle.Evaluate(jsDirectText); err == nil {
			if text, ok := v.(string); ok {
				desc.Text = truncateText(text, maxDescriptorText)
			}
		}
		if id, err := handle.GetAttribute("id"); err == nil {
			desc.ID = id
		}
		if class, err := handle.GetAttribute("class"); err == nil {
			desc.Class = class
		}
		descriptors = append(descriptors, desc)
	}
	return descriptors, nil
}
