package browser

import (
	"unicode/utf8"

	"github.com/playwright-community/playwright-go"
)

// In-page snippets used to read element properties. Attribute order is
// whatever the document declares; direct text excludes descendant text.
const (
	jsTagName = `el => el.tagName ? el.tagName.toLowerCase() : el.nodeName.toLowerCase()`

	jsAttributes = `el => {
		if (el.nodeType !== Node.ELEMENT_NODE) return [];
		return Array.from(el.attributes).map(a => [a.name, a.value]);
	}`

	jsDirectText = `el => {
		let text = "";
		for (const n of el.childNodes) {
			if (n.nodeType === Node.TEXT_NODE) text += n.textContent;
		}
		return text.trim();
	}`
)

// ExplorePage serializes the DOM into a bounded-depth tree. With an empty
// selector the traversal is rooted at the document body; otherwise at the
// first element matching selector (ElementNotFound on zero matches).
func ExplorePage(page playwright.Page, selector string, maxDepth int) (*DomNode, error) {
	if maxDepth < 0 {
		return nil, ValidationErrorf("max_depth must be non-negative, got %d", maxDepth)
	}

	var root playwright.ElementHandle
	if selector == "" {
		handle, err := page.QuerySelector("body")
		if err != nil {
			if isTargetClosed(err) {
				return nil, SessionErrorf(err, "page closed during exploration")
			}
			return nil, Unknownf(err, "body query failed")
		}
		if handle == nil {
			return nil, ElementNotFoundf("document has no body element")
		}
		root = handle
	} else {
		handle, _, err := ResolveOne(page, selector)
		if err != nil {
			return nil, err
		}
		root = handle
	}

	return exploreElement(root, 0, maxDepth)
}

// exploreElement serializes one element. Children are visited only while the
// hop count stays within maxDepth; nodes beyond it are omitted entirely.
// Embedded documents (iframe/frame) are emitted as marked leaves because the
// traversal never crosses a browsing-context boundary.
func exploreElement(el playwright.ElementHandle, depth, maxDepth int) (*DomNode, error) {
	node := &DomNode{Depth: depth}

	v, err := el.Evaluate(jsTagName)
	if err != nil {
		if isTargetClosed(err) {
			return nil, SessionErrorf(err, "page closed during exploration")
		}
		return nil, Unknownf(err, "tag read failed")
	}
	node.Tag, _ = v.(string)

	if v, err := el.Evaluate(jsAttributes); err == nil {
		node.Attributes = parseAttributes(v)
	}

	if v, err := el.Evaluate(jsDirectText); err == nil {
		if text, ok := v.(string); ok && text != "" {
			node.Text = truncateText(text, maxDescriptorText)
		}
	}

	if isFrameTag(node.Tag) {
		node.Attributes = append(node.Attributes, Attribute{Name: FrameBoundaryAttr, Value: "true"})
		return node, nil
	}

	if depth >= maxDepth {
		return node, nil
	}

	children, err := el.QuerySelectorAll(":scope > *")
	if err != nil {
		if isTargetClosed(err) {
			return nil, SessionErrorf(err, "page closed during exploration")
		}
		return nil, Unknownf(err, "child query failed")
	}
	for _, child := range children {
		childNode, err := exploreElement(child, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

// parseAttributes converts the evaluated [[name, value], ...] pairs into an
// order-preserving attribute slice. Malformed pairs are skipped.
func parseAttributes(v interface{}) []Attribute {
	pairs, ok := v.([]interface{})
	if !ok {
		return nil
	}
	attrs := make([]Attribute, 0, len(pairs))
	for _, raw := range pairs {
		pair, ok := raw.([]interface{})
		if !ok || len(pair) != 2 {
			continue
		}
		name, nameOK := pair[0].(string)
		value, valueOK := pair[1].(string)
		if !nameOK || !valueOK {
			continue
		}
		attrs = append(attrs, Attribute{Name: name, Value: value})
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// isFrameTag reports whether tag hosts an embedded browsing context.
func isFrameTag(tag string) bool {
	return tag == "iframe" || tag == "frame"
}

// truncateText caps s at max runes, appending an ellipsis when cut.
func truncateText(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
