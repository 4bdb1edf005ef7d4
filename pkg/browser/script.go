package browser

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Markers thrown from the in-page probe so Go can tell a runtime failure in
// the user's code apart from an unrepresentable result.
const (
	scriptErrMarker        = "__script_error__:"
	unserializableMarker   = "__unserializable__:"
	scriptSerializableBody = `
	if (typeof __result === "function" || typeof __result === "symbol") {
		throw new Error("__unserializable__:" + typeof __result);
	}
	if (typeof Node !== "undefined" && __result instanceof Node) {
		throw new Error("__unserializable__:" + (__result.nodeName || "node"));
	}
	if (typeof Window !== "undefined" && __result instanceof Window) {
		throw new Error("__unserializable__:window");
	}
	try {
		JSON.stringify(__result);
	} catch (err) {
		throw new Error("__unserializable__:" + (err && err.message ? err.message : String(err)));
	}
	return __result === undefined ? null : __result;`
)

// Evaluate runs code in the page context with args bound positionally and
// returns the serialized result. Runtime failures in the code surface as
// ScriptError; results outside the value contract (functions, symbols, DOM
// nodes, the window object, cyclic structures) surface as SerializationError
// instead of being coerced. DOM nodes stringify to "{}", so they need their
// own check ahead of the JSON.stringify pass.
func Evaluate(page playwright.Page, code string, args []interface{}) (interface{}, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ValidationErrorf("script code is empty")
	}
	if args == nil {
		args = []interface{}{}
	}

	result, err := page.Evaluate(buildScriptProbe(code), args)
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, unserializableMarker):
			return nil, SerializationErrorf("result is not serializable: %s", markerDetail(msg, unserializableMarker))
		case strings.Contains(msg, scriptErrMarker):
			return nil, ScriptErrorf(nil, "%s", markerDetail(msg, scriptErrMarker))
		case isTargetClosed(err):
			return nil, SessionErrorf(err, "page closed during script evaluation")
		default:
			// Syntax errors in the submitted code land here.
			return nil, ScriptErrorf(err, "script evaluation failed")
		}
	}
	return result, nil
}

// buildScriptProbe wraps user code so it executes with the bound arguments
// and its result is vetted in-page before crossing the boundary. Function
// sources are invoked with the arguments spread; expressions just evaluate.
func buildScriptProbe(code string) string {
	if looksLikeFunction(code) {
		return fmt.Sprintf(`async (__args) => {
	let __result;
	try {
		__result = await (%s)(...__args);
	} catch (err) {
		throw new Error("__script_error__:" + (err && err.message ? err.message : String(err)));
	}%s
}`, code, scriptSerializableBody)
	}
	return fmt.Sprintf(`async (__args) => {
	let __result;
	try {
		__result = await (%s);
	} catch (err) {
		throw new Error("__script_error__:" + (err && err.message ? err.message : String(err)));
	}%s
}`, code, scriptSerializableBody)
}

// looksLikeFunction applies the driver's own heuristic: a source that starts
// with a function keyword, or whose first line reads as an arrow-function
// head, is invoked rather than evaluated.
func looksLikeFunction(code string) bool {
	trimmed := strings.TrimSpace(code)
	if strings.HasPrefix(trimmed, "function") || strings.HasPrefix(trimmed, "async function") {
		return true
	}
	if strings.HasPrefix(trimmed, "async ") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "async "))
	}
	idx := strings.Index(trimmed, "=>")
	if idx < 0 {
		return false
	}
	head := trimmed[:idx]
	return !strings.ContainsAny(head, ";\n")
}

// markerDetail extracts the text following a probe marker from a driver
// error message.
func markerDetail(msg, marker string) string {
	idx := strings.Index(msg, marker)
	detail := msg[idx+len(marker):]
	if end := strings.IndexByte(detail, '\n'); end >= 0 {
		detail = detail[:end]
	}
	return strings.TrimSpace(detail)
}
