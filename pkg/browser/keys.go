package browser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// namedKeys are the non-character key names the driver accepts. Kept closed
// so a typo like "Entr" fails validation instead of being swallowed by the
// browser.
var namedKeys = map[string]struct{}{
	"Enter": {}, "Tab": {}, "Escape": {}, "Backspace": {}, "Delete": {},
	"Insert": {}, "Home": {}, "End": {}, "PageUp": {}, "PageDown": {},
	"ArrowUp": {}, "ArrowDown": {}, "ArrowLeft": {}, "ArrowRight": {},
	"Space": {}, "CapsLock": {}, "NumLock": {}, "ScrollLock": {},
	"PrintScreen": {}, "Pause": {}, "ContextMenu": {},
	"F1": {}, "F2": {}, "F3": {}, "F4": {}, "F5": {}, "F6": {},
	"F7": {}, "F8": {}, "F9": {}, "F10": {}, "F11": {}, "F12": {},
}

// modifierKeys may appear before a '+' in a combination like "Control+c".
var modifierKeys = map[string]struct{}{
	"Control": {}, "Shift": {}, "Alt": {}, "Meta": {}, "ControlOrMeta": {},
}

// ValidateKey checks a key name or "Modifier+key" combination against the
// known-key set, before any session work happens.
func ValidateKey(key string) error {
	if key == "" {
		return ValidationErrorf("key is required")
	}

	parts := strings.Split(key, "+")
	for _, part := range parts[:len(parts)-1] {
		if _, ok := modifierKeys[part]; !ok {
			return ValidationErrorf("unknown modifier %q in key %q", part, key)
		}
	}

	last := parts[len(parts)-1]
	if !validBaseKey(last) {
		return ValidationErrorf("unknown key %q", key)
	}
	return nil
}

func validBaseKey(part string) bool {
	if part == "" {
		return false
	}
	if _, ok := namedKeys[part]; ok {
		return true
	}
	if _, ok := modifierKeys[part]; ok {
		// Pressing a bare modifier is allowed.
		return true
	}
	// "KeyA".."KeyZ" and "Digit0".."Digit9" physical-key names.
	if len(part) == 4 && strings.HasPrefix(part, "Key") && part[3] >= 'A' && part[3] <= 'Z' {
		return true
	}
	if len(part) == 6 && strings.HasPrefix(part, "Digit") && part[5] >= '0' && part[5] <= '9' {
		return true
	}
	// A single printable character.
	if utf8.RuneCountInString(part) == 1 {
		r, _ := utf8.DecodeRuneInString(part)
		return unicode.IsPrint(r)
	}
	return false
}
