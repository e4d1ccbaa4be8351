package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// specialKeyNames is the lowercase reverse of tcell.KeyNames
var specialKeyNames = func() map[string]tcell.Key {
	out := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		out[strings.ToLower(name)] = k
	}
	return out
}()

// ApplyBindings returns a copy of base with key → action overrides applied
// Keys are single characters, "space", or tcell key names such as "Up",
// "Esc" or "Ctrl-C"; the action "none" removes a binding
func ApplyBindings(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	result := base.Clone()

	for keyStr, actionName := range bindings {
		intent, ok := ActionByName(actionName)
		if !ok {
			return nil, errors.Errorf("key %q: unknown action %q", keyStr, actionName)
		}

		if r, ok := resolveRune(keyStr); ok {
			bindRune(result.Runes, r, intent)
			continue
		}
		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			bindKey(result.SpecialKeys, k, intent)
			continue
		}
		return nil, errors.Errorf("unknown key name: %q", keyStr)
	}

	return result, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func bindRune(m map[rune]Intent, r rune, intent Intent) {
	if intent == IntentNone {
		delete(m, r)
		return
	}
	m[r] = intent
}

func bindKey(m map[tcell.Key]Intent, k tcell.Key, intent Intent) {
	if intent == IntentNone {
		delete(m, k)
		return
	}
	m[k] = intent
}
