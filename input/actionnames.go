package input

import "strings"

// actionNames are the canonical names used by keymap config
var actionNames = [intentCount]string{
	IntentNone:        "none",
	IntentMoveLeft:    "move_left",
	IntentMoveRight:   "move_right",
	IntentRotate:      "rotate",
	IntentSoftDrop:    "soft_drop",
	IntentHardDrop:    "hard_drop",
	IntentStart:       "start",
	IntentTogglePause: "pause",
	IntentStop:        "stop",
	IntentToggleMute:  "mute",
	IntentQuit:        "quit",
}

// ActionByName resolves a config action name, case-insensitive
// "none" resolves to IntentNone and unbinds a key
func ActionByName(name string) (Intent, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Intent(i), true
		}
	}
	return IntentNone, false
}

// ActionNames lists every bindable action
func ActionNames() []string {
	out := make([]string, len(actionNames))
	copy(out, actionNames[:])
	return out
}
