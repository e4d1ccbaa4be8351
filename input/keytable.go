package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps tcell keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows and vi letters
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyUp:     IntentRotate,
			tcell.KeyDown:   IntentSoftDrop,
			tcell.KeyEscape: IntentStop,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'h': IntentMoveLeft,
			'l': IntentMoveRight,
			'k': IntentRotate,
			'x': IntentRotate,
			'z': IntentRotate,
			'j': IntentSoftDrop,
			' ': IntentHardDrop,
			's': IntentStart,
			'p': IntentTogglePause,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key press; runes are matched only for tcell.KeyRune
// Modified runes other than Shift are ignored so terminal shortcuts pass through
func (kt *KeyTable) Lookup(key tcell.Key, r rune, mod tcell.ModMask) Intent {
	if key != tcell.KeyRune {
		return kt.SpecialKeys[key]
	}
	if mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return IntentNone
	}
	return kt.Runes[r]
}

// Resolve decodes a tcell key event
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	return kt.Lookup(ev.Key(), ev.Rune(), ev.Modifiers())
}
