package input

// Intent is a semantic action decoded from a key press
type Intent uint8

const (
	IntentNone Intent = iota

	// Gameplay, honoured only while the session is running
	IntentMoveLeft
	IntentMoveRight
	IntentRotate
	IntentSoftDrop
	IntentHardDrop

	// Lifecycle
	IntentStart       // s, start or restart; resumes when paused
	IntentTogglePause // p
	IntentStop        // Esc

	// System
	IntentToggleMute // m
	IntentQuit       // q, Ctrl+C
	intentCount
)

// Gameplay reports whether the intent moves the active piece
func (i Intent) Gameplay() bool {
	return i >= IntentMoveLeft && i <= IntentHardDrop
}

// String returns the action name
func (i Intent) String() string {
	if i < intentCount {
		return actionNames[i]
	}
	return "unknown"
}
