package constants

// UI Layout Constants
const (
	// CellWidth is the number of terminal columns per grid cell
	CellWidth = 2

	// BoardOriginX is the left edge of the board frame
	BoardOriginX = 2

	// BoardOriginY is the top edge of the board frame
	BoardOriginY = 1

	// SidePanelGap separates the board frame from the side panel
	SidePanelGap = 3

	// PreviewSize is the next-piece preview box in cells
	PreviewSize = 4
)

// Message Texts
const (
	MessagePaused       = "Game Paused"
	MessageStopped      = "Game Stopped"
	MessageGameOverFmt  = "Game Over! Your Score: %d"
	MessageHighScoreFmt = "New High Score: %d!"
	MessageReady        = "Press s to start"
)
