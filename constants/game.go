package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffer size for terminal events feeding the main loop
	EventChannelSize = 256
)

// Persistence
const (
	// HighScoreKey identifies the persisted high score entry
	HighScoreKey = "tetris-highscore"

	// HighScoreFileName is the file name used under the user config directory
	HighScoreFileName = "highscore.toml"

	// AppName names config and log directories
	AppName = "vi-tetris"
)
