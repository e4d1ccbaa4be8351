package engine

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/vi-tetris/constants"
)

// State is the session lifecycle phase
type State uint8

const (
	StateReady State = iota
	StateRunning
	StatePaused
	StateOver
	StateStopped
)

// String returns the name of the state for debugging
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateOver:
		return "Over"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the session has ended
func (s State) Terminal() bool {
	return s == StateOver || s == StateStopped
}

// HighScoreStore persists the best score across sessions
// Failures are non-fatal: reads fall back to 0 and writes are dropped
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Session owns one game: grid, active and next piece, scoring and gravity
// Not safe for concurrent use; every call must come from the owning goroutine
type Session struct {
	grid   Grid
	active Piece
	next   Piece

	score  int
	level  int
	lines  int
	locked int

	dropInterval time.Duration
	dropCounter  time.Duration

	state     State
	highScore int
	newHigh   bool // Set by the game over that raised highScore

	rng    *rand.Rand
	store  HighScoreStore
	router *EventRouter
}

// SessionOption configures a Session at construction
type SessionOption func(*Session)

// WithStore sets the high score store
func WithStore(store HighScoreStore) SessionOption {
	return func(s *Session) {
		s.store = store
	}
}

// WithRand sets the piece generator source
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed seeds a deterministic piece generator
func WithSeed(seed uint64) SessionOption {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// NewSession creates a session in StateReady with the persisted high score loaded
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		router: NewEventRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	s.highScore = s.loadHighScore()
	s.reset()
	s.state = StateReady
	return s
}

// Register subscribes a handler to session events
func (s *Session) Register(handler EventHandler) {
	s.router.Register(handler)
}

// ===== LIFECYCLE =====

// Start resets the board and enters StateRunning from any state
func (s *Session) Start() {
	defer s.router.DispatchAll()

	s.reset()
	s.state = StateRunning
	s.emit(GameEvent{Type: EventStarted, Level: s.level})
}

// Pause moves Running -> Paused, returns false if not running
func (s *Session) Pause() bool {
	defer s.router.DispatchAll()

	if s.state != StateRunning {
		return false
	}
	s.state = StatePaused
	s.emit(GameEvent{Type: EventPaused})
	return true
}

// Resume moves Paused -> Running, returns false if not paused
// The drop counter keeps its pre-pause value
func (s *Session) Resume() bool {
	defer s.router.DispatchAll()

	if s.state != StatePaused {
		return false
	}
	s.state = StateRunning
	s.emit(GameEvent{Type: EventResumed})
	return true
}

// Stop ends a running or paused session without a high score comparison
func (s *Session) Stop() bool {
	defer s.router.DispatchAll()

	if s.state != StateRunning && s.state != StatePaused {
		return false
	}
	s.state = StateStopped
	s.emit(GameEvent{Type: EventStopped, Score: s.score})
	return true
}

// Tick accumulates elapsed time and applies one gravity step once the
// counter exceeds the drop interval
func (s *Session) Tick(delta time.Duration) {
	defer s.router.DispatchAll()

	if s.state != StateRunning || delta <= 0 {
		return
	}
	s.dropCounter += delta
	if s.dropCounter > s.dropInterval {
		s.softDrop()
		s.dropCounter = 0
	}
}

// ===== PIECE CONTROL =====

// MoveHorizontal shifts the active piece one column, dir < 0 left, dir > 0 right
// Returns true if the piece moved
func (s *Session) MoveHorizontal(dir int) bool {
	defer s.router.DispatchAll()

	if s.state != StateRunning || dir == 0 {
		return false
	}
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}

	x := s.active.X + dir
	if Collides(&s.grid, s.active.Shape, x, s.active.Y) {
		return false
	}
	s.active.X = x
	s.emit(GameEvent{Type: EventMoved})
	return true
}

// Rotate turns the active piece clockwise, trying each wall kick in order
// Returns false and leaves the piece untouched if every candidate collides
func (s *Session) Rotate() bool {
	defer s.router.DispatchAll()

	if s.state != StateRunning {
		return false
	}

	rotated := RotateCW(s.active.Shape)
	for _, k := range wallKicks {
		x := s.active.X + k.dx
		y := s.active.Y + k.dy
		if Collides(&s.grid, rotated, x, y) {
			continue
		}
		s.active.Shape = rotated
		s.active.X = x
		s.active.Y = y
		s.emit(GameEvent{Type: EventRotated})
		return true
	}
	return false
}

// SoftDrop moves the active piece down one row, locking it if blocked
func (s *Session) SoftDrop() {
	defer s.router.DispatchAll()

	if s.state != StateRunning {
		return
	}
	s.softDrop()
}

// HardDrop drops the active piece to its landing row and locks it
func (s *Session) HardDrop() {
	defer s.router.DispatchAll()

	if s.state != StateRunning {
		return
	}
	landing := LandingY(&s.grid, s.active)
	distance := landing - s.active.Y
	s.active.Y = landing
	s.emit(GameEvent{Type: EventHardDropped, Distance: distance})
	s.lock()
}

// ===== QUERIES =====

// State returns the lifecycle phase
func (s *Session) State() State {
	return s.state
}

// Score returns the session score
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level
func (s *Session) Level() int {
	return s.level
}

// HighScore returns the best known score
func (s *Session) HighScore() int {
	return s.highScore
}

// DropInterval returns the current gravity step
func (s *Session) DropInterval() time.Duration {
	return s.dropInterval
}

// ===== INTERNALS =====

func (s *Session) emit(ev GameEvent) {
	s.router.Push(ev)
}

func (s *Session) reset() {
	s.grid = EmptyGrid()
	s.score = 0
	s.level = 1
	s.lines = 0
	s.locked = 0
	s.dropInterval = constants.InitialDropInterval
	s.dropCounter = 0
	s.newHigh = false
	s.active = Spawn(RandomKind(s.rng))
	s.next = Spawn(RandomKind(s.rng))
}

func (s *Session) softDrop() {
	if Collides(&s.grid, s.active.Shape, s.active.X, s.active.Y+1) {
		s.lock()
		return
	}
	s.active.Y++
}

// lock commits the active piece, clears lines and promotes the next piece
// A piece with any block above the top row ends the game with the grid untouched
func (s *Session) lock() {
	above := false
	s.active.Blocks(func(row, _ int) {
		if row < 0 {
			above = true
		}
	})
	if above {
		s.gameOver()
		return
	}

	color := s.active.Color
	s.active.Blocks(func(row, col int) {
		s.grid.Set(row, col, color)
	})

	if n := ClearLines(&s.grid); n > 0 {
		s.award(n)
	}
	s.locked++
	s.emit(GameEvent{Type: EventLocked})

	s.active = s.next
	s.next = Spawn(RandomKind(s.rng))

	if Collides(&s.grid, s.active.Shape, s.active.X, s.active.Y) {
		s.gameOver()
	}
}

// award scores at the level in effect before this clear, then recomputes
// level and drop interval
func (s *Session) award(lines int) {
	prev := s.level
	s.score += LineScore(lines, s.level)
	s.lines += lines

	if lvl := LevelForScore(s.score); lvl > s.level {
		s.level = lvl
	}
	s.dropInterval = DropIntervalForLevel(s.level)

	s.emit(GameEvent{Type: EventLinesCleared, Lines: lines, Score: s.score, Level: s.level})
	if s.level > prev {
		s.emit(GameEvent{Type: EventLevelUp, Level: s.level})
	}
}

func (s *Session) gameOver() {
	s.state = StateOver

	s.newHigh = s.score > s.highScore
	if s.newHigh {
		s.highScore = s.score
		s.saveHighScore(s.score)
	}
	s.emit(GameEvent{Type: EventGameOver, Score: s.score, Level: s.level, NewHighScore: s.newHigh})
}

func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	hs, err := s.store.HighScore()
	if err != nil {
		log.Printf("high score read failed, using 0: %v", err)
		return 0
	}
	if hs < 0 {
		return 0
	}
	return hs
}

func (s *Session) saveHighScore(score int) {
	if s.store == nil {
		return
	}
	if err := s.store.SetHighScore(score); err != nil {
		log.Printf("high score write dropped: %v", err)
	}
}
