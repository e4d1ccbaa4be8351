package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-tetris/constants"
)

// recorder captures every event a session emits
type recorder struct {
	events []GameEvent
}

func (r *recorder) HandleEvent(ev GameEvent) { r.events = append(r.events, ev) }

func (r *recorder) EventTypes() []EventType { return AllEventTypes() }

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *recorder) count(t EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t EventType) (GameEvent, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return GameEvent{}, false
}

func (r *recorder) reset() { r.events = nil }

// memStore is an in-memory HighScoreStore with injectable failures
type memStore struct {
	score    int
	readErr  error
	writeErr error
	writes   int
}

func (m *memStore) HighScore() (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.score, nil
}

func (m *memStore) SetHighScore(score int) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.score = score
	return nil
}

var errStoreDown = errors.New("store unavailable")

// startedSession returns a running session with a recorder attached after Start
func startedSession(t *testing.T, opts ...SessionOption) (*Session, *recorder) {
	t.Helper()
	s := NewSession(append([]SessionOption{WithSeed(42)}, opts...)...)
	rec := &recorder{}
	s.Register(rec)
	s.Start()
	rec.reset()
	return s, rec
}

// fillRow occupies every cell of row except the listed columns
func fillRow(g *Grid, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for c := 0; c < constants.Cols; c++ {
		if !skip[c] {
			g[row][c] = 1
		}
	}
}
