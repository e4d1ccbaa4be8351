// Package status holds runtime counters shown in the debug overlay
package status

import (
	"fmt"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyFrames     = "loop.frames"
	KeyLoopActive = "loop.active"
	KeyLocks      = "game.locks"
	KeyLines      = "game.lines"
	KeyGames      = "game.started"
	KeyAudioMode  = "audio.mode"
	KeySoundsPlay = "audio.played"
)

// Registry is the central metrics facade
// Owners cache pointers during init and write directly to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Lines formats every metric as "key=value" sorted by key within each type
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		out = append(out, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return out
}
