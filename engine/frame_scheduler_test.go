package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameSchedulerRunsOnPump(t *testing.T) {
	f := NewFrameScheduler()
	ran := 0
	h := f.Request(func() { ran++ })

	assert.NotZero(t, h)
	assert.Equal(t, 0, ran, "callbacks only run from Pump")
	assert.Equal(t, 1, f.Pending())

	assert.Equal(t, 1, f.Pump())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 0, f.Pending())

	assert.Equal(t, 0, f.Pump(), "one-shot")
	assert.Equal(t, uint64(2), f.Pumps())
}

func TestFrameSchedulerHandlesAreUnique(t *testing.T) {
	f := NewFrameScheduler()
	seen := map[FrameHandle]bool{}
	for i := 0; i < 10; i++ {
		h := f.Request(func() {})
		require.False(t, seen[h])
		seen[h] = true
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	f := NewFrameScheduler()
	var order []int
	f.Request(func() { order = append(order, 1) })
	h := f.Request(func() { order = append(order, 2) })
	f.Request(func() { order = append(order, 3) })

	f.Cancel(h)
	f.Cancel(h)
	f.Cancel(0)
	f.Cancel(999)

	assert.Equal(t, 2, f.Pump())
	assert.Equal(t, []int{1, 3}, order)
}

func TestFrameSchedulerRequestDuringPumpDefers(t *testing.T) {
	f := NewFrameScheduler()
	count := 0
	var fn FrameFunc
	fn = func() {
		count++
		f.Request(fn)
	}
	f.Request(fn)

	f.Pump()
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, f.Pending())

	f.Pump()
	assert.Equal(t, 2, count)
}

func TestFrameSchedulerCancelInFlight(t *testing.T) {
	f := NewFrameScheduler()
	var second FrameHandle
	secondRan := false
	f.Request(func() { f.Cancel(second) })
	second = f.Request(func() { secondRan = true })

	assert.Equal(t, 1, f.Pump())
	assert.False(t, secondRan)
}
