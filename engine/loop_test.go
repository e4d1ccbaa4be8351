package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/status"
)

type loopFixture struct {
	loop    *Loop
	session *Session
	sched   *FrameScheduler
	clock   *MockTimeProvider
	reg     *status.Registry
}

func newLoopFixture(t *testing.T) *loopFixture {
	t.Helper()
	f := &loopFixture{
		session: NewSession(WithSeed(3)),
		sched:   NewFrameScheduler(),
		clock:   NewMockTimeProvider(epoch),
		reg:     status.NewRegistry(),
	}
	f.loop = NewLoop(f.session, f.sched, f.clock, f.reg)
	return f
}

// frame advances mock time then pumps one frame
func (f *loopFixture) frame(d time.Duration) int {
	f.clock.Advance(d)
	return f.sched.Pump()
}

func TestLoopGravityFromFrames(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Start()
	f.session.active = Spawn(KindO)
	require.True(t, f.loop.Active())

	assert.Equal(t, 1, f.frame(500*time.Millisecond))
	assert.Equal(t, 0, f.session.active.Y)
	assert.Equal(t, 1, f.frame(600*time.Millisecond))
	assert.Equal(t, 1, f.session.active.Y)

	assert.True(t, f.loop.Active(), "frame chain continues while running")
	assert.Equal(t, int64(2), f.reg.Ints.Get(status.KeyFrames).Load())
	assert.Equal(t, int64(1), f.reg.Ints.Get(status.KeyGames).Load())
}

func TestLoopPauseTimeNeverCounts(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Start()
	f.session.active = Spawn(KindO)

	f.frame(900 * time.Millisecond)
	require.True(t, f.loop.Pause())
	assert.False(t, f.loop.Active())
	assert.Equal(t, 0, f.frame(5*time.Second), "no frames while paused")

	require.True(t, f.loop.Resume())
	f.frame(50 * time.Millisecond)
	assert.Equal(t, 0, f.session.active.Y, "950ms of play time is below the interval")

	f.frame(60 * time.Millisecond)
	assert.Equal(t, 1, f.session.active.Y)
}

func TestLoopNeverSchedulesTwoFrames(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Start()
	f.loop.Start()
	assert.Equal(t, 1, f.sched.Pending())

	f.loop.Pause()
	f.loop.Resume()
	f.loop.Resume()
	assert.Equal(t, 1, f.sched.Pending())

	f.loop.Pause()
	f.loop.Pause()
	f.loop.Resume()
	assert.Equal(t, 1, f.sched.Pending())

	for i := 0; i < 10; i++ {
		assert.Equal(t, 1, f.frame(16*time.Millisecond))
	}
}

func TestLoopStopCancelsFrame(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Start()

	require.True(t, f.loop.Stop())

	assert.False(t, f.loop.Active())
	assert.Equal(t, 0, f.sched.Pending())
	assert.Equal(t, StateStopped, f.loop.State())
	assert.False(t, f.loop.Stop())
	assert.False(t, f.reg.Bools.Get(status.KeyLoopActive).Load())
}

func TestLoopGameOverCancelsFrame(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Start()
	for r := 2; r < constants.Rows; r++ {
		fillRow(&f.session.grid, r, 9)
	}
	f.session.active = Spawn(KindO)
	f.session.next = Spawn(KindO)

	f.loop.HardDrop()

	assert.Equal(t, StateOver, f.loop.State())
	assert.False(t, f.loop.Active())
	assert.Equal(t, 0, f.sched.Pending())
	assert.True(t, f.loop.Snapshot().Over)
	assert.Equal(t, int64(1), f.reg.Ints.Get(status.KeyLocks).Load())
}

func TestLoopGameOverFromGravity(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Start()
	f.session.active = Spawn(KindO)
	f.session.active.Y = -1
	f.session.grid[1][f.session.active.X] = 1

	f.frame(1100 * time.Millisecond)

	assert.Equal(t, StateOver, f.loop.State())
	assert.False(t, f.loop.Active())
	assert.Equal(t, 0, f.frame(time.Second))
}

func TestLoopRestartAfterStop(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Start()
	f.loop.Stop()
	f.clock.Advance(time.Minute)

	f.loop.Start()
	f.session.active = Spawn(KindO)

	assert.Equal(t, StateRunning, f.loop.State())
	assert.True(t, f.loop.Active())
	f.frame(500 * time.Millisecond)
	assert.Equal(t, 0, f.session.active.Y, "time before restart is not carried over")
}

func TestLoopPassthroughControls(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Start()
	f.session.active = Spawn(KindT)
	f.session.active.Y = 5

	assert.True(t, f.loop.MoveHorizontal(-1))
	assert.True(t, f.loop.Rotate())
	f.loop.SoftDrop()
	assert.Equal(t, 6, f.loop.Snapshot().Active.Y)
}
