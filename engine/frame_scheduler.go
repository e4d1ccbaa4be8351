package engine

// FrameFunc is a callback run once on the next frame
type FrameFunc func()

// FrameHandle identifies a requested frame, zero is never issued
type FrameHandle uint64

// Scheduler requests and cancels one-shot frame callbacks
type Scheduler interface {
	Request(fn FrameFunc) FrameHandle
	Cancel(h FrameHandle)
}

type pendingFrame struct {
	handle    FrameHandle
	fn        FrameFunc
	cancelled bool
}

// FrameScheduler queues frame callbacks until the owner calls Pump
// Callbacks run on the Pump caller's goroutine; a callback requested while
// pumping runs on the following Pump, never the current one
type FrameScheduler struct {
	nextHandle FrameHandle
	pending    []*pendingFrame
	inFlight   []*pendingFrame
	pumps      uint64
}

// NewFrameScheduler creates an empty scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Request queues fn for the next Pump
func (f *FrameScheduler) Request(fn FrameFunc) FrameHandle {
	f.nextHandle++
	f.pending = append(f.pending, &pendingFrame{handle: f.nextHandle, fn: fn})
	return f.nextHandle
}

// Cancel drops a queued callback, including one in the batch being pumped
// Unknown or already-run handles are ignored
func (f *FrameScheduler) Cancel(h FrameHandle) {
	if h == 0 {
		return
	}
	for i, p := range f.pending {
		if p.handle == h {
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return
		}
	}
	for _, p := range f.inFlight {
		if p.handle == h {
			p.cancelled = true
			return
		}
	}
}

// Pump runs every callback queued before this call and returns how many ran
func (f *FrameScheduler) Pump() int {
	f.pumps++
	f.inFlight = f.pending
	f.pending = nil

	ran := 0
	for _, p := range f.inFlight {
		if p.cancelled {
			continue
		}
		p.fn()
		ran++
	}
	f.inFlight = nil
	return ran
}

// Pending returns the number of queued callbacks
func (f *FrameScheduler) Pending() int {
	return len(f.pending)
}

// Pumps returns how many times Pump has been called
func (f *FrameScheduler) Pumps() uint64 {
	return f.pumps
}
