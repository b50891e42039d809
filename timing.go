package drafter

import "time"

const frameTimerWindow = 120 // samples, ~2 seconds at 60 events/s

// FrameTimer is a ready-made TimingFunc target: it keeps a sliding
// window of recent operation durations so an application can surface
// preview-cycle cost (a performance readout, never a control input).
//
//	timer := drafter.NewFrameTimer()
//	tool.Timing = timer.Record
type FrameTimer struct {
	samples [frameTimerWindow]time.Duration
	count   int
	next    int
}

// NewFrameTimer creates an empty timer.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{}
}

// Record adds one sample. The op name is accepted for TimingFunc
// compatibility; all operations share the window.
func (f *FrameTimer) Record(op string, d time.Duration) {
	f.samples[f.next] = d
	f.next = (f.next + 1) % frameTimerWindow
	if f.count < frameTimerWindow {
		f.count++
	}
}

// Average returns the mean duration over the window, zero when empty.
func (f *FrameTimer) Average() time.Duration {
	if f.count == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < f.count; i++ {
		sum += f.samples[i]
	}
	return sum / time.Duration(f.count)
}

// Max returns the largest duration in the window, zero when empty.
func (f *FrameTimer) Max() time.Duration {
	var max time.Duration
	for i := 0; i < f.count; i++ {
		if f.samples[i] > max {
			max = f.samples[i]
		}
	}
	return max
}

// Count returns the number of samples currently held (capped at the
// window size).
func (f *FrameTimer) Count() int {
	return f.count
}
