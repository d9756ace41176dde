// Package loop is a single-goroutine scheduler for timers and per-frame
// callbacks. The host calls Tick once per rendered frame; everything
// scheduled here runs inside Tick, on the host's goroutine.
package loop

import (
	"sort"
	"time"
)

// TimerID identifies a pending timer. The zero value is never issued.
type TimerID uint64

// FrameID identifies a pending frame callback. The zero value is never issued.
type FrameID uint64

type timer struct {
	id       TimerID
	deadline time.Time
	fn       func()
}

type frame struct {
	id FrameID
	fn func()
}

// Loop holds pending timers and frame callbacks.
type Loop struct {
	now    time.Time
	nextID uint64

	timers map[TimerID]*timer
	frames []frame
}

// New returns a loop whose clock starts at now.
func New(now time.Time) *Loop {
	return &Loop{now: now, timers: make(map[TimerID]*timer)}
}

// Now is the timestamp of the latest Tick.
func (l *Loop) Now() time.Time { return l.now }

func (l *Loop) id() uint64 {
	l.nextID++
	return l.nextID
}

// AfterFunc schedules fn to run on the first Tick at or after now+d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) TimerID {
	t := &timer{id: TimerID(l.id()), deadline: l.now.Add(d), fn: fn}
	l.timers[t.id] = t
	return t.id
}

// StopTimer cancels a pending timer. It reports whether the timer was pending.
func (l *Loop) StopTimer(id TimerID) bool {
	if _, ok := l.timers[id]; !ok {
		return false
	}
	delete(l.timers, id)
	return true
}

// Remaining reports how long until timer id fires.
func (l *Loop) Remaining(id TimerID) (time.Duration, bool) {
	t, ok := l.timers[id]
	if !ok {
		return 0, false
	}
	if d := t.deadline.Sub(l.now); d > 0 {
		return d, true
	}
	return 0, true
}

// RequestFrame queues fn for the next Tick.
func (l *Loop) RequestFrame(fn func()) FrameID {
	f := frame{id: FrameID(l.id()), fn: fn}
	l.frames = append(l.frames, f)
	return f.id
}

// CancelFrame withdraws a queued frame callback. It reports whether it was queued.
func (l *Loop) CancelFrame(id FrameID) bool {
	for i, f := range l.frames {
		if f.id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return true
		}
	}
	return false
}

// PendingTimers is the number of timers that have not fired or been stopped.
func (l *Loop) PendingTimers() int { return len(l.timers) }

// PendingFrames is the number of queued frame callbacks.
func (l *Loop) PendingFrames() int { return len(l.frames) }

// Tick advances the clock to now, fires due timers in deadline order and then
// runs the frame callbacks queued before this call. Frames requested while
// ticking, by a timer or by another frame, wait for the next Tick.
func (l *Loop) Tick(now time.Time) {
	if now.After(l.now) {
		l.now = now
	}

	// Frames requested by the timers below wait for the next Tick too.
	queued := make([]FrameID, len(l.frames))
	for i, f := range l.frames {
		queued[i] = f.id
	}

	for _, t := range l.due() {
		// An earlier callback may have stopped this one.
		if _, ok := l.timers[t.id]; !ok {
			continue
		}
		delete(l.timers, t.id)
		t.fn()
	}

	for _, id := range queued {
		fn, ok := l.take(id)
		if !ok {
			continue
		}
		fn()
	}
}

func (l *Loop) due() []*timer {
	var out []*timer
	for _, t := range l.timers {
		if !t.deadline.After(l.now) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].deadline.Equal(out[j].deadline) {
			return out[i].id < out[j].id
		}
		return out[i].deadline.Before(out[j].deadline)
	})
	return out
}

// take removes frame id from the queue and returns its callback.
func (l *Loop) take(id FrameID) (func(), bool) {
	for i, f := range l.frames {
		if f.id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return f.fn, true
		}
	}
	return nil, false
}
