// Package screensaver watches for user inactivity and runs one of the
// effects on a host canvas once the idle timeout elapses.
package screensaver

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/iburimskiy/screensaver/internal/config"
	"github.com/iburimskiy/screensaver/internal/effect"
	"github.com/iburimskiy/screensaver/internal/loop"
)

// ErrNoCanvas is returned by New when the host cannot provide a drawing surface.
var ErrNoCanvas = errors.New("screensaver: no canvas available")

// Canvas is the host surface the controller draws on.
type Canvas interface {
	effect.Surface
	Resize(w, h int)
	SetVisible(visible bool)
	Visible() bool
}

// Host is the environment the controller runs in.
type Host interface {
	// Viewport is the current size the canvas should cover.
	Viewport() (w, h int)
	AcquireCanvas() (Canvas, error)
	Listen(kind EventKind, fn func()) (release func())
}

// Scheduler runs timers and frame callbacks on the host goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) loop.TimerID
	StopTimer(id loop.TimerID) bool
	Remaining(id loop.TimerID) (time.Duration, bool)
	RequestFrame(fn func()) loop.FrameID
	CancelFrame(id loop.FrameID) bool
}

// Observer is told when the screensaver shows and hides.
type Observer interface {
	Activated(mode effect.Mode)
	Deactivated()
}

// Controller owns the session state: idle timer, activation, current mode
// and the running effect.
type Controller struct {
	host      Host
	canvas    Canvas
	sched     Scheduler
	rng       *rand.Rand
	observers []Observer
	releases  []func()

	timeout  time.Duration
	pinned   *effect.Mode
	override *effect.Mode

	active  bool
	closed  bool
	mode    effect.Mode
	current effect.Effect
	timer   loop.TimerID
	frame   loop.FrameID
}

// New acquires the host canvas, registers input listeners and arms the idle
// timer. Call Close to release them.
func New(host Host, sched Scheduler, opts config.Options, observers ...Observer) (*Controller, error) {
	opts = opts.Normalize()

	canvas, err := host.AcquireCanvas()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCanvas, err)
	}
	if canvas == nil {
		return nil, ErrNoCanvas
	}

	c := &Controller{
		host:      host,
		canvas:    canvas,
		sched:     sched,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		observers: observers,
		timeout:   opts.Timeout,
	}

	if opts.Mode != "" {
		if m, ok := effect.ParseMode(opts.Mode); ok {
			c.pinned = &m
		} else {
			log.Printf("[Screensaver] unknown mode %q, picking randomly", opts.Mode)
		}
	}

	for _, kind := range ActivityKinds {
		c.releases = append(c.releases, host.Listen(kind, c.resetTimer))
	}
	c.releases = append(c.releases,
		host.Listen(Resize, c.resize),
		host.Listen(ToggleKey, c.Toggle),
	)

	canvas.SetVisible(false)
	c.resize()
	c.resetTimer()
	return c, nil
}

// Active reports whether an effect is on screen.
func (c *Controller) Active() bool { return c.active }

// Mode is the running mode, or the last one that ran.
func (c *Controller) Mode() effect.Mode { return c.mode }

// Timeout is the current idle threshold.
func (c *Controller) Timeout() time.Duration { return c.timeout }

// Remaining is the time left before the idle timer fires. It reports false
// while no countdown is pending.
func (c *Controller) Remaining() (time.Duration, bool) {
	if c.timer == 0 {
		return 0, false
	}
	return c.sched.Remaining(c.timer)
}

// Start shows the screensaver now.
func (c *Controller) Start() {
	if c.closed {
		return
	}
	c.activate()
}

// Stop hides the screensaver and restarts the idle countdown. While inactive
// it does nothing, leaving a pending countdown untouched.
func (c *Controller) Stop() {
	if c.closed || !c.active {
		return
	}
	c.resetTimer()
}

// Toggle is the manual override: start when idle, stop and re-arm when running.
func (c *Controller) Toggle() {
	if c.closed {
		return
	}
	if c.active {
		c.resetTimer()
		return
	}
	c.activate()
}

// SetMode switches the running effect immediately, or picks the effect for
// the next activation when inactive. Invalid modes are ignored.
func (c *Controller) SetMode(m effect.Mode) {
	if c.closed || !m.Valid() {
		return
	}
	if !c.active {
		c.override = &m
		return
	}
	c.stopAnimation()
	c.mode = m
	c.startAnimation()
}

// SetType is SetMode by name. It reports whether the name was recognised.
func (c *Controller) SetType(name string) bool {
	m, ok := effect.ParseMode(name)
	if ok {
		c.SetMode(m)
	}
	return ok
}

// SetTimeout changes the idle threshold and re-arms the countdown.
// Non-positive values fall back to the default.
func (c *Controller) SetTimeout(d time.Duration) {
	if c.closed {
		return
	}
	c.timeout = config.NormalizeTimeout(d)
	c.resetTimer()
}

// Close releases the host listeners and cancels all pending work.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	for _, release := range c.releases {
		release()
	}
	c.releases = nil
	c.stopTimer()
	if c.active {
		c.deactivate()
	}
	c.closed = true
}

// resetTimer is bound to every activity event: hide if showing, then
// restart the countdown.
func (c *Controller) resetTimer() {
	c.stopTimer()
	if c.active {
		c.deactivate()
	}
	c.timer = c.sched.AfterFunc(c.timeout, c.onTimeout)
}

func (c *Controller) stopTimer() {
	if c.timer != 0 {
		c.sched.StopTimer(c.timer)
		c.timer = 0
	}
}

func (c *Controller) onTimeout() {
	c.timer = 0
	c.activate()
}

func (c *Controller) activate() {
	if c.active {
		return
	}
	c.stopTimer()

	switch {
	case c.override != nil:
		c.mode = *c.override
		c.override = nil
	case c.pinned != nil:
		c.mode = *c.pinned
	default:
		c.mode = effect.Random(c.rng)
	}

	c.active = true
	c.canvas.SetVisible(true)
	c.resize()
	c.startAnimation()

	log.Printf("[Screensaver] activated %s", c.mode)
	for _, o := range c.observers {
		o.Activated(c.mode)
	}
}

func (c *Controller) deactivate() {
	c.active = false
	c.stopAnimation()
	c.canvas.SetVisible(false)

	for _, o := range c.observers {
		o.Deactivated()
	}
}

func (c *Controller) resize() {
	w, h := c.host.Viewport()
	c.canvas.Resize(w, h)
}

func (c *Controller) startAnimation() {
	w, h := c.canvas.Size()
	c.current = effect.New(c.mode, w, h, c.rng)
	c.runFrame()
}

func (c *Controller) stopAnimation() {
	if c.frame != 0 {
		c.sched.CancelFrame(c.frame)
		c.frame = 0
	}
	c.current = nil
}

func (c *Controller) runFrame() {
	c.frame = 0
	if !c.active || c.current == nil {
		return
	}
	w, h := c.canvas.Size()
	c.current.Step(w, h)
	c.current.Draw(c.canvas)
	c.frame = c.sched.RequestFrame(c.runFrame)
}
