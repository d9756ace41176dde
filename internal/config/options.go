package config

import (
	"log"
	"time"
)

// Options is the runtime configuration handed to the screensaver controller.
type Options struct {
	// Timeout is the idle time before the screensaver activates.
	Timeout time.Duration
	// Mode pins every activation to one effect; empty means a random pick each time.
	Mode string
	// Seed for the effect RNG, 0 means time-based.
	Seed int64
	// Sound enables the activation chime.
	Sound bool
}

// Default returns Options with the stock three minute timeout.
func Default() Options {
	return Options{Timeout: DefaultTimeout}
}

// Normalize substitutes defaults for values that would make the idle timer unusable.
func (o Options) Normalize() Options {
	o.Timeout = NormalizeTimeout(o.Timeout)
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// NormalizeTimeout returns d, or DefaultTimeout when d is not positive.
func NormalizeTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		log.Printf("[Config] timeout %v is not positive, using %v", d, DefaultTimeout)
		return DefaultTimeout
	}
	return d
}

// TimeoutFromMillis converts a millisecond count from flags or env into a duration.
func TimeoutFromMillis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
