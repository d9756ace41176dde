// Package sound plays a short chime when the screensaver starts.
package sound

import (
	"log"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/screensaver/internal/config"
	"github.com/iburimskiy/screensaver/internal/effect"
)

// Falling fifth, G5 then C5.
var chimeNotes = []float64{783.99, 523.25}

// Chime is a screensaver.Observer that plays two soft notes on activation.
type Chime struct {
	rate   beep.SampleRate
	volume float64
	play   func(beep.Streamer)
}

// NewChime initialises the speaker. When no audio device is available the
// failure is logged and the returned chime stays silent.
func NewChime() *Chime {
	rate := beep.SampleRate(config.ChimeSampleRate)
	if err := speaker.Init(rate, rate.N(config.ChimeBuffer)); err != nil {
		log.Printf("[Sound] speaker unavailable, chime disabled: %v", err)
		return newChime(rate, nil)
	}
	return newChime(rate, func(s beep.Streamer) { speaker.Play(s) })
}

func newChime(rate beep.SampleRate, play func(beep.Streamer)) *Chime {
	return &Chime{rate: rate, volume: config.ChimeVolume, play: play}
}

// Enabled reports whether the chime has a speaker to play on.
func (c *Chime) Enabled() bool { return c.play != nil }

// Streamer builds one chime.
func (c *Chime) Streamer() beep.Streamer {
	notes := make([]beep.Streamer, len(chimeNotes))
	for i, freq := range chimeNotes {
		osc := newSine(freq, config.ChimeNoteLength, c.rate)
		notes[i] = newEnvelope(osc, config.ChimeNoteLength, config.ChimeAttack, config.ChimeRelease, c.rate)
	}
	return withVolume(beep.Seq(notes...), c.volume)
}

func (c *Chime) Activated(mode effect.Mode) {
	if c.play == nil {
		return
	}
	log.Printf("[Sound] chime for %s", mode)
	c.play(c.Streamer())
}

func (c *Chime) Deactivated() {}
