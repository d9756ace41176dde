package screensaver

import (
	"fmt"
	"time"
)

// Status is the one-line summary hosts show while the screensaver is hidden.
func (c *Controller) Status() string {
	if c.active {
		return fmt.Sprintf("%s running - any input to dismiss", c.mode)
	}
	remaining, ok := c.Remaining()
	if !ok {
		return "idle timer stopped"
	}
	return fmt.Sprintf("Screensaver in %s - Esc to start now", formatDuration(remaining))
}

// formatDuration formats a duration as MM:SS, rounding partial seconds up.
func formatDuration(d time.Duration) string {
	d = (d + time.Second - 1).Truncate(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
