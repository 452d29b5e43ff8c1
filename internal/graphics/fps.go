package graphics

import (
	"fmt"
	"time"
)

// FrameCounter measures frames per second over fixed sampling windows.
type FrameCounter struct {
	Interval time.Duration

	start  time.Time
	frames int
	fps    float64
}

// Tick records a frame at now. It returns true when a sampling window has
// completed and FPS has been refreshed.
func (c *FrameCounter) Tick(now time.Time) bool {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second
	}
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++

	elapsed := now.Sub(c.start)
	if elapsed < interval {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}

func (c *FrameCounter) FPS() float64 {
	return c.fps
}

// String formats the rate for a title suffix.
func (c *FrameCounter) String() string {
	return fmt.Sprintf("[%.0f fps]", c.fps)
}
