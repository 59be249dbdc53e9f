package animations

// Cycle counts through frames First..Last, advancing one frame every TicksPerFrame
// ticks, and wraps around.
type Cycle struct {
	First         int
	Last          int
	TicksPerFrame int
	Looped        bool // set once the cycle has wrapped at least once

	ticks int
	frame int
}

func NewCycle(first, last, ticksPerFrame int) *Cycle {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Cycle{
		First:         first,
		Last:          last,
		TicksPerFrame: ticksPerFrame,
		frame:         first,
	}
}

func (c *Cycle) Update() {
	c.ticks++
	if c.ticks < c.TicksPerFrame {
		return
	}
	c.ticks = 0
	c.frame++
	if c.frame > c.Last {
		c.Looped = true
		c.frame = c.First
	}
}

func (c *Cycle) Frame() int {
	return c.frame
}

// Phase is the position within the whole cycle in [0, 1).
func (c *Cycle) Phase() float64 {
	frames := c.Last - c.First + 1
	if frames <= 0 {
		return 0
	}
	sub := float64(c.ticks) / float64(c.TicksPerFrame)
	return (float64(c.frame-c.First) + sub) / float64(frames)
}

func (c *Cycle) Restart() {
	c.frame = c.First
	c.ticks = 0
	c.Looped = false
}
