package gamemath

// FadeEvent tells the audio layer what to do with the player after a fader step.
type FadeEvent int

const (
	FadeNone FadeEvent = iota
	// FadePlay means a fade left volume 0 and playback should start.
	FadePlay
	// FadePause means a fade landed on volume 0 and playback should pause.
	FadePause
)

// Fader moves a volume towards a target by a fixed step every Interval ticks.
// Only one fade runs at a time: retargeting replaces the running fade.
type Fader struct {
	Volume   float64
	Target   float64
	Step     float64
	Interval int

	running bool
	ticks   int
}

// NewFader returns a silent, idle fader.
func NewFader(step float64, interval int) *Fader {
	if interval < 1 {
		interval = 1
	}
	return &Fader{Step: step, Interval: interval}
}

// Running reports whether a fade is in progress.
func (f *Fader) Running() bool {
	return f.running
}

// SetTarget starts a fade towards target, cancelling any fade in progress.
func (f *Fader) SetTarget(target float64) FadeEvent {
	wasRunning := f.running
	f.Target = Clamp(target, 0, 1)
	f.ticks = 0
	f.running = f.Volume != f.Target

	switch {
	case f.running && f.Volume == 0:
		return FadePlay
	case !f.running && wasRunning && f.Volume == 0:
		// a fade-in was cancelled before it became audible
		return FadePause
	}
	return FadeNone
}

// Tick advances the fade by one game tick.
func (f *Fader) Tick() FadeEvent {
	if !f.running {
		return FadeNone
	}
	f.ticks++
	if f.ticks < f.Interval {
		return FadeNone
	}
	f.ticks = 0

	if f.Volume < f.Target {
		f.Volume = min(f.Volume+f.Step, f.Target)
	} else {
		f.Volume = max(f.Volume-f.Step, f.Target)
	}

	if f.Volume != f.Target {
		return FadeNone
	}
	f.running = false
	if f.Volume == 0 {
		return FadePause
	}
	return FadeNone
}
