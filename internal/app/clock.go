package app

import "go-wave-defense/internal/config"

// FixedStep converts variable host frame times into whole simulation ticks.
type FixedStep struct {
	TickMs float64
	acc    float64
}

func NewFixedStep(tickMs float64) *FixedStep {
	if tickMs <= 0 {
		tickMs = 1000.0 / config.TicksPerSecond
	}
	return &FixedStep{TickMs: tickMs}
}

// Advance adds a host frame of frameMs, clamped to config.MaxDeltaMs, and returns
// how many ticks are due.
func (f *FixedStep) Advance(frameMs float64) int {
	if frameMs < 0 || frameMs != frameMs {
		frameMs = 0
	}
	if frameMs > config.MaxDeltaMs {
		frameMs = config.MaxDeltaMs
	}
	f.acc += frameMs
	n := int(f.acc / f.TickMs)
	f.acc -= float64(n) * f.TickMs
	return n
}

// Reset drops any leftover time, used when the simulation was paused.
func (f *FixedStep) Reset() {
	f.acc = 0
}
