package component

// RunState is the per-run progression record.
type RunState struct {
	Wave         int
	WaveQuota    int // pickups required to clear the wave
	WaveProgress int // pickups collected this wave
	Score        int
	Kills        int
	ElapsedMs    float64 // simulation time spent in the playing phase
	LastSpawnMs  float64
	Upgrades     Upgrades
}

// SurvivalSeconds returns the elapsed time in whole seconds.
func (r RunState) SurvivalSeconds() int {
	return int(r.ElapsedMs / 1000)
}

// QuotaMet reports whether the current wave is complete.
func (r RunState) QuotaMet() bool {
	return r.WaveProgress >= r.WaveQuota
}
