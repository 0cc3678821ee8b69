package config

// DifficultyManager decides when the scroll speed steps up. The speed is a
// running value owned by the obstacle field; the manager only reports how much
// to add after each score change.
type DifficultyManager struct {
	every   int
	step    int
	enabled bool
}

// NewDifficultyManager creates a manager from the scoring and difficulty sections.
func NewDifficultyManager(cfg RunnerConfig) *DifficultyManager {
	return &DifficultyManager{
		every:   cfg.Scoring.SpeedStepEvery,
		step:    cfg.Scoring.SpeedStep,
		enabled: cfg.Difficulty.Enabled,
	}
}

// SetEnabled enables or disables the speed progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// IsEnabled returns whether speed steps are applied.
func (d *DifficultyManager) IsEnabled() bool {
	return d.enabled && d.every > 0 && d.step != 0
}

// SpeedIncrease returns the speed to add now that the score has become score.
// Score moves by one per tick, so at most one multiple is crossed per call.
func (d *DifficultyManager) SpeedIncrease(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	if score%d.every != 0 {
		return 0
	}
	return d.step
}
