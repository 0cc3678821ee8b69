package runner

import "github.com/vovakirdan/kingrun/internal/config"

// RunState is the score and lives of the current game.
type RunState struct {
	Score   int
	Lives   int
	Running bool
}

// Tick adds one point and applies any speed step the new score earns. It
// reports whether the speed changed.
func Tick(run RunState, f Field, diff *config.DifficultyManager) (RunState, Field, bool) {
	run.Score++

	inc := diff.SpeedIncrease(run.Score)
	if inc == 0 {
		return run, f, false
	}
	f.Speed += inc
	return run, f, true
}
