package runner

import (
	"testing"

	"github.com/vovakirdan/kingrun/internal/config"
)

func TestTickScoresOnePoint(t *testing.T) {
	diff := config.NewDifficultyManager(config.DefaultRunnerConfig())
	run := RunState{Running: true, Lives: 3}
	f := NewField(5, 400)

	for i := 1; i <= 150; i++ {
		var sped bool
		run, f, sped = Tick(run, f, diff)
		if run.Score != i {
			t.Fatalf("after %d ticks score = %d", i, run.Score)
		}
		if sped {
			t.Fatalf("unexpected speed step at score %d", run.Score)
		}
	}
	if run.Lives != 3 {
		t.Error("ticking must not touch lives")
	}
}

func TestTickSpeedStep(t *testing.T) {
	diff := config.NewDifficultyManager(config.DefaultRunnerConfig())

	tests := []struct {
		score    int
		speed    int
		expected int
		sped     bool
	}{
		{198, 5, 5, false},
		{199, 5, 6, true},
		{200, 6, 6, false},
		{399, 6, 7, true},
		{599, 7, 8, true},
	}
	for _, tc := range tests {
		run, f, sped := Tick(RunState{Score: tc.score}, NewField(tc.speed, 400), diff)
		if f.Speed != tc.expected || sped != tc.sped {
			t.Errorf("score %d -> %d: speed %d (sped=%v), expected %d (sped=%v)",
				tc.score, run.Score, f.Speed, sped, tc.expected, tc.sped)
		}
	}
}

func TestTickFixedDifficulty(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	diff := config.NewDifficultyManager(cfg)

	_, f, sped := Tick(RunState{Score: 199}, NewField(5, 400), diff)
	if sped || f.Speed != 5 {
		t.Errorf("fixed difficulty should not step speed, got %d", f.Speed)
	}
}
