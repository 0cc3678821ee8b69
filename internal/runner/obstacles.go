package runner

import (
	"github.com/vovakirdan/kingrun/internal/config"
	"github.com/vovakirdan/kingrun/internal/core"
)

// Obstacle is a block the player must jump over.
type Obstacle struct {
	X, Y int
	W, H int
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Field holds the live obstacles in spawn order and the current scroll speed.
type Field struct {
	Obstacles []Obstacle
	Speed     int
	SpawnGap  int
}

// NewField creates an empty field scrolling at speed.
func NewField(speed, spawnGap int) Field {
	return Field{Speed: speed, SpawnGap: spawnGap}
}

// Template returns the obstacle spawned at the right edge of the world.
func Template(cfg config.RunnerConfig) Obstacle {
	h := cfg.Obstacles.Height
	return Obstacle{
		X: cfg.World.Width,
		Y: cfg.World.GroundY - h + cfg.Obstacles.YOffset,
		W: cfg.Obstacles.Width,
		H: h,
	}
}

// Advance scrolls every obstacle left by the field speed, drops the ones fully
// past the left edge, and spawns a copy of spawn once the newest obstacle has
// travelled SpawnGap units from the right edge. The input field is not modified.
func Advance(f Field, spawn Obstacle) Field {
	next := make([]Obstacle, 0, len(f.Obstacles)+1)
	for _, o := range f.Obstacles {
		o.X -= f.Speed
		if o.X+o.W < 0 {
			continue
		}
		next = append(next, o)
	}

	if len(next) == 0 || next[len(next)-1].X <= spawn.X-f.SpawnGap {
		next = append(next, spawn)
	}

	f.Obstacles = next
	return f
}

// Collides reports whether r overlaps any obstacle.
func (f Field) Collides(r core.Rect) bool {
	for _, o := range f.Obstacles {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Cleared returns the field with no obstacles. Speed and gap are kept.
func (f Field) Cleared() Field {
	f.Obstacles = nil
	return f
}
