// Package runner implements the side-scrolling jump game: vertical physics, the
// obstacle field, scoring with speed steps, and the controller that composes
// them into Idle, Running and GameOver phases.
//
// All simulation values are in world units. The package has no knowledge of
// terminals, timers or audio devices; those are supplied by the platform layer.
package runner

import (
	"github.com/vovakirdan/kingrun/internal/config"
	"github.com/vovakirdan/kingrun/internal/core"
)

// PlayerState is the player's vertical motion. Y is the top edge of the player
// box; Y == ground means standing.
type PlayerState struct {
	Y        int
	VY       int // positive = falling
	Airborne bool
}

// Grounded returns a player standing on the ground.
func Grounded(groundY int) PlayerState {
	return PlayerState{Y: groundY}
}

// ApplyGravity advances an airborne player by one tick and lands it on the
// ground once it reaches or passes groundY. A grounded player is returned as is.
func ApplyGravity(p PlayerState, phys config.PhysicsConfig, groundY int) PlayerState {
	if !p.Airborne {
		return p
	}

	p.VY += phys.Gravity
	p.Y += p.VY

	if p.Y >= groundY {
		p.Y = groundY
		p.VY = 0
		p.Airborne = false
	}
	return p
}

// Jump launches a grounded player. The second return value is false when the
// player is already in the air.
func Jump(p PlayerState, phys config.PhysicsConfig) (PlayerState, bool) {
	if p.Airborne {
		return p, false
	}
	p.Airborne = true
	p.VY = phys.JumpImpulse
	return p, true
}

// PlayerRect returns the player's collision box in world units.
func PlayerRect(p PlayerState, pc config.PlayerConfig) core.Rect {
	return core.NewRect(pc.X, p.Y, pc.Width, pc.Height)
}
