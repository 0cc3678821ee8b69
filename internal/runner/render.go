package runner

import (
	"fmt"

	"github.com/vovakirdan/kingrun/internal/assets"
	"github.com/vovakirdan/kingrun/internal/config"
	"github.com/vovakirdan/kingrun/internal/core"
)

// Visual characters for rendering
const (
	GroundChar      = '═'
	PlaceholderChar = '█'
)

// Renderer draws snapshots onto a screen, scaling world units to cells. Row 0
// is the HUD; the world fills the rows below it.
type Renderer struct {
	world   config.WorldConfig
	player  config.PlayerConfig
	sprites assets.Set
}

// NewRenderer creates a renderer. Nil sprites in the set are drawn as solid
// rectangles.
func NewRenderer(cfg config.RunnerConfig, sprites assets.Set) *Renderer {
	return &Renderer{world: cfg.World, player: cfg.Player, sprites: sprites}
}

func (r *Renderer) viewport(dst *core.Screen) core.Viewport {
	return core.Viewport{
		WorldW:  r.world.Width,
		WorldH:  r.world.Height,
		ScreenW: dst.Width(),
		ScreenH: core.Max(dst.Height()-1, 1),
	}
}

// Render draws s into dst.
func (r *Renderer) Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	vp := r.viewport(dst)

	r.drawBackground(dst, vp, s.Score)

	groundRow := vp.Y(r.world.GroundY+r.player.Height) + 1
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGreen)

	for _, o := range s.Obstacles {
		r.drawSprite(dst, vp.Rect(o.Rect()), r.sprites.Obstacle, core.ColorGray)
	}

	playerSprite := r.sprites.Standing
	if s.Player.Airborne {
		playerSprite = r.sprites.Jumping
	}
	r.drawSprite(dst, vp.Rect(s.PlayerRect), playerSprite, core.ColorRed)

	r.drawHUD(dst, s)

	switch {
	case s.Phase == PhaseIdle:
		drawCenteredMessage(dst, "KING RUN", "Press Enter to start")
	case s.Phase == PhaseGameOver:
		drawCenteredMessage(dst, "Game Over!", gameOverHint(s))
	case s.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func gameOverHint(s Snapshot) string {
	switch {
	case s.CanRestart:
		return fmt.Sprintf("Score: %d  |  R: Restart (%d left)", s.Score, s.Lives)
	case s.CanRecover:
		return fmt.Sprintf("Score: %d  |  H: Save Me!", s.Score)
	default:
		return fmt.Sprintf("Score: %d", s.Score)
	}
}

// drawBackground tiles the background strip across the playfield, shifted
// left as the score grows.
func (r *Renderer) drawBackground(dst *core.Screen, vp core.Viewport, score int) {
	bg := r.sprites.Background
	if bg == nil {
		return
	}
	bw := bg.Width()
	if bw == 0 {
		return
	}
	shift := vp.X(score) % bw
	for y := 0; y < bg.Height() && y+1 < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ch := bg.At((x+shift)%bw, y)
			if ch != ' ' {
				dst.SetColored(x, y+1, ch, core.ColorGray)
			}
		}
	}
}

// drawSprite draws art anchored to the bottom-left of the cell rect and
// clipped to it. Without art the rect is filled.
func (r *Renderer) drawSprite(dst *core.Screen, rect core.Rect, art *assets.Sprite, c core.Color) {
	rect.Y++ // below the HUD row
	if art == nil {
		dst.DrawRect(rect, PlaceholderChar, c)
		return
	}
	top := rect.Bottom() - art.Height()
	for y := 0; y < art.Height(); y++ {
		sy := top + y
		if sy < rect.Y {
			continue
		}
		for x := 0; x < art.Width() && x < rect.W; x++ {
			if ch := art.At(x, y); ch != ' ' {
				dst.SetColored(rect.X+x, sy, ch, c)
			}
		}
	}
}

func (r *Renderer) drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightYellow)

	lives := fmt.Sprintf("Lives: %d", s.Lives)
	speed := fmt.Sprintf("Speed: %d", s.Speed)
	dst.DrawTextColored(dst.Width()-len(lives)-len(speed)-4, 0, speed, core.ColorCyan)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
