package cyclist

import "github.com/vovakirdan/cyclist-collector/internal/core"

// Player is the cyclist. Y is the top edge in world units; larger is lower.
type Player struct {
	X      float64
	Y      float64
	VelY   float64
	Width  float64
	Height float64
	Lives  int
	Frame  int // Animation frame, advances every playing tick
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// groundLevel is the player's Y when standing on the ground.
func (g *Game) groundLevel() float64 {
	return g.cfg.World.GroundY - g.cfg.Player.Height
}

// onGround reports whether the player can jump.
func (g *Game) onGround() bool {
	return g.player.Y >= g.groundLevel()
}

// resetPlayer puts the cyclist back on the ground with starting lives.
func (g *Game) resetPlayer() {
	g.player = Player{
		X:      g.cfg.Player.X,
		Y:      g.groundLevel(),
		Width:  g.cfg.Player.Width,
		Height: g.cfg.Player.Height,
		Lives:  g.cfg.Player.StartLives,
	}
}

// jump launches the player if grounded. No double jumps.
func (g *Game) jump() {
	if !g.onGround() {
		return
	}
	g.player.VelY = g.cfg.Physics.JumpImpulse
	g.emit(core.CueJump)
}

// applyPhysics integrates gravity and clamps the player to the ground.
func (g *Game) applyPhysics() {
	p := &g.player
	p.VelY += g.cfg.Physics.Gravity
	p.Y += p.VelY

	if ground := g.groundLevel(); p.Y >= ground {
		p.Y = ground
		p.VelY = 0
	}
}
