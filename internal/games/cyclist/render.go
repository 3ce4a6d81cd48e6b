package cyclist

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/cyclist-collector/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '▓'
	CoinChar     = '●'
	HeartChar    = '♥'
	GroundChar   = '═'
	WheelChar    = 'o'
	FrameChar    = '▄'
	RiderChar    = '☻'
)

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

// rect converts a world box to a screen rect at least one cell in size.
func (v viewport) rect(b core.Box) core.Rect {
	x := int(b.X * v.sx)
	y := int(b.Y * v.sy)
	w := max(1, int(b.Right()*v.sx)-x)
	h := max(1, int(b.Bottom()*v.sy)-y)
	return core.NewRect(x, y, w, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()

	switch s.Phase {
	case PhaseStart:
		g.drawTitle(dst)
	case PhaseBreakScreen:
		g.drawBreakScreen(dst, s)
	case PhaseGameOver:
		g.drawGameOver(dst, s)
	default:
		g.drawWorld(dst, s)
		if s.Phase == PhaseQuizGate {
			g.drawQuiz(dst, s)
			break
		}
		g.drawHUD(dst, s)
		if s.Phase == PhasePaused {
			drawPanel(dst, core.ColorDefault, "PAUSED", "", "Press P to resume")
		}
	}
}

// drawWorld renders ground, entities and the cyclist.
func (g *Game) drawWorld(dst *core.Screen, s Snapshot) {
	v := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	groundY := int(g.cfg.World.GroundY * v.sy)
	dst.SetPen(core.ColorGray)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	dst.SetPen(core.ColorRed)
	for _, b := range s.Obstacles {
		dst.DrawRect(v.rect(b), ObstacleChar)
	}

	dst.SetPen(core.ColorYellow)
	for _, b := range s.Coins {
		dst.DrawRect(v.rect(b), CoinChar)
	}

	dst.SetPen(core.ColorBrightRed)
	for _, b := range s.Hearts {
		dst.DrawRect(v.rect(b), HeartChar)
	}

	drawCyclist(dst, v.rect(s.Player), s.PlayerFrame)
	dst.SetPen(core.ColorDefault)
}

// drawCyclist renders the rider: head on top, frame in the middle and
// wheels on the bottom row. Wheels spin with the animation frame.
func drawCyclist(dst *core.Screen, r core.Rect, frame int) {
	dst.SetPen(core.ColorBlue)
	for x := r.X; x < r.Right(); x++ {
		dst.Set(x, r.Bottom()-1, FrameChar)
		for y := r.Y + 1; y < r.Bottom()-1; y++ {
			dst.Set(x, y, FrameChar)
		}
	}

	dst.SetPen(core.ColorDefault)
	dst.Set(r.X+r.W/2, r.Y, RiderChar)

	wheel := WheelChar
	if (frame/10)%2 == 1 {
		wheel = 'O'
	}
	dst.Set(r.X, r.Bottom()-1, wheel)
	dst.Set(r.Right()-1, r.Bottom()-1, wheel)
}

// drawHUD renders score, coins, lives and league.
func (g *Game) drawHUD(dst *core.Screen, s Snapshot) {
	dst.SetPen(core.ColorDefault)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))

	dst.SetPen(core.ColorYellow)
	dst.DrawText(1, 1, fmt.Sprintf("Coins: %d", s.Collected))

	dst.SetPen(core.ColorBrightRed)
	dst.DrawText(1, 2, "Lives: "+strings.Repeat(string(HeartChar), s.Lives))

	dst.SetPen(core.ColorMagenta)
	dst.DrawText(1, 3, fmt.Sprintf("%s (%d players)", s.League.Name, s.League.Members))

	if s.Encouragement != "" {
		dst.SetPen(core.ColorGreen)
		dst.DrawText(dst.Width()-utf8.RuneCountInString(s.Encouragement)-1, 0, s.Encouragement)
	}

	dst.SetPen(core.ColorGray)
	spd := fmt.Sprintf("Spd: %.1f", s.Speed)
	dst.DrawText(dst.Width()-len(spd)-1, 1, spd)
	dst.SetPen(core.ColorDefault)
}

// drawTitle renders the start screen with instructions.
func (g *Game) drawTitle(dst *core.Screen) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{g.Title(), core.ColorBlue},
		{"", 0},
		{"HOW TO PLAY:", core.ColorDefault},
		{"SPACE to jump over obstacles", core.ColorDefault},
		{"Collect coins for +10 points", core.ColorYellow},
		{"Grab hearts for extra lives", core.ColorBrightRed},
		{"P to pause", core.ColorDefault},
		{"", 0},
		{"BREAK SYSTEM:", core.ColorMagenta},
		{fmt.Sprintf("Break reminders every %s", g.cfg.Breaks.Interval), core.ColorMagenta},
		{"", 0},
		{"HOW TO WIN:", core.ColorGreen},
		{"Unlock skills and reach Pro League!", core.ColorGreen},
		{"", 0},
		{"Press SPACE to Start", core.ColorBlue},
	}

	y := max(0, (dst.Height()-len(lines))/2)
	for _, l := range lines {
		dst.SetPen(l.color)
		dst.DrawTextCentered(y, l.text)
		y++
	}
	dst.SetPen(core.ColorDefault)
}

// drawQuiz renders the break quiz over the frozen world.
func (g *Game) drawQuiz(dst *core.Screen, s Snapshot) {
	input := s.QuizInput + "_"
	drawPanel(dst, core.ColorMagenta,
		"Time for a Quick Break?",
		fmt.Sprintf("You've been playing for %d minute(s)!", s.MinutesPlayed),
		"Answer this to keep playing:",
		s.QuizQuestion,
		"> "+input,
		"Press ENTER to submit",
	)
}

// drawBreakScreen renders progress, mastered skills and the next goal.
func (g *Game) drawBreakScreen(dst *core.Screen, s Snapshot) {
	y := 1
	dst.SetPen(core.ColorGreen)
	dst.DrawTextCentered(y, "Great Job! Take a Break")
	y += 2

	dst.SetPen(core.ColorDefault)
	dst.DrawTextCentered(y, fmt.Sprintf("You've earned %d points!", s.Score))
	y += 2

	if len(s.Skills) > 0 {
		dst.SetPen(core.ColorBlue)
		dst.DrawTextCentered(y, "Skills Mastered:")
		y++
		dst.SetPen(core.ColorGreen)
		for _, skill := range s.Skills {
			dst.DrawTextCentered(y, "✓ "+skill)
			y++
		}
		y++
	}

	dst.SetPen(core.ColorOrange)
	dst.DrawTextCentered(y, fmt.Sprintf("Next time: Try for '%s'!", s.NextSkill))

	dst.SetPen(core.ColorBlue)
	dst.DrawTextCentered(dst.Height()-2, "Press SPACE when ready to continue")
	dst.SetPen(core.ColorDefault)
}

// drawGameOver renders the final results and the first three skills.
func (g *Game) drawGameOver(dst *core.Screen, s Snapshot) {
	y := 1
	dst.SetPen(core.ColorRed)
	dst.DrawTextCentered(y, "GAME OVER!")
	y += 2

	rows := []struct {
		text  string
		color core.Color
	}{
		{fmt.Sprintf("Final Score: %d", s.Score), core.ColorDefault},
		{fmt.Sprintf("High Score: %d", s.HighScore), core.ColorBlue},
		{fmt.Sprintf("Coins Collected: %d", s.Collected), core.ColorYellow},
		{"League: " + s.League.Name, core.ColorMagenta},
		{fmt.Sprintf("You joined %d other players!", s.League.Members), core.ColorMagenta},
	}
	for _, r := range rows {
		dst.SetPen(r.color)
		dst.DrawTextCentered(y, r.text)
		y++
	}

	if len(s.Skills) > 0 {
		y++
		dst.SetPen(core.ColorGreen)
		dst.DrawTextCentered(y, "Skills You Mastered:")
		y++
		for _, skill := range s.Skills[:min(3, len(s.Skills))] {
			dst.DrawTextCentered(y, "✓ "+skill)
			y++
		}
	}

	dst.SetPen(core.ColorBlue)
	dst.DrawTextCentered(dst.Height()-2, "Press SPACE to Play Again")
	dst.SetPen(core.ColorDefault)
}

// drawPanel draws a framed, centered message box. Empty lines are kept as
// spacing.
func drawPanel(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.SetPen(core.ColorDefault)
	dst.DrawRect(box, ' ')
	dst.SetPen(color)
	dst.DrawBox(box)

	dst.SetPen(core.ColorDefault)
	for i, l := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
