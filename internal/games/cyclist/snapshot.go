package cyclist

import "github.com/vovakirdan/cyclist-collector/internal/core"

// Snapshot is a read-only copy of everything the presentation layer draws.
type Snapshot struct {
	Phase Phase

	Player      core.Box
	PlayerFrame int
	Obstacles   []core.Box
	Coins       []core.Box
	Hearts      []core.Box

	Score     int
	Collected int
	Distance  int
	Lives     int
	MaxLives  int
	HighScore int
	Speed     float64

	League    League
	Skills    []string
	NextSkill string

	QuizQuestion  string
	QuizInput     string
	MinutesPlayed int

	Encouragement string
}

// Encouragement lines shown once the score passes a milestone.
const (
	encourageHigh = "You're really getting this game!"
	encourageLow  = "You're getting it! Keep going!"
)

// Snapshot returns the current game state for drawing. The returned slices
// are owned by the caller.
func (g *Game) Snapshot() Snapshot {
	em := g.entities
	s := Snapshot{
		Phase:       g.phase,
		Player:      g.player.Box(),
		PlayerFrame: g.player.Frame,
		Obstacles:   make([]core.Box, 0, len(em.obstacles)),
		Coins:       make([]core.Box, 0, len(em.coins)),
		Hearts:      make([]core.Box, 0, len(em.hearts)),

		Score:     g.run.Score,
		Collected: g.run.Coins,
		Distance:  g.run.Distance,
		Lives:     g.player.Lives,
		MaxLives:  g.cfg.Player.MaxLives,
		HighScore: g.run.HighScore,
		Speed:     g.run.Speed,

		League:    g.league,
		Skills:    g.skills.List(),
		NextSkill: g.skills.Next(),

		MinutesPlayed: g.minutesPlayed(),
		Encouragement: encouragement(g.run.Score),
	}

	for _, o := range em.obstacles {
		s.Obstacles = append(s.Obstacles, em.ObstacleBox(o))
	}
	for _, c := range em.coins {
		s.Coins = append(s.Coins, em.CoinBox(c))
	}
	for _, h := range em.hearts {
		s.Hearts = append(s.Hearts, em.HeartBox(h))
	}

	if g.phase == PhaseQuizGate {
		s.QuizQuestion = g.breaks.Quiz.Question
		s.QuizInput = g.breaks.Input
	}
	return s
}

// encouragement returns the milestone line for a score, if any.
func encouragement(score int) string {
	switch {
	case score >= 200:
		return encourageHigh
	case score >= 100:
		return encourageLow
	default:
		return ""
	}
}
