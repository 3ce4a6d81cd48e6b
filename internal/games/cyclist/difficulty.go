package cyclist

import (
	"math"
	"math/rand"
)

// Difficulty rules. These are fixed and intentionally not configurable.
const (
	scoreEveryDistance = 10   // One point per this many distance ticks
	speedUpEvery       = 500  // Distance ticks between speed-ups
	speedUpStep        = 0.3  // Speed added at each speed-up
	easeScore          = 300  // Score from which speed eases back toward base
	easeStep           = 0.05 // Speed removed per tick while easing
)

// League is a cosmetic score tier with a randomized peer count.
type League struct {
	Name    string
	Members int
}

// leagueTier maps a score ceiling to a league and its member count range.
type leagueTier struct {
	below      int // Exclusive score ceiling; 0 means no ceiling
	name       string
	minMembers int
	maxMembers int
}

var leagueTiers = []leagueTier{
	{100, "Beginner League", 45, 67},
	{300, "Intermediate League", 28, 42},
	{500, "Advanced League", 15, 25},
	{0, "Pro League", 8, 15},
}

// leagueFor returns the league for a score. The member count is drawn anew
// on every call.
func leagueFor(score int, rng *rand.Rand) League {
	for _, t := range leagueTiers {
		if t.below == 0 || score < t.below {
			return League{
				Name:    t.name,
				Members: t.minMembers + rng.Intn(t.maxMembers-t.minMembers+1),
			}
		}
	}
	return League{}
}

// updateDifficulty advances distance, awards distance points and adjusts
// the scroll speed.
func (g *Game) updateDifficulty() {
	r := &g.run
	r.Distance++
	if r.Distance%scoreEveryDistance == 0 {
		r.Score++
	}

	base := g.cfg.Physics.BaseSpeed
	switch {
	case r.Score >= easeScore:
		r.Speed = math.Max(base, r.Speed-easeStep)
	case r.Distance%speedUpEvery == 0:
		r.Speed += speedUpStep
		g.logger.Debug("speed up", "speed", r.Speed, "distance", r.Distance)
	}

	g.league = leagueFor(r.Score, g.rng)
}
