package cyclist

import "github.com/vovakirdan/cyclist-collector/internal/core"

// Score rewards.
const (
	CoinPoints  = 10
	HeartPoints = 20
)

// High score bonus range applied when a run ends without beating the record.
const (
	highScoreBonusMin = 5
	highScoreBonusMax = 15
)

// resolveObstacleHits handles at most one obstacle hit per tick. It reports
// whether the hit ended the run.
func (g *Game) resolveObstacleHits() bool {
	pb := g.player.Box()
	em := g.entities

	for i, o := range em.obstacles {
		if !pb.Intersects(em.ObstacleBox(o)) {
			continue
		}

		em.removeObstacle(i)
		g.player.Lives--
		g.emit(core.CueHit)
		g.logger.Debug("obstacle hit", "lives", g.player.Lives, "score", g.run.Score)

		if g.player.Lives <= 0 {
			g.player.Lives = 0
			g.endRun()
			return true
		}
		return false
	}
	return false
}

// endRun finalizes the high score and switches to game over. A run that
// does not beat the record still nudges the record up by a small bonus.
func (g *Game) endRun() {
	if g.run.Score > g.run.HighScore {
		g.run.HighScore = g.run.Score
	} else {
		bonus := highScoreBonusMin + g.rng.Intn(highScoreBonusMax-highScoreBonusMin+1)
		g.run.HighScore = g.run.Score + bonus
	}

	g.logger.Info("run ended",
		"score", g.run.Score,
		"coins", g.run.Coins,
		"distance", g.run.Distance,
		"high", g.run.HighScore,
		"league", g.league.Name,
	)
	g.setPhase(PhaseGameOver)
}

// collectCoins removes every coin touching the player and scores it.
func (g *Game) collectCoins() {
	pb := g.player.Box()
	em := g.entities

	kept := em.coins[:0]
	for _, c := range em.coins {
		if pb.Intersects(em.CoinBox(c)) {
			g.run.Coins++
			g.run.Score += CoinPoints
			g.emit(core.CueCollect)
			continue
		}
		kept = append(kept, c)
	}
	em.coins = kept
}

// collectHearts removes every heart touching the player. A heart restores a
// life and scores only when the player is below max lives.
func (g *Game) collectHearts() {
	pb := g.player.Box()
	em := g.entities

	kept := em.hearts[:0]
	for _, h := range em.hearts {
		if !pb.Intersects(em.HeartBox(h)) {
			kept = append(kept, h)
			continue
		}
		if g.player.Lives < g.cfg.Player.MaxLives {
			g.player.Lives++
			g.run.Score += HeartPoints
			g.emit(core.CueCollect)
		}
	}
	em.hearts = kept
}
