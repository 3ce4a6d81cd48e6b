package cyclist

import (
	"math/rand"

	"github.com/vovakirdan/cyclist-collector/internal/config"
	"github.com/vovakirdan/cyclist-collector/internal/core"
)

// Obstacle is a ground block the player must jump over.
type Obstacle struct {
	X float64 // Left edge
}

// Coin is a collectible worth points.
type Coin struct {
	X, Y float64
}

// Heart is a collectible that restores one life.
type Heart struct {
	X, Y float64
}

// EntityManager owns the obstacle, coin and heart stores and spawns,
// moves and prunes them.
type EntityManager struct {
	obstacles []Obstacle
	coins     []Coin
	hearts    []Heart

	coinTimer  int
	heartTimer int
	coinEvery  int // Ticks between coin spawns
	heartEvery int // Ticks between heart spawns

	cfg *config.CyclistConfig
	rng *rand.Rand
}

// NewEntityManager creates an entity manager. Cadences are given in ticks.
func NewEntityManager(cfg *config.CyclistConfig, rng *rand.Rand, coinEvery, heartEvery int) *EntityManager {
	em := &EntityManager{
		obstacles:  make([]Obstacle, 0, 4),
		coins:      make([]Coin, 0, 8),
		hearts:     make([]Heart, 0, 4),
		coinEvery:  coinEvery,
		heartEvery: heartEvery,
		cfg:        cfg,
		rng:        rng,
	}
	em.Reset()
	return em
}

// Reset clears all stores and places the first obstacle at the right edge.
func (em *EntityManager) Reset() {
	em.obstacles = em.obstacles[:0]
	em.coins = em.coins[:0]
	em.hearts = em.hearts[:0]
	em.coinTimer = 0
	em.heartTimer = 0
	em.appendObstacle()
}

// Spawn advances the coin and heart timers and appends new collectibles
// at the right edge when a timer fires.
func (em *EntityManager) Spawn() {
	ground := em.cfg.World.GroundY

	em.coinTimer++
	if em.coinTimer >= em.coinEvery {
		y := ground - em.cfg.Coins.Height
		if em.rng.Float64() >= em.cfg.Coins.GroundChance {
			y = ground - em.cfg.Coins.ElevatedOffset - float64(em.rng.Intn(em.cfg.Coins.ElevatedJitter+1))
		}
		em.coins = append(em.coins, Coin{X: em.cfg.World.Width, Y: y})
		em.coinTimer = 0
	}

	em.heartTimer++
	if em.heartTimer >= em.heartEvery {
		y := ground - em.cfg.Hearts.ElevatedOffset - float64(em.rng.Intn(em.cfg.Hearts.ElevatedJitter+1))
		em.hearts = append(em.hearts, Heart{X: em.cfg.World.Width, Y: y})
		em.heartTimer = 0
	}
}

// Advance scrolls every entity left by speed, recycles the leading obstacle
// once it has left the screen and prunes off-screen collectibles.
func (em *EntityManager) Advance(speed float64) {
	for i := range em.obstacles {
		em.obstacles[i].X -= speed
	}
	for i := range em.coins {
		em.coins[i].X -= speed
	}
	for i := range em.hearts {
		em.hearts[i].X -= speed
	}

	// Only the leading obstacle is checked, one recycle per tick.
	if len(em.obstacles) > 0 && em.obstacles[0].X < -em.cfg.Obstacles.Width {
		em.obstacles = append(em.obstacles[:0], em.obstacles[1:]...)
		em.appendObstacle()
	}

	validCoins := em.coins[:0]
	for _, c := range em.coins {
		if c.X > -em.cfg.Coins.Width {
			validCoins = append(validCoins, c)
		}
	}
	em.coins = validCoins

	validHearts := em.hearts[:0]
	for _, h := range em.hearts {
		if h.X > -em.cfg.Hearts.Width {
			validHearts = append(validHearts, h)
		}
	}
	em.hearts = validHearts
}

// appendObstacle places a new obstacle a random gap after the last one,
// or at the right edge when the store is empty.
func (em *EntityManager) appendObstacle() {
	x := em.cfg.World.Width
	if n := len(em.obstacles); n > 0 {
		minGap, maxGap := em.cfg.Obstacles.MinGap, em.cfg.Obstacles.MaxGap
		x = em.obstacles[n-1].X + float64(minGap+em.rng.Intn(maxGap-minGap+1))
	}
	em.obstacles = append(em.obstacles, Obstacle{X: x})
}

// removeObstacle deletes the obstacle at index i. The store is refilled
// from the right edge if that empties it.
func (em *EntityManager) removeObstacle(i int) {
	em.obstacles = append(em.obstacles[:i], em.obstacles[i+1:]...)
	if len(em.obstacles) == 0 {
		em.appendObstacle()
	}
}

// ObstacleBox returns the collision box of an obstacle.
func (em *EntityManager) ObstacleBox(o Obstacle) core.Box {
	h := em.cfg.Obstacles.Height
	return core.NewBox(o.X, em.cfg.World.GroundY-h, em.cfg.Obstacles.Width, h)
}

// CoinBox returns the collision box of a coin.
func (em *EntityManager) CoinBox(c Coin) core.Box {
	return core.NewBox(c.X, c.Y, em.cfg.Coins.Width, em.cfg.Coins.Height)
}

// HeartBox returns the collision box of a heart.
func (em *EntityManager) HeartBox(h Heart) core.Box {
	return core.NewBox(h.X, h.Y, em.cfg.Hearts.Width, em.cfg.Hearts.Height)
}

// Obstacles returns the current obstacles.
func (em *EntityManager) Obstacles() []Obstacle {
	return em.obstacles
}

// Coins returns the current coins.
func (em *EntityManager) Coins() []Coin {
	return em.coins
}

// Hearts returns the current hearts.
func (em *EntityManager) Hearts() []Heart {
	return em.hearts
}
