// Package cyclist implements Cyclist Collector, an endless runner where a
// cyclist jumps obstacles, collects coins and hearts, and is periodically
// stopped by a short break quiz.
//
// All simulation state lives in a single Game value. Step advances it by one
// fixed tick; Render and Snapshot expose the result to the presentation layer.
package cyclist

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyclist-collector/internal/config"
	"github.com/vovakirdan/cyclist-collector/internal/core"
)

// RunState holds the counters of the current run. HighScore outlives runs.
type RunState struct {
	Score     int
	Coins     int
	Distance  int     // Ticks survived while playing
	Speed     float64 // Obstacle scroll speed, units per tick
	HighScore int
}

// Game implements the Cyclist Collector game logic.
type Game struct {
	cfg     config.CyclistConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	now     func() time.Time
	audio   core.AudioSink
	logger  *log.Logger

	phase    Phase
	player   Player
	entities *EntityManager
	run      RunState
	skills   SkillSet
	league   League
	breaks   BreakState

	cues []core.Cue // Cues fired during the current Step
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game configuration. The default is the embedded config.
func WithConfig(cfg config.CyclistConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithClock sets the wall clock used by the break scheduler.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		if now != nil {
			g.now = now
		}
	}
}

// WithAudio sets the sink that receives sound cues.
func WithAudio(sink core.AudioSink) Option {
	return func(g *Game) {
		if sink != nil {
			g.audio = sink
		}
	}
}

// WithLogger sets the logger for phase changes and run results.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a new Cyclist Collector game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultCyclistConfig(),
		now:    time.Now,
		audio:  core.NopAudio{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cyclist"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cyclist Collector"
}

// Reset starts a new session: the random source is reseeded, high score and
// skills are cleared and the game returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	coinEvery := config.TicksFor(g.cfg.Coins.SpawnEvery, runtime.TickRate)
	heartEvery := config.TicksFor(g.cfg.Hearts.SpawnEvery, runtime.TickRate)
	g.entities = NewEntityManager(&g.cfg, g.rng, coinEvery, heartEvery)

	g.run = RunState{Speed: g.cfg.Physics.BaseSpeed}
	g.skills = SkillSet{}
	g.breaks = BreakState{}
	g.resetPlayer()
	g.league = leagueFor(0, g.rng)
	g.phase = PhaseStart
	g.cues = g.cues[:0]
}

// startRun resets everything that belongs to a single run. High score and
// skills are kept.
func (g *Game) startRun() {
	g.resetPlayer()
	g.entities.Reset()
	g.run = RunState{Speed: g.cfg.Physics.BaseSpeed, HighScore: g.run.HighScore}
	g.league = leagueFor(0, g.rng)

	now := g.now()
	g.breaks = BreakState{SessionStart: now, Baseline: now}
	g.setPhase(PhasePlaying)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]

	g.handleInput(in)
	if g.phase == PhasePlaying {
		g.simulate()
	}

	return core.StepResult{State: g.State(), Cues: slices.Clone(g.cues)}
}

// handleInput applies the phase transitions triggered by this tick's input.
func (g *Game) handleInput(in core.InputFrame) {
	switch g.phase {
	case PhaseStart, PhaseGameOver:
		if startPressed(in) {
			g.startRun()
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.setPhase(PhasePaused)
			return
		}
		if in.Has(core.ActionJump) {
			g.jump()
		}

	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.setPhase(PhasePlaying)
		}

	case PhaseQuizGate:
		g.handleQuizKeys(in.Keys)

	case PhaseBreakScreen:
		if startPressed(in) {
			g.resolveBreak()
		}
	}
}

// startPressed reports whether the frame holds a start/continue action.
func startPressed(in core.InputFrame) bool {
	return in.HasAny(core.ActionJump, core.ActionConfirm, core.ActionRestart)
}

// simulate runs one playing tick:
// physics, spawning, movement, collisions, difficulty, break check.
func (g *Game) simulate() {
	g.player.Frame++
	g.applyPhysics()

	g.entities.Spawn()
	g.entities.Advance(g.run.Speed)

	if g.resolveObstacleHits() {
		return // Run ended
	}
	g.collectCoins()
	g.collectHearts()
	g.unlockSkills()

	g.updateDifficulty()
	g.checkBreak()
}

// setPhase switches phase and logs the transition.
func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.logger.Debug("phase change", "from", g.phase, "to", p)
	g.phase = p
}

// emit fires a sound cue.
func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
	g.audio.Play(c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:      g.phase.String(),
		Score:      g.run.Score,
		GameOver:   g.phase == PhaseGameOver,
		Paused:     g.phase == PhasePaused,
		AcceptText: g.phase == PhaseQuizGate,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Summary describes the current (or just finished) run.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Score:     g.run.Score,
		Coins:     g.run.Coins,
		Distance:  g.run.Distance,
		League:    g.league.Name,
		Skills:    g.skills.Len(),
		HighScore: g.run.HighScore,
	}
}
