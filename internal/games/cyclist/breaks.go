package cyclist

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/cyclist-collector/internal/core"
)

// maxQuizInput caps the quiz answer buffer, in runes.
const maxQuizInput = 32

// QuizItem is one break quiz question and its lowercase answer.
type QuizItem struct {
	Question string
	Answer   string
}

var quizCatalog = []QuizItem{
	{"How many points do you get per coin?", "10"},
	{"What key do you press to jump?", "space"},
	{"What color are the coins?", "yellow"},
	{"What are you avoiding?", "obstacles"},
}

// BreakState tracks play time and the active break quiz.
type BreakState struct {
	SessionStart time.Time // When the current run started
	Baseline     time.Time // Start of the current break interval
	Pending      bool      // A quiz or break screen is unresolved
	Quiz         QuizItem
	Input        string
}

// checkBreak opens the quiz once a full break interval has passed since
// the baseline.
func (g *Game) checkBreak() {
	if g.breaks.Pending {
		return
	}
	if g.now().Sub(g.breaks.Baseline) < g.cfg.Breaks.Interval {
		return
	}

	g.breaks.Pending = true
	g.breaks.Quiz = quizCatalog[g.rng.Intn(len(quizCatalog))]
	g.breaks.Input = ""
	g.logger.Info("break offered", "minutes", g.minutesPlayed(), "question", g.breaks.Quiz.Question)
	g.setPhase(PhaseQuizGate)
}

// handleQuizKeys edits the answer buffer and submits it on Enter.
// Keystrokes after a submit in the same frame are dropped.
func (g *Game) handleQuizKeys(keys []core.Keystroke) {
	for _, k := range keys {
		switch k.Kind {
		case core.KeystrokeRune:
			if utf8.RuneCountInString(g.breaks.Input) < maxQuizInput {
				g.breaks.Input += string(k.Rune)
			}
		case core.KeystrokeBackspace:
			if in := g.breaks.Input; in != "" {
				_, size := utf8.DecodeLastRuneInString(in)
				g.breaks.Input = in[:len(in)-size]
			}
		case core.KeystrokeSubmit:
			g.submitQuiz()
			return
		}
	}
}

// submitQuiz checks the answer. A correct answer resumes play; a wrong one
// shows the break screen.
func (g *Game) submitQuiz() {
	correct := strings.ToLower(g.breaks.Input) == g.breaks.Quiz.Answer
	g.breaks.Input = ""

	if correct {
		g.logger.Debug("quiz answered")
		g.resolveBreak()
		return
	}
	g.logger.Debug("quiz missed")
	g.setPhase(PhaseBreakScreen)
}

// resolveBreak clears the pending break and restarts the break interval.
func (g *Game) resolveBreak() {
	g.breaks.Pending = false
	g.breaks.Baseline = g.now()
	g.setPhase(PhasePlaying)
}

// minutesPlayed returns whole minutes since the run started.
func (g *Game) minutesPlayed() int {
	if g.breaks.SessionStart.IsZero() {
		return 0
	}
	return int(g.now().Sub(g.breaks.SessionStart) / time.Minute)
}
