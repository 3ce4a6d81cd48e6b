package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyclist-collector/internal/core"
	"github.com/vovakirdan/cyclist-collector/internal/games/cyclist"
	"github.com/vovakirdan/cyclist-collector/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 9}
	m := NewModel(cyclist.New(), store, cfg, nil)
	m.Init()
	return m, store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next
}

// playUntilGameOver starts a run and never jumps until the run ends.
func playUntilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 20000; i++ {
		m = send(t, m, TickMsg{})
		if m.gameState.GameOver {
			return m
		}
	}
	t.Fatal("Run did not end")
	return m
}

func TestModelRecordsRunOnce(t *testing.T) {
	m, store := newTestModel(t)
	m = playUntilGameOver(t, m)

	for i := 0; i < 10; i++ {
		m = send(t, m, TickMsg{})
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("RunCount() = %d, expected 1", n)
	}
	if len(m.history.Runs()) != 1 {
		t.Errorf("History should list the recorded run, got %d", len(m.history.Runs()))
	}
}

func TestModelHistoryToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showHistory {
		t.Fatal("History should only open on game over")
	}

	m = playUntilGameOver(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showHistory {
		t.Fatal("Tab should open history on game over")
	}
	view := m.View()
	if !strings.Contains(view, "SESSION HISTORY") {
		t.Error("History view should be shown")
	}
	if !strings.Contains(view, "Last run:") {
		t.Error("History view should show the last run")
	}

	m = send(t, m, runeKey("r"))
	m = send(t, m, TickMsg{})
	if m.showHistory || m.gameState.GameOver {
		t.Error("Restart should close history and start a new run")
	}
	if m.runRecorded {
		t.Error("New run should not be marked as recorded")
	}
}

func TestModelQuizRoutesText(t *testing.T) {
	m, _ := newTestModel(t)
	m.gameState = core.GameState{Phase: "quiz", AcceptText: true}

	m = send(t, m, runeKey("q"))
	if m.quitting {
		t.Fatal("q should be typed during the quiz, not quit")
	}
	if len(m.inputFrame.Keys) != 1 {
		t.Errorf("Expected one keystroke, got %d", len(m.inputFrame.Keys))
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should quit during the quiz")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	updated, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if !updated.(Model).quitting {
		t.Error("Model should be quitting")
	}
	if updated.(Model).View() != "" {
		t.Error("Quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("Screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewShowsHelp(t *testing.T) {
	m, _ := newTestModel(t)
	if !strings.Contains(m.View(), "jump/start") {
		t.Error("View should include the help footer")
	}
}

func TestBellSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewBellSink(&buf)

	sink.Play(core.CueJump)
	sink.Play(core.CueCollect)
	sink.Play(core.CueHit)
	if buf.String() != "\a\a" {
		t.Errorf("Bell output = %q, expected two bells", buf.String())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.SetPen(core.ColorRed)
	s.DrawText(0, 0, "hit")
	s.SetPen(core.ColorDefault)
	s.DrawText(4, 0, "ok")

	out := RenderScreen(s)
	if !strings.Contains(out, "hit") || !strings.Contains(out, "ok") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 rows, got %q", out)
	}
}
