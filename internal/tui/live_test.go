package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulsefx/pulsefx/internal/audio"
	"github.com/pulsefx/pulsefx/internal/config"
	"github.com/pulsefx/pulsefx/internal/particle"
	"github.com/pulsefx/pulsefx/internal/reactive"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.GetPreset("cosmic")
	cfg.Seed = 1
	e := particle.New(cfg.Particle())
	bindings, burst := cfg.Reactive()
	return NewModel(Options{
		Engine: e,
		Source: audio.NewSynth(30),
		Mapper: reactive.NewMapper(bindings, burst),
		Theme:  cfg.Theme,
		FPS:    60,
	})
}

func advance(m Model, ticks int) Model {
	for i := 0; i < ticks; i++ {
		next, _ := m.Update(tickMsg(time.Now()))
		m = next.(Model)
	}
	return m
}

func TestTickAdvancesEngine(t *testing.T) {
	m := advance(testModel(t), 30)
	if m.engine.Live() == 0 {
		t.Error("engine should have live particles after 30 ticks")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	m := advance(testModel(t), 10)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if !m.paused {
		t.Fatal("space should pause")
	}

	before := m.engine.Live()
	m = advance(m, 20)
	if got := m.engine.Live(); got != before {
		t.Errorf("paused model advanced engine: live %d -> %d", before, got)
	}
}

func TestThemeCycles(t *testing.T) {
	m := testModel(t)
	start := m.theme.Name
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = next.(Model)
	if m.theme.Name == start {
		t.Error("t should cycle the theme")
	}
}

func TestWindowResizeRebuildsCanvas(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.canvas.Width != 116 {
		t.Errorf("canvas width %d, want 116", m.canvas.Width)
	}
	if m.canvas.Height != 32 {
		t.Errorf("canvas height %d, want 32", m.canvas.Height)
	}
}

func TestEmissionRateKeys(t *testing.T) {
	m := testModel(t)
	start := m.engine.EmissionRate()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if got := m.engine.EmissionRate(); got != start+0.5 {
		t.Errorf("rate after up: %v, want %v", got, start+0.5)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if got := m.engine.EmissionRate(); got != start {
		t.Errorf("rate after down: %v, want %v", got, start)
	}
}

func TestViewRendersStatusLine(t *testing.T) {
	m := advance(testModel(t), 5)
	out := m.View()
	if !strings.Contains(out, "pulsefx") {
		t.Error("view missing title")
	}
	if !strings.Contains(out, "live") {
		t.Error("view missing status")
	}
}
