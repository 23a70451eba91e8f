// Package tui hosts the live terminal view: audio frames drive the
// engine, the engine draws onto a braille canvas, bubbletea runs the loop.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulsefx/pulsefx/internal/audio"
	"github.com/pulsefx/pulsefx/internal/config"
	"github.com/pulsefx/pulsefx/internal/particle"
	"github.com/pulsefx/pulsefx/internal/reactive"
	"github.com/pulsefx/pulsefx/internal/stats"
	"github.com/pulsefx/pulsefx/internal/viz"
)

const (
	defaultCanvasW = 80
	defaultCanvasH = 20
	historyCap     = 120
)

// Options configures a live session.
type Options struct {
	Engine *particle.Engine
	Source audio.Source
	Mapper *reactive.Mapper
	Theme  string
	FPS    int
}

type tickMsg time.Time

type Model struct {
	engine  *particle.Engine
	source  audio.Source
	mapper  *reactive.Mapper
	stats   *stats.Collector
	adapter *viz.TerminalAdapter
	canvas  *viz.Canvas
	theme   viz.Theme
	bounds  particle.Bounds

	frame     audio.Frame
	haveFrame bool
	beatGlow  int
	paused    bool
	fps       int

	width, height int
}

func NewModel(opts Options) Model {
	fps := opts.FPS
	if fps <= 0 || fps > 120 {
		fps = 60
	}
	bounds := particle.Bounds{Width: config.DefaultWidth, Height: config.DefaultHeight}
	canvas := viz.NewCanvas(defaultCanvasW, defaultCanvasH)

	collector := stats.NewCollector(historyCap)
	opts.Engine.AddObserver(collector)

	return Model{
		engine:  opts.Engine,
		source:  opts.Source,
		mapper:  opts.Mapper,
		stats:   collector,
		adapter: viz.NewTerminalAdapter(canvas, bounds.Width, bounds.Height),
		canvas:  canvas,
		theme:   viz.GetTheme(opts.Theme),
		bounds:  bounds,
		fps:     fps,
		width:   defaultCanvasW,
		height:  defaultCanvasH + 6,
	}
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cw := msg.Width - 4
		ch := msg.Height - 8
		if cw < 20 {
			cw = 20
		}
		if ch < 8 {
			ch = 8
		}
		m.canvas = viz.NewCanvas(cw, ch)
		m.adapter.Resize(m.canvas)
		return m, nil

	case tickMsg:
		if !m.paused {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	if f, ok := m.source.Next(); ok {
		m.frame = f
		m.haveFrame = true
		m.mapper.Apply(m.engine, &f)
		if f.Beat {
			m.beatGlow = 4
		}
	} else {
		m.mapper.Apply(m.engine, nil)
	}
	m.engine.Update(1, m.bounds)
	if m.beatGlow > 0 {
		m.beatGlow--
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "t":
		m.theme = nextTheme(m.theme)
	case "c":
		m.engine.Clear()
	case "b":
		cx, cy := m.engine.EmissionArea().Center()
		m.engine.Explode(cx, cy, 30, 6, 3, 80, m.engine.Config().StaticColor)
	case "up", "+", "=":
		m.engine.SetEmissionRate(m.engine.EmissionRate() + 0.5)
	case "down", "-", "_":
		rate := m.engine.EmissionRate() - 0.5
		if rate < 0 {
			rate = 0
		}
		m.engine.SetEmissionRate(rate)
	}
	return m, nil
}

func nextTheme(cur viz.Theme) viz.Theme {
	for i, t := range viz.Themes {
		if t.Name == cur.Name {
			return viz.Themes[(i+1)%len(viz.Themes)]
		}
	}
	return viz.Themes[0]
}

func (m Model) View() string {
	m.canvas.Clear()
	m.engine.Render(m.adapter)

	var b strings.Builder

	status := viz.StatusRunning.Render("● live")
	if m.paused {
		status = viz.StatusPaused.Render("○ paused")
	}
	beat := "    "
	if m.beatGlow > 0 {
		beat = viz.BeatFlash.Render("BEAT")
	}
	b.WriteString(fmt.Sprintf(" %s  %s  %s  %s\n",
		viz.HeaderStyle.Render("pulsefx"),
		viz.ValueStyle.Render(m.theme.Name),
		status, beat))

	b.WriteString(viz.CanvasStyle.Render(m.canvas.String()))
	b.WriteByte('\n')

	if m.haveFrame {
		b.WriteString(fmt.Sprintf(" %s %s  %s %s  %s %s\n",
			viz.LabelStyle.Render("bass"), viz.BandMeter(m.frame.Bass, 16),
			viz.LabelStyle.Render("mid"), viz.BandMeter(m.frame.Mid, 16),
			viz.LabelStyle.Render("high"), viz.BandMeter(m.frame.High, 16)))
	}

	b.WriteString(fmt.Sprintf(" %s %s   %s %s   %s %s\n",
		viz.LabelStyle.Render("live"),
		viz.ValueStyle.Render(fmt.Sprintf("%d", m.engine.Live())),
		viz.LabelStyle.Render("rate"),
		viz.ValueStyle.Render(fmt.Sprintf("%.1f", m.engine.EmissionRate())),
		viz.LabelStyle.Render("pop"),
		viz.Sparkline(m.stats.LiveHistory(), 24)))

	b.WriteString(viz.HelpStyle.Render(" space pause  t theme  b burst  ± rate  c clear  q quit"))
	b.WriteByte('\n')

	return b.String()
}

// Run starts the live view and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
