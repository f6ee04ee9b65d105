package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/physics"
)

const (
	width            = 80
	height           = 24
	historyCapacity  = 300
	maxTicksPerFrame = 1 << 14
)

type TickMsg time.Time

type Options struct {
	Name          string
	TicksPerFrame int
	FPS           int
	Theme         string
	// Snapshot is called with the current canvas when the user presses s. It
	// returns a short description of where the snapshot went.
	Snapshot func(c *Canvas, tick uint64) (string, error)
}

// Model runs a Universe inside a Bubble Tea program. Ticks happen only in
// Update, so the universe is never touched from two goroutines.
type Model struct {
	universe      *physics.Universe
	initial       *physics.Universe
	name          string
	camera        Camera
	canvas        *Canvas
	width, height int
	ticksPerFrame int
	fps           int
	running       bool
	theme         int
	showHelp      bool
	separation    []float64
	snapshot      func(*Canvas, uint64) (string, error)
	status        string
}

func NewModel(u *physics.Universe, opts Options) (Model, error) {
	theme, err := ThemeIndex(opts.Theme)
	if err != nil {
		return Model{}, err
	}
	if opts.TicksPerFrame <= 0 {
		opts.TicksPerFrame = 1
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}

	m := Model{
		universe:      u,
		initial:       u.Clone(),
		name:          opts.Name,
		camera:        NewCamera(),
		canvas:        NewCanvas(width, height),
		width:         width,
		height:        height,
		ticksPerFrame: opts.TicksPerFrame,
		fps:           opts.FPS,
		running:       true,
		theme:         theme,
		separation:    make([]float64, 0, historyCapacity),
		snapshot:      opts.Snapshot,
	}
	m.camera.Fit(u.Bodies(), m.canvas.SubWidth(), m.canvas.SubHeight())
	return m, nil
}

// Status is the result line of the last snapshot, if any.
func (m Model) Status() string { return m.status }

// Universe returns the live universe.
func (m Model) Universe() *physics.Universe { return m.universe }

func (m Model) TicksPerFrame() int { return m.ticksPerFrame }
func (m Model) Running() bool      { return m.running }

func (m Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			m.step(m.ticksPerFrame)
		}
		return m, m.nextFrame()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sw, sh := m.canvas.SubWidth(), m.canvas.SubHeight()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "n":
		if !m.running {
			m.step(1)
		}
	case "r":
		m.universe = m.initial.Clone()
		m.separation = m.separation[:0]
		m.camera.Fit(m.universe.Bodies(), sw, sh)
	case "+", "=":
		m.ticksPerFrame = min(m.ticksPerFrame*2, maxTicksPerFrame)
	case "-", "_":
		m.ticksPerFrame = max(m.ticksPerFrame/2, 1)
	case "left", "h":
		m.camera.Pan(-8, 0)
	case "right", "l":
		m.camera.Pan(8, 0)
	case "up", "k":
		m.camera.Pan(0, -8)
	case "down", "j":
		m.camera.Pan(0, 8)
	case "z":
		m.camera.Zoom(1.25, sw, sh)
	case "x":
		m.camera.Zoom(0.8, sw, sh)
	case "f":
		m.camera.Fit(m.universe.Bodies(), sw, sh)
	case "t":
		m.theme = (m.theme + 1) % len(themes)
	case "?":
		m.showHelp = !m.showHelp
	case "s":
		m.takeSnapshot()
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	cw := max(w-48, 20)
	ch := max(h-4, 8)
	m.width, m.height = cw, ch
	m.canvas = NewCanvas(cw, ch)
	m.camera.Fit(m.universe.Bodies(), m.canvas.SubWidth(), m.canvas.SubHeight())
}

// step advances n ticks and records the closest approach afterwards.
func (m *Model) step(n int) {
	for i := 0; i < n; i++ {
		m.universe.Tick()
	}

	sep := closestPair(m.universe.Bodies())
	if math.IsInf(sep, 0) || math.IsNaN(sep) {
		return
	}
	if len(m.separation) == historyCapacity {
		copy(m.separation, m.separation[1:])
		m.separation = m.separation[:historyCapacity-1]
	}
	m.separation = append(m.separation, sep)
}

func closestPair(bodies []physics.Body) float64 {
	best := math.Inf(1)
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			best = math.Min(best, bodies[j].Pos.Sub(bodies[i].Pos).Norm())
		}
	}
	return best
}

func (m *Model) takeSnapshot() {
	if m.snapshot == nil {
		m.status = "snapshots disabled"
		return
	}
	m.Draw()
	where, err := m.snapshot(m.canvas, m.universe.Ticks())
	if err != nil {
		m.status = "snapshot failed: " + err.Error()
		return
	}
	m.status = "saved " + where
}

// Draw renders the current bodies into the canvas.
func (m *Model) Draw() {
	DrawBodies(m.canvas, m.camera, m.universe.Bodies())
}

// DrawBodies clears c and draws every finite body through cam. Heavy bodies
// get a larger disc.
func DrawBodies(c *Canvas, cam Camera, bodies []physics.Body) {
	c.Clear()
	for _, b := range bodies {
		x, y, ok := cam.Project(b.Pos)
		if !ok {
			continue
		}
		cat := Classify(b)
		r := 1
		if cat == Heavy {
			r = 2
		}
		c.Disc(x, y, r, cat)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.Draw()
	theme := themes[m.theme]
	canvasView := canvasStyle.Render(m.canvas.Render(theme.BodyStyles()))

	bodies := m.universe.Bodies()
	invalid := 0
	for _, b := range bodies {
		if !b.Pos.IsFinite() || !b.Force.IsFinite() {
			invalid++
		}
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	switch {
	case invalid > 0:
		s.WriteString(StatusInvalid.Render(fmt.Sprintf("%d BODIES NaN/Inf", invalid)) + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.separation) > 1 {
		chart := asciigraph.Plot(m.separation, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("closest pair"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	census := Census(bodies)
	s.WriteString(row("Tick", fmt.Sprintf("%d", m.universe.Ticks())))
	s.WriteString(row("Ticks/frame", fmt.Sprintf("%d", m.ticksPerFrame)))
	s.WriteString(row("Bodies", fmt.Sprintf("%d", len(bodies))))
	s.WriteString(row("  heavy", fmt.Sprintf("%d", census[Heavy])))
	s.WriteString(row("  negative", fmt.Sprintf("%d", census[Negative])))
	s.WriteString(row("  positive", fmt.Sprintf("%d", census[Positive])))
	if len(m.separation) > 0 {
		s.WriteString(row("Closest", fmt.Sprintf("%.3f", m.separation[len(m.separation)-1])))
	}
	s.WriteString(row("Scale", fmt.Sprintf("%.3g/dot", m.camera.Scale)))
	if m.status != "" {
		s.WriteString(row("Snapshot", m.status))
	}
	s.WriteString("\n" + Legend(theme) + "\n")
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause N:Step R:Reset Q:Quit\n+/-:Speed Arrows:Pan Z/X:Zoom\nF:Fit T:Theme S:Snap ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N        - Single tick when paused  ║
║  R        - Reset to initial layout  ║
║  + / -    - Double/halve ticks/frame ║
║  Arrows   - Pan camera               ║
║  Z / X    - Zoom in / out            ║
║  F        - Fit all bodies           ║
║  T        - Cycle themes             ║
║  S        - Save SVG snapshot        ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the live view on the terminal and blocks until the user quits.
func Run(u *physics.Universe, opts Options) error {
	m, err := NewModel(u, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
