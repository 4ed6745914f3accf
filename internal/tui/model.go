// Package tui is the terminal front end: it hosts the render loop, draws the
// scene and translates key presses into scene commands. It holds no scene
// state of its own beyond what it needs for layout and search input.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/nkoval/orbitview/internal/scene"
)

const (
	defaultCanvasWidth  = 84
	defaultCanvasHeight = 28
	telemetryCapacity   = 120
)

// TickMsg drives one frame of the render loop.
type TickMsg time.Time

type Model struct {
	scene  *scene.Scene
	canvas *Canvas
	fps    int

	names    []string
	selected int

	searching bool
	search    string

	telemetry []float64
	showHelp  bool
	status    string
}

func NewModel(s *scene.Scene, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		scene:     s,
		canvas:    NewCanvas(defaultCanvasWidth, defaultCanvasHeight),
		fps:       fps,
		names:     s.Names(),
		telemetry: make([]float64, 0, telemetryCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.scene.Tick(1.0 / float64(m.fps))
		m.observe()
		return m, m.tick()

	case tea.WindowSizeMsg:
		w := msg.Width - 40 // reserve the side panel
		h := msg.Height - 4
		if w >= 20 && h >= 8 {
			m.canvas = NewCanvas(w, h)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.scene.PauseToggle()
		case "+", "=":
			m.scene.SpeedUp()
		case "-":
			m.scene.SlowDown()
		case "z":
			m.scene.ZoomOut()
		case "c", "esc":
			m.scene.ClearTracking()
			m.status = ""
		case "/":
			m.searching = true
			m.search = ""
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.names)-1 {
				m.selected++
			}
		case "enter":
			if len(m.names) > 0 {
				m.selectBody(m.names[m.selected])
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
	case "enter":
		m.searching = false
		if m.search != "" {
			m.selectBody(m.search)
		}
	case "backspace":
		if len(m.search) > 0 {
			m.search = m.search[:len(m.search)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.search += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *Model) selectBody(name string) {
	if err := m.scene.SelectBody(name); err != nil {
		m.status = fmt.Sprintf("no body matching %q", name)
		return
	}
	m.status = ""
}

// observe appends the tracked (or first) body's x position to the telemetry
// ring for the side-panel graph.
func (m *Model) observe() {
	vs := m.scene.View()
	if len(vs.Bodies) == 0 {
		return
	}
	b := vs.Bodies[0]
	for _, cand := range vs.Bodies {
		if cand.Name == vs.Tracked {
			b = cand
			break
		}
	}
	m.telemetry = append(m.telemetry, b.Position.X)
	if len(m.telemetry) > telemetryCapacity {
		m.telemetry = m.telemetry[1:]
	}
}

func (m Model) View() string {
	vs := m.scene.View()
	draw(m.canvas, vs)

	left := canvasStyle.Render(m.canvas.String())
	right := panelStyle.Render(m.panel(vs))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	help := "[space] pause  [enter] track  [/] search  [z] zoom out  [c] reset  [+/-] speed  [q] quit"
	if m.showHelp {
		help += "  [up/down] choose body  [?] hide help"
	}
	return body + "\n" + helpStyle.Render(help) + "\n"
}

func (m Model) panel(vs scene.ViewState) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("orbitview"))
	sb.WriteString("\n\n")

	switch {
	case vs.Paused && vs.Tracked != "":
		sb.WriteString(trackingStyle.Render("TRACKING " + vs.Tracked))
	case vs.Paused:
		sb.WriteString(pausedStyle.Render("PAUSED"))
	default:
		sb.WriteString(runningStyle.Render("RUNNING"))
	}
	fmt.Fprintf(&sb, "\n%s %s\n\n",
		labelStyle.Render("speed"),
		valueStyle.Render(fmt.Sprintf("x%.2f", vs.TimeScale)))

	if m.searching {
		sb.WriteString(searchStyle.Render("/" + m.search))
		sb.WriteString("\n\n")
	}

	for i, name := range m.names {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		line := cursor + name
		if name == vs.Tracked {
			line = trackingStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if vs.Tracked != "" {
		if info, err := m.scene.Info(vs.Tracked); err == nil {
			sb.WriteString("\n")
			sb.WriteString(valueStyle.Render(info.Text()))
			sb.WriteByte('\n')
		}
	}

	if len(m.telemetry) > 2 {
		sb.WriteString("\n")
		sb.WriteString(graphStyle.Render(asciigraph.Plot(m.telemetry,
			asciigraph.Height(5),
			asciigraph.Width(28),
			asciigraph.Caption("x position"),
		)))
	}

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(pausedStyle.Render(m.status))
	}
	return sb.String()
}

// Run starts the interactive viewer and blocks until it exits.
func Run(s *scene.Scene, fps int) error {
	p := tea.NewProgram(NewModel(s, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
