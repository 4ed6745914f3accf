package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkoval/orbitview/internal/feed"
	"github.com/nkoval/orbitview/internal/logging"
	"github.com/nkoval/orbitview/internal/scene"
)

func sceneCamera() scene.CameraState {
	return scene.CameraState{Position: scene.Vec3{Z: 1500}}
}

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	reg := feed.BuildRegistry(feed.Builtin(), feed.DefaultPeriod, logging.Noop())
	return scene.New(reg, scene.Options{Logger: logging.Noop()})
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestSpaceTogglesPause(t *testing.T) {
	s := testScene(t)
	m := NewModel(s, 30)

	m = update(m, key(" "))
	s.Tick(0.033)
	if !s.Paused() {
		t.Error("space should pause the scene")
	}

	m = update(m, key(" "))
	s.Tick(0.033)
	if s.Paused() {
		t.Error("second space should resume")
	}
	_ = m
}

func TestSearchSelectsBody(t *testing.T) {
	s := testScene(t)
	m := NewModel(s, 30)

	m = update(m, key("/"))
	if !m.searching {
		t.Fatal("slash should enter search mode")
	}
	for _, r := range "earth" {
		m = update(m, key(string(r)))
	}
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	s.Tick(0.033)

	if got := s.Tracked(); got != "Earth" {
		t.Errorf("want Earth tracked, got %q", got)
	}
}

func TestSearchUnknownShowsStatus(t *testing.T) {
	s := testScene(t)
	m := NewModel(s, 30)

	m = update(m, key("/"))
	m = update(m, key("x"))
	m = update(m, key("q")) // still search input, not quit
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.status == "" {
		t.Error("failed select should surface a status message")
	}
}

func TestViewRendersSceneAndPanel(t *testing.T) {
	s := testScene(t)
	m := NewModel(s, 30)
	m = update(m, TickMsg{})

	out := m.View()
	if !strings.Contains(out, "orbitview") {
		t.Error("panel header missing")
	}
	if !strings.Contains(out, "Earth") {
		t.Error("body list missing")
	}
	if !strings.Contains(out, "RUNNING") {
		t.Error("status line missing")
	}
}

func TestTickAdvancesScene(t *testing.T) {
	s := testScene(t)
	m := NewModel(s, 30)

	before := s.View().Bodies[0].Position
	for i := 0; i < 30; i++ {
		m = update(m, TickMsg{})
	}
	after := s.View().Bodies[0].Position

	if before == after {
		t.Error("tick messages should advance body positions")
	}
}
