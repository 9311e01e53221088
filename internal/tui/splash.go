package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/recard/internal/model"
)

// splashScene shows the title card; only enter is interpreted.
type splashScene struct {
	m *Model
}

func newSplashScene(m *Model) *splashScene {
	return &splashScene{m: m}
}

func (s *splashScene) enter() tea.Cmd { return nil }

func (s *splashScene) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		s.m.state.SetActiveScene(model.SceneSettings)
	}
	return nil
}

func (s *splashScene) view() string {
	card := frame([]string{"recard", "--- press enter ---"}, s.m.width)
	return lipgloss.Place(s.m.width, s.m.height, lipgloss.Center, lipgloss.Center, card)
}

func (s *splashScene) leave() {}
