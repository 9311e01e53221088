package tui

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

// exitScene is terminal: it renders the goodbye card and quits the
// program. The final card (and any pending error) is printed again
// outside the alternate screen by the caller.
type exitScene struct {
	m *Model
}

func newExitScene(m *Model) *exitScene {
	return &exitScene{m: m}
}

func (s *exitScene) enter() tea.Cmd {
	return tea.Quit
}

func (s *exitScene) update(tea.Msg) tea.Cmd { return nil }

func (s *exitScene) view() string {
	card := frame([]string{"Bye o/"}, s.m.width)
	return lipgloss.Place(s.m.width, s.m.height, lipgloss.Center, lipgloss.Center, card)
}

func (s *exitScene) leave() {}
