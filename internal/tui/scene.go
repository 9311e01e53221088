package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/recard/internal/model"
)

// scene is one state of the interactive machine. Each scene owns its
// rendered content and input interpretation; transitions happen by
// setting the session's active-scene value, which the root model
// observes. enter and leave must be symmetric: whatever a scene
// subscribes to or schedules on enter is cancelled on leave.
type scene interface {
	enter() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view() string
	leave()
}

// collectionLoadedMsg reports the asynchronous deck load started by
// the Settings scene.
type collectionLoadedMsg struct {
	collection *model.Collection
	err        error
}

// tickMsg is one countdown step. The generation counter discards
// stale ticks fired into a superseded Card scene.
type tickMsg struct {
	gen int
}
