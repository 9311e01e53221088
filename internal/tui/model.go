package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/verte-zerg/recard/internal/deck"
	"github.com/verte-zerg/recard/internal/model"
	"github.com/verte-zerg/recard/internal/policy"
	"github.com/verte-zerg/recard/internal/random"
	"github.com/verte-zerg/recard/internal/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7BC96F"))
	activePick  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactivePick = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0B0B0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model is the root Bubble Tea model: it owns the session state and
// dispatches to the active scene, swapping scenes when the session's
// active-scene value changes.
type Model struct {
	state      *session.State
	pol        *policy.Policies
	parser     *deck.Parser
	rnd        *random.Source
	log        *logrus.Logger
	sourcePath string

	width  int
	height int

	tag    model.Scene
	active scene

	sceneChanged bool
	unsubscribe  []func()
}

// NewModel constructs the root model with the splash scene active.
func NewModel(st *session.State, pol *policy.Policies, parser *deck.Parser, rnd *random.Source, log *logrus.Logger, sourcePath string) *Model {
	m := &Model{
		state:      st,
		pol:        pol,
		parser:     parser,
		rnd:        rnd,
		log:        log,
		sourcePath: sourcePath,
		width:      80,
		height:     24,
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		m.width, m.height = w, h
	}
	m.unsubscribe = append(m.unsubscribe, st.Scene().Subscribe(func(_, _ model.Scene) {
		m.sceneChanged = true
	}))
	m.unsubscribe = append(m.unsubscribe, st.LastError().Subscribe(func(next, _ string) {
		if next != "" {
			m.log.Error(next)
		}
	}))
	m.tag = st.ActiveScene()
	m.active = m.construct(m.tag)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmd := m.active.enter()
	return batch(cmd, m.syncScene())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	cmd := m.active.update(msg)
	return m, batch(cmd, m.syncScene())
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.active.view()
}

// syncScene reacts to active-scene changes: tear down the current
// scene, construct the next, and let it enter. Loops because entering
// a scene may immediately request another transition (an empty Results
// scene falls straight through to Exit).
func (m *Model) syncScene() tea.Cmd {
	var cmds []tea.Cmd
	for m.sceneChanged {
		m.sceneChanged = false
		next := m.state.ActiveScene()
		if next == m.tag {
			continue
		}
		m.active.leave()
		m.tag = next
		m.active = m.construct(next)
		if cmd := m.active.enter(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// construct is the closed set of scenes; the switch is exhaustive over
// model.Scene.
func (m *Model) construct(tag model.Scene) scene {
	switch tag {
	case model.SceneSplash:
		return newSplashScene(m)
	case model.SceneSettings:
		return newSettingsScene(m)
	case model.SceneCard:
		return newCardScene(m)
	case model.SceneResults:
		return newResultsScene(m)
	case model.SceneExit:
		return newExitScene(m)
	default:
		return newExitScene(m)
	}
}

// Close drops the root model's observable subscriptions.
func (m *Model) Close() {
	for _, cancel := range m.unsubscribe {
		cancel()
	}
	m.unsubscribe = nil
}

// FinalView renders the goodbye card shown after the program leaves
// the alternate screen.
func (m *Model) FinalView() string {
	card := frame([]string{"Bye o/"}, m.width)
	if err := m.state.LastError().Get(); err != "" {
		return card + "\n" + errorStyle.Render(err) + "\n"
	}
	return card + "\n"
}

func batch(cmds ...tea.Cmd) tea.Cmd {
	filtered := cmds[:0]
	for _, cmd := range cmds {
		if cmd != nil {
			filtered = append(filtered, cmd)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	default:
		return tea.Batch(filtered...)
	}
}
