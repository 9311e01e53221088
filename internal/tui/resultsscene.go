package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/verte-zerg/recard/internal/deck"
	"github.com/verte-zerg/recard/internal/model"
	"github.com/verte-zerg/recard/internal/results"
)

var (
	positiveAnswers = []string{"yes", "y", "1", "true", "t"}
	negativeAnswers = []string{"no", "n", "0", "false", "f"}
)

// resultsScene shows the session report and asks whether to save.
type resultsScene struct {
	m *Model

	report results.Report
	vp     viewport.Model
	input  textinput.Model
	info   string
}

func newResultsScene(m *Model) *resultsScene {
	input := textinput.New()
	input.Prompt = "Save the results? (y/n) > "
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &resultsScene{m: m, input: input}
}

func (s *resultsScene) enter() tea.Cmd {
	s.report = results.Build(s.m.state)
	if s.report.Empty() {
		// Nothing to report, nothing to save.
		s.m.state.SetActiveScene(model.SceneExit)
		return nil
	}
	s.vp = viewport.New(s.m.width, s.bodyHeight())
	s.vp.SetContent(results.Format(s.m.state, s.report))
	return textinput.Blink
}

func (s *resultsScene) bodyHeight() int {
	h := s.m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (s *resultsScene) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.vp.Width = msg.Width
		s.vp.Height = s.bodyHeight()
		return nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			s.submit(s.input.Value())
			s.input.SetValue("")
			return nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			s.vp, cmd = s.vp.Update(msg)
			return cmd
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// submit accepts only a fixed yes/no vocabulary; anything else
// re-prompts in place.
func (s *resultsScene) submit(answer string) {
	st := s.m.state
	answer = strings.ToLower(strings.TrimSpace(answer))
	switch {
	case lo.Contains(positiveAnswers, answer):
		if err := deck.Save(s.m.sourcePath, st.Collection(), st.Selected()); err != nil {
			st.SetError(err.Error())
		}
		st.SetActiveScene(model.SceneExit)
	case lo.Contains(negativeAnswers, answer):
		st.SetActiveScene(model.SceneExit)
	default:
		s.info = "Please answer yes or no."
	}
}

func (s *resultsScene) view() string {
	lines := []string{s.vp.View()}
	if s.info != "" {
		lines = append(lines, errorStyle.Render(s.info))
	} else {
		lines = append(lines, footerStyle.Render("up/down: scroll"))
	}
	lines = append(lines, s.input.View())
	return strings.Join(lines, "\n")
}

func (s *resultsScene) leave() {}
