package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/recard/internal/model"
)

// Settings sub-questions, asked in order for the free mode. A question
// is skipped when its field is already set (config file preset or a
// previous answer), which makes scripted defaults possible.
const (
	stepSide = iota
	stepTime
	stepLives
	stepHints
	stepCards
	stepDone
)

var modeChoices = []model.GameMode{
	model.ModeTenCards,
	model.ModeFree,
	model.ModeTimed,
	model.ModeLives,
	model.ModeRandom,
}

var modeLabels = map[model.GameMode]string{
	model.ModeTenCards: "Ten cards",
	model.ModeFree:     "Free",
	model.ModeTimed:    "Timed",
	model.ModeLives:    "Lives",
	model.ModeRandom:   "Random",
}

// settingsScene loads the deck and walks through game configuration.
type settingsScene struct {
	m *Model

	fetching bool

	pickingMode bool
	modeCursor  int

	step     int
	question string
	info     string
	input    textinput.Model
}

func newSettingsScene(m *Model) *settingsScene {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &settingsScene{m: m, input: input}
}

func (s *settingsScene) enter() tea.Cmd {
	if s.m.state.Collection() != nil {
		s.advance()
		return textinput.Blink
	}
	s.fetching = true
	parser := s.m.parser
	path := s.m.sourcePath
	return tea.Batch(textinput.Blink, func() tea.Msg {
		col, err := parser.Load(path)
		return collectionLoadedMsg{collection: col, err: err}
	})
}

func (s *settingsScene) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case collectionLoadedMsg:
		s.fetching = false
		if msg.err != nil {
			s.m.state.SetError(msg.err.Error())
			s.m.state.SetActiveScene(model.SceneExit)
			return nil
		}
		s.m.state.SetCollection(msg.collection)
		s.advance()
		return nil
	case tea.KeyMsg:
		if s.fetching {
			// All input is ignored while the deck loads.
			return nil
		}
		if s.pickingMode {
			s.updatePicker(msg)
			return nil
		}
		if msg.Type == tea.KeyEnter {
			s.handleAnswer(s.input.Value())
			s.input.SetValue("")
			return nil
		}
	}
	if !s.fetching && !s.pickingMode {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

// updatePicker drives the keystroke-mode game mode list. Line input is
// paused while the picker owns the focus.
func (s *settingsScene) updatePicker(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		s.modeCursor--
		if s.modeCursor < 0 {
			s.modeCursor = len(modeChoices) - 1
		}
	case "down", "j":
		s.modeCursor = (s.modeCursor + 1) % len(modeChoices)
	case "enter", " ":
		settings := s.m.state.Settings()
		settings.Mode = modeChoices[s.modeCursor]
		s.m.state.SetSettings(settings)
		s.pickingMode = false
		s.m.state.SetPauseInput(false)
		s.advance()
	}
}

// advance moves the configuration flow forward: pick a mode, apply a
// quick preset or ask the free-mode questions, then select the run's
// items and hand over to the Card scene.
func (s *settingsScene) advance() {
	st := s.m.state
	settings := st.Settings()
	if settings.Mode == "" {
		s.pickingMode = true
		st.SetPauseInput(true)
		return
	}
	if settings.Mode != model.ModeFree {
		settings = applyPreset(settings, s.m.rnd.Digits())
		st.SetSettings(settings)
		s.finish()
		return
	}
	for s.step < stepDone && s.answered(settings) {
		s.step++
	}
	if s.step >= stepDone {
		s.finish()
		return
	}
	s.askCurrent()
}

// answered reports whether the current step's field is already set.
func (s *settingsScene) answered(settings model.Settings) bool {
	switch s.step {
	case stepSide:
		return settings.QuestionFromFront != nil
	case stepTime:
		return settings.TimeLimit.Chosen()
	case stepLives:
		return settings.Lives.Chosen()
	case stepHints:
		return settings.Hints.Chosen()
	case stepCards:
		return settings.Cards.Chosen()
	default:
		return true
	}
}

func (s *settingsScene) askCurrent() {
	max := len(s.m.state.Collection().Items)
	switch s.step {
	case stepSide:
		s.question = "Ask questions from which side? (front/back, default front)"
	case stepTime:
		s.question = "Time limit in seconds? (empty for unlimited)"
	case stepLives:
		s.question = "How many lives? (empty for unlimited)"
	case stepHints:
		s.question = "How many hints? (empty for unlimited)"
	case stepCards:
		s.question = fmt.Sprintf("How many cards do you want to train? (default 10, max %d)", max)
	}
}

func (s *settingsScene) handleAnswer(answer string) {
	st := s.m.state
	settings := st.Settings()
	answer = strings.TrimSpace(answer)
	switch s.step {
	case stepSide:
		switch strings.ToLower(answer) {
		case "", "front", "f":
			settings.QuestionFromFront = boolPtr(true)
		case "back", "b":
			settings.QuestionFromFront = boolPtr(false)
		default:
			s.info = "Please answer front or back."
			return
		}
	case stepTime:
		amount, ok := parseAmount(answer, 1)
		if !ok {
			s.info = "Please write a number of seconds (or nothing)."
			return
		}
		settings.TimeLimit = amount
	case stepLives:
		amount, ok := parseAmount(answer, 1)
		if !ok {
			s.info = "Please write a positive number of lives (or nothing)."
			return
		}
		settings.Lives = amount
	case stepHints:
		amount, ok := parseAmount(answer, 0)
		if !ok {
			s.info = "Please write a number of hints (or nothing)."
			return
		}
		settings.Hints = amount
	case stepCards:
		max := len(st.Collection().Items)
		if answer == "" {
			n := 10
			if n > max {
				n = max
			}
			settings.Cards = model.Limited(n)
			break
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > max {
			s.info = fmt.Sprintf("Please write a valid natural number between 1 and %d", max)
			return
		}
		settings.Cards = model.Limited(n)
	}
	s.info = ""
	st.SetSettings(settings)
	s.step++
	s.advance()
}

// parseAmount turns a settings answer into an Amount: empty means
// unlimited, otherwise a number no smaller than min.
func parseAmount(answer string, min int) (model.Amount, bool) {
	if answer == "" {
		return model.Unlimited(), true
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < min {
		return model.Amount{}, false
	}
	return model.Limited(n), true
}

// finish fills the remaining defaults, runs the selection policy once,
// and transitions to the Card scene.
func (s *settingsScene) finish() {
	st := s.m.state
	settings := st.Settings()
	if settings.QuestionFromFront == nil {
		settings.QuestionFromFront = boolPtr(true)
	}
	if settings.SideMayFlip == nil {
		settings.SideMayFlip = boolPtr(false)
	}
	if !settings.TimeLimit.Chosen() {
		settings.TimeLimit = model.Unlimited()
	}
	if !settings.Lives.Chosen() {
		settings.Lives = model.Unlimited()
	}
	if !settings.Hints.Chosen() {
		settings.Hints = model.Unlimited()
	}
	if !settings.Cards.Chosen() {
		settings.Cards = model.Unlimited()
	}
	st.SetSettings(settings)
	st.SetQuestionIsFront(*settings.QuestionFromFront)

	selected := s.m.pol.SelectItems(st, st.Collection().Items, settings.Cards)
	st.SetSelected(selected)
	st.SetActiveScene(model.SceneCard)
}

func (s *settingsScene) view() string {
	if s.fetching {
		return mutedStyle.Render("Loading...")
	}
	if s.pickingMode {
		lines := []string{titleStyle.Render("Pick a game mode"), ""}
		for i, mode := range modeChoices {
			style := inactivePick
			if i == s.modeCursor {
				style = activePick
			}
			lines = append(lines, style.Render(modeLabels[mode]))
		}
		lines = append(lines, "", footerStyle.Render("up/down: move  enter: select"))
		return strings.Join(lines, "\n")
	}
	lines := []string{titleStyle.Render(s.question)}
	if s.info != "" {
		lines = append(lines, errorStyle.Render(s.info))
	}
	lines = append(lines, s.input.View())
	return strings.Join(lines, "\n")
}

func (s *settingsScene) leave() {
	s.m.state.SetPauseInput(false)
}
