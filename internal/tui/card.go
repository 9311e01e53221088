package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/recard/internal/model"
)

// flipChance is the probability of toggling the question side between
// cards when side flipping is enabled.
const flipChance = 0.2

// cardScene runs the quiz loop over the selected items.
type cardScene struct {
	m *Model

	item     *model.Item
	question string

	hintShown bool
	hintText  string
	notice    string

	input textinput.Model

	timed    bool
	deadline time.Time
	timerGen int
}

func newCardScene(m *Model) *cardScene {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &cardScene{m: m, input: input}
}

func (s *cardScene) enter() tea.Cmd {
	st := s.m.state
	item := st.CurrentItem()
	if item == nil {
		st.SetActiveScene(model.SceneResults)
		return nil
	}
	s.present(item)
	cmds := []tea.Cmd{textinput.Blink}
	if limit := st.Settings().TimeLimitDuration(); limit > 0 {
		s.timed = true
		s.deadline = time.Now().Add(limit)
		cmds = append(cmds, s.tickCmd())
	}
	return tea.Batch(cmds...)
}

// present puts an item on screen: its last-errors counter restarts and
// one of the question side's texts is chosen for display.
func (s *cardScene) present(item *model.Item) {
	s.item = item
	item.ErrorsLast = 0
	s.question = s.m.pol.OneSideText(s.m.state.QuestionSide(item))
	s.hintShown = false
	s.hintText = ""
}

// tickCmd schedules the next countdown step: every 5 seconds, every
// second once at most 15 remain. The generation counter ties the tick
// to this scene instance.
func (s *cardScene) tickCmd() tea.Cmd {
	remaining := time.Until(s.deadline)
	interval := 5 * time.Second
	if remaining <= 15*time.Second {
		interval = time.Second
	}
	if remaining < interval {
		interval = remaining
	}
	if interval < 250*time.Millisecond {
		interval = 250 * time.Millisecond
	}
	gen := s.timerGen
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *cardScene) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		if !s.timed || msg.gen != s.timerGen {
			// A stale tick from a superseded scene instance.
			return nil
		}
		if !time.Now().Before(s.deadline) {
			s.m.state.SetActiveScene(model.SceneResults)
			return nil
		}
		return s.tickCmd()
	case tea.KeyMsg:
		if s.m.state.PauseInput() {
			return nil
		}
		if msg.Type == tea.KeyEnter {
			s.submit(s.input.Value())
			s.input.SetValue("")
			return nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// submit interprets one line: a command when it starts with an
// underscore, otherwise an answer to judge.
func (s *cardScene) submit(answer string) {
	st := s.m.state
	if answer == "" {
		return
	}
	switch {
	case answer == "_exit":
		// Abandon the current item without recording it.
		st.SetActiveScene(model.SceneResults)
		return
	case answer == "_skip":
		st.AddAnswer(model.Answer{Item: s.item, UserAnswer: model.SkippedAnswer, Question: s.question})
		s.notice = noticeStyle.Render(fmt.Sprintf("=> %s", st.AnswerSide(s.item).Main))
		s.item.LastRevision = time.Now()
		s.advance()
		return
	case answer == "_hint":
		s.revealHint()
		return
	case strings.HasPrefix(answer, "_"):
		s.notice = errorStyle.Render("This command is not valid.")
		return
	}

	st.AddAnswer(model.Answer{Item: s.item, UserAnswer: answer, Question: s.question})
	if s.m.pol.IsCorrect(st, s.item, answer) {
		s.item.RevisionCount++
		s.item.LastRevision = time.Now()
		s.notice = okStyle.Render("Correct :-)")
		s.advance()
		return
	}
	s.item.ErrorsTotal++
	s.item.ErrorsLast++
	wrong := "Wrong!"
	if !st.LivesLeft().IsUnlimited() {
		left := st.LoseLife()
		wrong = fmt.Sprintf("Wrong! %s lives left.", left)
		if left.Exhausted() {
			st.SetActiveScene(model.SceneResults)
			return
		}
	}
	s.notice = errorStyle.Render(wrong)
}

func (s *cardScene) revealHint() {
	if s.hintShown {
		// Repeated _hint never burns another hint.
		return
	}
	st := s.m.state
	if st.HintsLeft().Exhausted() {
		s.notice = errorStyle.Render("No more hints.")
		return
	}
	st.UseHint()
	s.hintText = s.m.pol.Hint(st, s.item)
	s.hintShown = true
}

// advance moves to the next selected item or ends the run. Game-over
// order: lives first (checked where they are lost), then the card
// limit, then item availability.
func (s *cardScene) advance() {
	st := s.m.state
	next := st.Index() + 1
	st.SetIndex(next)
	cards := st.Settings().Cards
	if !cards.IsUnlimited() && next >= cards.Value() {
		st.SetActiveScene(model.SceneResults)
		return
	}
	if next >= len(st.Selected()) {
		st.SetActiveScene(model.SceneResults)
		return
	}
	if flip := st.Settings().SideMayFlip; flip != nil && *flip && s.m.rnd.Float64() < flipChance {
		st.SetQuestionIsFront(!st.QuestionIsFront())
	}
	s.present(st.Selected()[next])
}

func (s *cardScene) view() string {
	texts := []string{s.question}
	if s.hintShown {
		texts = append(texts, fmt.Sprintf("(%s)", s.hintText))
	}
	card := frame(texts, s.m.width)
	lines := []string{card}
	if s.notice != "" {
		lines = append(lines, s.notice)
	}
	lines = append(lines, s.input.View(), s.footer())
	return strings.Join(lines, "\n")
}

func (s *cardScene) footer() string {
	st := s.m.state
	total := "∞"
	cards := st.Settings().Cards
	if !cards.IsUnlimited() {
		total = fmt.Sprintf("%d", len(st.Selected()))
	}
	segments := []string{fmt.Sprintf("Card %d/%s", st.Index()+1, total)}
	if !st.LivesLeft().IsUnlimited() {
		segments = append(segments, fmt.Sprintf("Lives %s", st.LivesLeft()))
	}
	if !st.HintsLeft().IsUnlimited() {
		segments = append(segments, fmt.Sprintf("Hints %s", st.HintsLeft()))
	}
	if s.timed {
		remaining := time.Until(s.deadline)
		if remaining < 0 {
			remaining = 0
		}
		segments = append(segments, fmt.Sprintf("%02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60))
	}
	segments = append(segments, "_hint _skip _exit")
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}

// leave cancels any countdown still scheduled for this instance.
func (s *cardScene) leave() {
	s.timerGen++
	s.timed = false
}
