// Package results assembles the end-of-session report.
package results

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/recard/internal/model"
	"github.com/verte-zerg/recard/internal/session"
)

// ItemResult pairs a reviewed item with its last recorded answer.
type ItemResult struct {
	Item   *model.Item
	Answer model.Answer
}

// Report partitions the reviewed items into mastered ones (no errors
// since they were last shown) and ones to revise again.
type Report struct {
	Mastered []ItemResult
	ToRevise []ItemResult
}

// Empty reports whether there is anything to show.
func (r Report) Empty() bool {
	return len(r.Mastered) == 0 && len(r.ToRevise) == 0
}

// Build deduplicates the session's answer log per item id, keeping the
// latest answer, and partitions by errors_last.
func Build(st *session.State) Report {
	latest := make(map[string]model.Answer)
	order := make([]string, 0, len(st.Answers()))
	for _, answer := range st.Answers() {
		if _, seen := latest[answer.Item.ID]; !seen {
			order = append(order, answer.Item.ID)
		}
		latest[answer.Item.ID] = answer
	}
	all := lo.Map(order, func(id string, _ int) ItemResult {
		answer := latest[id]
		return ItemResult{Item: answer.Item, Answer: answer}
	})
	mastered := lo.Filter(all, func(r ItemResult, _ int) bool { return r.Item.ErrorsLast == 0 })
	toRevise := lo.Filter(all, func(r ItemResult, _ int) bool { return r.Item.ErrorsLast != 0 })
	return Report{Mastered: mastered, ToRevise: toRevise}
}

// Format renders the report as plain text: a header, then per item
// "question - last answer - expected", with the remaining accepted
// variations on aligned continuation lines.
func Format(st *session.State, report Report) string {
	var b strings.Builder
	b.WriteString("==================\n")
	b.WriteString("Results:\n")
	b.WriteString("(Question - last answer - possible answers)\n")
	if len(report.Mastered) > 0 {
		b.WriteString("\nPerfectly known:\n")
		for _, r := range report.Mastered {
			writeOne(&b, st, r)
		}
	}
	if len(report.ToRevise) > 0 {
		b.WriteString("\nTo revise again:\n")
		for _, r := range report.ToRevise {
			writeOne(&b, st, r)
		}
	}
	return b.String()
}

func writeOne(b *strings.Builder, st *session.State, r ItemResult) {
	expected := st.AnswerSide(r.Item).Texts()
	prefix := fmt.Sprintf("%s - %s", r.Answer.Question, r.Answer.UserAnswer)
	fmt.Fprintf(b, "%s - %s\n", prefix, expected[0])
	spacer := strings.Repeat(" ", len(prefix))
	for _, variation := range expected[1:] {
		fmt.Fprintf(b, "%s - %s\n", spacer, variation)
	}
}
