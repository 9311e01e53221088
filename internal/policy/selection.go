package policy

import (
	"sort"

	"github.com/verte-zerg/recard/internal/model"
	"github.com/verte-zerg/recard/internal/random"
	"github.com/verte-zerg/recard/internal/session"
)

// SelectItems chooses the items for a run according to the session's
// selection strategy. The input slice is never reordered; at most
// min(count, len(items)) distinct items are returned. An unlimited
// count selects everything.
func (p *Policies) SelectItems(st *session.State, items []*model.Item, count model.Amount) []*model.Item {
	howMany := len(items)
	if count.Chosen() && !count.IsUnlimited() && count.Value() < howMany {
		howMany = count.Value()
	}
	if st.Settings().Selection == model.SelectRandomly {
		return random.TakeN(p.rnd, items, howMany)
	}
	return selectByDate(items, howMany)
}

// selectByDate returns the least recently reviewed items first. The
// sort is stable so equal dates keep their original order.
func selectByDate(items []*model.Item, howMany int) []*model.Item {
	work := make([]*model.Item, len(items))
	copy(work, items)
	sort.SliceStable(work, func(i, j int) bool {
		return work[i].LastRevision.Before(work[j].LastRevision)
	})
	if howMany > len(work) {
		howMany = len(work)
	}
	if howMany < 0 {
		howMany = 0
	}
	return work[:howMany]
}

// OneSideText returns the main text or one randomly chosen variation.
func (p *Policies) OneSideText(side model.Side) string {
	text := random.TakeOne(p.rnd, side.Texts())
	if text == "" {
		return side.Main
	}
	return text
}
