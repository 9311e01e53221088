package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/verte-zerg/recard/internal/model"
)

// Merge builds the collection to persist: reviewed items first, then
// every untouched item in its original order. Nothing is ever dropped.
func Merge(full *model.Collection, reviewed []*model.Item) []*model.Item {
	reviewedIDs := lo.Map(reviewed, func(item *model.Item, _ int) string { return item.ID })
	untouched := lo.Filter(full.Items, func(item *model.Item, _ int) bool {
		return !lo.Contains(reviewedIDs, item.ID)
	})
	merged := make([]*model.Item, 0, len(reviewed)+len(untouched))
	merged = append(merged, reviewed...)
	merged = append(merged, untouched...)
	return merged
}

// Save merges the reviewed items into the collection, verifies deck
// integrity, and rewrites the source file wholesale. The write is
// all-or-nothing: any failure leaves the file on disk untouched.
func Save(path string, full *model.Collection, reviewed []*model.Item) error {
	merged := Merge(full, reviewed)
	if err := validate(merged); err != nil {
		return err
	}
	data, err := json.MarshalIndent(model.Collection{Items: merged}, "", "  ")
	if err != nil {
		return &PersistenceError{Reason: fmt.Sprintf("serialization failed: %v", err)}
	}
	data = append(data, '\n')
	if err := writeAtomic(path, data); err != nil {
		return &PersistenceError{Reason: err.Error()}
	}
	return nil
}

// validate re-runs the parse rules over the merged deck and rejects
// duplicate ids. Never auto-corrected: a broken deck aborts the save.
func validate(items []*model.Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.ID == "" || item.Card.Front.Main == "" || item.Card.Back.Main == "" {
			return &PersistenceError{
				Reason: fmt.Sprintf("item without id (%q) or side text at index %d", item.ID, i),
			}
		}
		if item.RevisionCount < 0 || item.ErrorsLast < 0 || item.ErrorsTotal < 0 {
			return &PersistenceError{
				Reason: fmt.Sprintf("negative counter on item %s", item.ID),
			}
		}
		if _, ok := seen[item.ID]; ok {
			return &PersistenceError{Reason: fmt.Sprintf("duplicate item id %q", item.ID)}
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create deck directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "deck-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp deck: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close deck: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace deck: %w", err)
	}
	return nil
}
