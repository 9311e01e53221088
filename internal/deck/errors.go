package deck

import "fmt"

// MalformedSourceError is fatal to the run: the deck file is missing
// required structure (items array, item id, or a side's main text).
type MalformedSourceError struct {
	Reason string
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed deck source: %s", e.Reason)
}

// PersistenceError is fatal to a save attempt only: duplicate ids or a
// re-validation failure detected immediately before write. The process
// still reaches a clean exit, the results are simply not saved.
type PersistenceError struct {
	Reason string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot save deck: %s", e.Reason)
}
