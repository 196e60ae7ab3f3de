package availability

// Editor tracks an in-progress copy of the weekly schedule against the
// last-persisted snapshot, so the admin UI can show unsaved changes
// and revert them. The comparison is id-keyed at the day level and
// sequence-sensitive at the range level, matching Equal.
type Editor struct {
	persisted Week
	working   Week
}

// NewEditor starts an editing session from the last-persisted
// schedule. Both copies are deep so later mutation of the caller's
// week cannot leak in.
func NewEditor(persisted Week) *Editor {
	return &Editor{
		persisted: persisted.Clone(),
		working:   persisted.Clone(),
	}
}

// Working returns the in-progress copy for mutation.
func (e *Editor) Working() Week {
	return e.working
}

// Set replaces the in-progress copy.
func (e *Editor) Set(w Week) {
	e.working = w.Clone()
}

// Dirty reports whether the in-progress copy differs from the
// last-persisted snapshot.
func (e *Editor) Dirty() bool {
	return !Equal(e.working, e.persisted)
}

// Revert discards the in-progress edits, restoring a deep copy of the
// last-persisted snapshot.
func (e *Editor) Revert() {
	e.working = e.persisted.Clone()
}

// Commit promotes the in-progress copy to be the new last-persisted
// snapshot and returns it for the caller to save.
func (e *Editor) Commit() Week {
	e.persisted = e.working.Clone()
	return e.persisted.Clone()
}
