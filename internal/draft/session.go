package draft

import (
	"context"

	"github.com/studydesk/studydesk/internal/model"
)

// State of an edit session: Closed means no form is open.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// Committer is satisfied by *collection.Manager[T].
type Committer[T any] interface {
	Upsert(ctx context.Context, rec T) (T, error)
}

// Session backs one add/edit form. The draft is a value copy of the record
// under edit, so mutating it never touches the committed record until a
// successful commit. Sessions are driven by a single UI flow and are not
// safe for concurrent use.
type Session[T model.Record[T]] struct {
	mgr   Committer[T]
	state State
	draft T
}

func NewSession[T model.Record[T]](mgr Committer[T]) *Session[T] {
	return &Session[T]{mgr: mgr}
}

func (s *Session[T]) State() State { return s.state }

// Draft returns the current draft value for form rendering.
func (s *Session[T]) Draft() T { return s.draft }

// OpenForCreate opens the form over a blank record with no id; the id is
// assigned by the manager at first successful commit.
func (s *Session[T]) OpenForCreate() {
	var zero T
	s.draft = zero
	s.state = StateOpen
}

// OpenForEdit opens the form over a copy of an existing record.
func (s *Session[T]) OpenForEdit(rec T) {
	s.draft = rec
	s.state = StateOpen
}

// Update applies one field edit to the draft. Ignored when no form is open.
func (s *Session[T]) Update(mutate func(draft *T)) {
	if s.state != StateOpen {
		return
	}
	mutate(&s.draft)
}

// Commit validates the draft and merges it into the collection. An invalid
// draft leaves the session open and the draft untouched, with no store
// traffic; the form stays visible so the user can fix it. On success the
// session closes and the committed record (with id assigned) is returned.
// A persist error is passed through; the record is still in the in-memory
// collection in that case.
func (s *Session[T]) Commit(ctx context.Context) (T, bool, error) {
	var zero T
	if s.state != StateOpen {
		return zero, false, nil
	}
	if !s.draft.Validate() {
		return zero, false, nil
	}
	committed, err := s.mgr.Upsert(ctx, s.draft)
	s.draft = zero
	s.state = StateClosed
	return committed, true, err
}

// Cancel discards the draft and closes the form.
func (s *Session[T]) Cancel() {
	var zero T
	s.draft = zero
	s.state = StateClosed
}
