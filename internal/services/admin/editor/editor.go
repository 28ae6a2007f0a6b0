// Package editor drives the create and edit forms of the admin console.
//
// Each editor owns one draft. Validation runs locally before any remote call,
// field edits clear that field's errors immediately, and a remote failure
// never discards what the operator typed.
package editor

import (
	"context"
	"sync"

	apperrors "github.com/louisbranch/megamix/internal/platform/errors"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
)

// Mode selects between creating a new entity and editing an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// State is the editor lifecycle.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSubmitting:
		return "submitting"
	default:
		return "ready"
	}
}

var (
	// ErrSubmitInProgress rejects work while a submission is in flight.
	ErrSubmitInProgress = apperrors.New(apperrors.CodeSubmitInProgress, "submit already in progress")
	// ErrInvalid reports a draft that failed local validation.
	ErrInvalid = apperrors.New(apperrors.CodeValidation, "draft is invalid")
	// ErrNotReady rejects a submit before Open finished.
	ErrNotReady = apperrors.New(apperrors.CodeValidation, "editor is still loading")
)

// Outcome tells the caller where to go after a submit. An empty Navigate
// means stay on the form.
type Outcome struct {
	Navigate string
}

// Remote is the authority an editor reads from and writes to.
type Remote[T any] interface {
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id int, entity T) (T, error)
}

// Messages names the notice keys raised by one editor.
type Messages struct {
	Created string
	Updated string
	Failed  string
}

// lifecycle holds the state shared by every editor. Callers hold mu.
type lifecycle struct {
	mu      sync.Mutex
	mode    Mode
	id      int
	state   State
	notices notice.Sink
}

// init starts in edit mode when id is positive.
func (l *lifecycle) init(id int, notices notice.Sink) {
	if notices == nil {
		notices = notice.Discard
	}
	l.notices = notices
	l.mode = ModeCreate
	l.state = StateReady
	if id > 0 {
		l.mode = ModeEdit
		l.id = id
		l.state = StateLoading
	}
}

// beginSubmit moves Ready to Submitting.
func (l *lifecycle) beginSubmit() error {
	switch l.state {
	case StateSubmitting:
		l.notices.Warn(notice.KeySubmitInProgress)
		return ErrSubmitInProgress
	case StateLoading:
		return ErrNotReady
	}
	l.state = StateSubmitting
	return nil
}

// editable rejects draft edits during a submission.
func (l *lifecycle) editable() error {
	if l.state == StateSubmitting {
		l.notices.Warn(notice.KeySubmitInProgress)
		return ErrSubmitInProgress
	}
	return nil
}

// Mode returns the editor mode.
func (l *lifecycle) Mode() Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

// State returns the current lifecycle state.
func (l *lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// ID returns the edited entity id, or 0 in create mode.
func (l *lifecycle) ID() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.id
}

// submitRemote runs the remote call with the lock released so the in-flight
// guard can answer concurrent requests, then reacquires it.
func submitRemote[T any](ctx context.Context, l *lifecycle, remote Remote[T], entity T) (T, error) {
	mode, id := l.mode, l.id
	l.mu.Unlock()
	defer l.mu.Lock()
	if mode == ModeEdit {
		return remote.Update(ctx, id, entity)
	}
	return remote.Create(ctx, entity)
}
