// Package listsync mirrors one remote collection for a list screen.
//
// Local state only changes after the remote authority confirms a mutation;
// a failed remote call leaves the collection exactly as it was.
package listsync

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/louisbranch/megamix/internal/services/admin/notice"
)

// Keyed is an entity with an integer identity.
type Keyed interface {
	Key() int
}

// Source is the remote authority for one resource.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Remove(ctx context.Context, id int) error
}

// Messages names the notice keys raised for one resource.
type Messages struct {
	FetchFailed  string
	DeleteFailed string
	Deleted      string
}

// DefaultMessages are used for any key left empty.
var DefaultMessages = Messages{
	FetchFailed:  notice.KeyFetchFailed,
	DeleteFailed: notice.KeyDeleteFailed,
	Deleted:      notice.KeyDeleted,
}

// Synchronizer owns the collection backing one list screen.
type Synchronizer[T Keyed] struct {
	source   Source[T]
	notices  notice.Sink
	messages Messages

	mu      sync.Mutex
	items   []T
	loading bool
	loaded  bool
	loadErr error
}

// New builds a synchronizer in the loading state.
func New[T Keyed](source Source[T], notices notice.Sink, messages Messages) *Synchronizer[T] {
	if notices == nil {
		notices = notice.Discard
	}
	if messages.FetchFailed == "" {
		messages.FetchFailed = DefaultMessages.FetchFailed
	}
	if messages.DeleteFailed == "" {
		messages.DeleteFailed = DefaultMessages.DeleteFailed
	}
	if messages.Deleted == "" {
		messages.Deleted = DefaultMessages.Deleted
	}
	return &Synchronizer[T]{
		source:   source,
		notices:  notices,
		messages: messages,
		loading:  true,
	}
}

// Load fetches the collection. Only the first call reaches the remote
// authority; later calls return the first result.
func (s *Synchronizer[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.loadErr
	}
	s.loaded = true
	defer func() { s.loading = false }()

	if s.source == nil {
		s.loadErr = fmt.Errorf("list source is not configured")
		s.notices.Error(s.messages.FetchFailed)
		return s.loadErr
	}
	items, err := s.source.List(ctx)
	if err != nil {
		s.loadErr = fmt.Errorf("load list: %w", err)
		s.notices.Error(s.messages.FetchFailed)
		return s.loadErr
	}
	s.items = slices.Clone(items)
	return nil
}

// Delete removes id remotely and, once confirmed, drops every local element
// with that key. Ids absent from the collection filter nothing.
func (s *Synchronizer[T]) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.source == nil {
		s.notices.Error(s.messages.DeleteFailed)
		return fmt.Errorf("list source is not configured")
	}
	if err := s.source.Remove(ctx, id); err != nil {
		s.notices.Error(s.messages.DeleteFailed)
		return fmt.Errorf("delete %d: %w", id, err)
	}
	s.items = slices.DeleteFunc(s.items, func(item T) bool {
		return item.Key() == id
	})
	s.notices.Success(s.messages.Deleted)
	return nil
}

// Items returns a copy of the collection in its current order.
func (s *Synchronizer[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Len returns the collection size.
func (s *Synchronizer[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Loading reports whether the first load has not finished.
func (s *Synchronizer[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Empty reports a finished load with nothing to show.
func (s *Synchronizer[T]) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loading && len(s.items) == 0
}

// LoadErr returns the error from the first load, if any.
func (s *Synchronizer[T]) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}
