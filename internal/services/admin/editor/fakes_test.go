package editor

import (
	"context"
	"errors"
	"sync"
)

var errRemote = errors.New("remote failed")

// fakeRemote records calls and can block Create until release is closed.
type fakeRemote[T any] struct {
	mu      sync.Mutex
	current T
	getErr  error
	err     error
	started chan struct{}
	release chan struct{}

	gets    []int
	creates []T
	updates map[int][]T
}

func (f *fakeRemote[T]) Get(_ context.Context, id int) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, id)
	if f.getErr != nil {
		var zero T
		return zero, f.getErr
	}
	return f.current, nil
}

func (f *fakeRemote[T]) Create(_ context.Context, entity T) (T, error) {
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, entity)
	return entity, f.err
}

func (f *fakeRemote[T]) Update(_ context.Context, id int, entity T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updates == nil {
		f.updates = map[int][]T{}
	}
	f.updates[id] = append(f.updates[id], entity)
	return entity, f.err
}

func (f *fakeRemote[T]) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.creates)
	for _, u := range f.updates {
		n += len(u)
	}
	return n
}
