// Package notice carries operator-visible notifications from the console core
// to the page that renders them.
package notice

import "sync"

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice stores one message reference. Key is a catalog key.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Sink receives fire-and-forget notifications.
type Sink interface {
	Warn(key string)
	Success(key string)
	Error(key string)
}

// Recorder is a Sink that keeps notices in order until they are drained.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Warn records a warning.
func (r *Recorder) Warn(key string) { r.add(KindWarning, key) }

// Success records a success notice.
func (r *Recorder) Success(key string) { r.add(KindSuccess, key) }

// Error records an error notice.
func (r *Recorder) Error(key string) { r.add(KindError, key) }

// Info records an informational notice.
func (r *Recorder) Info(key string) { r.add(KindInfo, key) }

func (r *Recorder) add(kind Kind, key string) {
	if r == nil || key == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Kind: kind, Key: key})
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Drain returns the recorded notices and forgets them.
func (r *Recorder) Drain() []Notice {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}

// Discard is a Sink that drops every notice.
var Discard Sink = discard{}

type discard struct{}

func (discard) Warn(string)    {}
func (discard) Success(string) {}
func (discard) Error(string)   {}
