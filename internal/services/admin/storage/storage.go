package storage

import (
	"context"
	"time"
)

// Activity actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
)

// Activity outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Activity is one remote mutation attempted from the console.
type Activity struct {
	ID        int64
	Resource  string
	Action    string
	TargetID  int
	Outcome   string
	TraceID   string
	CreatedAt time.Time
}

// UserSessionStore persists login audit records.
type UserSessionStore interface {
	PutUserSession(ctx context.Context, sessionID string, createdAt time.Time) error
}

// ActivityStore records and lists console activity.
type ActivityStore interface {
	RecordActivity(ctx context.Context, activity Activity) error
	RecentActivity(ctx context.Context, limit int) ([]Activity, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	UserSessionStore
	ActivityStore
	Close() error
}
