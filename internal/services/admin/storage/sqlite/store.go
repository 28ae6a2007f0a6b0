package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	apperrors "github.com/louisbranch/megamix/internal/platform/errors"
	sqlitemigrate "github.com/louisbranch/megamix/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/megamix/internal/services/admin/storage"
	"github.com/louisbranch/megamix/internal/services/admin/storage/sqlite/migrations"
)

// timeFormat is fixed-width so text ordering matches time ordering.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// maxRecentActivity bounds RecentActivity.
const maxRecentActivity = 100

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if _, err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutUserSession records a login.
func (s *Store) PutUserSession(ctx context.Context, sessionID string, createdAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO user_sessions (session_id, created_at) VALUES (?, ?)",
		sessionID, createdAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "put user session", err)
	}
	return nil
}

// RecordActivity appends one activity row.
func (s *Store) RecordActivity(ctx context.Context, activity storage.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(activity.Resource) == "" || strings.TrimSpace(activity.Action) == "" {
		return fmt.Errorf("activity resource and action are required")
	}
	if activity.Outcome == "" {
		activity.Outcome = storage.OutcomeSuccess
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = s.now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO activity (resource, action, target_id, outcome, trace_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		activity.Resource,
		activity.Action,
		activity.TargetID,
		activity.Outcome,
		activity.TraceID,
		activity.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "record activity", err)
	}
	return nil
}

// RecentActivity returns the newest rows first.
func (s *Store) RecentActivity(ctx context.Context, limit int) ([]storage.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 || limit > maxRecentActivity {
		limit = maxRecentActivity
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, resource, action, target_id, outcome, trace_id, created_at
		 FROM activity ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "list activity", err)
	}
	defer rows.Close()

	var out []storage.Activity
	for rows.Next() {
		var (
			a         storage.Activity
			createdAt string
		)
		if err := rows.Scan(&a.ID, &a.Resource, &a.Action, &a.TargetID, &a.Outcome, &a.TraceID, &createdAt); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeStorage, "scan activity", err)
		}
		parsed, err := time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeStorage, "parse activity time", err)
		}
		a.CreatedAt = parsed
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "iterate activity", err)
	}
	return out, nil
}

var _ storage.Store = (*Store)(nil)
