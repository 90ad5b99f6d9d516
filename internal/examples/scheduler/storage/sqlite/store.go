// Package sqlite provides a SQLite-backed scheduler store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/louisbranch/capbridge/internal/examples/scheduler/storage"
	"github.com/louisbranch/capbridge/internal/examples/scheduler/storage/sqlite/migrations"
	"github.com/louisbranch/capbridge/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/capbridge/schedule"
)

// Store persists schedules in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite scheduler store at path and applies embedded
// migrations. ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// Every connection to :memory: is a separate database.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

const scheduleColumns = `id, name, expression, task_type, command, message, deliver, metadata_json,
		enabled, last_run_at, next_run_at, run_count, last_error, created_at`

// CreateSchedule inserts a schedule. A taken name returns
// storage.ErrAlreadyExists.
func (s *Store) CreateSchedule(ctx context.Context, sched schedule.Schedule) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	metadata, err := encodeMetadata(sched.Metadata)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO schedules (`+scheduleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sched.ID,
		sched.Name,
		sched.Expression,
		sched.TaskType,
		sched.Command,
		sched.Message,
		sched.Deliver,
		metadata,
		sched.Enabled,
		toMillis(sched.LastRun),
		toMillis(sched.NextRun),
		sched.RunCount,
		sched.LastError,
		toMillis(sched.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

// GetSchedule returns one schedule by name.
func (s *Store) GetSchedule(ctx context.Context, name string) (schedule.Schedule, error) {
	if err := s.ready(ctx); err != nil {
		return schedule.Schedule{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE name = ?`, name)
	sched, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schedule.Schedule{}, storage.ErrNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("get schedule: %w", err)
	}
	return sched, nil
}

// ListSchedules returns one page of schedules ordered by name and the total
// number matching the filter.
func (s *Store) ListSchedules(ctx context.Context, opts schedule.ListOptions) ([]schedule.Schedule, int64, error) {
	if err := s.ready(ctx); err != nil {
		return nil, 0, err
	}
	where := ""
	if opts.EnabledOnly {
		where = " WHERE enabled = 1"
	}

	var total int64
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedules`+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count schedules: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}
	offset := max(opts.Offset, 0)
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedules`+where+` ORDER BY name LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	var out []schedule.Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan schedule: %w", err)
		}
		out = append(out, sched)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate schedules: %w", err)
	}
	return out, total, nil
}

// PutSchedule overwrites the stored schedule with the same name.
func (s *Store) PutSchedule(ctx context.Context, sched schedule.Schedule) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	metadata, err := encodeMetadata(sched.Metadata)
	if err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE schedules
		    SET expression = ?, task_type = ?, command = ?, message = ?, deliver = ?,
		        metadata_json = ?, enabled = ?, last_run_at = ?, next_run_at = ?,
		        run_count = ?, last_error = ?
		  WHERE name = ?`,
		sched.Expression,
		sched.TaskType,
		sched.Command,
		sched.Message,
		sched.Deliver,
		metadata,
		sched.Enabled,
		toMillis(sched.LastRun),
		toMillis(sched.NextRun),
		sched.RunCount,
		sched.LastError,
		sched.Name,
	)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return requireOneRow(result)
}

// DeleteSchedule removes a schedule and its run history.
func (s *Store) DeleteSchedule(ctx context.Context, name string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM schedules WHERE name = ?`, name)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete schedule: %w", err)
	}
	if err := requireOneRow(result); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_runs WHERE schedule_name = ?`, name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete schedule runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// DueSchedules returns enabled schedules due at now, oldest first.
func (s *Store) DueSchedules(ctx context.Context, now time.Time) ([]schedule.Schedule, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
		  WHERE enabled = 1 AND next_run_at > 0 AND next_run_at <= ?
		  ORDER BY next_run_at, name`,
		toMillis(now),
	)
	if err != nil {
		return nil, fmt.Errorf("due schedules: %w", err)
	}
	defer rows.Close()

	var out []schedule.Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		out = append(out, sched)
	}
	return out, rows.Err()
}

// AppendRun records one run.
func (s *Store) AppendRun(ctx context.Context, entry schedule.HistoryEntry) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO schedule_runs (id, schedule_name, started_at, finished_at, success, output, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.ScheduleName,
		toMillis(entry.StartedAt),
		toMillis(entry.FinishedAt),
		entry.Success,
		entry.Output,
		entry.Error,
	)
	if err != nil {
		return fmt.Errorf("append run: %w", err)
	}
	return nil
}

// ListRuns returns runs of name, newest first, and the total count.
func (s *Store) ListRuns(ctx context.Context, name string, limit, offset int) ([]schedule.HistoryEntry, int64, error) {
	if err := s.ready(ctx); err != nil {
		return nil, 0, err
	}
	var total int64
	if err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM schedule_runs WHERE schedule_name = ?`, name,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count runs: %w", err)
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, schedule_name, started_at, finished_at, success, output, error
		   FROM schedule_runs
		  WHERE schedule_name = ?
		  ORDER BY started_at DESC, id
		  LIMIT ? OFFSET ?`,
		name, limit, max(offset, 0),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []schedule.HistoryEntry
	for rows.Next() {
		var entry schedule.HistoryEntry
		var startedAt, finishedAt int64
		if err := rows.Scan(&entry.ID, &entry.ScheduleName, &startedAt, &finishedAt, &entry.Success, &entry.Output, &entry.Error); err != nil {
			return nil, 0, fmt.Errorf("scan run: %w", err)
		}
		entry.StartedAt = fromMillis(startedAt)
		entry.FinishedAt = fromMillis(finishedAt)
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate runs: %w", err)
	}
	return out, total, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (schedule.Schedule, error) {
	var sched schedule.Schedule
	var metadata string
	var lastRun, nextRun, createdAt int64
	err := row.Scan(
		&sched.ID,
		&sched.Name,
		&sched.Expression,
		&sched.TaskType,
		&sched.Command,
		&sched.Message,
		&sched.Deliver,
		&metadata,
		&sched.Enabled,
		&lastRun,
		&nextRun,
		&sched.RunCount,
		&sched.LastError,
		&createdAt,
	)
	if err != nil {
		return schedule.Schedule{}, err
	}
	if metadata != "" && metadata != "{}" {
		if err := json.Unmarshal([]byte(metadata), &sched.Metadata); err != nil {
			return schedule.Schedule{}, fmt.Errorf("decode metadata: %w", err)
		}
	}
	sched.LastRun = fromMillis(lastRun)
	sched.NextRun = fromMillis(nextRun)
	sched.CreatedAt = fromMillis(createdAt)
	return sched, nil
}

func encodeMetadata(metadata map[string]string) (string, error) {
	if len(metadata) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	return string(data), nil
}

func requireOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.Store = (*Store)(nil)
