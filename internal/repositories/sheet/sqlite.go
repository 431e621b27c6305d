package sheet

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

//go:embed schema/*.sql
var schemaFS embed.FS

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite sheet repository.
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument(errConfigNil)
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument(errSQLitePathNil)
	}
	return nil
}

// SQLiteRepository is a Repository backed by a SQLite file. Close releases the handle.
type SQLiteRepository interface {
	Repository
	Close() error
}

// NewSQLite opens the database at cfg.Path and applies the embedded schema
func NewSQLite(cfg *SQLiteConfig) (SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to ping sqlite db")
	}
	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: db, clock: c}, nil
}

func applySchema(db *sql.DB) error {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return errors.Wrapf(err, "failed to list schema files")
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(schemaFS, file)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", file)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return errors.Wrapf(err, "failed to apply %s", file)
		}
	}
	return nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	record := *input.Record
	now := r.clock.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	data, err := json.Marshal(record.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sheets (id, owner_id, name, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.OwnerID, record.Name, string(data), toMillis(now), toMillis(now))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("sheet with ID %s already exists", record.ID)
		}
		return nil, errors.Wrapf(err, "failed to create sheet")
	}

	return &CreateOutput{Record: &record}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, data, created_at, updated_at FROM sheets WHERE id = ?`, input.ID)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("sheet with ID %s not found", input.ID).WithMeta("sheet_id", input.ID)
		}
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Record.ID})
	if err != nil {
		return nil, err
	}

	record := *input.Record
	record.CreatedAt = existing.Record.CreatedAt
	record.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(record.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE sheets SET owner_id = ?, name = ?, data = ?, updated_at = ? WHERE id = ?`,
		record.OwnerID, record.Name, string(data), toMillis(record.UpdatedAt), record.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update sheet")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.NotFoundf("sheet with ID %s not found", record.ID)
	}

	return &UpdateOutput{Record: &record}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM sheets WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet")
	}
	if n == 0 {
		return nil, errors.NotFoundf("sheet with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, name, data, created_at, updated_at FROM sheets WHERE owner_id = ?`,
		input.OwnerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list sheets")
	}
	defer func() { _ = rows.Close() }()

	records := []*Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list sheets")
	}

	sortRecords(records)
	return &ListByOwnerOutput{Records: records}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		record           Record
		data             string
		created, updated int64
	)
	if err := row.Scan(&record.ID, &record.OwnerID, &record.Name, &data, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to scan sheet")
	}

	record.Data = &character.Data{}
	if err := json.Unmarshal([]byte(data), record.Data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal sheet %s", record.ID)
	}
	record.CreatedAt = fromMillis(created)
	record.UpdatedAt = fromMillis(updated)
	return &record, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
