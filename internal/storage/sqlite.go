package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/cppdoc-mcp/internal/hierarchy"
	"github.com/dshills/cppdoc-mcp/pkg/types"
)

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when trying to create a duplicate record
	ErrAlreadyExists = errors.New("already exists")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite benefits from single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Project operations

func (s *SQLiteStorage) CreateProject(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (root_path, index_version, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`
	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		project.RootPath, project.IndexVersion, now, now)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	project.ID = id
	project.CreatedAt = now
	project.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) GetProject(ctx context.Context, rootPath string) (*Project, error) {
	query := `
		SELECT id, root_path, index_version, total_files, total_entities,
		       last_indexed_at, created_at, updated_at
		FROM projects
		WHERE root_path = ?
	`
	var project Project
	var lastIndexedAt sql.NullTime
	err := s.db.QueryRowContext(ctx, query, rootPath).Scan(
		&project.ID, &project.RootPath, &project.IndexVersion,
		&project.TotalFiles, &project.TotalEntities,
		&lastIndexedAt, &project.CreatedAt, &project.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastIndexedAt.Valid {
		project.LastIndexedAt = lastIndexedAt.Time
	}
	return &project, nil
}

func (s *SQLiteStorage) UpdateProject(ctx context.Context, project *Project) error {
	query := `
		UPDATE projects
		SET index_version = ?, total_files = ?, total_entities = ?,
		    last_indexed_at = ?, updated_at = ?
		WHERE id = ?
	`
	now := time.Now()
	_, err := s.db.ExecContext(ctx, query,
		project.IndexVersion, project.TotalFiles, project.TotalEntities,
		project.LastIndexedAt, now, project.ID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	project.UpdatedAt = now
	return nil
}

// Entity operations

// ReplaceEntities atomically replaces the stored entity hierarchy for a
// project with the contents of tree. Returns the number of entities written.
func (s *SQLiteStorage) ReplaceEntities(ctx context.Context, projectID int64, tree *hierarchy.Tree) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entities WHERE project_id = ?", projectID); err != nil {
		return 0, fmt.Errorf("failed to clear entities: %w", err)
	}

	count, err := s.insertSubtree(ctx, tx, projectID, tree, tree.Root(), "")
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// insertSubtree writes the children of parent depth-first, preserving the
// sibling insertion order recorded by the tree.
func (s *SQLiteStorage) insertSubtree(ctx context.Context, tx *sql.Tx, projectID int64, tree *hierarchy.Tree, parent hierarchy.NodeID, parentPath string) (int, error) {
	count := 0
	for order, child := range tree.Node(parent).Children() {
		e := tree.Entity(child)
		path := e.Name
		if parentPath != "" {
			path = parentPath + hierarchy.ScopeSeparator + e.Name
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO entities (
				project_id, parent_path, path, name, kind, summary, doc_text,
				signature_display, signature_minimal, include_as_is, sort_order
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, projectID, parentPath, path, e.Name, string(e.Kind), e.Summary, e.DocText,
			e.SignatureDisplay, e.SignatureMinimal, e.IncludeAsIs, order)
		if err != nil {
			return count, fmt.Errorf("failed to insert entity %s: %w", path, err)
		}

		entityID, err := result.LastInsertId()
		if err != nil {
			return count, err
		}

		for i, loc := range e.Locations {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO entity_locations (entity_id, file_path, line, sort_order)
				VALUES (?, ?, ?, ?)
			`, entityID, loc.File, loc.Line, i)
			if err != nil {
				return count, fmt.Errorf("failed to insert location for %s: %w", path, err)
			}
		}

		count++
		sub, err := s.insertSubtree(ctx, tx, projectID, tree, child, path)
		count += sub
		if err != nil {
			return count, err
		}
	}
	return count, nil
}

const entityColumns = `
	id, project_id, parent_path, path, name, kind, summary, doc_text,
	signature_display, signature_minimal, include_as_is, sort_order
`

func (s *SQLiteStorage) GetEntityByPath(ctx context.Context, projectID int64, path string) (*EntityRecord, error) {
	query := "SELECT" + entityColumns + "FROM entities WHERE project_id = ? AND path = ?"
	row := s.db.QueryRowContext(ctx, query, projectID, path)
	record, err := scanEntity(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadLocations(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *SQLiteStorage) ListChildren(ctx context.Context, projectID int64, parentPath string) ([]*EntityRecord, error) {
	query := "SELECT" + entityColumns + "FROM entities WHERE project_id = ? AND parent_path = ? ORDER BY sort_order"
	return s.queryEntities(ctx, query, projectID, parentPath)
}

func (s *SQLiteStorage) ListTopLevel(ctx context.Context, projectID int64) ([]*EntityRecord, error) {
	return s.ListChildren(ctx, projectID, "")
}

// SearchEntities matches query as a substring of the entity name or summary,
// case-insensitively. Results are ordered with name matches first.
func (s *SQLiteStorage) SearchEntities(ctx context.Context, projectID int64, query string, limit int) ([]*EntityRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + query + "%"
	sqlQuery := "SELECT" + entityColumns + `
		FROM entities
		WHERE project_id = ? AND (name LIKE ? OR summary LIKE ?)
		ORDER BY
			CASE WHEN name LIKE ? THEN 0 ELSE 1 END,
			length(path)
		LIMIT ?
	`
	return s.queryEntities(ctx, sqlQuery, projectID, pattern, pattern, pattern, limit)
}

func (s *SQLiteStorage) queryEntities(ctx context.Context, query string, args ...interface{}) ([]*EntityRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []*EntityRecord
	for rows.Next() {
		record, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, record := range records {
		if err := s.loadLocations(ctx, record); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// scanner covers *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntity(row scanner) (*EntityRecord, error) {
	var record EntityRecord
	var kind string
	var summary, docText, sigDisplay, sigMinimal sql.NullString
	err := row.Scan(
		&record.ID, &record.ProjectID, &record.ParentPath, &record.Path,
		&record.Name, &kind, &summary, &docText,
		&sigDisplay, &sigMinimal, &record.IncludeAsIs, &record.SortOrder,
	)
	if err != nil {
		return nil, err
	}
	record.Kind = types.EntityKind(kind)
	record.Summary = summary.String
	record.DocText = docText.String
	record.SignatureDisplay = sigDisplay.String
	record.SignatureMinimal = sigMinimal.String
	return &record, nil
}

func (s *SQLiteStorage) loadLocations(ctx context.Context, record *EntityRecord) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT file_path, line FROM entity_locations
		WHERE entity_id = ? ORDER BY sort_order
	`, record.ID)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var loc types.Location
		if err := rows.Scan(&loc.File, &loc.Line); err != nil {
			return err
		}
		record.Locations = append(record.Locations, loc)
	}
	return rows.Err()
}

// Status operations

func (s *SQLiteStorage) GetStatus(ctx context.Context, projectID int64) (*ProjectStatus, error) {
	var status ProjectStatus
	var lastIndexedAt sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT id, root_path, total_files, total_entities, last_indexed_at
		FROM projects WHERE id = ?
	`, projectID).Scan(
		&status.ProjectID, &status.RootPath,
		&status.TotalFiles, &status.TotalEntities, &lastIndexedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastIndexedAt.Valid {
		status.LastIndexedAt = lastIndexedAt.Time
	}

	status.EntitiesByKind = make(map[string]int)
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) FROM entities
		WHERE project_id = ? GROUP BY kind
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		status.EntitiesByKind[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	status.SchemaVersion = CurrentSchemaVersion
	status.BuildMode = BuildMode
	return &status, nil
}
