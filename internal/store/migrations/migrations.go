package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/footprint-tools/fanout/internal/log"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one embedded schema step, named "NN_name.sql" on disk.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

func (m Migration) String() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Name)
}

var fileName = regexp.MustCompile(`^(\d+)_([a-z0-9_]+)\.sql$`)

const schemaTable = `
CREATE TABLE IF NOT EXISTS schema_versions (
	version    INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	applied_at TEXT NOT NULL
)`

// Load returns the embedded migrations ordered by version. Two files
// sharing a version are rejected.
func Load() ([]Migration, error) {
	files, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(files))
	for _, file := range files {
		m, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return a.Version - b.Version })
	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("migrations %s and %s share version %d", all[i-1], all[i], all[i].Version)
		}
	}
	return all, nil
}

func loadFile(file string) (Migration, error) {
	base := file[len("sql/"):]
	parts := fileName.FindStringSubmatch(base)
	if parts == nil {
		return Migration{}, fmt.Errorf("migration %s: name must look like NN_name.sql", base)
	}

	version, err := strconv.Atoi(parts[1])
	if err != nil {
		return Migration{}, fmt.Errorf("migration %s: %w", base, err)
	}

	body, err := sqlFiles.ReadFile(file)
	if err != nil {
		return Migration{}, fmt.Errorf("migration %s: %w", base, err)
	}
	return Migration{Version: version, Name: parts[2], SQL: string(body)}, nil
}

// Run applies every migration not yet recorded in schema_versions, each in
// its own transaction.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m, err)
		}
		log.Debug("store: applied migration %s", m)
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}

	appliedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		"INSERT INTO schema_versions (version, name, applied_at) VALUES (?, ?, ?)",
		m.Version, m.Name, appliedAt,
	); err != nil {
		return fmt.Errorf("record version: %w", err)
	}

	return tx.Commit()
}

// Applied returns the recorded versions, creating the bookkeeping table
// on first use.
func Applied(db *sql.DB) (map[int]bool, error) {
	if _, err := db.Exec(schemaTable); err != nil {
		return nil, fmt.Errorf("create schema_versions: %w", err)
	}

	rows, err := db.Query("SELECT version FROM schema_versions")
	if err != nil {
		return nil, fmt.Errorf("read schema_versions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// CurrentVersion is the highest applied version, 0 on a fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	applied, err := Applied(db)
	if err != nil {
		return 0, err
	}

	current := 0
	for v := range applied {
		current = max(current, v)
	}
	return current, nil
}

// Pending lists the migrations missing from schema_versions, in order.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}

	applied, err := Applied(db)
	if err != nil {
		return nil, err
	}

	var pending []Migration
	for _, m := range all {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	return pending, nil
}
