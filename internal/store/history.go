package store

import (
	"fmt"

	"github.com/footprint-tools/fanout/internal/domain"
)

// Record appends a dispatch to the audit log.
func (s *Store) Record(e domain.HistoryEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO history (sender, line, command, route, invocations, failures, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Sender, e.Line, e.Command, e.Route, e.Invocations, e.Failures, e.Error, s.timestamp(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert history: %w", err)
	}
	return res.LastInsertId()
}

// History returns up to limit entries, newest first.
// A non-positive limit returns everything.
func (s *Store) History(limit int) ([]domain.HistoryEntry, error) {
	query := `SELECT id, sender, line, command, route, invocations, failures, error, created_at
		FROM history ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry
	for rows.Next() {
		var (
			e       domain.HistoryEntry
			created string
		)
		if err := rows.Scan(&e.ID, &e.Sender, &e.Line, &e.Command, &e.Route,
			&e.Invocations, &e.Failures, &e.Error, &created); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
