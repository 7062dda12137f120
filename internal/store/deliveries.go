package store

import (
	"fmt"

	"github.com/footprint-tools/fanout/internal/domain"
)

// Deliver stores d and returns its ID. CreatedAt is set by the store.
func (s *Store) Deliver(d domain.Delivery) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO deliveries (player_id, kind, sender, body, subtitle, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.PlayerID, string(d.Kind), d.Sender, d.Body, d.Subtitle, s.timestamp(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert delivery: %w", err)
	}
	return res.LastInsertId()
}

// Inbox returns up to limit deliveries for playerID, newest first.
// A non-positive limit returns everything.
func (s *Store) Inbox(playerID string, limit int) ([]domain.Delivery, error) {
	query := `SELECT id, player_id, kind, sender, body, subtitle, created_at
		FROM deliveries WHERE player_id = ? ORDER BY id DESC`
	args := []any{playerID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Delivery
	for rows.Next() {
		var (
			d       domain.Delivery
			kind    string
			created string
		)
		if err := rows.Scan(&d.ID, &d.PlayerID, &kind, &d.Sender, &d.Body, &d.Subtitle, &created); err != nil {
			return nil, err
		}
		if d.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		d.Kind = domain.DeliveryKind(kind)
		out = append(out, d)
	}
	return out, rows.Err()
}
