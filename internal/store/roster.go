package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/footprint-tools/fanout/internal/domain"
)

const playerColumns = `id, name, online, joined_at, last_seen`

// Join creates name with a fresh UUID, or marks the existing player online.
// Name matching ignores case and keeps the stored spelling.
func (s *Store) Join(name string) (domain.Player, bool, error) {
	if !domain.ValidPlayerName(name) {
		return domain.Player{}, false, fmt.Errorf("invalid player name %q", name)
	}

	now := s.timestamp()

	res, err := s.db.Exec(
		`UPDATE players SET online = 1, last_seen = ? WHERE name = ?`,
		now, name,
	)
	if err != nil {
		return domain.Player{}, false, fmt.Errorf("mark online: %w", err)
	}

	created := false
	if n, _ := res.RowsAffected(); n == 0 {
		_, err = s.db.Exec(
			`INSERT INTO players (id, name, online, joined_at, last_seen) VALUES (?, ?, 1, ?, ?)`,
			uuid.NewString(), name, now, now,
		)
		if err != nil {
			return domain.Player{}, false, fmt.Errorf("insert player: %w", err)
		}
		created = true
	}

	p, err := s.Player(name)
	return p, created, err
}

// Leave marks a player offline.
func (s *Store) Leave(name string) (domain.Player, error) {
	res, err := s.db.Exec(
		`UPDATE players SET online = 0, last_seen = ? WHERE name = ?`,
		s.timestamp(), name,
	)
	if err != nil {
		return domain.Player{}, fmt.Errorf("mark offline: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	return s.Player(name)
}

// Player returns the player called name, ignoring case.
func (s *Store) Player(name string) (domain.Player, error) {
	row := s.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE name = ?`, name)

	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	return p, err
}

// Players lists players ordered by name.
func (s *Store) Players(filter domain.PlayerFilter) ([]domain.Player, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.OnlineOnly {
		clauses = append(clauses, "online = 1")
	}
	if filter.Prefix != "" {
		clauses = append(clauses, `name LIKE ? ESCAPE '\'`)
		args = append(args, escapeLike(filter.Prefix)+"%")
	}

	query := `SELECT ` + playerColumns + ` FROM players`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY name COLLATE NOCASE"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Grant stores permission for playerID. Permissions are kept lower case.
func (s *Store) Grant(playerID, permission string) (bool, error) {
	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO grants (player_id, permission, granted_at) VALUES (?, ?, ?)`,
		playerID, strings.ToLower(permission), s.timestamp(),
	)
	if err != nil {
		return false, fmt.Errorf("grant %s: %w", permission, err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *Store) Revoke(playerID, permission string) (bool, error) {
	res, err := s.db.Exec(
		`DELETE FROM grants WHERE player_id = ? AND permission = ?`,
		playerID, strings.ToLower(permission),
	)
	if err != nil {
		return false, fmt.Errorf("revoke %s: %w", permission, err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *Store) Grants(playerID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT permission FROM grants WHERE player_id = ? ORDER BY permission`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var perm string
		if err := rows.Scan(&perm); err != nil {
			return nil, err
		}
		out = append(out, perm)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (domain.Player, error) {
	var (
		p        domain.Player
		online   int
		joined   string
		lastSeen string
	)

	if err := row.Scan(&p.ID, &p.Name, &online, &joined, &lastSeen); err != nil {
		return domain.Player{}, err
	}

	var err error
	if p.JoinedAt, err = parseTime(joined); err != nil {
		return domain.Player{}, err
	}
	if p.LastSeen, err = parseTime(lastSeen); err != nil {
		return domain.Player{}, err
	}
	p.Online = online == 1

	return p, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
