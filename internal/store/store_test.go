package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/store/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, configureSQLite(db))
	require.NoError(t, migrations.Run(db))

	s := NewWithDB(db)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fanout.db")

	s, err := New(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	_, _, err = s.Join("Steve")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	p, err := reopened.Player("steve")
	require.NoError(t, err)
	require.Equal(t, "Steve", p.Name)
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "fanout.db"))
	require.Error(t, err)
}

func TestJoin(t *testing.T) {
	s := newTestStore(t)

	p, created, err := s.Join("Steve")
	require.NoError(t, err)
	require.True(t, created)
	require.True(t, p.Online)
	require.Equal(t, "Steve", p.Name)
	_, err = uuid.Parse(p.ID)
	require.NoError(t, err)

	_, err = s.Leave("Steve")
	require.NoError(t, err)

	again, created, err := s.Join("STEVE")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, p.ID, again.ID)
	require.Equal(t, "Steve", again.Name)
	require.True(t, again.Online)
	require.True(t, again.LastSeen.After(p.LastSeen))
	require.Equal(t, p.JoinedAt, again.JoinedAt)
}

func TestJoin_InvalidName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"", "has space", "seventeen_chars_x", "a*"} {
		_, _, err := s.Join(name)
		require.Error(t, err, name)
	}
}

func TestLeave(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Leave("ghost")
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, _, err = s.Join("Alex")
	require.NoError(t, err)

	p, err := s.Leave("alex")
	require.NoError(t, err)
	require.False(t, p.Online)
}

func TestPlayer_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Player("nobody")
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestPlayers(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"zed", "Alex", "alfred", "Steve", "a_b", "aXb"} {
		_, _, err := s.Join(name)
		require.NoError(t, err)
	}
	_, err := s.Leave("Steve")
	require.NoError(t, err)

	names := func(players []domain.Player) []string {
		var out []string
		for _, p := range players {
			out = append(out, p.Name)
		}
		return out
	}

	tests := []struct {
		name   string
		filter domain.PlayerFilter
		want   []string
	}{
		{
			name: "everyone by name",
			want: []string{"a_b", "Alex", "alfred", "aXb", "Steve", "zed"},
		},
		{
			name:   "online only",
			filter: domain.PlayerFilter{OnlineOnly: true},
			want:   []string{"a_b", "Alex", "alfred", "aXb", "zed"},
		},
		{
			name:   "prefix ignores case",
			filter: domain.PlayerFilter{Prefix: "AL"},
			want:   []string{"Alex", "alfred"},
		},
		{
			name:   "underscore is literal",
			filter: domain.PlayerFilter{Prefix: "a_"},
			want:   []string{"a_b"},
		},
		{
			name:   "no match",
			filter: domain.PlayerFilter{Prefix: "q"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Players(tt.filter)
			require.NoError(t, err)
			require.Equal(t, tt.want, names(got))
		})
	}
}

func TestGrants(t *testing.T) {
	s := newTestStore(t)
	p, _, err := s.Join("Steve")
	require.NoError(t, err)

	added, err := s.Grant(p.ID, "fanout.MSG")
	require.NoError(t, err)
	require.True(t, added)

	added, err = s.Grant(p.ID, "fanout.msg")
	require.NoError(t, err)
	require.False(t, added)

	_, err = s.Grant(p.ID, "fanout")
	require.NoError(t, err)

	grants, err := s.Grants(p.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"fanout", "fanout.msg"}, grants)

	removed, err := s.Revoke(p.ID, "FANOUT.msg")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = s.Revoke(p.ID, "fanout.msg")
	require.NoError(t, err)
	require.False(t, removed)

	grants, err = s.Grants(p.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"fanout"}, grants)
}

func TestGrant_UnknownPlayer(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Grant(uuid.NewString(), "fanout")
	require.Error(t, err)
}

func TestDeliveries(t *testing.T) {
	s := newTestStore(t)
	steve, _, err := s.Join("Steve")
	require.NoError(t, err)
	alex, _, err := s.Join("Alex")
	require.NoError(t, err)

	_, err = s.Deliver(domain.Delivery{PlayerID: steve.ID, Kind: domain.DeliveryMessage, Sender: "console", Body: "&ahello"})
	require.NoError(t, err)
	_, err = s.Deliver(domain.Delivery{PlayerID: alex.ID, Kind: domain.DeliveryMessage, Sender: "console", Body: "other"})
	require.NoError(t, err)
	id, err := s.Deliver(domain.Delivery{PlayerID: steve.ID, Kind: domain.DeliveryTitle, Sender: "Alex", Body: "Welcome", Subtitle: "to spawn"})
	require.NoError(t, err)
	require.Equal(t, int64(3), id)

	inbox, err := s.Inbox(steve.ID, 0)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	require.Equal(t, domain.DeliveryTitle, inbox[0].Kind)
	require.Equal(t, "to spawn", inbox[0].Subtitle)
	require.Equal(t, "Alex", inbox[0].Sender)
	require.Equal(t, "&ahello", inbox[1].Body)
	require.True(t, inbox[0].CreatedAt.After(inbox[1].CreatedAt))

	limited, err := s.Inbox(steve.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, id, limited[0].ID)
}

func TestHistory(t *testing.T) {
	s := newTestStore(t)

	entries := []domain.HistoryEntry{
		{Sender: "console", Line: "msg * hi", Command: "msg", Route: "wildcard", Invocations: 3},
		{Sender: "Steve", Line: "nope", Error: "Invalid subcommand"},
		{Sender: "console", Line: "title {a,b} x", Command: "title", Route: "template", Invocations: 2, Failures: 1},
	}
	for _, e := range entries {
		_, err := s.Record(e)
		require.NoError(t, err)
	}

	got, err := s.History(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "title {a,b} x", got[0].Line)
	require.Equal(t, 1, got[0].Failures)
	require.Equal(t, "Invalid subcommand", got[1].Error)

	all, err := s.History(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "wildcard", all[2].Route)
	require.Equal(t, 3, all[2].Invocations)
	require.False(t, all[2].CreatedAt.IsZero())
}
