package domain

import (
	"errors"
	"regexp"
	"time"
)

// ErrPlayerNotFound is returned by roster lookups for unknown names.
var ErrPlayerNotFound = errors.New("player not found")

// playerNamePattern accepts 1-16 letters, digits and underscores.
var playerNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,16}$`)

// ValidPlayerName reports whether name can be stored in the roster.
func ValidPlayerName(name string) bool {
	return playerNamePattern.MatchString(name)
}

// Player is a roster entry. ID is a UUID string assigned on first join.
type Player struct {
	ID       string
	Name     string
	Online   bool
	JoinedAt time.Time
	LastSeen time.Time
}

// PlayerFilter narrows Players. The zero value lists everyone.
type PlayerFilter struct {
	OnlineOnly bool
	Prefix     string // case-insensitive name prefix
}

// DeliveryKind tells a chat message from a title.
type DeliveryKind string

const (
	DeliveryMessage DeliveryKind = "message"
	DeliveryTitle   DeliveryKind = "title"
)

// Delivery is a message or title handed to a player.
type Delivery struct {
	ID        int64
	PlayerID  string
	Kind      DeliveryKind
	Sender    string
	Body      string
	Subtitle  string
	CreatedAt time.Time
}

// HistoryEntry is one dispatched line as seen by the audit log.
type HistoryEntry struct {
	ID          int64
	Sender      string
	Line        string
	Command     string
	Route       string
	Invocations int
	Failures    int
	Error       string
	CreatedAt   time.Time
}
