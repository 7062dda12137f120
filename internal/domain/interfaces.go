package domain

// RosterStore defines operations on the player roster and permission grants.
type RosterStore interface {
	// Join creates the player, or marks an existing one online. The bool
	// reports whether the player was created.
	Join(name string) (Player, bool, error)

	// Leave marks a player offline.
	Leave(name string) (Player, error)

	// Player looks a player up by name, ignoring case.
	Player(name string) (Player, error)

	// Players lists players matching the filter, ordered by name.
	Players(filter PlayerFilter) ([]Player, error)

	// Grant gives a permission to a player. The bool is false when the
	// player already held it.
	Grant(playerID, permission string) (bool, error)

	// Revoke removes a permission. The bool is false when it was not held.
	Revoke(playerID, permission string) (bool, error)

	// Grants returns the permissions held by a player, sorted.
	Grants(playerID string) ([]string, error)
}

// DeliveryStore defines operations on delivered messages and titles.
type DeliveryStore interface {
	// Deliver stores a delivery and returns its ID.
	Deliver(d Delivery) (int64, error)

	// Inbox returns the newest deliveries of a player, newest first.
	Inbox(playerID string, limit int) ([]Delivery, error)
}

// HistoryStore defines operations on the dispatch audit log.
type HistoryStore interface {
	// Record appends an entry.
	Record(entry HistoryEntry) (int64, error)

	// History returns the newest entries, newest first.
	History(limit int) ([]HistoryEntry, error)
}

// Store is everything the host persists.
type Store interface {
	RosterStore
	DeliveryStore
	HistoryStore

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string

	// Colorize renders '&' color codes.
	Colorize(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Store  Store
	Config ConfigProvider
	Logger Logger
	Styler Styler
}
