package app

import (
	"fmt"

	"github.com/footprint-tools/fanout/internal/config"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/log"
	"github.com/footprint-tools/fanout/internal/paths"
	"github.com/footprint-tools/fanout/internal/store"
	"github.com/footprint-tools/fanout/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	Settings config.Settings

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions reads the config file and the environment.
func DefaultOptions() (Options, error) {
	values, _ := config.GetAll()

	overrides, err := config.ParseEnv()
	if err != nil {
		return Options{}, err
	}

	return Options{
		Settings:     config.Resolve(values, overrides),
		StyleEnabled: true,
		StyleConfig:  values,
	}, nil
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.Settings.EnableLog {
		l, err := log.New(paths.LogFilePath(), log.ParseLevel(opts.Settings.LogLevel))
		if err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	dbPath := opts.Settings.DatabasePath
	if dbPath == "" {
		dbPath = paths.DatabasePath()
	}
	s, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return &domain.Application{
		Store:  s,
		Config: config.NewProvider(),
		Logger: logger,
		Styler: style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// The store has no database; callers should provide their own.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Store:  store.NewWithDB(nil),
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	return nil
}
