package actions

import (
	"github.com/footprint-tools/fanout/internal/app"
)

type actionDependencies struct {
	Version func() string
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Version: func() string { return app.Version },
	}
}
