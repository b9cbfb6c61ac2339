package app

import (
	"fmt"
	"time"

	"github.com/dori/todoscreen/internal/config"
	"github.com/dori/todoscreen/internal/debuglog"
	"github.com/google/uuid"
)

// App holds what one mounted screen needs from the outside world
type App struct {
	Config  config.Config
	Session string
	Log     *debuglog.Logger
	Clock   func() time.Time
}

// New creates a new application instance
func New(cfg config.Config) (*App, error) {
	app := &App{
		Config:  cfg,
		Session: uuid.New().String(),
		Clock:   time.Now,
	}

	if cfg.Debug.Enabled {
		l, err := debuglog.Open(cfg.Debug.LogPath, app.Session)
		if err != nil {
			return nil, fmt.Errorf("failed to start debug log: %w", err)
		}
		app.Log = l
		app.Log.Printf("session started, theme=%s", cfg.UI.Theme)
	}

	return app, nil
}

// Close cleans up application resources
func (a *App) Close() error {
	if a.Log == nil {
		return nil
	}
	a.Log.Printf("session ended")
	if err := a.Log.Close(); err != nil {
		return fmt.Errorf("failed to close debug log: %w", err)
	}
	return nil
}
