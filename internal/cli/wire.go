package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lazypower/lovewhisper/internal/catalog"
	"github.com/lazypower/lovewhisper/internal/clock"
	"github.com/lazypower/lovewhisper/internal/config"
	"github.com/lazypower/lovewhisper/internal/kv"
	"github.com/lazypower/lovewhisper/internal/logging"
	"github.com/lazypower/lovewhisper/internal/notify"
	"github.com/lazypower/lovewhisper/internal/session"
	"github.com/lazypower/lovewhisper/internal/share"
	"github.com/lazypower/lovewhisper/internal/store"
)

// openDB opens the configured database, falling back to the default path.
func openDB(cfg config.Config) (*store.DB, error) {
	dbPath := cfg.Database.Path
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
	}
	return store.Open(dbPath)
}

func newLogger(cfg config.Config) logging.Logger {
	return logging.New(os.Stderr, cfg.Log.Level)
}

// newController builds a session controller over db using the host
// clipboard and the configured share command.
func newController(ctx context.Context, cfg config.Config, db *store.DB, log logging.Logger) *session.Controller {
	sys := clock.System{}
	deps := session.Deps{
		Catalog:   catalog.Default(),
		Store:     kv.New(db.KV(), log),
		Clock:     sys,
		Clipboard: share.SystemClipboard{},
		Toasts:    notify.NewQueue(sys, cfg.ToastTTL()),
		Log:       log,
	}
	// A nil *CommandSharer must stay a nil interface.
	if s := share.NewCommandSharer(cfg.Share.Command); s != nil {
		deps.Sharer = s
	}

	return session.New(ctx, deps, session.Options{
		SetSize:       cfg.Selection.SetSize,
		MixTypes:      cfg.Selection.MixTypes,
		RecencyWindow: cfg.RecencyWindow(),
		DailyLimit:    cfg.Gate.DailyFreeRefreshes,
	})
}
