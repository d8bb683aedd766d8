package cli

import (
	"context"
	"fmt"

	"github.com/lazypower/lovewhisper/internal/catalog"
	"github.com/lazypower/lovewhisper/internal/client"
	"github.com/lazypower/lovewhisper/internal/config"
	"github.com/lazypower/lovewhisper/internal/notify"
	"github.com/lazypower/lovewhisper/internal/session"
	"github.com/lazypower/lovewhisper/internal/store"
)

// backend is what the terminal commands drive: a running server when one
// is healthy, otherwise the database directly.
type backend interface {
	State(ctx context.Context) (session.Snapshot, error)
	InitialSet(ctx context.Context) (session.Result, error)
	NewSet(ctx context.Context) (session.Result, error)
	SetFilters(ctx context.Context, f session.Filters) error
	Copy(ctx context.Context, id string) (client.Interaction, error)
	Share(ctx context.Context, id string) (client.Interaction, error)
	ToggleFavorite(ctx context.Context, id string) (client.Interaction, error)
	Favorites(ctx context.Context) ([]catalog.Asset, error)
	SetSubscribed(ctx context.Context, on bool) error
	Close() error
}

// openBackend prefers the server at cfg.ServerURL().
func openBackend(ctx context.Context, cfg config.Config) (backend, error) {
	c := client.New(cfg.ServerURL())
	if c.Healthy(ctx) {
		return remoteBackend{c}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	log := newLogger(cfg)
	return &localBackend{db: db, ctl: newController(ctx, cfg, db, log)}, nil
}

type remoteBackend struct {
	*client.Client
}

func (remoteBackend) Close() error { return nil }

type localBackend struct {
	db  *store.DB
	ctl *session.Controller
}

func (b *localBackend) State(ctx context.Context) (session.Snapshot, error) {
	return b.ctl.Snapshot(), nil
}

func (b *localBackend) InitialSet(ctx context.Context) (session.Result, error) {
	return b.ctl.InitialLoad(ctx), nil
}

func (b *localBackend) NewSet(ctx context.Context) (session.Result, error) {
	return b.ctl.RequestNewSet(ctx), nil
}

func (b *localBackend) SetFilters(ctx context.Context, f session.Filters) error {
	return b.ctl.SetFilters(ctx, f)
}

func (b *localBackend) Copy(ctx context.Context, id string) (client.Interaction, error) {
	ok, err := b.ctl.Copy(ctx, id)
	return b.interaction(id, client.Interaction{Copied: ok}, err)
}

func (b *localBackend) Share(ctx context.Context, id string) (client.Interaction, error) {
	ok, err := b.ctl.Share(ctx, id)
	return b.interaction(id, client.Interaction{Shared: ok}, err)
}

func (b *localBackend) ToggleFavorite(ctx context.Context, id string) (client.Interaction, error) {
	added, err := b.ctl.ToggleFavorite(ctx, id)
	return b.interaction(id, client.Interaction{Favorite: added}, err)
}

func (b *localBackend) interaction(id string, out client.Interaction, err error) (client.Interaction, error) {
	if err != nil {
		return client.Interaction{}, err
	}
	out.ID = id
	out.CareScore = b.ctl.Snapshot().CareScore
	out.Toasts = toastMessages(b.ctl.Toasts())
	return out, nil
}

func (b *localBackend) Favorites(ctx context.Context) ([]catalog.Asset, error) {
	return b.ctl.Favorites(), nil
}

func (b *localBackend) SetSubscribed(ctx context.Context, on bool) error {
	b.ctl.SetSubscribed(ctx, on)
	return nil
}

func (b *localBackend) Close() error {
	return b.db.Close()
}

func toastMessages(in []notify.Toast) []client.ToastMessage {
	out := make([]client.ToastMessage, len(in))
	for i, t := range in {
		out[i] = client.ToastMessage{ID: t.ID, Message: t.Message}
	}
	return out
}
