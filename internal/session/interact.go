package session

import (
	"context"
	"errors"

	"github.com/lazypower/lovewhisper/internal/catalog"
	"github.com/lazypower/lovewhisper/internal/clock"
	"github.com/lazypower/lovewhisper/internal/engagement"
	"github.com/lazypower/lovewhisper/internal/notify"
	"github.com/lazypower/lovewhisper/internal/share"
)

// Copy writes the asset's sendable text to the clipboard. It reports
// whether the write succeeded; a failed write is not an error, the user
// is told through a toast instead.
func (c *Controller) Copy(ctx context.Context, id string) (bool, error) {
	a, err := c.asset(id)
	if err != nil {
		return false, err
	}

	if err := c.clipboard.WriteText(ctx, a.SendableText()); err != nil {
		c.log.Warn(ctx, "clipboard write failed", "asset", id, "err", err)
		c.toasts.Push(MsgCopyFailed)
		return false, nil
	}
	c.bump(ctx, engagement.CopyBump)
	c.toasts.Push(MsgCopied)
	return true, nil
}

// Share hands the asset to the native sharer. Without one it copies to the
// clipboard instead. Failure and cancellation are silent.
func (c *Controller) Share(ctx context.Context, id string) (bool, error) {
	a, err := c.asset(id)
	if err != nil {
		return false, err
	}
	text := a.SendableText()

	if c.sharer != nil {
		err := c.sharer.Share(ctx, text)
		switch {
		case err == nil:
			c.bump(ctx, engagement.ShareBump)
			return true, nil
		case !errors.Is(err, share.ErrUnavailable):
			c.log.Debug(ctx, "share did not complete", "asset", id, "err", err)
			return false, nil
		}
	}

	if err := c.clipboard.WriteText(ctx, text); err != nil {
		c.log.Debug(ctx, "share fallback copy failed", "asset", id, "err", err)
		return false, nil
	}
	c.bump(ctx, engagement.ShareBump)
	c.toasts.Push(MsgShareFellBack)
	return true, nil
}

// ToggleFavorite flips membership of id in the favorites and reports
// whether it is now a favorite.
func (c *Controller) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if _, err := c.asset(id); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next, added := c.favorites.Toggle(id)
	delta := engagement.FavoriteOffBump
	if added {
		delta = engagement.FavoriteOnBump
	}
	c.favorites = next
	c.engagement = engagement.BumpCareScore(c.engagement, delta)

	c.store.Save(ctx, KeyFavorites, c.favorites)
	c.store.Save(ctx, KeyEngagement, c.engagement)
	return added, nil
}

// Favorites returns the favorite assets in the order they were added.
func (c *Controller) Favorites() []catalog.Asset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneAssets(c.catalog.Lookup(c.favorites))
}

// Toasts returns the toasts that have not expired yet.
func (c *Controller) Toasts() []notify.Toast {
	return c.toasts.Active()
}

// DismissToast removes a toast before it expires. It reports whether the
// toast was still active.
func (c *Controller) DismissToast(id string) bool {
	return c.toasts.Dismiss(id)
}

// Snapshot is a read-only view of everything the page renders.
type Snapshot struct {
	Set         []catalog.Asset `json:"set"`
	Exhausted   bool            `json:"exhausted"`
	Favorites   []catalog.Asset `json:"favorites"`
	FavoriteIDs []string        `json:"favoriteIds"`
	Filters     Filters         `json:"filters"`
	StreakDays  int             `json:"streakDays"`
	CareScore   int             `json:"careScore"`
	LastActive  clock.Date      `json:"lastActiveDate"`
	Subscribed  bool            `json:"subscribed"`

	// RemainingRefreshes is -1 when subscribed.
	RemainingRefreshes int  `json:"remainingRefreshes"`
	UpsellOpen         bool `json:"upsellOpen"`
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := append([]string{}, c.favorites...)
	return Snapshot{
		Set:                cloneAssets(c.current),
		Exhausted:          c.exhausted,
		Favorites:          cloneAssets(c.catalog.Lookup(ids)),
		FavoriteIDs:        ids,
		Filters:            c.filters,
		StreakDays:         c.engagement.StreakDays,
		CareScore:          c.engagement.CareScore,
		LastActive:         c.engagement.LastActiveDate,
		Subscribed:         c.subscribed,
		RemainingRefreshes: c.gate.Remaining(c.counters, clock.Today(c.clock), c.subscribed),
		UpsellOpen:         c.upsellOpen,
	}
}
