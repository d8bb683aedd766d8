// Package session orchestrates set generation and user interactions on top
// of the catalog, selection, history, engagement and gate packages.
//
// The Controller owns the single in-memory copy of all user state. Events are
// handled one at a time; each event computes every next state first, commits
// it in memory, then writes it through the kv store. Storage failures never
// reach the caller.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lazypower/lovewhisper/internal/catalog"
	"github.com/lazypower/lovewhisper/internal/clock"
	"github.com/lazypower/lovewhisper/internal/engagement"
	"github.com/lazypower/lovewhisper/internal/favorites"
	"github.com/lazypower/lovewhisper/internal/gate"
	"github.com/lazypower/lovewhisper/internal/history"
	"github.com/lazypower/lovewhisper/internal/kv"
	"github.com/lazypower/lovewhisper/internal/logging"
	"github.com/lazypower/lovewhisper/internal/notify"
	"github.com/lazypower/lovewhisper/internal/selection"
	"github.com/lazypower/lovewhisper/internal/share"
)

var (
	// ErrUnknownAsset means an interaction named an id the catalog lacks.
	ErrUnknownAsset = errors.New("unknown asset")

	// ErrInvalidFilter means a tone or occasion outside the vocabulary.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Toast messages shown after interactions.
const (
	MsgCopied          = "Copied to clipboard"
	MsgCopyFailed      = "Copy failed. Select & copy manually."
	MsgShareFellBack   = "No native share—copied instead."
	MsgSubscribed      = "Subscribed. Unlimited sets unlocked."
	MsgSubscriptionOff = "Switched to the free plan."
)

// Filters narrows the candidate pool. catalog.Any disables a dimension.
type Filters struct {
	Tone     string `json:"tone"`
	Occasion string `json:"occasion"`
}

// DefaultFilters matches every asset.
func DefaultFilters() Filters {
	return Filters{Tone: catalog.Any, Occasion: catalog.Any}
}

// Options are the tunable policy values.
type Options struct {
	SetSize       int
	MixTypes      bool
	RecencyWindow time.Duration
	DailyLimit    int
}

// DefaultOptions returns a set of 3, mixed types, 30-day recency and one
// free regeneration per day.
func DefaultOptions() Options {
	return Options{
		SetSize:       selection.DefaultTarget,
		MixTypes:      true,
		RecencyWindow: history.DefaultWindow,
		DailyLimit:    gate.DailyFreeRefreshes,
	}
}

// Deps are the collaborators a Controller needs. Only Catalog is required.
type Deps struct {
	Catalog   *catalog.Catalog
	Store     *kv.Store
	Clock     clock.Clock
	Rand      selection.Source
	Clipboard share.Clipboard
	Sharer    share.Sharer // nil when the host has no native share
	Toasts    *notify.Queue
	Log       logging.Logger
}

// Outcome says how a set request ended.
type Outcome string

const (
	Served     Outcome = "served"
	GateDenied Outcome = "gate_denied"
)

// Result is the published outcome of InitialLoad or RequestNewSet.
type Result struct {
	Outcome Outcome         `json:"status"`
	Assets  []catalog.Asset `json:"assets,omitempty"`

	// Exhausted is set when fewer than the requested number of assets
	// were eligible.
	Exhausted bool `json:"exhausted,omitempty"`
}

// Controller handles session events. It is safe for concurrent use; events
// are serialised in arrival order.
type Controller struct {
	mu sync.Mutex

	catalog   *catalog.Catalog
	store     *kv.Store
	clock     clock.Clock
	rnd       selection.Source
	clipboard share.Clipboard
	sharer    share.Sharer
	toasts    *notify.Queue
	log       logging.Logger
	opts      Options
	gate      gate.Gate

	history    history.Ledger
	favorites  favorites.Set
	filters    Filters
	engagement engagement.State
	subscribed bool
	counters   gate.Counters

	current    []catalog.Asset
	exhausted  bool
	upsellOpen bool
}

// New builds a Controller and loads persisted state from deps.Store.
// Missing or corrupt values fall back to defaults.
func New(ctx context.Context, deps Deps, opts Options) *Controller {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if deps.Clipboard == nil {
		deps.Clipboard = share.SystemClipboard{}
	}
	if deps.Toasts == nil {
		deps.Toasts = notify.NewQueue(deps.Clock, notify.DefaultTTL)
	}
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}
	if deps.Store == nil {
		deps.Store = kv.New(nil, deps.Log)
	}
	if opts.SetSize <= 0 {
		opts.SetSize = selection.DefaultTarget
	}
	if opts.RecencyWindow <= 0 {
		opts.RecencyWindow = history.DefaultWindow
	}

	c := &Controller{
		catalog:   deps.Catalog,
		store:     deps.Store,
		clock:     deps.Clock,
		rnd:       deps.Rand,
		clipboard: deps.Clipboard,
		sharer:    deps.Sharer,
		toasts:    deps.Toasts,
		log:       deps.Log.With("component", "session"),
		opts:      opts,
		gate:      gate.New(opts.DailyLimit),
	}
	c.load(ctx)
	return c
}

func (c *Controller) load(ctx context.Context) {
	c.history = kv.Load(ctx, c.store, KeyHistory, history.Ledger(nil))
	c.favorites = kv.Load(ctx, c.store, KeyFavorites, favorites.Set(nil))
	c.filters = kv.Load(ctx, c.store, KeyPrefs, DefaultFilters())
	c.engagement = kv.Load(ctx, c.store, KeyEngagement, engagement.State{})
	c.subscribed = kv.Load(ctx, c.store, KeySubscribed, false)
	c.counters = kv.Load(ctx, c.store, KeyRefreshCount, gate.Counters(nil))

	if !catalog.ValidTone(c.filters.Tone) || !catalog.ValidOccasion(c.filters.Occasion) {
		c.log.Warn(ctx, "stored filters invalid, resetting", "tone", c.filters.Tone, "occasion", c.filters.Occasion)
		c.filters = DefaultFilters()
	}
	if c.engagement.StreakDays < 0 || c.engagement.CareScore < 0 {
		c.log.Warn(ctx, "stored engagement negative, clamping", "streak", c.engagement.StreakDays, "care", c.engagement.CareScore)
		c.engagement.StreakDays = max(c.engagement.StreakDays, 0)
		c.engagement.CareScore = max(c.engagement.CareScore, 0)
	}
}

// InitialLoad serves the first set of a session. It never consults the
// usage gate.
func (c *Controller) InitialLoad(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.serve(ctx, nil)
}

// RequestNewSet serves another set if the usage gate allows it. On denial
// nothing but the upsell flag changes.
func (c *Controller) RequestNewSet(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := clock.Today(c.clock)
	decision, counters := c.gate.TryConsume(c.counters, today, c.subscribed)
	if decision == gate.Denied {
		c.upsellOpen = true
		c.log.Info(ctx, "regeneration denied by usage gate", "day", today.String())
		return Result{Outcome: GateDenied}
	}

	var consumed gate.Counters
	if !c.subscribed {
		consumed = counters
	}
	return c.serve(ctx, consumed)
}

// serve runs selection, history and engagement as one unit. consumed is the
// gate state to persist alongside, or nil when the gate was not involved.
func (c *Controller) serve(ctx context.Context, consumed gate.Counters) Result {
	now := c.clock.Now()
	today := clock.DateOf(now)

	pool := c.catalog.Filter(c.filters.Tone, c.filters.Occasion)
	recent := c.history.RecentIDs(c.opts.RecencyWindow, now)
	set := selection.SelectSet(pool, recent, c.opts.SetSize, c.opts.MixTypes, c.rnd)

	ids := make([]string, len(set))
	for i, a := range set {
		ids[i] = a.ID
	}
	nextHistory := c.history.Record(ids, now)
	nextEngagement := engagement.OnSetServed(c.engagement, today)

	c.history = nextHistory
	c.engagement = nextEngagement
	c.current = set
	c.exhausted = len(set) < c.opts.SetSize
	c.upsellOpen = false
	if consumed != nil {
		c.counters = consumed
	}

	c.store.Save(ctx, KeyHistory, c.history)
	c.store.Save(ctx, KeyEngagement, c.engagement)
	if consumed != nil {
		c.store.Save(ctx, KeyRefreshCount, c.counters)
	}

	c.log.Debug(ctx, "set served", "ids", ids, "streak", c.engagement.StreakDays, "exhausted", c.exhausted)
	return Result{Outcome: Served, Assets: cloneAssets(set), Exhausted: c.exhausted}
}

// SetFilters validates and applies new filters. They take effect on the
// next set and are remembered across sessions.
func (c *Controller) SetFilters(ctx context.Context, f Filters) error {
	if f.Tone == "" {
		f.Tone = catalog.Any
	}
	if f.Occasion == "" {
		f.Occasion = catalog.Any
	}
	if !catalog.ValidTone(f.Tone) {
		return fmt.Errorf("%w: tone %q", ErrInvalidFilter, f.Tone)
	}
	if !catalog.ValidOccasion(f.Occasion) {
		return fmt.Errorf("%w: occasion %q", ErrInvalidFilter, f.Occasion)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f
	c.store.Save(ctx, KeyPrefs, c.filters)
	return nil
}

// SetSubscribed flips the subscription flag. Subscribing closes the upsell.
func (c *Controller) SetSubscribed(ctx context.Context, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscribed = on
	if on {
		c.upsellOpen = false
	}
	c.store.Save(ctx, KeySubscribed, c.subscribed)
}

// AcceptTrial is the upsell's "start trial" action.
func (c *Controller) AcceptTrial(ctx context.Context) {
	c.SetSubscribed(ctx, true)
	c.toasts.Push(MsgSubscribed)
}

// DismissUpsell closes the upsell prompt without subscribing.
func (c *Controller) DismissUpsell() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upsellOpen = false
}

func (c *Controller) asset(id string) (catalog.Asset, error) {
	a, ok := c.catalog.Get(id)
	if !ok {
		return catalog.Asset{}, fmt.Errorf("%w: %s", ErrUnknownAsset, id)
	}
	return a, nil
}

func (c *Controller) bump(ctx context.Context, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engagement = engagement.BumpCareScore(c.engagement, delta)
	c.store.Save(ctx, KeyEngagement, c.engagement)
}

func cloneAssets(in []catalog.Asset) []catalog.Asset {
	if in == nil {
		return []catalog.Asset{}
	}
	return append([]catalog.Asset(nil), in...)
}
