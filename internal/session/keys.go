package session

// Persisted storage keys. Each holds one JSON value.
const (
	KeyHistory      = "lw_history_v1"       // history.Ledger
	KeyFavorites    = "lw_favorites_v1"     // favorites.Set
	KeyPrefs        = "lw_prefs_v1"         // Filters
	KeyEngagement   = "lw_streak_v1"        // engagement.State
	KeySubscribed   = "lw_subscribed_v1"    // bool
	KeyRefreshCount = "lw_refresh_count_v1" // gate.Counters
)
