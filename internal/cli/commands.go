package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazypower/lovewhisper/internal/session"
)

const commandTimeout = 30 * time.Second

// withBackend runs fn against the server or the local database.
func withBackend(cmd *cobra.Command, fn func(ctx context.Context, b backend) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	return fn(ctx, b)
}

// --- set command ---

var (
	setAnother  bool
	setTone     string
	setOccasion string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Show a set of messages",
	Long: "Show a set of messages. The first set is always free; --another asks for a\n" +
		"fresh one, which counts against the daily free refresh unless subscribed.",
	Args: cobra.NoArgs,
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	return withBackend(cmd, func(ctx context.Context, b backend) error {
		if cmd.Flags().Changed("tone") || cmd.Flags().Changed("occasion") {
			snap, err := b.State(ctx)
			if err != nil {
				return fmt.Errorf("get state: %w", err)
			}
			f := snap.Filters
			if cmd.Flags().Changed("tone") {
				f.Tone = setTone
			}
			if cmd.Flags().Changed("occasion") {
				f.Occasion = setOccasion
			}
			if err := b.SetFilters(ctx, f); err != nil {
				return fmt.Errorf("set filters: %w", err)
			}
		}

		var (
			res session.Result
			err error
		)
		if setAnother {
			res, err = b.NewSet(ctx)
		} else {
			res, err = b.InitialSet(ctx)
		}
		if err != nil {
			return fmt.Errorf("get set: %w", err)
		}
		renderResult(cmd.OutOrStdout(), res)
		return nil
	})
}

// --- interaction commands ---

var copyCmd = &cobra.Command{
	Use:   "copy ID",
	Short: "Copy a message to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			in, err := b.Copy(ctx, args[0])
			if err != nil {
				return fmt.Errorf("copy: %w", err)
			}
			renderInteraction(cmd.OutOrStdout(), "copy", in)
			return nil
		})
	},
}

var shareCmd = &cobra.Command{
	Use:   "share ID",
	Short: "Share a message, or copy it when no share helper is configured",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			in, err := b.Share(ctx, args[0])
			if err != nil {
				return fmt.Errorf("share: %w", err)
			}
			renderInteraction(cmd.OutOrStdout(), "share", in)
			return nil
		})
	},
}

var favCmd = &cobra.Command{
	Use:   "fav ID",
	Short: "Toggle a message in favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			in, err := b.ToggleFavorite(ctx, args[0])
			if err != nil {
				return fmt.Errorf("favorite: %w", err)
			}
			verb := "unfavorited"
			if in.Favorite {
				verb = "favorited"
			}
			renderInteraction(cmd.OutOrStdout(), verb, in)
			return nil
		})
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			favs, err := b.Favorites(ctx)
			if err != nil {
				return fmt.Errorf("favorites: %w", err)
			}
			if len(favs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
				return nil
			}
			for _, a := range favs {
				renderAsset(cmd.OutOrStdout(), a)
			}
			return nil
		})
	},
}

// --- subscription and status ---

var subscribeCmd = &cobra.Command{
	Use:       "subscribe on|off",
	Short:     "Turn the subscription on or off",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		on := args[0] == "on"
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			if err := b.SetSubscribed(ctx, on); err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}
			msg := session.MsgSubscriptionOff
			if on {
				msg = session.MsgSubscribed
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render(msg))
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show streak, care score and plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			snap, err := b.State(ctx)
			if err != nil {
				return fmt.Errorf("get state: %w", err)
			}
			renderStatus(cmd.OutOrStdout(), snap)
			return nil
		})
	},
}

func init() {
	setCmd.Flags().BoolVar(&setAnother, "another", false, "Ask for a fresh set (uses the daily free refresh)")
	setCmd.Flags().StringVar(&setTone, "tone", "", "Tone filter: any, warm, playful, tender, inside")
	setCmd.Flags().StringVar(&setOccasion, "occasion", "", "Occasion filter: any, everyday, morning, night, rainy, milestone")
}
