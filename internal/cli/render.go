package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazypower/lovewhisper/internal/catalog"
	"github.com/lazypower/lovewhisper/internal/client"
	"github.com/lazypower/lovewhisper/internal/session"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"} // Magenta
	colorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"} // Gray
	colorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"} // Yellow
	colorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"} // Green

	styleTitle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess)
	styleCard    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1).
			Width(60)
)

func renderAsset(w io.Writer, a catalog.Asset) {
	header := styleTitle.Render(a.ID) + "  " +
		styleMuted.Render(fmt.Sprintf("%s · %s · %s", a.Type, strings.Join(a.Tone, ","), strings.Join(a.Occasion, ",")))

	body := a.SendableText()
	if a.Type == catalog.TypeImage {
		body = "[image] " + body
	}
	fmt.Fprintln(w, styleCard.Render(header+"\n\n"+body))
}

func renderResult(w io.Writer, res session.Result) {
	if res.Outcome == session.GateDenied {
		fmt.Fprintln(w, styleWarning.Render("That's today's free refresh used."))
		fmt.Fprintln(w, styleMuted.Render("Come back tomorrow, or run 'lovewhisper subscribe on' for unlimited sets."))
		return
	}

	for _, a := range res.Assets {
		renderAsset(w, a)
	}
	switch {
	case len(res.Assets) == 0:
		fmt.Fprintln(w, styleMuted.Render("Nothing new for these filters. Try widening tone or occasion."))
	case res.Exhausted:
		fmt.Fprintln(w, styleMuted.Render("That's everything fresh for these filters."))
	}
}

func renderInteraction(w io.Writer, verb string, in client.Interaction) {
	for _, t := range in.Toasts {
		fmt.Fprintln(w, styleSuccess.Render(t.Message))
	}
	fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("%s %s · care score %d", verb, in.ID, in.CareScore)))
}

func renderStatus(w io.Writer, snap session.Snapshot) {
	fmt.Fprintln(w, styleTitle.Render("LoveWhisper"))

	last := "never"
	if !snap.LastActive.IsZero() {
		last = snap.LastActive.String()
	}
	refreshes := "unlimited"
	if snap.RemainingRefreshes >= 0 {
		refreshes = fmt.Sprintf("%d left today", snap.RemainingRefreshes)
	}
	plan := "free"
	if snap.Subscribed {
		plan = "subscribed"
	}

	rows := [][2]string{
		{"streak", fmt.Sprintf("%d day(s)", snap.StreakDays)},
		{"care score", fmt.Sprintf("%d", snap.CareScore)},
		{"last active", last},
		{"plan", plan},
		{"refreshes", refreshes},
		{"filters", snap.Filters.Tone + " / " + snap.Filters.Occasion},
		{"favorites", fmt.Sprintf("%d", len(snap.FavoriteIDs))},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %s\n", styleMuted.Render(fmt.Sprintf("%-12s", r[0])), r[1])
	}
}
