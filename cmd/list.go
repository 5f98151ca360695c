package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/threadloom/threadloom/internal"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List threads in the event cache",
	Long:  `List all threads present in the companion client's event cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveCache()
		if err != nil {
			return fmt.Errorf("failed to locate event cache: %w", err)
		}
		if !internal.CacheExists(path) {
			return fmt.Errorf("no event cache at %s - use --cache to point at one", path)
		}

		db, err := internal.OpenDatabase(path)
		if err != nil {
			return fmt.Errorf("failed to open event cache: %w", err)
		}
		defer func() { _ = db.Close() }()

		summaries, err := internal.QueryThreadSummaries(db)
		if err != nil {
			return fmt.Errorf("failed to list threads: %w", err)
		}

		displayThreadSummaries(summaries)
		return nil
	},
}

func displayThreadSummaries(summaries []internal.ThreadSummary) {
	if len(summaries) == 0 {
		fmt.Println(headerStyle.Render("📋 No threads found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("📋 Found %d thread(s)", len(summaries)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("Thread")+"\t"+titleStyle.Render("Events")+"\t"+titleStyle.Render("First")+"\t"+titleStyle.Render("Last")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, s := range summaries {
		id := idStyle.Render(shortID(s.ThreadID))
		count := countStyle.Render(strconv.Itoa(s.EventCount))

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			id, count, formatWhen(s.FirstAt), formatWhen(s.LastAt))
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("💡 Tip: Use the full thread id (e.g., ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(summaries[0].ThreadID) +
		idStyle.Render(") with `threadloom replay <id>`"))
}

// formatWhen renders a unix timestamp relative to now, the way chat
// clients date their listings
func formatWhen(ts int64) string {
	if ts <= 0 {
		return dateStyle.Render("—")
	}

	t := time.Unix(ts, 0)
	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return dateStyle.Render(t.Format("Today 15:04"))
	case diff < 7*24*time.Hour:
		return dateStyle.Render(t.Format("Mon 15:04"))
	case diff < 365*24*time.Hour:
		return dateStyle.Render(t.Format("Jan 02 15:04"))
	default:
		return dateStyle.Render(t.Format("2006-01-02"))
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
