package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/threadloom/threadloom/internal"
)

var (
	replayLog string
)

var (
	// Styles for the live display view
	threadHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	streamingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	replyBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	typingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	replayTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay <thread-id>",
	Short: "Replay a thread and render its live display view",
	Long: `Replay a thread's events from an event log or the local cache and render
the flat, depth-limited display view: the root, its direct replies with
reply badges, in-progress streams, and typing indicators.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threadID := args[0]

		events, err := loadThreadEvents(threadID, replayLog)
		if err != nil {
			return err
		}

		state := internal.NewThreadState(threadID)
		for _, ev := range events {
			state.ProcessEvent(ev)
		}

		renderDisplay(threadID, state.DisplayMessages(), state.TypingAuthors())
		return nil
	},
}

// loadThreadEvents loads a thread's events from a JSONL log when
// logPath is set, otherwise from the event cache
func loadThreadEvents(threadID, logPath string) ([]*internal.Event, error) {
	if logPath != "" {
		events, err := internal.ReadEventLog(logPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read event log: %w", err)
		}
		return events, nil
	}

	path, err := resolveCache()
	if err != nil {
		return nil, fmt.Errorf("failed to locate event cache: %w", err)
	}
	if !internal.CacheExists(path) {
		return nil, fmt.Errorf("no event cache at %s - use --cache or --log", path)
	}

	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event cache: %w", err)
	}
	defer func() { _ = db.Close() }()

	events, err := internal.QueryThreadEvents(db, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load thread events: %w", err)
	}
	return events, nil
}

// renderDisplay prints the display list for a thread
func renderDisplay(threadID string, display []*internal.Message, typing []string) {
	fmt.Println(threadHeaderStyle.Render(fmt.Sprintf("💬 Thread %s", shortID(threadID))))

	if len(display) == 0 {
		fmt.Println(typingStyle.Render("  (no messages)"))
	}

	for _, msg := range display {
		header := authorStyle.Render(msg.Author)
		if msg.IsStreaming {
			header = streamingStyle.Render(msg.Author + " (streaming…)")
		}
		if ts := msg.GetCreatedAt(); !ts.IsZero() {
			header += " " + replayTimeStyle.Render(ts.Format("15:04:05"))
		}
		fmt.Println(header)

		content := msg.Content
		if msg.IsStreaming {
			content += "▌"
		}
		fmt.Println(contentStyle.Render(content))

		if msg.ReplyCount > 0 {
			badge := fmt.Sprintf("↳ %d repl%s from %s",
				msg.ReplyCount, plural(msg.ReplyCount, "y", "ies"),
				strings.Join(msg.ReplyAuthorIDs, ", "))
			fmt.Println(contentStyle.Render(replyBadgeStyle.Render(badge)))
		}
		fmt.Println()
	}

	for _, author := range typing {
		fmt.Println(typingStyle.Render(fmt.Sprintf("✎ %s is typing…", author)))
	}
}

// shortID truncates long ids for headings
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// plural picks a suffix by count
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayLog, "log", "", "Replay from a JSONL event log instead of the cache")
}
