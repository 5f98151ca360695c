package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/threadloom/threadloom/internal"
)

var (
	inspectLog string
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [thread-id]",
	Short: "Inspect an event stream for anomalies",
	Long: `Analyze an event stream and report totals per kind and author,
duplicate event ids, per-author delta sequence gaps, and events the
engine would ignore as unclassified.

With --log, the whole log file is analyzed and no thread id is needed.
Otherwise a thread id selects events from the local cache.

Examples:
  threadloom inspect --log events.jsonl
  threadloom inspect a1b2c3 --cache /path/to/events.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var events []*internal.Event
		var err error

		if inspectLog != "" {
			events, err = internal.ReadEventLog(inspectLog)
			if err != nil {
				return fmt.Errorf("failed to read event log: %w", err)
			}
		} else {
			if len(args) == 0 {
				return fmt.Errorf("a thread id is required unless --log is given")
			}
			events, err = loadThreadEvents(args[0], "")
			if err != nil {
				return err
			}
		}

		printStats(internal.AnalyzeEvents(events))
		return nil
	},
}

func printStats(stats *internal.StreamStats) {
	fmt.Printf("📊 %d event(s)\n\n", stats.Total)

	fmt.Println("By kind:")
	for _, kind := range stats.Kinds() {
		fmt.Printf("  %-14s %d\n", kindName(kind), stats.ByKind[kind])
	}
	fmt.Println()

	fmt.Println("By author:")
	for _, author := range stats.Authors() {
		fmt.Printf("  %-14s %d\n", author, stats.ByAuthor[author])
	}
	fmt.Println()

	if stats.Unclassified > 0 {
		internal.PrintWarning(fmt.Sprintf("%d event(s) match no classification and would be ignored", stats.Unclassified))
	}

	if len(stats.DuplicateIDs) > 0 {
		internal.PrintWarning(fmt.Sprintf("%d duplicate event id(s): %s",
			len(stats.DuplicateIDs), strings.Join(truncateAll(stats.DuplicateIDs), ", ")))
	} else {
		internal.PrintSuccess("No duplicate event ids")
	}

	if len(stats.SequenceGaps) > 0 {
		for author, gaps := range stats.SequenceGaps {
			internal.PrintWarning(fmt.Sprintf("Delta sequence gaps for %s: %v", author, gaps))
		}
	} else {
		internal.PrintSuccess("No delta sequence gaps")
	}
}

// kindName names a wire kind for the report
func kindName(kind int) string {
	switch kind {
	case internal.KindMessage:
		return "message"
	case internal.KindStreamDelta:
		return "stream-delta"
	case internal.KindTypingStart:
		return "typing-start"
	case internal.KindTypingStop:
		return "typing-stop"
	case internal.KindReaction:
		return "reaction"
	default:
		return fmt.Sprintf("kind-%d", kind)
	}
}

func truncateAll(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = shortID(id)
	}
	return out
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectLog, "log", "", "Analyze a JSONL event log instead of the cache")
}
