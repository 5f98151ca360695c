package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/threadloom/threadloom/internal"
)

var (
	liveRelay string
	liveLog   string
)

// liveCmd represents the live command
var liveCmd = &cobra.Command{
	Use:   "live <thread-id>",
	Short: "Follow a thread over a relay websocket",
	Long: `Connect to a relay, subscribe to a thread, and re-render the live
display view as events arrive. There is no automatic reconnection: when
the relay drops the connection the command exits after printing the
final state. Press Ctrl-C to stop.

With --log, the log's events are merged into the feed alongside the live
subscription, seeding the view with the thread's backlog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threadID := args[0]

		relay := liveRelay
		if relay == "" {
			relay = cfg.Relay.URL
		}
		if relay == "" {
			return fmt.Errorf("no relay URL - use --relay or set relay.url in config")
		}

		source, err := internal.DialLiveSource(relay, threadID)
		if err != nil {
			return fmt.Errorf("failed to connect to relay: %w", err)
		}
		internal.LogInfo("Subscribed to %s as %s", threadID, source.SubID)

		feed := internal.NewFeed(internal.NewThreadState(threadID))

		sources := []<-chan *internal.Event{source.Events()}
		if liveLog != "" {
			backlog, err := internal.StreamEventLog(liveLog)
			if err != nil {
				_ = source.Close()
				return fmt.Errorf("failed to read event log: %w", err)
			}
			sources = append(sources, backlog)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			feed.Run(internal.MergeEvents(sources...))
		}()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		rendered := 0
		for {
			select {
			case <-ticker.C:
				if applied := feed.Applied(); applied != rendered {
					rendered = applied
					renderDisplay(threadID, feed.Display(), feed.TypingAuthors())
				}
			case <-interrupt:
				internal.PrintInfo("Stopping...")
				_ = source.Close()
				<-done
				renderDisplay(threadID, feed.Display(), feed.TypingAuthors())
				return nil
			case <-done:
				internal.PrintWarning("Relay connection closed")
				renderDisplay(threadID, feed.Display(), feed.TypingAuthors())
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(liveCmd)
	liveCmd.Flags().StringVar(&liveRelay, "relay", "", "Relay websocket URL (e.g. ws://relay.example.com/ws)")
	liveCmd.Flags().StringVar(&liveLog, "log", "", "Merge a JSONL event log backlog into the live feed")
}
