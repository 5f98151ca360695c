package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/threadloom/threadloom/internal"
	"github.com/threadloom/threadloom/internal/config"
)

var (
	verbose   bool
	cfgFile   string
	cachePath string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "threadloom",
	Short: "Reconstruct chat threads from unordered event streams",
	Long: `A CLI tool to reconstruct chat conversations from an eventually-consistent,
multi-source event transport.

Events arrive out of order, possibly duplicated, and a single message may be
delivered first as streaming fragments and only later in its final form.
threadloom reassembles them into stable, deduplicated threads.

Features:
  • Replay a thread's live display view from an event log or cache
  • Render the full bounded-depth reply tree
  • List threads present in the companion client's event cache
  • Export threads in multiple formats (JSONL, Markdown, YAML, JSON)
  • Follow a relay websocket and watch a thread update live
  • Inspect an event stream for duplicates and sequence gaps

Quick Start:
  threadloom list                        # List threads in the local cache
  threadloom replay <thread-id>          # Render a thread's live view
  threadloom export <thread-id> -f md    # Export as Markdown`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		internal.InitLogger(cfg.Log.Level, cfg.Log.Format)
		internal.SetVerbose(verbose)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

// resolveCache picks the event-cache path: the --cache flag wins, then
// the config file, then the THREADLOOM_CACHE env var, then detection.
func resolveCache() (string, error) {
	override := cachePath
	if override == "" && cfg != nil {
		override = cfg.Cache.Path
	}
	return internal.ResolveCachePath(override)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.threadloom.yaml)")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "", "Path to the companion client's event cache database")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
