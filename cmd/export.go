package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/threadloom/threadloom/internal"
	"github.com/threadloom/threadloom/internal/export"
)

var (
	exportFormat string
	exportDir    string
	exportLog    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <thread-id>",
	Short: "Export a thread to file",
	Long: `Export a reconstructed thread to various formats (jsonl, md, yaml, json).

The thread is reconstructed from the event cache or a JSONL event log,
then written as one file per thread. Markdown output renders the
bounded-depth reply tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threadID := args[0]

		format := exportFormat
		if format == "" {
			format = cfg.Export.Format
		}
		dir := exportDir
		if dir == "" {
			dir = cfg.Export.Dir
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		events, err := loadThreadEvents(threadID, exportLog)
		if err != nil {
			return err
		}

		state := internal.NewThreadState(threadID)
		var thread *internal.Thread
		err = internal.ShowProgress(context.Background(),
			fmt.Sprintf("Reconstructing thread %s", shortID(threadID)),
			func() error {
				for _, ev := range events {
					state.ProcessEvent(ev)
				}
				thread = state.Snapshot()
				return nil
			})
		if err != nil {
			return err
		}

		if thread.Metadata.MessageCount == 0 {
			internal.PrintWarning(fmt.Sprintf("Thread %s has no finalized messages", threadID))
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		outPath := filepath.Join(dir, fmt.Sprintf("%s.%s", threadID, exporter.Extension()))
		f, err := os.Create(outPath)
		if err != nil {
			return &internal.ExportError{Format: format, Path: outPath, Err: err}
		}
		defer func() { _ = f.Close() }()

		if err := exporter.Export(thread, f); err != nil {
			return &internal.ExportError{Format: format, Path: outPath, Err: err}
		}

		internal.PrintSuccess(fmt.Sprintf("Exported %d message(s) to %s",
			thread.Metadata.MessageCount, outPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: jsonl, md, yaml, json (default from config)")
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "", "Output directory (default from config)")
	exportCmd.Flags().StringVar(&exportLog, "log", "", "Export from a JSONL event log instead of the cache")
}
