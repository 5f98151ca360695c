package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/threadloom/threadloom/internal"
)

var (
	treeLog string
)

var (
	treeAuthorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	treeBranchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	treeTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree <thread-id>",
	Short: "Render a thread's full reply tree",
	Long: `Render the complete reply tree of a thread with bounded nesting.

Replies nest up to a fixed depth; deeper descendants are attached flat,
in chronological order, under the node at the depth limit. Orphaned
replies whose parent is missing appear at the root level.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threadID := args[0]

		events, err := loadThreadEvents(threadID, treeLog)
		if err != nil {
			return err
		}

		state := internal.NewThreadState(threadID)
		for _, ev := range events {
			state.ProcessEvent(ev)
		}

		nodes := internal.BuildTree(state.Messages())
		if len(nodes) == 0 {
			fmt.Println("No messages in thread", threadID)
			return nil
		}

		fmt.Println(threadHeaderStyle.Render(fmt.Sprintf("🧵 Thread %s (%d messages)",
			shortID(threadID), internal.CountNodes(nodes))))
		for _, node := range nodes {
			printNode(node, 0)
		}
		return nil
	},
}

// printNode prints a node and its children, indented by depth
func printNode(node *internal.ThreadNode, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += treeBranchStyle.Render("│  ")
	}

	msg := node.Message
	line := indent + treeBranchStyle.Render("├─ ") + treeAuthorStyle.Render(msg.Author)
	if ts := msg.GetCreatedAt(); !ts.IsZero() {
		line += " " + treeTimeStyle.Render(ts.Format("15:04:05"))
	}
	fmt.Println(line)
	fmt.Println(indent + treeBranchStyle.Render("│  ") + firstLine(msg.Content))

	for _, child := range node.Children {
		printNode(child, depth+1)
	}
}

// firstLine truncates content to one display line
func firstLine(content string) string {
	for i, r := range content {
		if r == '\n' {
			return content[:i] + "…"
		}
		if i > 80 {
			return content[:i] + "…"
		}
	}
	return content
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringVar(&treeLog, "log", "", "Build the tree from a JSONL event log instead of the cache")
}
