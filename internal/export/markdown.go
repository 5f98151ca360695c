package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/threadloom/threadloom/internal"
)

// MarkdownExporter exports threads in Markdown format, rendering the
// bounded-depth reply tree as nested blockquote levels
type MarkdownExporter struct{}

// Export exports a thread to Markdown format
func (e *MarkdownExporter) Export(thread *internal.Thread, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Thread %s\n\n", thread.RootID)
	_, _ = fmt.Fprintf(w, "**Messages:** %d  \n", thread.Metadata.MessageCount)
	_, _ = fmt.Fprintf(w, "**Authors:** %d\n\n", thread.Metadata.AuthorCount)

	if thread.Metadata.FirstActivity != "" {
		_, _ = fmt.Fprintf(w, "**First activity:** %s  \n", thread.Metadata.FirstActivity)
		_, _ = fmt.Fprintf(w, "**Last activity:** %s\n\n", thread.Metadata.LastActivity)
	}

	_, _ = fmt.Fprintf(w, "---\n\n")

	for _, node := range internal.BuildTree(thread.Messages) {
		writeNode(w, node, 0)
	}

	return nil
}

// writeNode writes one tree node at the given quote depth
func writeNode(w io.Writer, node *internal.ThreadNode, depth int) {
	prefix := strings.Repeat("> ", depth)
	msg := node.Message

	header := fmt.Sprintf("**%s**", msg.Author)
	if ts := msg.GetCreatedAt(); !ts.IsZero() {
		header += fmt.Sprintf(" (%s)", ts.UTC().Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintf(w, "%s%s\n%s\n", prefix, header, prefix)

	content := escapeMarkdown(msg.Content)
	for _, line := range strings.Split(content, "\n") {
		_, _ = fmt.Fprintf(w, "%s%s\n", prefix, line)
	}
	_, _ = fmt.Fprintln(w)

	for _, child := range node.Children {
		writeNode(w, child, depth+1)
	}
}

// escapeMarkdown escapes markdown special characters outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
