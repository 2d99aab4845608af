package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cardapio-cli/internal/docs"
)

func newDocsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     "Built-in documentation",
		ValidArgs: docs.Topics(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "Topics:")
				for _, t := range docs.Topics() {
					fmt.Fprintf(out, "  %s\n", t)
				}
				fmt.Fprintln(out, "\nRead one with `cardapio docs <topic>`.")
				return nil
			}

			body, ok := docs.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q (see `cardapio docs`)", args[0])
			}
			fmt.Fprintln(out, renderDocMarkdown(body))
			return nil
		},
	}
}

// renderDocMarkdown pretty-prints a topic when stdout is a terminal and
// falls back to the raw markdown otherwise (pipes, redirects).
func renderDocMarkdown(body string) string {
	if !term.IsTerminal(1) {
		return strings.TrimRight(body, "\n")
	}
	width, _, err := term.GetSize(1)
	if err != nil || width <= 0 {
		width = 80
	}
	if width > 100 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("auto"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return strings.TrimRight(body, "\n")
	}
	rendered, err := r.Render(body)
	if err != nil {
		return strings.TrimRight(body, "\n")
	}
	return strings.TrimRight(rendered, "\n")
}
