package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/davrell/mdoutline/internal/config"
	"github.com/davrell/mdoutline/internal/document"
	"github.com/davrell/mdoutline/internal/outline"
	"github.com/davrell/mdoutline/internal/ui"
)

var version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "mdoutline <file>",
	Short: "Interactive Markdown heading outline",
	Long: `Browse the heading outline of a Markdown or plain-text document.

Fold and unfold sections, filter headings as you type, and jump to a
heading's source line in your editor. The outline follows the file while
you edit it elsewhere.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Print the heading outline and exit",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(printCmd)

	rootCmd.PersistentFlags().StringP("query", "q", "", "Initial filter term")
	rootCmd.PersistentFlags().String("editor", "", "Editor command used for jumps")
	rootCmd.PersistentFlags().Bool("no-watch", false, "Do not reload when the file changes")

	viper.BindPFlag("editor", rootCmd.PersistentFlags().Lookup("editor"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runOutline(cmd *cobra.Command, args []string) error {
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		config.SetWatch(false)
	}
	query, _ := cmd.Flags().GetString("query")

	src, err := document.NewFileSource(args[0])
	if err != nil {
		return err
	}

	var watcher *document.Watcher
	if config.GetWatch() {
		watcher, err = document.NewWatcher(src.Path(), config.GetDebounce())
		if err != nil {
			// Live reload is best-effort; the outline still works without it.
			fmt.Fprintf(os.Stderr, "Warning: file watching disabled: %v\n", err)
		} else {
			defer watcher.Close()
		}
	}

	return ui.Run(ui.Options{
		Source:  src,
		Watcher: watcher,
		Query:   query,
	})
}

func runPrint(cmd *cobra.Command, args []string) error {
	src, err := document.NewFileSource(args[0])
	if err != nil {
		return err
	}

	text, err := src.ReadText()
	if err != nil {
		return fmt.Errorf("outline unavailable: %w", err)
	}

	headings := outline.Extract(text)
	if len(headings) == 0 {
		fmt.Fprintln(os.Stderr, "no headings found")
		return nil
	}

	indent := config.GetIndent()
	if indent < 1 {
		indent = 2
	}
	fmt.Print(formatTree(headings, indent))
	return nil
}

// formatTree renders the outline as an indented tree with guide glyphs.
func formatTree(headings []outline.Heading, indent int) string {
	var b strings.Builder
	for i, h := range headings {
		b.WriteString(strings.Repeat(" ", (h.Level-1)*indent))

		if outline.DirectParent(headings, i) >= 0 {
			if outline.IsLastChild(headings, i) {
				b.WriteString("└─ ")
			} else {
				b.WriteString("├─ ")
			}
		}

		fmt.Fprintf(&b, "%s  (line %d)\n", h.Text, h.Line)
	}
	return b.String()
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
