package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glow/v2/ui"
	"golang.org/x/term"

	"github.com/pailher/lumoterm/extract"
)

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80 // Fallback width
	}
	return max(width-20, 80)
}

func renderMarkdown(s, style string) string {
	if style == "" {
		style = "dark"
	}
	if md, err := glamour.Render(s, style); err == nil {
		return md
	}
	return s
}

func page(content string) error {
	_, err := ui.NewProgram(ui.Config{ShowLineNumbers: true}, content).Run()
	return err
}

// blocksToMarkdown reassembles extracted blocks into minimal markdown, fit
// for rendering or piping onward.
func blocksToMarkdown(blocks []extract.CodeBlock) string {
	var md strings.Builder
	for _, b := range blocks {
		md.WriteString("```" + b.Language + "\n")
		md.WriteString(b.Code + "\n")
		md.WriteString("```\n")
	}
	return md.String()
}
