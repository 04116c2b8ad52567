package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

type InputType uint

const (
	FileType InputType = iota
	TermType
)

func getType(input string) InputType {
	if files, err := filepath.Glob(input); err == nil {
		for _, file := range files {
			if _, err := os.Stat(file); err == nil {
				return FileType
			}
		}
	}
	return TermType
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// readFilePattern concatenates the files matching pattern. Saved chat pages
// in HTML are converted to markdown so the extractors see fences rather
// than <pre> soup.
func readFilePattern(pattern string) (string, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	content := make([]string, len(files))
	for i, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		text := string(b)
		if isHTML(file) {
			md, err := htmltomarkdown.ConvertString(text)
			if err != nil {
				return "", fmt.Errorf("convert %s: %w", file, err)
			}
			text = md
		}
		content[i] = text
	}
	return strings.Join(content, "\n"), nil
}

func piped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

func promptForResponse() (string, error) {
	var response string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("response").Value(&response).Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("response not provided")
				}
				return nil
			}),
		),
	)
	if err := form.WithWidth(getTerminalWidth()).Run(); err != nil {
		return "", err
	}
	return response, nil
}

// readResponse assembles the reply text to extract from: file arguments
// (globs allowed), literal text, piped stdin, or an interactive prompt when
// nothing else is available.
func readResponse(args []string) (string, error) {
	if len(args) == 0 {
		if piped() {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return "", err
			}
			return string(b), nil
		}
		return promptForResponse()
	}
	var content strings.Builder
	for _, arg := range args {
		switch getType(arg) {
		case FileType:
			text, err := readFilePattern(arg)
			if err != nil {
				return "", err
			}
			content.WriteString(text + "\n")
		default:
			return strings.Join(args, " "), nil
		}
	}
	return content.String(), nil
}
