package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/pailher/lumoterm/extract"
)

func setup(verbose bool) (Config, zerolog.Logger) {
	cfg, err := loadDefaultConfig()
	logger := newLogger(verbose || cfg.Verbose)
	if err != nil {
		logger.Debug().Err(err).Msg("config not loaded, using defaults")
	}
	return cfg, logger
}

type blocksCmd struct {
	ast     bool
	plain   bool
	pager   bool
	verbose bool
}

func (*blocksCmd) Name() string     { return "blocks" }
func (*blocksCmd) Synopsis() string { return "list fenced code blocks from a reply" }
func (*blocksCmd) Usage() string {
	return `blocks [-ast] [-plain] [-page] [file|text ...]:
  List every fenced code block in the reply, rendered for the terminal.
`
}

func (c *blocksCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ast, "ast", false, "use the nesting-aware markdown parser")
	f.BoolVar(&c.plain, "plain", false, "print raw markdown without rendering")
	f.BoolVar(&c.pager, "page", false, "view output in the pager")
	f.BoolVar(&c.verbose, "v", false, "verbose logging")
}

func (c *blocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger := setup(c.verbose)
	text, err := readResponse(f.Args())
	if err != nil {
		logger.Error().Err(err).Msg("read response")
		return subcommands.ExitFailure
	}
	blocks := extractBlocks(text, c.ast)
	logger.Debug().Int("blocks", len(blocks)).Msg("extracted")
	if len(blocks) == 0 {
		logger.Warn().Msg("no code blocks found")
		return subcommands.ExitFailure
	}
	md := blocksToMarkdown(blocks)
	if c.plain {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	out := renderMarkdown(md, cfg.Style)
	if c.pager || cfg.Pager {
		if err := page(out); err != nil {
			logger.Error().Err(err).Msg("pager")
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}

type codeCmd struct {
	lang       string
	output     string
	appendFile bool
	copy       bool
	verbose    bool
}

func (*codeCmd) Name() string     { return "code" }
func (*codeCmd) Synopsis() string { return "extract the code worth saving from a reply" }
func (*codeCmd) Usage() string {
	return `code [-lang language] [-o file] [-append] [-copy] [file|text ...]:
  Print the best code in the reply, preferring fenced blocks in the
  requested language and falling back to unfenced code.
`
}

func (c *codeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lang, "lang", "", "preferred language")
	f.StringVar(&c.output, "o", "", "save to file (extension inferred when missing)")
	f.BoolVar(&c.appendFile, "append", false, "append to the output file")
	f.BoolVar(&c.copy, "copy", false, "copy to clipboard")
	f.BoolVar(&c.verbose, "v", false, "verbose logging")
}

func (c *codeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger := setup(c.verbose)
	text, err := readResponse(f.Args())
	if err != nil {
		logger.Error().Err(err).Msg("read response")
		return subcommands.ExitFailure
	}
	lang := c.lang
	if lang == "" {
		lang = cfg.Language
	}
	code, ok := extract.CodeForFile(text, lang)
	if !ok {
		logger.Warn().Msg("no code found")
		return subcommands.ExitFailure
	}
	if c.output != "" {
		name := outputName(c.output, text, lang)
		if err := writeCode(name, code, c.appendFile); err != nil {
			logger.Error().Err(err).Msg("write file")
			return subcommands.ExitFailure
		}
		logger.Info().Str("file", name).Msg("saved")
	}
	if c.copy {
		if err := clipboard.WriteAll(code); err != nil {
			logger.Error().Err(err).Msg("clipboard")
			return subcommands.ExitFailure
		}
		logger.Info().Msg("copied to clipboard")
	}
	if c.output == "" && !c.copy {
		fmt.Println(code)
	}
	return subcommands.ExitSuccess
}

// extractBlocks runs exactly one of the two extractors: the nesting-aware
// markdown walk when ast is set, the plain scan otherwise.
func extractBlocks(text string, ast bool) []extract.CodeBlock {
	if ast {
		return extract.ExtractCodeBlocksAST(text)
	}
	return extract.ExtractCodeBlocks(text)
}

// chosenLanguage reports the language of the block code extraction would
// pick, so saved files get a sensible extension.
func chosenLanguage(text, preferred string) string {
	blocks := extract.ExtractCodeBlocks(text)
	if preferred != "" {
		want := strings.ToLower(preferred)
		for _, b := range blocks {
			if b.Language == want {
				return b.Language
			}
		}
	}
	if len(blocks) > 0 && blocks[0].Language != "" {
		return blocks[0].Language
	}
	return preferred
}

func outputName(output, text, lang string) string {
	if filepath.Ext(output) != "" {
		return output
	}
	return output + extract.FileExtension(chosenLanguage(text, lang))
}

func writeCode(path, code string, appendFile bool) error {
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	if appendFile {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = f.WriteString(code)
		return err
	}
	return os.WriteFile(path, []byte(code), 0644)
}

type jsonCmd struct {
	verbose bool
}

func (*jsonCmd) Name() string     { return "json" }
func (*jsonCmd) Synopsis() string { return "extract a JSON payload from a reply" }
func (*jsonCmd) Usage() string {
	return `json [file|text ...]:
  Print the first JSON value found in the reply, pretty-printed.
`
}

func (c *jsonCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.verbose, "v", false, "verbose logging")
}

func (c *jsonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, logger := setup(c.verbose)
	text, err := readResponse(f.Args())
	if err != nil {
		logger.Error().Err(err).Msg("read response")
		return subcommands.ExitFailure
	}
	v, ok := extract.ExtractJSON(text)
	if !ok {
		logger.Warn().Msg("no JSON found")
		return subcommands.ExitFailure
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("encode")
		return subcommands.ExitFailure
	}
	fmt.Println(string(b))
	return subcommands.ExitSuccess
}

type cleanCmd struct {
	all     bool
	verbose bool
}

func (*cleanCmd) Name() string     { return "clean" }
func (*cleanCmd) Synopsis() string { return "strip conversational wrapper text from a reply" }
func (*cleanCmd) Usage() string {
	return `clean [-all] [file|text ...]:
  Print the substantive content of the reply: fenced code when present,
  otherwise the text with boilerplate intros and outros removed.
`
}

func (c *cleanCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "concatenate every code block")
	f.BoolVar(&c.verbose, "v", false, "verbose logging")
}

func (c *cleanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, logger := setup(c.verbose)
	text, err := readResponse(f.Args())
	if err != nil {
		logger.Error().Err(err).Msg("read response")
		return subcommands.ExitFailure
	}
	fmt.Println(extract.StripConversational(text, c.all))
	return subcommands.ExitSuccess
}

type checkCmd struct {
	lang    string
	verbose bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate extracted code syntax" }
func (*checkCmd) Usage() string {
	return `check -lang python|bash [file|text ...]:
  Check whether the reply's code parses. Python gets a real parse, shell a
  heuristic one.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lang, "lang", "python", "language to validate (python or bash)")
	f.BoolVar(&c.verbose, "v", false, "verbose logging")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, logger := setup(c.verbose)
	text, err := readResponse(f.Args())
	if err != nil {
		logger.Error().Err(err).Msg("read response")
		return subcommands.ExitFailure
	}
	code := text
	if block, ok := extract.FirstCodeBlock(text); ok {
		code = block.Code
	}
	var valid bool
	switch strings.ToLower(c.lang) {
	case "python", "py":
		valid = extract.IsValidPython(code)
	case "bash", "sh", "shell":
		valid = extract.IsValidShell(code)
	default:
		logger.Error().Str("lang", c.lang).Msg("unsupported language")
		return subcommands.ExitUsageError
	}
	if !valid {
		fmt.Println("invalid")
		return subcommands.ExitFailure
	}
	fmt.Println("valid")
	return subcommands.ExitSuccess
}
