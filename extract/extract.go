// Package extract recovers structured content from AI assistant replies:
// fenced code blocks, inferred code regions without fences, JSON payloads,
// and answer text with the conversational wrapper stripped.
//
// Every function is a pure function of its input; the only shared state is
// the pattern tables, compiled once at init and never mutated, so the
// package is safe for concurrent use. Malformed input degrades to "nothing
// found" rather than an error.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock is one fenced code region. Language is lowercase and empty when
// the fence carried no tag. Code is the fenced text with leading and
// trailing blank lines trimmed; interior blank lines survive verbatim.
type CodeBlock struct {
	Language string
	Code     string
}

// codeFence matches an opening fence at the start of a line, its optional
// tag (no space between the backticks and the tag), and lazily up to the
// next closing run of backticks. A fence inside a fence therefore closes
// the outer block early; that mirrors the behavior extraction always had
// and callers depend on, so it stays.
var codeFence = regexp.MustCompile("(?ms)^```(\\w*)\\n(.*?)```")

// ExtractCodeBlocks returns every complete fenced code block in text, in
// source order. An opening fence with no close yields nothing.
func ExtractCodeBlocks(s string) []CodeBlock {
	var blocks []CodeBlock
	for _, m := range codeFence.FindAllStringSubmatch(s, -1) {
		blocks = append(blocks, CodeBlock{
			Language: strings.ToLower(m[1]),
			Code:     trimBlankLines(m[2]),
		})
	}
	return blocks
}

// FirstCodeBlock returns the first fenced code block, if any.
func FirstCodeBlock(s string) (CodeBlock, bool) {
	blocks := ExtractCodeBlocks(s)
	if len(blocks) == 0 {
		return CodeBlock{}, false
	}
	return blocks[0], true
}

// ExtractCodeBlocksAST is the nesting-aware alternative to
// ExtractCodeBlocks. It walks the markdown AST, so a fence quoted inside
// another fence stays part of the outer block instead of closing it. The
// two can disagree on malformed input; the regexp scan remains the default.
func ExtractCodeBlocksAST(s string) []CodeBlock {
	src := []byte(s)
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	var blocks []CodeBlock
	queue := []ast.Node{root}
	for len(queue) != 0 {
		current := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if current == nil {
			continue
		}
		if current.Kind() == ast.KindFencedCodeBlock {
			block := current.(*ast.FencedCodeBlock)
			blocks = append(blocks, CodeBlock{
				Language: strings.ToLower(string(block.Language(src))),
				Code:     trimBlankLines(string(block.Lines().Value(src))),
			})
		}
		queue = append(queue, current.NextSibling(), current.FirstChild())
	}
	// The stack walk visits siblings last-pushed-first; blocks already come
	// out in source order because NextSibling is pushed before FirstChild.
	return blocks
}

func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// introPatterns and outroPatterns match the boilerplate phrasing assistants
// wrap around an answer. Applied only when the text has no fenced blocks.
var introPatterns = compileAll(
	`^(?:here(?:'s| is)|sure[,!]|okay[,!]|certainly[,!]|of course[,!]).*?:\s*\n`,
	`^(?:i(?:'ll| will)|let me).*?:\s*\n`,
	`^.*?you (?:asked|requested|wanted).*?:\s*\n`,
	`^.*?the (?:code|script|function|solution).*?:\s*\n`,
)

var outroPatterns = compileAll(
	`\n\s*(?:i hope|let me know|feel free|if you (?:have|need)).*$`,
	`\n\s*this (?:will|should|code).*?[.!]\s*$`,
	`\n\s*you can (?:run|execute|use|modify).*$`,
	`\n\s*(?:note:|note that|remember).*$`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile("(?im)" + p)
	}
	return out
}

// StripConversational reduces a reply to its substantive content. With
// fenced blocks present it returns the first block's code, or all blocks
// joined by a blank line when all is set. Otherwise it deletes the known
// intro and outro phrasings and trims. Running the result through again is
// a no-op.
func StripConversational(s string, all bool) string {
	blocks := ExtractCodeBlocks(s)
	if len(blocks) > 0 {
		if all {
			parts := make([]string, len(blocks))
			for i, b := range blocks {
				parts[i] = b.Code
			}
			return strings.Join(parts, "\n\n")
		}
		return blocks[0].Code
	}
	out := s
	for _, re := range introPatterns {
		out = re.ReplaceAllString(out, "")
	}
	for _, re := range outroPatterns {
		out = re.ReplaceAllString(out, "")
	}
	return strings.TrimSpace(out)
}

// CodeForFile picks the code most worth saving from a reply. Preference
// order: a fenced block tagged with the requested language, the first
// fenced block, an inferred unfenced code section, and finally the
// stripped text when it still reads as code.
func CodeForFile(s, lang string) (string, bool) {
	blocks := ExtractCodeBlocks(s)
	if len(blocks) > 0 {
		if lang != "" {
			want := strings.ToLower(lang)
			for _, b := range blocks {
				if b.Language == want {
					return b.Code, true
				}
			}
		}
		return blocks[0].Code, true
	}
	if section, ok := ExtractCodeSection(s); ok {
		return section, true
	}
	if stripped := StripConversational(s, false); stripped != "" && LooksLikeCode(stripped) {
		return stripped, true
	}
	return "", false
}

// jsonObject and jsonArray find a braced or bracketed span with at most one
// level of nesting. Deeper structures can slip past; the fallback is meant
// for small inline payloads, not arbitrary documents.
var (
	jsonObject = regexp.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
	jsonArray  = regexp.MustCompile(`\[[^\[\]]*(?:\[[^\[\]]*\][^\[\]]*)*\]`)
)

// ExtractJSON returns the first JSON value found in a reply. Fenced blocks
// tagged json or untagged are tried first, then the first balanced-looking
// object span, then the first array span. Unparsable candidates are
// skipped; ok is false when nothing decodes.
func ExtractJSON(s string) (any, bool) {
	for _, b := range ExtractCodeBlocks(s) {
		if b.Language != "json" && b.Language != "" {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(b.Code), &v); err == nil {
			return v, true
		}
	}
	if m := jsonObject.FindString(s); m != "" {
		var v any
		if err := json.Unmarshal([]byte(m), &v); err == nil {
			return v, true
		}
	}
	if m := jsonArray.FindString(s); m != "" {
		var v any
		if err := json.Unmarshal([]byte(m), &v); err == nil {
			return v, true
		}
	}
	return nil, false
}
