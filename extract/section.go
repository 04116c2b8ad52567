package extract

import (
	"regexp"
	"strings"
)

// nonCodeSentinel matches explanatory prose that ends an unfenced code
// region: "Note:", list markers, "This will ...", question openers and the
// like. Only consulted after at least one blank line inside the region.
var nonCodeSentinel = regexp.MustCompile(`(?i)^(?:` + strings.Join([]string{
	`what\s+(?:changed|this|the)`,
	`(?:note|notes|explanation|output|result|example|usage|issue|bug|warning|tip|important):?\s*$`,
	`(?:here|this|the|it|that)\s+(?:is|are|will|should|would|can|could|may|might)`,
	`-\s+[A-Z]`,
	`\d+\.\s+[A-Z]`,
	`(?:now|next|then|finally|also|and|or|but|however|therefore)\s+`,
	`(?:you|we|i|they|he|she|it)\s+(?:can|could|should|will|would|may|might|must)`,
	`(?:how|why|what|when|where|which)\s+(?:it|this|the|to)\s+`,
	`(?:save|copy|run|execute|compile|install|download|open|click)\s+(?:this|the|it|to)`,
}, `|`) + `)`)

// newStatement matches an identifier being assigned, called, or opened as a
// block, the narrow "another statement in the same language" signal.
var newStatement = regexp.MustCompile(`^[a-zA-Z_]\w*\s*[=({\[]`)

// Self-contained one-line constructs worth keeping on their own.
var (
	oneLineShellFunc = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*\s*\(\)\s*\{.*\}`)
	oneLineCmdlet    = regexp.MustCompile(`(?i)^(?:Get|Set|New|Remove|Invoke)-\w+`)
)

// ExtractCodeSection recovers one code region from text that has no code
// fences. It walks lines looking for a start-of-code signal, then keeps
// lines while they read as continuations, and stops on explanatory prose
// after a blank line, three consecutive blanks, or a switch to a different
// language. Regions shorter than two lines are dropped unless the single
// line is self-contained (a one-line shell function, a pipeline, or a
// command-style invocation).
func ExtractCodeSection(s string) (string, bool) {
	var code []string
	inCode := false
	lang := ""
	blanks := 0

	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inCode {
			if name, ok := DetectLanguage(trimmed); ok {
				inCode = true
				lang = name
				code = append(code, line)
				blanks = 0
			}
			continue
		}

		if blanks > 0 && nonCodeSentinel.MatchString(trimmed) {
			break
		}

		if trimmed == "" {
			blanks++
			if blanks >= 3 {
				break
			}
			code = append(code, line)
			continue
		}

		if IsContinuation(line, lang) {
			code = append(code, line)
			blanks = 0
			continue
		}

		if name, ok := DetectLanguage(trimmed); ok && name != lang {
			// A different language mid-region means a new section, not
			// more code.
			break
		}
		if newStatement.MatchString(trimmed) {
			code = append(code, line)
			blanks = 0
			continue
		}
		break
	}

	for len(code) > 0 && strings.TrimSpace(code[len(code)-1]) == "" {
		code = code[:len(code)-1]
	}

	if len(code) >= 2 {
		return strings.Join(code, "\n"), true
	}
	if len(code) == 1 {
		line := strings.TrimSpace(code[0])
		switch {
		case oneLineShellFunc.MatchString(line),
			strings.Contains(line, "|"),
			strings.Contains(line, "&&"),
			strings.Contains(line, "$("),
			strings.Contains(line, ";"),
			oneLineCmdlet.MatchString(line):
			return line, true
		}
	}
	return "", false
}
