package extract

import (
	"regexp"
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// IsValidPython reports whether code parses as Python source. The check
// runs a real parser, so false means a genuine syntax error for the
// grammar it understands; input the parser cannot handle at all also
// reports false.
func IsValidPython(code string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_, err := parser.ParseString(code, py.ExecMode)
	return err == nil
}

var shellIdioms = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*#`),
	regexp.MustCompile(`(?m)^\s*\w+=`),
	regexp.MustCompile(`(?m)^\s*(?:if|then|else|fi|for|do|done|while|case|esac)\b`),
	regexp.MustCompile(`(?m)^\s*(?:echo|cd|ls|cat|grep|awk|sed|chmod|mkdir|rm|cp|mv)\b`),
	regexp.MustCompile(`\|`),
	regexp.MustCompile(`&&|\|\|`),
	regexp.MustCompile(`\$\w+|\$\{`),
}

// IsValidShell is a heuristic sanity check for shell code, not a parser:
// unescaped quotes must pair up and at least one recognizable shell idiom
// must appear. It can accept broken scripts and reject valid ones.
func IsValidShell(code string) bool {
	singles := strings.Count(code, `'`) - strings.Count(code, `\'`)
	doubles := strings.Count(code, `"`) - strings.Count(code, `\"`)
	if singles%2 != 0 || doubles%2 != 0 {
		return false
	}
	for _, re := range shellIdioms {
		if re.MatchString(code) {
			return true
		}
	}
	return false
}

var genericCodeSignals = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#!`),
	regexp.MustCompile(`(?m)[{};]\s*$`),
	regexp.MustCompile(`(?m)^\s*\w+\s*\([^)]*\)\s*[{:]`),
	regexp.MustCompile(`=\s*(?:function|\(.*?\)\s*=>)`),
}

// LooksLikeCode reports whether any line of text resembles code: a start
// pattern of any known language, or a generic signal such as a shebang, a
// trailing brace or semicolon, or an arrow function.
func LooksLikeCode(s string) bool {
	for _, lang := range compiledLanguages {
		for _, re := range lang.anywhere {
			if re.MatchString(s) {
				return true
			}
		}
	}
	for _, re := range genericCodeSignals {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

var extensions = map[string]string{
	"python":     ".py",
	"py":         ".py",
	"javascript": ".js",
	"js":         ".js",
	"typescript": ".ts",
	"ts":         ".ts",
	"bash":       ".sh",
	"sh":         ".sh",
	"shell":      ".sh",
	"zsh":        ".zsh",
	"powershell": ".ps1",
	"batch":      ".bat",
	"ruby":       ".rb",
	"rb":         ".rb",
	"rust":       ".rs",
	"go":         ".go",
	"java":       ".java",
	"c":          ".c",
	"cpp":        ".cpp",
	"c++":        ".cpp",
	"csharp":     ".cs",
	"cs":         ".cs",
	"php":        ".php",
	"sql":        ".sql",
	"dockerfile": ".dockerfile",
	"json":       ".json",
	"yaml":       ".yaml",
	"yml":        ".yml",
	"toml":       ".toml",
	"xml":        ".xml",
	"html":       ".html",
	"css":        ".css",
	"markdown":   ".md",
	"md":         ".md",
}

// FileExtension returns the file extension (dot included) for a language
// tag or alias, and ".txt" for anything unknown.
func FileExtension(lang string) string {
	if ext, ok := extensions[strings.ToLower(lang)]; ok {
		return ext
	}
	return ".txt"
}
