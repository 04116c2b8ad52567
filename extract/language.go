package extract

import (
	"regexp"
	"strings"
)

// language declares the detection patterns for one language. Start patterns
// fire on the first line of a code region, continuation patterns on lines
// that plausibly extend one. Slice order below is the matching precedence:
// the first language whose start pattern hits a line wins, so python must
// stay ahead of java or a bare "class Foo:" would be misread.
type language struct {
	name         string
	insensitive  bool
	start        []string
	continuation []string
}

var languages = []language{
	{
		name: "python",
		start: []string{
			`^def\s+\w+\s*\(`,
			`^async\s+def\s+\w+\s*\(`,
			`^class\s+\w+[\s:(]`,
			`^(?:import|from)\s+\w+`,
			`^@\w+\s*(?:\(|$)`,
			`^#!.*python`,
		},
		continuation: []string{
			`^(?:def|class|import|from|if|elif|else|for|while|try|except|finally|with|return|yield|raise|assert|pass|break|continue|lambda)\s`,
			`^(?:print|input|open|len|range|enumerate|zip|map|filter|sorted|list|dict|set|tuple)\s*\(`,
			`^#(?:[^!]|$)`, // comments, but not shebangs
			`^@\w+\s*(?:\(|$)`,
		},
	},
	{
		name: "bash",
		start: []string{
			`^[a-zA-Z_][a-zA-Z0-9_]*\s*\(\)\s*\{`,
			`^function\s+[a-zA-Z_]`,
			`^#!.*(?:bash|sh|zsh)`,
			`^(?:if|for|while|case|select)\s+.*;\s*(?:then|do)`,
		},
		continuation: []string{
			`^(?:if|then|else|elif|fi|for|do|done|while|until|case|esac|function)\b`,
			`^(?:echo|printf|read|cd|ls|cat|grep|awk|sed|chmod|mkdir|rm|cp|mv|find|xargs)\b`,
			`^\w+\s*=`,
			`^(?:\||&&)`,
			`^\$(?:\(|\{|\w)`,
			`^#`,
		},
	},
	{
		name:        "powershell",
		insensitive: true,
		start: []string{
			`^function\s+[A-Za-z]`,
			`^(?:Get|Set|New|Remove|Add|Clear|Import|Export|Invoke|Start|Stop|Write|Read)-[A-Za-z]`,
			`^\$\w+\s*=`,
			`^#!.*pwsh`,
			`^param\s*\(`,
		},
		continuation: []string{
			`^(?:function|if|else|elseif|switch|for|foreach|while|do|try|catch|finally|return|throw|param)\b`,
			`^(?:Get|Set|New|Remove|Add|Clear|Import|Export|Invoke|Start|Stop|Write|Read)-`,
			`^\$\w+`,
			`^#`,
			`^\|`,
		},
	},
	{
		name: "rust",
		start: []string{
			`^(?:pub\s+)?(?:fn|struct|enum|impl|trait|mod|type|const|static|use)\s`,
			`^#!\[`,
			`^#\[`,
		},
		continuation: []string{
			`^(?:pub\s+)?(?:fn|struct|enum|impl|trait|mod|type|const|static|use|let|mut|if|else|match|for|while|loop|return|break|continue)\b`,
			`^(?:println!|print!|format!|vec!|panic!|assert!)`,
			`^//`,
			`^#\[`,
		},
	},
	{
		name:        "batch",
		insensitive: true,
		start: []string{
			`^@echo\s+(?:off|on)`,
			`^rem\s`,
			`^set\s+\w+=`,
			`^::\s`,
		},
		continuation: []string{
			`^(?:echo|set|if|else|for|goto|call|exit|pause|rem|setlocal|endlocal|pushd|popd)\b`,
			`^:\w+`,
			`^@`,
			`^::\s`,
			`^%\w+%`,
		},
	},
	{
		name: "javascript",
		start: []string{
			`^(?:const|let|var|function|class|import|export)\s`,
			`^(?:async\s+)?function\s*\*?\s*\w*\s*\(`,
			`^#!.*node`,
			`^\(\s*\)\s*=>\s*\{`,
		},
		continuation: []string{
			`^(?:const|let|var|function|class|import|export|if|else|for|while|do|switch|try|catch|finally|return|throw|new|async|await)\b`,
			`^(?:console|document|window|require|module)\.`,
			`^//`,
			`^=>`,
		},
	},
	{
		name: "typescript",
		start: []string{
			`^(?:const|let|var|function|class|import|export|interface|type|enum|namespace)\s`,
			`^(?:async\s+)?function\s*\*?\s*\w*\s*[<(]`,
		},
		continuation: []string{
			`^(?:const|let|var|function|class|import|export|interface|type|enum|namespace|if|else|for|while|return|async|await)\b`,
			`^\w+\s*[?:]`,
			`^:\s*(?:string|number|boolean|any|void|never|unknown|object|null)\b`,
			`^//`,
			`^[{};\[\]]\s*$`,
		},
	},
	{
		name: "go",
		start: []string{
			`^package\s+\w+`,
			`^func\s+(?:\(\w+\s+\*?\w+\)\s*)?\w+\s*\(`,
			`^import\s+[("]`,
			`^type\s+\w+\s+(?:struct|interface)`,
		},
		continuation: []string{
			`^(?:package|import|func|type|struct|interface|var|const|if|else|for|range|switch|case|return|go|defer|chan|select)\b`,
			`^(?:fmt|log|os|io|net|http|strings|strconv)\.`,
			`^//`,
		},
	},
	{
		name: "ruby",
		start: []string{
			`^(?:def|class|module)\s+\w+`,
			`^require\s+['"]`,
			`^#!.*ruby`,
		},
		continuation: []string{
			`^(?:def|class|module|if|elsif|else|unless|case|when|while|until|for|begin|rescue|ensure|end|return|yield|do|require|include|extend)\b`,
			`^(?:puts|print|gets|p)\s`,
			`^#`,
		},
	},
	{
		name: "c",
		start: []string{
			`^#include\s*[<"]`,
			`^(?:int|void|char|float|double|long|short|unsigned|signed|struct|enum|typedef)\s+\w+\s*[(\[]`,
			`^(?:int|void)\s+main\s*\(`,
		},
		continuation: []string{
			`^#(?:include|define|ifdef|ifndef|endif|pragma)`,
			`^(?:int|void|char|float|double|long|short|unsigned|signed|struct|enum|typedef|if|else|for|while|do|switch|case|return|break|continue|sizeof)\b`,
			`^//`,
			`^/\*`,
		},
	},
	{
		name: "cpp",
		start: []string{
			`^#include\s*[<"]`,
			`^(?:class|struct|namespace|template)\s+\w+`,
			`^(?:int|void)\s+main\s*\(`,
			`^using\s+(?:namespace|std)`,
		},
		continuation: []string{
			`^#(?:include|define|ifdef|ifndef|endif|pragma)`,
			`^(?:class|struct|namespace|template|public|private|protected|virtual|override|const|static|int|void|auto|if|else|for|while|return|new|delete|try|catch|throw)\b`,
			`^(?:std|cout|cin|endl|vector|string|map|set)::`,
			`^//`,
		},
	},
	{
		name: "java",
		start: []string{
			`^(?:public|private|protected)?\s*(?:static\s+)?(?:class|interface|enum)\s+\w+`,
			`^package\s+[\w.]+;`,
			`^import\s+[\w.*]+;`,
		},
		continuation: []string{
			`^(?:public|private|protected|static|final|abstract|class|interface|enum|extends|implements|new|return|if|else|for|while|do|switch|try|catch|finally|throw|throws|void|int|long|double|float|boolean|char|String)\b`,
			`^(?:System|String|Integer|List|Map|Set|ArrayList|HashMap)\.`,
			`^//`,
			`^@\w+`,
		},
	},
	{
		name:        "sql",
		insensitive: true,
		start: []string{
			`^(?:SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP|GRANT|REVOKE)\s`,
			`^--\s`,
			`^WITH\s+\w+\s+AS`,
		},
		continuation: []string{
			`^(?:SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP|FROM|WHERE|JOIN|LEFT|RIGHT|INNER|OUTER|ON|AND|OR|NOT|IN|EXISTS|GROUP|ORDER|BY|HAVING|LIMIT|OFFSET|AS|SET|VALUES|INTO|TABLE|INDEX|VIEW|GRANT|REVOKE|UNION|DISTINCT)\b`,
			`^--`,
		},
	},
	{
		name: "yaml",
		start: []string{
			`^---\s*$`,
			`^\w+:\s+['"\d\[{]`,
			`^\w+:\s*$`,
		},
		continuation: []string{
			`^-\s+`,
			`^\w+:\s`,
			`^#`,
		},
	},
	{
		name: "dockerfile",
		start: []string{
			`^FROM\s+\w+`,
			`^#\s*syntax\s*=`,
		},
		continuation: []string{
			`^(?:FROM|RUN|CMD|LABEL|EXPOSE|ENV|ADD|COPY|ENTRYPOINT|VOLUME|USER|WORKDIR|ARG|ONBUILD|STOPSIGNAL|HEALTHCHECK|SHELL)\s`,
			`^#`,
		},
	},
}

type compiledLanguage struct {
	name         string
	start        []*regexp.Regexp
	continuation []*regexp.Regexp
	// anywhere holds the start patterns recompiled to match any line of a
	// multi-line string, case-insensitively. Used by LooksLikeCode.
	anywhere []*regexp.Regexp
}

var compiledLanguages = compileLanguages(languages)

func compileLanguages(langs []language) []compiledLanguage {
	out := make([]compiledLanguage, 0, len(langs))
	for _, l := range langs {
		prefix := ""
		if l.insensitive {
			prefix = "(?i)"
		}
		c := compiledLanguage{name: l.name}
		for _, p := range l.start {
			c.start = append(c.start, regexp.MustCompile(prefix+p))
			c.anywhere = append(c.anywhere, regexp.MustCompile("(?im)"+p))
		}
		for _, p := range l.continuation {
			c.continuation = append(c.continuation, regexp.MustCompile(prefix+p))
		}
		out = append(out, c)
	}
	return out
}

// genericContinuation matches lines that read as code in most languages:
// bare brackets, an identifier being assigned or called, a comment marker,
// or a trailing brace/semicolon.
var genericContinuation = []*regexp.Regexp{
	regexp.MustCompile(`^[{}()\[\]];?\s*$`),
	regexp.MustCompile(`^\w+\s*[=(]`),
	regexp.MustCompile(`^(?://|#|--|/\*|\*)`),
	regexp.MustCompile(`[{};]\s*$`),
}

// DetectLanguage reports which language the line starts a code region in.
// Languages are tried in declaration order and the first start-pattern hit
// wins, so precedence between ambiguous grammars is fixed, not accidental.
func DetectLanguage(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	for _, lang := range compiledLanguages {
		for _, re := range lang.start {
			if re.MatchString(trimmed) {
				return lang.name, true
			}
		}
	}
	return "", false
}

// IsContinuation reports whether line plausibly extends a code region in the
// given language. Blank and indented lines always continue. With an empty
// language only the generic signals apply.
func IsContinuation(line, lang string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if line[0] == ' ' || line[0] == '\t' {
		return true
	}
	if lang != "" {
		for _, cl := range compiledLanguages {
			if cl.name != lang {
				continue
			}
			for _, re := range cl.continuation {
				if re.MatchString(trimmed) {
					return true
				}
			}
			break
		}
	}
	for _, re := range genericContinuation {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}
