package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_IsValidPython(t *testing.T) {
	cases := map[string]struct {
		input string
		want  bool
	}{
		"valid function":       {input: "def f():\n  return 1", want: true},
		"valid module":         {input: "import os\n\nprint(os.getcwd())\n", want: true},
		"unbalanced paren":     {input: "def f(:\n  pass", want: false},
		"unterminated bracket": {input: "x = [1, 2", want: false},
		"not python at all":    {input: "func main() {}", want: false},
		"empty":                {input: "", want: true},
	}
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, IsValidPython(tc.input))
		})
	}
}

func Test_IsValidShell(t *testing.T) {
	cases := map[string]struct {
		input string
		want  bool
	}{
		"pipeline":              {input: "ps aux | grep chrome", want: true},
		"assignment":            {input: "NAME=world\necho \"hello $NAME\"", want: true},
		"keywords":              {input: "if [ -f x ]; then\n  cat x\nfi", want: true},
		"unbalanced double":     {input: "echo \"hello", want: false},
		"unbalanced single":     {input: "echo 'hello", want: false},
		"escaped quote balance": {input: `echo "she said \"hi\""`, want: true},
		"no shell idiom":        {input: "just words", want: false},
	}
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, IsValidShell(tc.input))
		})
	}
}

func Test_LooksLikeCode(t *testing.T) {
	cases := map[string]struct {
		input string
		want  bool
	}{
		"shebang":            {input: "#!/bin/sh\nmkdir -p /tmp/x", want: true},
		"language start":     {input: "some text\ndef f():\n    pass", want: true},
		"trailing semicolon": {input: "window.alert(msg);", want: true},
		"arrow function":     {input: "add = (a, b) => a + b", want: true},
		"plain prose":        {input: "A quiet afternoon, nothing worth mentioning.", want: false},
	}
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, LooksLikeCode(tc.input))
		})
	}
}

func Test_FileExtension(t *testing.T) {
	cases := map[string]struct {
		input string
		want  string
	}{
		"python":       {input: "python", want: ".py"},
		"alias":        {input: "js", want: ".js"},
		"mixed case":   {input: "Python", want: ".py"},
		"cpp symbol":   {input: "C++", want: ".cpp"},
		"shell family": {input: "zsh", want: ".zsh"},
		"unknown":      {input: "brainfuck", want: ".txt"},
		"empty":        {input: "", want: ".txt"},
	}
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, FileExtension(tc.input))
		})
	}
}
