package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_getType(t *testing.T) {
	cases := map[string]struct {
		input string
		want  InputType
	}{
		"file": {
			input: "testdata/lumoterm.yaml",
			want:  FileType,
		},
		"glob": {
			input: "testdata/*.md",
			want:  FileType,
		},
		"literal text": {
			input: "paste of a reply",
			want:  TermType,
		},
	}
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, getType(tc.input))
		})
	}
}

func Test_readFilePattern(t *testing.T) {
	got, err := readFilePattern("testdata/response.md")
	require.NoError(t, err)
	require.Contains(t, got, "import sys")
	require.Contains(t, got, "```python")
}

func Test_readFilePattern_html(t *testing.T) {
	got, err := readFilePattern("testdata/chat.html")
	require.NoError(t, err)
	require.Contains(t, got, "def greet")
	require.NotContains(t, got, "<pre>")
}

func Test_readResponse_literal(t *testing.T) {
	got, err := readResponse([]string{"no", "such", "file"})
	require.NoError(t, err)
	require.Equal(t, "no such file", got)
}

func Test_readResponse_file(t *testing.T) {
	got, err := readResponse([]string{"testdata/response.md"})
	require.NoError(t, err)
	require.True(t, strings.Contains(got, "```bash"))
}
