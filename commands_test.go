package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pailher/lumoterm/extract"
)

const fencedReply = "Two options:\n```bash\necho hi\n```\nor\n```python\nprint('hi')\n```\n"

func Test_extractBlocks(t *testing.T) {
	// A fence quoted inside a fence is where the two extractors disagree, so
	// the flag has to select the right one.
	nested := "```markdown\nHere is code:\n```python\nx = 1\n```\n```\n"

	plain := extractBlocks(nested, false)
	require.Len(t, plain, 2)
	require.Equal(t, extract.CodeBlock{Language: "markdown", Code: "Here is code:"}, plain[0])

	ast := extractBlocks(nested, true)
	require.NotEmpty(t, ast)
	require.Equal(t, "markdown", ast[0].Language)
	require.Contains(t, ast[0].Code, "```python")
}

func Test_chosenLanguage(t *testing.T) {
	cases := map[string]struct {
		text      string
		preferred string
		want      string
	}{
		"preferred present": {
			text:      fencedReply,
			preferred: "python",
			want:      "python",
		},
		"preferred absent falls back to first": {
			text:      fencedReply,
			preferred: "rust",
			want:      "bash",
		},
		"no blocks keeps preference": {
			text:      "plain text",
			preferred: "python",
			want:      "python",
		},
		"nothing known": {
			text: "plain text",
			want: "",
		},
	}
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, chosenLanguage(tc.text, tc.preferred))
		})
	}
}

func Test_outputName(t *testing.T) {
	cases := map[string]struct {
		output string
		text   string
		lang   string
		want   string
	}{
		"extension kept": {
			output: "script.txt",
			text:   fencedReply,
			want:   "script.txt",
		},
		"extension from preferred block": {
			output: "script",
			text:   fencedReply,
			lang:   "python",
			want:   "script.py",
		},
		"extension from first block": {
			output: "script",
			text:   fencedReply,
			want:   "script.sh",
		},
		"unknown language defaults": {
			output: "notes",
			text:   "no fences at all",
			want:   "notes.txt",
		},
	}
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, outputName(tc.output, tc.text, tc.lang))
		})
	}
}

func Test_writeCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sh")

	require.NoError(t, writeCode(path, "echo hi", false))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "echo hi\n", string(b))

	require.NoError(t, writeCode(path, "echo bye\n", true))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "echo hi\necho bye\n", string(b))

	require.NoError(t, writeCode(path, "echo new", false))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "echo new\n", string(b))
}

func Test_blocksToMarkdown(t *testing.T) {
	blocks := []extract.CodeBlock{
		{Language: "bash", Code: "echo hi"},
		{Language: "", Code: "x = 1"},
	}
	want := "```bash\necho hi\n```\n```\nx = 1\n```\n"
	require.Equal(t, want, blocksToMarkdown(blocks))
}
