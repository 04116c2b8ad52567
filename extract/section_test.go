package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ExtractCodeSection(t *testing.T) {
	cases := map[string]struct {
		input  string
		want   string
		wantOK bool
	}{
		"python region between prose": {
			input:  "Here is a function:\n\ndef greet(name):\n    print(name)\n    return True\n\nThis will print the name.",
			want:   "def greet(name):\n    print(name)\n    return True",
			wantOK: true,
		},
		"region runs to end of text": {
			input:  "def greet(name):\n    print(name)",
			want:   "def greet(name):\n    print(name)",
			wantOK: true,
		},
		"three blank lines terminate": {
			input:  "import os\nprint('a')\n\n\n\nimport sys\nprint('b')",
			want:   "import os\nprint('a')",
			wantOK: true,
		},
		"language switch terminates": {
			input:  "import os\nx = os.getcwd()\nSELECT * FROM users",
			want:   "import os\nx = os.getcwd()",
			wantOK: true,
		},
		"single-line shell function kept": {
			input:  "greet() { echo hi; }",
			want:   "greet() { echo hi; }",
			wantOK: true,
		},
		"single-line loop kept": {
			input:  "Try running\n\nfor f in *.log; do gzip \"$f\"; done",
			want:   "for f in *.log; do gzip \"$f\"; done",
			wantOK: true,
		},
		"single-line cmdlet kept": {
			input:  "Get-Process -Name chrome",
			want:   "Get-Process -Name chrome",
			wantOK: true,
		},
		"single plain line discarded": {
			input: "import os",
		},
		"no code at all": {
			input: "We talked about the weather and nothing else happened today.",
		},
	}
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractCodeSection(tc.input)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func Test_ExtractCodeSection_interiorBlanksKept(t *testing.T) {
	input := "def a():\n    pass\n\ndef b():\n    pass\n\nNote: both do nothing."
	got, ok := ExtractCodeSection(input)
	require.True(t, ok)
	require.Equal(t, "def a():\n    pass\n\ndef b():\n    pass", got)
}
