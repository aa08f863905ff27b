package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected []Token
	}{
		{
			name:     "empty",
			line:     "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			line:     "   \t  ",
			expected: nil,
		},
		{
			name:     "words",
			line:     "echo hello world",
			expected: []Token{word("echo"), word("hello"), word("world")},
		},
		{
			name:     "collapsed whitespace",
			line:     "  echo \t hi  ",
			expected: []Token{word("echo"), word("hi")},
		},
		{
			name:     "single quotes",
			line:     `echo 'hello world'`,
			expected: []Token{word("echo"), word("hello world")},
		},
		{
			name:     "double quotes",
			line:     `echo "a | b > c"`,
			expected: []Token{word("echo"), word("a | b > c")},
		},
		{
			name:     "quoted empty word",
			line:     `echo ""`,
			expected: []Token{word("echo"), word("")},
		},
		{
			name:     "quotes joined to word",
			line:     `echo a'b c'd`,
			expected: []Token{word("echo"), word("ab cd")},
		},
		{
			name:     "escaped space",
			line:     `echo a\ b`,
			expected: []Token{word("echo"), word("a b")},
		},
		{
			name:     "escaped metacharacter",
			line:     `echo \>`,
			expected: []Token{word("echo"), word(">")},
		},
		{
			name: "pipe",
			line: "a | b",
			expected: []Token{
				word("a"), {Kind: TokenPipe}, word("b"),
			},
		},
		{
			name: "redirect overwrite",
			line: "echo hi > out.txt",
			expected: []Token{
				word("echo"), word("hi"), {Kind: TokenRedirect}, word("out.txt"),
			},
		},
		{
			name: "redirect append",
			line: "echo hi >> out.txt",
			expected: []Token{
				word("echo"), word("hi"), {Kind: TokenRedirectAppend}, word("out.txt"),
			},
		},
		{
			name: "operators glued to words",
			line: "a>b",
			expected: []Token{
				word("a"), {Kind: TokenRedirect}, word("b"),
			},
		},
		{
			name: "pipe glued to words",
			line: "a|b|c",
			expected: []Token{
				word("a"), {Kind: TokenPipe}, word("b"), {Kind: TokenPipe}, word("c"),
			},
		},
		{
			name:     "trailing backslash is literal",
			line:     `echo a\`,
			expected: []Token{word("echo"), word(`a\`)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

func TestTokenize_unterminatedQuote(t *testing.T) {
	for _, line := range []string{`echo 'oops`, `echo "oops`, `'`} {
		t.Run(line, func(t *testing.T) {
			_, err := Tokenize(line)
			assert.ErrorIs(t, err, ErrUnterminatedQuote)
		})
	}
}

// Re-joining the words of a metacharacter-free line with single spaces
// reproduces the whitespace-collapsed input.
func TestTokenize_roundTrip(t *testing.T) {
	lines := []string{
		"one two three",
		"  spaced   out\twords ",
		"mkdir -p a/b/c",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			tokens, err := Tokenize(line)
			require.NoError(t, err)

			var words []string
			for _, tok := range tokens {
				require.Equal(t, TokenWord, tok.Kind)
				words = append(words, tok.Text)
			}

			assert.Equal(t, strings.Join(strings.Fields(line), " "), strings.Join(words, " "))
		})
	}
}
