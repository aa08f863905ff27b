package shell

import (
	"errors"
	"strings"
	"unicode"
)

// Parse errors surfaced to the REPL as single-line diagnostics.
var (
	ErrUnterminatedQuote    = errors.New("unterminated quote")
	ErrEmptyStage           = errors.New("empty pipeline stage")
	ErrMisplacedRedirection = errors.New("misplaced redirection")
)

type TokenKind int

const (
	// TokenWord is a literal argument, post quote removal.
	TokenWord TokenKind = iota
	// TokenPipe is an unquoted "|".
	TokenPipe
	// TokenRedirect is an unquoted ">".
	TokenRedirect
	// TokenRedirectAppend is an unquoted ">>".
	TokenRedirectAppend
)

// Token is one word or operator from an input line, in input order.
type Token struct {
	Kind TokenKind
	// Text holds the literal content for TokenWord tokens.
	Text string
}

func word(text string) Token { return Token{Kind: TokenWord, Text: text} }

type lexState int

const (
	stateOutside lexState = iota
	stateSingleQuote
	stateDoubleQuote
)

// Tokenize splits a raw input line into words and operators.
//
// Unescaped whitespace separates words and any run of it collapses to a
// single boundary. Single and double quoted spans are taken literally with
// the quotes stripped; a backslash outside quotes passes the next rune
// through literally. Unquoted "|", ">" and ">>" become operator tokens even
// when glued to a word, so `a>b` lexes as three tokens.
//
// A blank line yields an empty token slice and no error.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	var buf strings.Builder

	// hasWord distinguishes an empty buffer from a quoted empty word
	// such as "".
	hasWord := false
	state := stateOutside
	escaping := false

	flush := func() {
		if hasWord || buf.Len() > 0 {
			tokens = append(tokens, word(buf.String()))
			buf.Reset()
			hasWord = false
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch state {
		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				buf.WriteRune(ch)
			}

		case stateDoubleQuote:
			if ch == '"' {
				state = stateOutside
			} else {
				buf.WriteRune(ch)
			}

		default:
			if escaping {
				buf.WriteRune(ch)
				hasWord = true
				escaping = false
				continue
			}

			switch {
			case ch == '\\':
				escaping = true

			case ch == '\'':
				state = stateSingleQuote
				hasWord = true

			case ch == '"':
				state = stateDoubleQuote
				hasWord = true

			case unicode.IsSpace(ch):
				flush()

			case ch == '|':
				flush()
				tokens = append(tokens, Token{Kind: TokenPipe})

			case ch == '>':
				flush()
				if i+1 < len(runes) && runes[i+1] == '>' {
					tokens = append(tokens, Token{Kind: TokenRedirectAppend})
					i++
				} else {
					tokens = append(tokens, Token{Kind: TokenRedirect})
				}

			default:
				buf.WriteRune(ch)
				hasWord = true
			}
		}
	}

	if state != stateOutside {
		return nil, ErrUnterminatedQuote
	}
	if escaping {
		// A trailing backslash escapes nothing; treat it as literal.
		buf.WriteRune('\\')
		hasWord = true
	}
	flush()

	return tokens, nil
}
