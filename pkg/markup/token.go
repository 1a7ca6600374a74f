package markup

import (
	"strings"

	"github.com/arthur-debert/zenith/pkg/errors"
)

// TokenKind discriminates the token variants
type TokenKind int

const (
	// TokenText is a run of literal text
	TokenText TokenKind = iota
	// TokenTagOpen is a [tag] whose content does not start with '/'
	TokenTagOpen
	// TokenTagClose is a [/tag]
	TokenTagClose
)

// Token is one unit of scanned markup. Content is the literal text for
// TokenText, or the raw inner content of the tag (without brackets).
// Close markers stay in the content: tags may mix close-words and
// open-words, as in [/~ bold red], and the resolver handles them per
// word. Offset is the byte offset of the token's first character in the
// input.
type Token struct {
	Kind    TokenKind
	Content string
	Offset  int
}

// Tokenize scans a markup string into a flat token sequence. A backslash
// escapes a following '['; an unescaped '[' opens a tag that runs to the
// next ']'. Tags do not nest syntactically: a '[' inside a tag body and a
// tag left unterminated at end of input are both fatal parse errors
// carrying the byte offset.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	var text strings.Builder

	textStart := 0
	flushText := func() {
		if text.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenText, Content: text.String(), Offset: textStart})
			text.Reset()
		}
	}

	for i := 0; i < len(input); {
		ch := input[i]

		switch {
		case ch == '\\' && i+1 < len(input) && input[i+1] == '[':
			if text.Len() == 0 {
				textStart = i
			}
			text.WriteByte('[')
			i += 2

		case ch == '[':
			flushText()

			start := i
			end := -1
			for j := i + 1; j < len(input); j++ {
				if input[j] == '[' {
					return nil, errors.New(errors.ErrParse,
						"nested '[' inside a tag body").WithOffset(j)
				}
				if input[j] == ']' {
					end = j
					break
				}
			}
			if end == -1 {
				return nil, errors.New(errors.ErrParse,
					"unterminated tag: '[' with no matching ']'").WithOffset(start)
			}

			content := input[start+1 : end]
			kind := TokenTagOpen
			if strings.HasPrefix(content, "/") {
				kind = TokenTagClose
			}
			tokens = append(tokens, Token{Kind: kind, Content: content, Offset: start})
			i = end + 1

		default:
			if text.Len() == 0 {
				textStart = i
			}
			text.WriteByte(ch)
			i++
		}
	}

	flushText()
	return tokens, nil
}
