package lang

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// Lexer converts raw source text into a finite sequence of typed tokens,
// discarding comments and whitespace. It performs no semantic validation:
// keyword-versus-identifier disambiguation is an exact string match
// against the reserved set, and nothing else.
//
// A Lexer is single-use. Create one per input with [NewLexer] and drain
// it with [Lexer.Next], or use [Lex] to collect the whole stream.
type Lexer struct {
	input []byte
	pos   int
	line  int
	col   int
}

// NewLexer creates a lexer over the given source text.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: []byte(input),
		pos:   0,
		line:  1,
		col:   1,
	}
}

// Lex tokenizes the entire input. The returned slice always ends with a
// [KindEOF] token on success.
func Lex(input string) ([]Token, error) {
	lx := NewLexer(input)

	var tokens []Token

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)

		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

// Next returns the next token in the stream. After the input is
// exhausted, it returns a [KindEOF] token indefinitely.
func (lx *Lexer) Next() (Token, error) {
	err := lx.skipWhitespaceAndComments()
	if err != nil {
		return Token{}, err
	}

	if lx.eof() {
		return Token{Kind: KindEOF, Pos: lx.position()}, nil
	}

	pos := lx.position()
	ch := lx.peek()

	switch {
	case ch == '{':
		lx.advance()

		return Token{Kind: KindLBrace, Text: "{", Pos: pos}, nil

	case ch == '}':
		lx.advance()

		return Token{Kind: KindRBrace, Text: "}", Pos: pos}, nil

	case ch == '[':
		lx.advance()

		return Token{Kind: KindLBracket, Text: "[", Pos: pos}, nil

	case ch == ']':
		lx.advance()

		return Token{Kind: KindRBracket, Text: "]", Pos: pos}, nil

	case ch == ',':
		lx.advance()

		return Token{Kind: KindComma, Text: ",", Pos: pos}, nil

	case ch == '"':
		return lx.lexString(pos)

	case ch == '-' || unicode.IsDigit(ch):
		return lx.lexNumber(pos)

	case isWordStart(ch):
		return lx.lexWord(pos)

	default:
		return Token{}, &LexError{Err: ErrUnexpectedRune, Pos: pos}
	}
}

// lexString scans a double-quoted string literal. No escape processing is
// performed; the literal ends at the next quote, which must appear on the
// same line.
func (lx *Lexer) lexString(pos Position) (Token, error) {
	lx.advance() // opening quote

	start := lx.pos

	for !lx.eof() {
		ch := lx.peek()

		if ch == '\n' {
			return Token{}, &LexError{Err: ErrUnterminatedString, Pos: pos}
		}

		if ch == '"' {
			text := string(lx.input[start:lx.pos])
			lx.advance() // closing quote

			return Token{Kind: KindString, Text: text, Pos: pos}, nil
		}

		lx.advance()
	}

	return Token{}, &LexError{Err: ErrUnterminatedString, Pos: pos}
}

// lexNumber scans an integer or decimal literal. No exponent notation.
// A leading '-' is carried through so the builder can report sign errors
// with field context.
func (lx *Lexer) lexNumber(pos Position) (Token, error) {
	start := lx.pos

	if lx.peek() == '-' {
		lx.advance()

		if lx.eof() || !unicode.IsDigit(lx.peek()) {
			return Token{}, &LexError{Err: ErrUnexpectedRune, Pos: pos}
		}
	}

	for !lx.eof() && unicode.IsDigit(lx.peek()) {
		lx.advance()
	}

	if !lx.eof() && lx.peek() == '.' {
		lx.advance()

		if lx.eof() || !unicode.IsDigit(lx.peek()) {
			return Token{}, &LexError{Err: ErrUnexpectedRune, Pos: lx.position()}
		}

		for !lx.eof() && unicode.IsDigit(lx.peek()) {
			lx.advance()
		}
	}

	return Token{
		Kind: KindNumber,
		Text: string(lx.input[start:lx.pos]),
		Pos:  pos,
	}, nil
}

// lexWord scans a bare word and classifies it as a boolean literal or a
// reserved keyword. The grammar has no free identifiers: every bare word
// must be reserved, so anything else is a lex error at the word start.
func (lx *Lexer) lexWord(pos Position) (Token, error) {
	start := lx.pos

	for !lx.eof() && isWordContinue(lx.peek()) {
		lx.advance()
	}

	word := string(lx.input[start:lx.pos])

	switch {
	case word == "true" || word == "false":
		return Token{Kind: KindBool, Text: word, Pos: pos}, nil

	case isReserved(word):
		return Token{Kind: KindKeyword, Text: word, Pos: pos}, nil

	default:
		return Token{}, &LexError{
			Err:     ErrUnknownWord,
			Word:    word,
			Suggest: suggest(word, slices.Collect(Keywords())),
			Pos:     pos,
		}
	}
}

// Helper methods

func (lx *Lexer) peek() rune {
	if lx.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(lx.input[lx.pos:])

	return r
}

func (lx *Lexer) peekN(n int) string {
	if lx.pos+n > len(lx.input) {
		return string(lx.input[lx.pos:])
	}

	return string(lx.input[lx.pos : lx.pos+n])
}

func (lx *Lexer) advance() {
	if lx.eof() {
		return
	}

	r, size := utf8.DecodeRune(lx.input[lx.pos:])

	lx.pos += size
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
}

func (lx *Lexer) eof() bool {
	return lx.pos >= len(lx.input)
}

func (lx *Lexer) position() Position {
	return Position{
		Offset: lx.pos,
		Line:   lx.line,
		Column: lx.col,
	}
}

func (lx *Lexer) skipWhitespaceAndComments() error {
	for {
		for !lx.eof() && unicode.IsSpace(lx.peek()) {
			lx.advance()
		}

		if lx.eof() {
			return nil
		}

		if lx.peekN(2) == "//" {
			lx.skipLineComment()

			continue
		}

		if lx.peekN(2) == "/*" {
			err := lx.skipBlockComment()
			if err != nil {
				return err
			}

			continue
		}

		return nil
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.eof() && lx.peek() != '\n' {
		lx.advance()
	}
}

func (lx *Lexer) skipBlockComment() error {
	pos := lx.position()

	lx.advance() // '/'
	lx.advance() // '*'

	for !lx.eof() {
		if lx.peekN(2) == "*/" {
			lx.advance() // '*'
			lx.advance() // '/'

			return nil
		}

		lx.advance()
	}

	return &LexError{Err: ErrUnterminatedComment, Pos: pos}
}

// Character classification

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
