package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Sentinel errors for the individual failure modes of each stage. They are
// wrapped by [LexError], [ParseError], or [BuildError] and can be tested
// with errors.Is.
var (
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrUnexpectedRune      = errors.New("unexpected character")
	ErrUnknownWord         = errors.New("unknown word")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrMissingProperty     = errors.New("missing required property")
	ErrDuplicateProperty   = errors.New("duplicate property")
	ErrDuplicateKey        = errors.New("duplicate config key")
	ErrUnknownEnumValue    = errors.New("unknown enumeration value")
	ErrWrongLiteral        = errors.New("wrong literal kind")
	ErrNegativeNumber      = errors.New("negative number not allowed")
	ErrNotPositive         = errors.New("value must be positive")
	ErrNotInteger          = errors.New("value must be an integer")
	ErrCurrencyMismatch    = errors.New("currency mismatch")
	ErrUnquotableString    = errors.New("string has no quoted literal form")
	ErrReadInput           = errors.New("failed to read input")
)

// LexError reports a malformed token. It is fatal and aborts the pipeline
// immediately, carrying the line and column of the offending start.
type LexError struct {
	Err     error
	Word    string   // the offending word for [ErrUnknownWord]
	Suggest []string // nearest keyword matches, if any
	Pos     Position
	Source  string // attached by the entry points for snippet rendering
}

// Error implements the error interface.
func (e *LexError) Error() string {
	var buf strings.Builder

	buf.WriteString("lex error at ")
	buf.WriteString(e.Pos.String())
	buf.WriteString(": ")
	buf.WriteString(e.Err.Error())

	if e.Word != "" {
		buf.WriteString(" ")
		buf.WriteString(strconv.Quote(e.Word))
	}

	if len(e.Suggest) > 0 {
		buf.WriteString(" (did you mean ")
		buf.WriteString(strings.Join(e.Suggest, " or "))
		buf.WriteString("?)")
	}

	writeSnippet(&buf, e.Source, e.Pos)

	return buf.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *LexError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer for structured logging.
func (e *LexError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("stage", "lex"),
		slog.String("error", e.Err.Error()),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	}

	if e.Word != "" {
		attrs = append(attrs, slog.String("word", e.Word))
	}

	return slog.GroupValue(attrs...)
}

// ParseError reports a token stream that does not match the grammar.
// It names the expected construct and the actual token, and is fatal:
// the parser performs no recovery or resynchronization, so only the
// first structural mismatch in a document is reported.
type ParseError struct {
	Expected string
	Actual   Token
	Pos      Position
	Source   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error at ")
	buf.WriteString(e.Pos.String())
	buf.WriteString(": expected ")
	buf.WriteString(e.Expected)
	buf.WriteString(", got ")
	buf.WriteString(e.Actual.String())
	writeSnippet(&buf, e.Source, e.Pos)

	return buf.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error { return ErrUnexpectedToken }

// LogValue implements slog.LogValuer for structured logging.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("stage", "parse"),
		slog.String("expected", e.Expected),
		slog.String("actual", e.Actual.String()),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	)
}

// BuildError reports a malformation confined to a single element: a
// missing required property, a literal of the wrong kind, or an unknown
// enumeration value. Block names the offending element (e.g. `tier
// "Gold"`), Property the offending property when one applies.
type BuildError struct {
	Err      error
	Block    string
	Property string
	Suggest  []string // nearest vocabulary matches, if any
	Pos      Position
	Source   string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	var buf strings.Builder

	buf.WriteString("build error at ")
	buf.WriteString(e.Pos.String())
	buf.WriteString(" in ")
	buf.WriteString(e.Block)

	if e.Property != "" {
		buf.WriteString(", property ")
		buf.WriteString(strconv.Quote(e.Property))
	}

	buf.WriteString(": ")
	buf.WriteString(e.Err.Error())

	if len(e.Suggest) > 0 {
		buf.WriteString(" (did you mean ")
		buf.WriteString(strings.Join(e.Suggest, " or "))
		buf.WriteString("?)")
	}

	writeSnippet(&buf, e.Source, e.Pos)

	return buf.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *BuildError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer for structured logging.
func (e *BuildError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("stage", "build"),
		slog.String("error", e.Err.Error()),
		slog.String("block", e.Block),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	}

	if e.Property != "" {
		attrs = append(attrs, slog.String("property", e.Property))
	}

	return slog.GroupValue(attrs...)
}

// writeSnippet appends the offending source line with a caret marking the
// error column:
//
//	  3 | tier "Gold" {
//	          ^
//
// Nothing is written when the source is unavailable or the position is
// out of bounds.
func writeSnippet(buf *strings.Builder, source string, pos Position) {
	if source == "" || pos.Line <= 0 {
		return
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return
	}

	line := lines[pos.Line-1]

	buf.WriteString("\n  ")
	buf.WriteString(strconv.Itoa(pos.Line))
	buf.WriteString(" | ")
	buf.WriteString(line)
	buf.WriteRune('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	lineNumWidth := len(strconv.Itoa(pos.Line))
	padding := strings.Repeat(" ", lineNumWidth+5)

	if pos.Column > 0 {
		padding += strings.Repeat(" ", pos.Column-1)
	}

	buf.WriteString(padding + "^")
}

// attachSource stamps the original source text onto any pipeline error so
// its message can render a caret snippet. Unknown error types pass
// through unchanged.
func attachSource(err error, source string) error {
	le := &LexError{}
	if errors.As(err, &le) {
		le.Source = source

		return le
	}

	pe := &ParseError{}
	if errors.As(err, &pe) {
		pe.Source = source

		return pe
	}

	be := &BuildError{}
	if errors.As(err, &be) {
		be.Source = source

		return be
	}

	return err
}
