package lang

import (
	"iter"
	"strconv"
)

// Kind classifies a lexical token.
type Kind int

const (
	// KindEOF marks the end of the token stream.
	KindEOF Kind = iota

	// KindKeyword is a reserved word: block and property names, platform
	// names, funding type keywords, and currency codes.
	KindKeyword

	// KindString is a double-quoted string literal. No escape sequences
	// are processed; the literal ends at the next quote on the same line.
	KindString

	// KindNumber is an integer or decimal literal. A leading '-' is
	// accepted lexically so that sign errors surface with field context
	// during model building rather than as a stray-character lex error.
	KindNumber

	// KindBool is 'true' or 'false'.
	KindBool

	// Punctuation.
	KindLBrace   // {
	KindRBrace   // }
	KindLBracket // [
	KindRBracket // ]
	KindComma    // ,
)

// String returns a human-readable name for the token kind.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindKeyword:
		return "keyword"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindLBrace:
		return `"{"`
	case KindRBrace:
		return `"}"`
	case KindLBracket:
		return `"["`
	case KindRBracket:
		return `"]"`
	case KindComma:
		return `","`
	default:
		return "unknown"
	}
}

// Position locates a token within source text. Line and Column are
// 1-based; Offset is the 0-based byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String formats the position as "line L, column C".
func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Column)
}

// Token is one lexical unit of a funding document.
//
// Text holds the significant content: the unquoted value for strings, and
// the exact lexeme for every other kind.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// String formats the token for expected-versus-actual error messages.
func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return "end of input"
	case KindString:
		return strconv.Quote(t.Text)
	default:
		return `"` + t.Text + `"`
	}
}

// reserved is the fixed set of keywords. Keyword-versus-identifier
// disambiguation is purely lexical: an exact match against this set.
//
//nolint:gochecknoglobals
var reserved = func() map[string]struct{} {
	words := []string{
		// Structure and configuration properties.
		"funding", "description", "currency", "min_amount", "max_amount",

		// Container blocks and their element keywords.
		"beneficiaries", "beneficiary",
		"sources", "tiers", "tier", "goals", "goal",

		// Beneficiary properties.
		"email", "github", "website",

		// Source properties.
		"type", "active", "url", "config",

		// Tier properties.
		"amount", "max_sponsors", "benefits",

		// Goal properties.
		"target", "current", "deadline",
	}

	set := make(map[string]struct{}, len(words)+24)
	for _, w := range words {
		set[w] = struct{}{}
	}

	// Enum vocabularies are reserved words too.
	for kw := range platformKeywords() {
		set[kw] = struct{}{}
	}

	for kw := range fundingTypeKeywords() {
		set[kw] = struct{}{}
	}

	for kw := range currencyKeywords() {
		set[kw] = struct{}{}
	}

	return set
}()

// Keywords returns an iterator over every reserved word. The order is
// unspecified; callers that need determinism must sort.
func Keywords() iter.Seq[string] {
	return func(yield func(string) bool) {
		for w := range reserved {
			if !yield(w) {
				return
			}
		}
	}
}

func isReserved(word string) bool {
	_, ok := reserved[word]

	return ok
}
