// Package lang implements the funding configuration language: a lexer,
// a recursive-descent parser, a model builder, and a canonical source
// formatter. See the package documentation in doc.go for the grammar.
package lang

import (
	"fmt"
	"io"
	"os"

	"github.com/ardnew/fundl/model"
)

// ParseString compiles source text into an entity graph. The pipeline is
// stateless: equal inputs produce equal results, and no state survives
// between calls. On failure the returned error is a [LexError],
// [ParseError], or [BuildError] carrying the source position.
//
// The result is structurally well-formed but not yet validated; run
// [model.Validate] to apply the business rules.
func ParseString(source string) (*model.Configuration, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, attachSource(err, source)
	}

	node, err := Parse(tokens)
	if err != nil {
		return nil, attachSource(err, source)
	}

	cfg, err := Build(node)
	if err != nil {
		return nil, attachSource(err, source)
	}

	return cfg, nil
}

// ParseReader reads the entire stream and compiles it with [ParseString].
func ParseReader(r io.Reader) (*model.Configuration, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return ParseString(string(source))
}

// ParseFile reads the named file and compiles it with [ParseString].
func ParseFile(path string) (*model.Configuration, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrReadInput, path, err)
	}

	return ParseString(string(source))
}
