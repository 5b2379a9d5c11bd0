// Package export renders a built configuration into external formats:
// a GitHub FUNDING.yml, a structured JSON or YAML document, and a
// Markdown summary for humans.
//
// Every exporter refuses configurations that fail validation; warnings
// do not block export.
package export

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ardnew/fundl/model"
)

// Sentinel errors returned by the exporters.
var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrInvalid       = errors.New("configuration failed validation")
)

// Format identifies one of the supported output formats.
type Format int

const (
	GitHub   Format = iota // github
	JSON                   // json
	YAML                   // yaml
	Markdown               // markdown
)

//nolint:gochecknoglobals
var formatKeyword = [...]string{
	GitHub:   "github",
	JSON:     "json",
	YAML:     "yaml",
	Markdown: "markdown",
}

// String returns the format name used on the command line.
func (f Format) String() string {
	if f < GitHub || f > Markdown {
		return "github"
	}

	return formatKeyword[f]
}

// ParseFormat resolves a format name against the supported set.
func ParseFormat(s string) (Format, bool) {
	for f, kw := range formatKeyword {
		if kw == s {
			return Format(f), true
		}
	}

	return GitHub, false
}

// Formats returns an iterator over all format names.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, kw := range formatKeyword {
			if !yield(kw) {
				return
			}
		}
	}
}

// Export validates the configuration and renders it to w in the given
// format. Validation errors abort the export; warnings are ignored here
// and left to the check command to surface.
func Export(w io.Writer, cfg *model.Configuration, format Format) error {
	violations := model.Validate(cfg)
	if model.HasErrors(violations) {
		return fmt.Errorf("%w:\n%s", ErrInvalid, describeErrors(violations))
	}

	switch format {
	case GitHub:
		return exportGitHub(w, cfg)
	case JSON:
		return exportJSON(w, cfg)
	case YAML:
		return exportYAML(w, cfg)
	case Markdown:
		return exportMarkdown(w, cfg)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

func describeErrors(violations []model.Violation) string {
	var lines []string

	for _, v := range violations {
		if v.Severity == model.SeverityError {
			lines = append(lines, "  "+v.String())
		}
	}

	return strings.Join(lines, "\n")
}
