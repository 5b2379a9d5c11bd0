package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/fundl/log"
	"github.com/ardnew/fundl/model"
)

// Report styles, keyed by severity.
var severityStyle = map[model.Severity]lipgloss.Style{
	model.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	model.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

// Check compiles a funding document and reports every rule violation.
type Check struct {
	Strict bool `help:"Treat warnings as errors."                    short:"s"`
	Quiet  bool `help:"Suppress the report; only set the exit code." short:"q"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg, err := loadSource(c.Source)
	if err != nil {
		return ErrParseSource.Wrap(err).
			With(slog.String("source", c.Source))
	}

	violations := model.Validate(cfg)

	if !c.Quiet {
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, severityStyle[v.Severity].Render(v.String()))
		}
	}

	log.DebugContext(ctx, "checked configuration",
		slog.String("name", cfg.Name),
		slog.Int("violations", len(violations)),
	)

	if model.HasErrors(violations) || (c.Strict && len(violations) > 0) {
		return ErrValidation.
			With(
				slog.String("name", cfg.Name),
				slog.Int("violations", len(violations)),
			)
	}

	return nil
}
