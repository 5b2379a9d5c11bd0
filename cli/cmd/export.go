package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/fundl/export"
	"github.com/ardnew/fundl/log"
)

// Export renders a funding document in an external format.
type Export struct {
	Format string `default:"github" enum:"github,json,yaml,markdown" help:"Output format."                  short:"t"`
	Output string `default:"-"                                       help:"Output file or '-' for stdout." short:"o"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the export command.
func (e *Export) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg, err := loadSource(e.Source)
	if err != nil {
		return ErrParseSource.Wrap(err).
			With(slog.String("source", e.Source))
	}

	// kong restricts the flag to the enum, so this cannot fail.
	format, _ := export.ParseFormat(e.Format)

	out, done, err := openOutput(ctx, e.Output)
	if err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("output", e.Output))
	}
	defer func() { _ = done() }()

	if err := export.Export(out, cfg, format); err != nil {
		return ErrExport.Wrap(err).
			With(
				slog.String("format", e.Format),
				slog.String("source", e.Source),
			)
	}

	log.DebugContext(ctx, "exported configuration",
		slog.String("name", cfg.Name),
		slog.String("format", e.Format),
		slog.String("output", e.Output),
	)

	return nil
}
