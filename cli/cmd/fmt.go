package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/fundl/lang"
	"github.com/ardnew/fundl/log"
)

// defaultFileMode is the permission mode for rewritten source files.
const defaultFileMode = 0o644

// Fmt rewrites a funding document in canonical form.
type Fmt struct {
	Write bool `help:"Rewrite the source file in place." short:"w"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg, err := loadSource(f.Source)
	if err != nil {
		return ErrParseSource.Wrap(err).
			With(slog.String("source", f.Source))
	}

	formatted, err := lang.Format(cfg)
	if err != nil {
		return ErrFormat.Wrap(err).
			With(slog.String("source", f.Source))
	}

	if !f.Write {
		fmt.Fprint(stdout(ctx), formatted)

		return nil
	}

	if f.Source == stdinSource {
		return ErrStdinWrite
	}

	if err := os.WriteFile(f.Source, []byte(formatted), defaultFileMode); err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("source", f.Source))
	}

	log.DebugContext(ctx, "formatted source file",
		slog.String("source", f.Source),
	)

	return nil
}
