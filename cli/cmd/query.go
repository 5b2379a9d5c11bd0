package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/fundl/log"
	"github.com/ardnew/fundl/query"
)

// Query evaluates an expression against a funding document.
type Query struct {
	Expr string `arg:"" help:"Expression to evaluate, e.g. 'filter(goals, not .reached) | map(.name)'." name:"expr"`

	Source string `help:"Source input file or '-' for stdin." default:"-" short:"f"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg, err := loadSource(q.Source)
	if err != nil {
		return ErrParseSource.Wrap(err).
			With(slog.String("source", q.Source))
	}

	result, err := query.Eval(cfg, q.Expr)
	if err != nil {
		return ErrQuery.Wrap(err).
			With(slog.String("expr", q.Expr))
	}

	log.TraceContext(ctx, "query evaluated",
		slog.String("expr", q.Expr),
		slog.Any("result", result),
	)

	fmt.Fprintln(stdout(ctx), query.FormatResult(result))

	return nil
}
