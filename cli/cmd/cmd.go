package cmd

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/fundl/lang"
	"github.com/ardnew/fundl/model"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer kong resolved for standard output, falling
// back to [os.Stdout] when no kong context is attached.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// loadSource compiles the funding document at path into an entity graph.
// A path of "-" reads from stdin.
func loadSource(path string) (*model.Configuration, error) {
	if path == stdinSource {
		return lang.ParseReader(bufio.NewReader(os.Stdin))
	}

	return lang.ParseFile(path)
}

// openOutput opens the destination for a command that writes a file.
// A path of "-" returns stdout with a no-op closer.
func openOutput(ctx context.Context, path string) (io.Writer, func() error, error) {
	if path == stdinSource {
		return stdout(ctx), func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return file, file.Close, nil
}
