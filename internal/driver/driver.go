// Package driver applies the counter to an ordered list of integers and
// emits one line per argument.
package driver

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"count/internal/counter"

	"go.uber.org/zap"
)

// ErrTooLarge is returned when an argument exceeds the configured bound.
var ErrTooLarge = errors.New("argument exceeds max_n")

// Driver renders counting lines for a sequence of arguments.
type Driver struct {
	logger *zap.Logger
	maxN   int // 0 disables the bound
}

// Option configures a Driver.
type Option func(*Driver)

// WithMaxN bounds the largest argument the driver accepts. Zero or a
// negative value leaves arguments unbounded.
func WithMaxN(n int) Option {
	return func(d *Driver) {
		if n < 0 {
			n = 0
		}
		d.maxN = n
	}
}

// New creates a Driver. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger, opts ...Option) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Driver{logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Render returns Count(a)+"\n" for every a in args, concatenated in order.
// An empty args yields the empty string.
func (d *Driver) Render(args []int) (string, error) {
	size := 0
	for i, a := range args {
		if d.maxN > 0 && a > d.maxN {
			return "", fmt.Errorf("arg %d (%d > %d): %w", i, a, d.maxN, ErrTooLarge)
		}
		size += counter.Len(a) + 1
	}

	var b strings.Builder
	b.Grow(size)
	for i, a := range args {
		line, err := counter.Count(a)
		if err != nil {
			return "", fmt.Errorf("arg %d: %w", i, err)
		}
		b.WriteString(line)
		b.WriteByte('\n')
		d.logger.Debug("Rendered line", zap.Int("index", i), zap.Int("n", a), zap.Int("bytes", len(line)+1))
	}
	return b.String(), nil
}

// Run renders args and writes the result to w in a single Write call.
// Nothing is written if rendering fails.
func (d *Driver) Run(w io.Writer, args []int) error {
	out, err := d.Render(args)
	if err != nil {
		return err
	}
	if out == "" {
		d.logger.Debug("No arguments, nothing to write")
		return nil
	}
	if _, err := w.Write([]byte(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	d.logger.Info("Wrote output", zap.Int("lines", len(args)), zap.Int("bytes", len(out)))
	return nil
}
