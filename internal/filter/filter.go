// Package filter implements the stdin/stdout plumbing around a tokenizer:
// reading documents, forwarding them to the tokenizer, and writing one
// surface form per line.
package filter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultDelimiter marks the end of a document in streaming mode.
const DefaultDelimiter = "---SUDACHI_DOC_END---"

// ErrDelimiterToken is returned in streaming mode when a document yields a
// token identical to the delimiter line.
var ErrDelimiterToken = errors.New("token collides with the stream delimiter, choose a different delimiter")

// Tokenizer turns a document into surface forms.
type Tokenizer interface {
	Surfaces(text string) []string
}

// Stats summarizes one run.
type Stats struct {
	Documents int
	Tokens    int
}

// Filter connects a reader, a Tokenizer and a writer.
type Filter struct {
	tok       Tokenizer
	delimiter string
	logger    *slog.Logger
}

// Option configures a Filter.
type Option func(*Filter)

// WithDelimiter sets the streaming-mode delimiter line.
func WithDelimiter(d string) Option {
	return func(f *Filter) {
		if d != "" {
			f.delimiter = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(f *Filter) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Filter around tok.
func New(tok Tokenizer, opts ...Option) *Filter {
	f := &Filter{
		tok:       tok,
		delimiter: DefaultDelimiter,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Delimiter returns the delimiter line in use.
func (f *Filter) Delimiter() string { return f.delimiter }

// decode wraps r so invalid UTF-8 becomes U+FFFD and a leading BOM is dropped.
func decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
}

// writeSurfaces writes every non-empty surface on its own line. It returns
// the number of lines written.
func writeSurfaces(w *bufio.Writer, surfaces []string) (int, error) {
	n := 0
	for _, s := range surfaces {
		if s == "" {
			continue
		}
		if _, err := w.WriteString(s); err != nil {
			return n, fmt.Errorf("failed to write token: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("failed to write token: %w", err)
		}
		n++
	}
	return n, nil
}
