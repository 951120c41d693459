package filter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunOneShot treats all of r as a single document. Surrounding whitespace is
// trimmed first; blank input produces no output.
func (f *Filter) RunOneShot(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	data, err := io.ReadAll(decode(r))
	if err != nil {
		return stats, fmt.Errorf("failed to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		f.logger.Info("empty input, nothing to tokenize")
		return stats, nil
	}

	bw := bufio.NewWriter(w)
	n, err := writeSurfaces(bw, f.tok.Surfaces(text))
	stats.Tokens = n
	if err != nil {
		return stats, err
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}
	stats.Documents = 1

	f.logger.Info("tokenized document", "bytes", len(text), "tokens", n)
	return stats, nil
}
