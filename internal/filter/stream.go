package filter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// RunStream reads delimiter-separated documents from r until EOF.
//
// Each delimiter line closes the buffered document: its tokens are written,
// followed by the delimiter itself, and the output is flushed so the caller
// on the other end of the pipe can read the complete result. The delimiter is
// echoed even for blank documents. Lines left in the buffer at EOF form a
// final document that is tokenized without a trailing delimiter.
func (f *Filter) RunStream(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	br := bufio.NewReader(decode(r))
	bw := bufio.NewWriter(w)
	var buf []string

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, fmt.Errorf("failed to read input: %w", readErr)
		}
		eof := readErr != nil
		if eof && line == "" {
			break
		}

		line = strings.TrimRight(line, "\r\n")
		if line != f.delimiter {
			buf = append(buf, line)
			if eof {
				break
			}
			continue
		}

		n, err := f.flushDocument(bw, buf)
		if err != nil {
			return stats, err
		}
		buf = buf[:0]
		stats.Documents++
		stats.Tokens += n

		if _, err := bw.WriteString(f.delimiter + "\n"); err != nil {
			return stats, fmt.Errorf("failed to write delimiter: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return stats, fmt.Errorf("failed to flush output: %w", err)
		}
		f.logger.Debug("document done", "document", stats.Documents, "tokens", n)

		if eof {
			break
		}
	}

	if len(buf) > 0 {
		n, err := f.flushDocument(bw, buf)
		if err != nil {
			return stats, err
		}
		stats.Documents++
		stats.Tokens += n
		f.logger.Debug("trailing document done", "document", stats.Documents, "tokens", n)
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}

	f.logger.Info("stream finished", "documents", stats.Documents, "tokens", stats.Tokens)
	return stats, nil
}

// flushDocument joins the buffered lines and writes their tokens. Blank
// documents are skipped without calling the tokenizer. A token equal to the
// delimiter would read as a document boundary, so the document is rejected
// before any of its tokens are written.
func (f *Filter) flushDocument(bw *bufio.Writer, lines []string) (int, error) {
	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	surfaces := f.tok.Surfaces(text)
	if slices.Contains(surfaces, f.delimiter) {
		return 0, fmt.Errorf("%w: %q", ErrDelimiterToken, f.delimiter)
	}
	return writeSurfaces(bw, surfaces)
}
