package shell

import (
	"bufio"
	"bytes"
	"context"
	"io"
)

// maxLineLength bounds a single line of input. Longer lines are dropped
// and read back as blank input.
const maxLineLength = 4096

// lineReader reads input on its own goroutine so that a read blocked on
// the terminal never holds up context cancellation.
type lineReader struct {
	lines <-chan string
	errc  <-chan error
}

func newLineReader(ctx context.Context, in io.Reader) *lineReader {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 1024), 2*maxLineLength)
		scanner.Split(boundedLines(maxLineLength))
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	return &lineReader{lines: lines, errc: errc}
}

// next returns the next line. ok is false once input is exhausted; err is
// the context error after cancellation or the read error, if any.
func (r *lineReader) next(ctx context.Context) (line string, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-r.lines:
		if ok {
			return line, true, nil
		}
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		select {
		case err := <-r.errc:
			return "", false, err
		default:
			return "", false, nil
		}
	}
}

// boundedLines is bufio.ScanLines with a length limit. A line of limit
// bytes or more is skipped up to its newline and yields an empty token.
func boundedLines(limit int) bufio.SplitFunc {
	discarding := false
	return func(data []byte, atEOF bool) (int, []byte, error) {
		i := bytes.IndexByte(data, '\n')
		switch {
		case discarding && i >= 0:
			discarding = false
			return i + 1, []byte{}, nil
		case discarding:
			return len(data), nil, nil
		case i >= limit:
			return i + 1, []byte{}, nil
		case i < 0 && len(data) >= limit:
			discarding = true
			return len(data), nil, nil
		default:
			return bufio.ScanLines(data, atEOF)
		}
	}
}
