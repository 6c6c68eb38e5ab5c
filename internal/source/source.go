package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line is a single input line with its 1-based position in the stream.
// Positions are assigned at read time and survive later filtering, so
// group output always refers to the original input location.
type Line struct {
	Number int
	Text   string
}

const (
	initialBufferSize  = 64 * 1024
	defaultMaxLineSize = 1024 * 1024 // 1MB
)

// ReadOptions bounds the line stream. Zero values mean unlimited
// lines and the default per-line size cap.
type ReadOptions struct {
	MaxLines    int
	MaxLineSize int
}

// ReadAll reads every line from r, stripping trailing newlines and
// replacing invalid UTF-8 sequences. Empty lines are kept; stats and
// severity analyses need them.
func ReadAll(r io.Reader, opts ReadOptions) ([]Line, error) {
	maxLineSize := opts.MaxLineSize
	if maxLineSize <= 0 {
		maxLineSize = defaultMaxLineSize
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialBufferSize), maxLineSize)

	var lines []Line
	n := 0
	for scanner.Scan() {
		if opts.MaxLines > 0 && n >= opts.MaxLines {
			break
		}
		n++
		lines = append(lines, Line{
			Number: n,
			Text:   strings.ToValidUTF8(scanner.Text(), "�"),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}
