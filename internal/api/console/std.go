package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const maxLineSize = 1024 * 1024

// ErrLineTooLong is returned by Read for a line over the size limit.
// The line is discarded and reading continues with the next one.
var ErrLineTooLong = errors.New("Input line is too long")

// Std is a Console over plain streams: results go to out, errors to errOut
type Std struct {
	reader      *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	maxLineSize int
}

// NewStd creates a console. The process passes os.Stdin, os.Stdout and os.Stderr.
func NewStd(in io.Reader, out, errOut io.Writer) *Std {
	return &Std{
		reader:      bufio.NewReaderSize(in, 64*1024),
		out:         out,
		errOut:      errOut,
		maxLineSize: maxLineSize,
	}
}

func (c *Std) Read() (string, error) {
	var (
		line    []byte
		tooLong bool
		eof     bool
	)

	for {
		chunk, err := c.reader.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > c.maxLineSize+2 {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			eof = true
			break
		}
		if err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		break
	}

	if tooLong {
		return "", ErrLineTooLong
	}
	if eof && len(line) == 0 {
		return "", io.EOF
	}

	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) > c.maxLineSize {
		return "", ErrLineTooLong
	}

	return string(line), nil
}

func (c *Std) WriteLine(line string) error {
	_, err := fmt.Fprintln(c.out, line)
	return err
}

func (c *Std) WriteError(line string) error {
	_, err := fmt.Fprintln(c.errOut, line)
	return err
}
