package sources

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/pescuma/doclines/lib/document"
)

// ErrUnavailable is matched by errors returned when the input cannot be
// opened.
var ErrUnavailable = errors.New("unable to open input file")

// LineSource produces lines one at a time. Next returns io.EOF, and only
// io.EOF, when there is no more input. On any other error no line is
// returned; bytes already read for that line are only reported in the error.
type LineSource interface {
	Next() (document.Line, error)
}

type ReaderSource struct {
	reader *bufio.Reader
	done   bool
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		reader: bufio.NewReader(r),
	}
}

func (s *ReaderSource) Next() (document.Line, error) {
	if s.done {
		return "", io.EOF
	}

	text, err := s.reader.ReadString('\n')
	switch {
	case err == nil:
		return document.Line(text), nil

	case errors.Is(err, io.EOF):
		s.done = true
		if text == "" {
			return "", io.EOF
		}
		return document.Line(text), nil

	case text != "":
		return "", errors.Wrapf(err, "error reading line after %q", text)

	default:
		return "", errors.Wrap(err, "error reading line")
	}
}

type FileSource struct {
	*ReaderSource

	Path string
	file *os.File
}

func OpenFile(path string) (*FileSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &unavailableError{cause: err}
	}

	return &FileSource{
		ReaderSource: NewReaderSource(file),
		Path:         path,
		file:         file,
	}, nil
}

func (s *FileSource) Close() error {
	return errors.Wrapf(s.file.Close(), "error closing %v", s.Path)
}

type unavailableError struct {
	cause error
}

func (e *unavailableError) Error() string {
	return ErrUnavailable.Error() + ": " + e.cause.Error()
}

func (e *unavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *unavailableError) Unwrap() error {
	return e.cause
}
