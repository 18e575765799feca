package sources

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/doclines/lib/document"
)

func TestReaderSourceKeepsTerminators(t *testing.T) {
	t.Parallel()

	src := NewReaderSource(strings.NewReader("a\nb\r\n\nlast"))

	assert.Equal(t, []document.Line{"a\n", "b\r\n", "\n", "last"}, readAll(t, src))
}

func TestReaderSourceEmpty(t *testing.T) {
	t.Parallel()

	src := NewReaderSource(strings.NewReader(""))

	_, err := src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderSourceKeepsReturningEOF(t *testing.T) {
	t.Parallel()

	src := NewReaderSource(strings.NewReader("x"))

	l, err := src.Next()
	assert.Nil(t, err)
	assert.Equal(t, document.Line("x"), l)

	for i := 0; i < 3; i++ {
		_, err = src.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestReaderSourceReadErrorIsNotEOF(t *testing.T) {
	t.Parallel()

	broken := errors.New("disk on fire")
	src := NewReaderSource(io.MultiReader(strings.NewReader("a\n"), &failingReader{err: broken}))

	l, err := src.Next()
	assert.Nil(t, err)
	assert.Equal(t, document.Line("a\n"), l)

	_, err = src.Next()
	assert.NotEqual(t, io.EOF, err)
	assert.ErrorIs(t, err, broken)
	assert.False(t, errors.Is(err, io.EOF))
}

func TestReaderSourceReadErrorReportsPartialLine(t *testing.T) {
	t.Parallel()

	broken := errors.New("disk on fire")
	src := NewReaderSource(io.MultiReader(strings.NewReader("a\npart"), &failingReader{err: broken}))

	l, err := src.Next()
	assert.Nil(t, err)
	assert.Equal(t, document.Line("a\n"), l)

	l, err = src.Next()
	assert.Equal(t, document.Line(""), l)
	assert.ErrorIs(t, err, broken)
	assert.Contains(t, err.Error(), `"part"`)
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.txt")
	require.Nil(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o600))

	src, err := OpenFile(path)
	require.Nil(t, err)

	assert.Equal(t, path, src.Path)
	assert.Equal(t, []document.Line{"a\n", "b\n", "c\n"}, readAll(t, src))
	assert.Nil(t, src.Close())
}

func TestOpenFileMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")

	src, err := OpenFile(path)

	assert.Nil(t, src)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "unable to open input file")
	assert.Contains(t, err.Error(), "missing.txt")
}

func readAll(t *testing.T, src LineSource) []document.Line {
	var result []document.Line

	for {
		l, err := src.Next()
		if err == io.EOF {
			return result
		}
		require.Nil(t, err)

		result = append(result, l)
	}
}

type failingReader struct {
	err error
}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, f.err
}
