package lexer

import (
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceAdvance(t *testing.T) {
	s := NewSource("test.yasl", strings.NewReader("ab\nc"))

	assert.Equal(t, 'a', s.Current)
	assert.Equal(t, Pos{"test.yasl", 1, 1}, s.Pos())
	assert.False(t, s.AtEOF)

	s.Advance()
	assert.Equal(t, 'b', s.Current)
	assert.Equal(t, Pos{"test.yasl", 1, 2}, s.Pos())

	s.Advance()
	assert.Equal(t, '\n', s.Current)
	assert.Equal(t, Pos{"test.yasl", 1, 3}, s.Pos())

	// consuming the newline moves to the next line, column 1
	s.Advance()
	assert.Equal(t, 'c', s.Current)
	assert.Equal(t, Pos{"test.yasl", 2, 1}, s.Pos())

	s.Advance()
	assert.True(t, s.AtEOF)
	assert.Equal(t, Pos{"test.yasl", 2, 2}, s.Pos())

	// advancing past the end is a no-op; AtEOF and the position are latched
	s.Advance()
	assert.True(t, s.AtEOF)
	assert.Equal(t, Pos{"test.yasl", 2, 2}, s.Pos())
}

func TestSourceEmptyInput(t *testing.T) {
	s := NewSource("test.yasl", strings.NewReader(""))
	assert.True(t, s.AtEOF)
	assert.Equal(t, Pos{"test.yasl", 1, 1}, s.Pos())
}

type closeRecorder struct {
	io.Reader
	closed bool
	err    error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.err
}

func TestSourceClose(t *testing.T) {
	c := &closeRecorder{Reader: strings.NewReader("x")}
	s := NewSource("test.yasl", c)
	require.NoError(t, s.Close())
	assert.True(t, c.closed)
}

func TestSourceCloseError(t *testing.T) {
	c := &closeRecorder{Reader: strings.NewReader("x"), err: errors.New("bang")}
	s := NewSource("test.yasl", c)
	err := s.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing input")
}

type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestSourceReadErrorSurfacesOnClose(t *testing.T) {
	in := io.MultiReader(strings.NewReader("a"), errReader{err: errors.New("boom")})
	s := NewSource("test.yasl", in)

	assert.Equal(t, 'a', s.Current)
	s.Advance()
	// the stream ends at the failed read; Advance itself never fails
	assert.True(t, s.AtEOF)

	err := s.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
