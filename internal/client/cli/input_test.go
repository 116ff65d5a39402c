package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var w bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  León \nnext\n"))

	got, err := GetSimpleText(r, "Nombre", &w)
	require.NoError(t, err)
	assert.Equal(t, "León", got)
	assert.Equal(t, "Nombre\n> ", w.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("tail"))

	got, err := GetSimpleText(r, "p", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "p", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	var w bytes.Buffer
	pw, err := GetPassword(&w)
	require.NoError(t, err)
	assert.Equal(t, []byte("pw"), pw)
	assert.Equal(t, "Enter password: \n", w.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	_, err = GetPassword(io.Discard)
	assert.EqualError(t, err, "no tty")
}
