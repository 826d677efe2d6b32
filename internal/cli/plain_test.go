package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlain(t *testing.T) {
	saver := &fakeSaver{}
	s := newTestSession(saver)
	in := strings.NewReader("add n/egg a/12 e/05/03/2024\nalerts foo\nlist\nexit\nlist\n")
	var out bytes.Buffer

	require.NoError(t, RunPlain(in, &out, s))

	got := out.String()
	assert.Contains(t, got, "Welcome to SITUS!")
	assert.Contains(t, got, "Current session date: 01/03/2024")
	assert.Contains(t, got, "Not an alert type!")
	assert.Contains(t, got, "1. egg | Amount Left: 12 kg")
	assert.Contains(t, got, "Goodbye.")
	assert.Equal(t, 1, strings.Count(got, "Here is the list"), "input after exit is ignored")
	assert.Len(t, saver.saves, 2)
}

func TestRunPlain_EOFSaves(t *testing.T) {
	saver := &fakeSaver{}
	s := newTestSession(saver)
	var out bytes.Buffer

	require.NoError(t, RunPlain(strings.NewReader("help\n"), &out, s))
	assert.Contains(t, out.String(), "Goodbye.")
	assert.Len(t, saver.saves, 1)
}
