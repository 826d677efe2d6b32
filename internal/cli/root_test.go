package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(fixedNow)
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_PersistsBetweenRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ingredients.txt")

	out, err := runRoot(t, "add n/egg a/12 e/05/03/2024\nadd n/milk a/0.5 e/02/03/2024\nexit\n",
		"--plain", "--theme", "mono", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to SITUS!")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "egg|12|kg|05/03/2024\nmilk|0.5|kg|02/03/2024\n", string(b))

	out, err = runRoot(t, "list\nalerts stock\n", "--plain", "--theme", "mono", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1. egg | Amount Left: 12 kg | Expiry Date: 05/03/2024")
	assert.Contains(t, out, "Ingredients below 1 kg:")
	assert.Contains(t, out, "milk | Amount Left: 0.5 kg")
}

func TestRootCmd_ReadsLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingredients.txt")
	require.NoError(t, os.WriteFile(path, []byte("flour|2|01/04/2024\nbroken line\n"), 0o644))

	out, err := runRoot(t, "list\nexit\n", "--plain", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "flour | Amount Left: 2 kg | Expiry Date: 01/04/2024")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "flour|2|kg|01/04/2024\n", string(b), "exit rewrites in the canonical layout")
}

func TestRootCmd_EnvConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.txt")
	t.Setenv("SITUS_DATA_PATH", path)
	t.Setenv("SITUS_EXPIRY_THRESHOLD_DAYS", "10")

	out, err := runRoot(t, "add n/egg a/12 e/09/03/2024\nalerts expiry\n", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Ingredients expiring within 10 days:")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRootCmd_BadFlags(t *testing.T) {
	_, err := runRoot(t, "", "--plain", "--loglevel", "loud", "--data", filepath.Join(t.TempDir(), "x.txt"))
	assert.Error(t, err)

	_, err = runRoot(t, "", "extra-arg")
	assert.Error(t, err)
}
