package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khighness/advent/internal/input"
	"github.com/Khighness/advent/linsys"
)

// @Author KHighness
// @Update 2026-10-19

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func TestTop(t *testing.T) {
	out, err := run(t, "10 3 7\n1\n5\n", "top", "-k", "2")
	require.NoError(t, err)
	assert.Equal(t, "10\n7\nsum: 17\n", out)

	out, err = run(t, "4 8 1 9\n", "top")
	require.NoError(t, err)
	assert.Equal(t, "9\n8\n4\nsum: 21\n", out)

	_, err = run(t, "1 2\n", "top", "-k", "3")
	assert.Error(t, err)

	_, err = run(t, "1 x\n", "top")
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestMerge(t *testing.T) {
	out, err := run(t, "10-12\n1-3\n4-6\n", "merge")
	require.NoError(t, err)
	assert.Equal(t, "1-6\n10-12\nranges: 2 covered: 9\n", out)

	out, err = run(t, "1-3\n3-5\n", "merge", "-q")
	require.NoError(t, err)
	assert.Equal(t, "ranges: 1 covered: 5\n", out)
}

func TestMergeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranges.txt")
	require.NoError(t, os.WriteFile(path, []byte("5..7\n8..9\n"), 0o600))

	out, err := run(t, "", "merge", path)
	require.NoError(t, err)
	assert.Equal(t, "5-9\nranges: 1 covered: 5\n", out)

	_, err = run(t, "", "merge", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSets(t *testing.T) {
	out, err := run(t, "5\n0 1\n1 2\n3 4\n", "sets")
	require.NoError(t, err)
	assert.Regexp(t, `(?i)member\s*│\s*size`, out)
	assert.Regexp(t, `│\s*0\s*│\s*3\s*│`, out)
	assert.Regexp(t, `│\s*3\s*│\s*2\s*│`, out)
	assert.Regexp(t, `(?i)sets\s*│\s*2\s*│`, out)
	assert.Regexp(t, `(?s)│\s*0\s*│\s*3\s*│.*│\s*3\s*│\s*2\s*│`, out)

	out, err = run(t, "5\n0 1\n1 2\n3 4\n", "sets", "-l", "1")
	require.NoError(t, err)
	assert.Regexp(t, `│\s*0\s*│\s*3\s*│`, out)
	assert.NotRegexp(t, `│\s*3\s*│\s*2\s*│`, out)
	assert.Regexp(t, `(?i)sets\s*│\s*2\s*│`, out)

	_, err = run(t, "2\n0 2\n", "sets")
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestSolve(t *testing.T) {
	out, err := run(t, "2 1 = 5\n1 -1 = 1\n", "solve")
	require.NoError(t, err)
	assert.Equal(t, "x0 = 2\nx1 = 1\n", out)

	out, err = run(t, "2 = 1\n", "solve")
	require.NoError(t, err)
	assert.Equal(t, "x0 = 1/2\n", out)

	_, err = run(t, "1 1 = 2\n2 2 = 4\n", "solve")
	assert.ErrorIs(t, err, linsys.ErrCannotSolve)

	_, err = run(t, "1 1 = 2\n", "solve")
	assert.ErrorIs(t, err, linsys.ErrIncompatible)

	_, err = run(t, "", "solve")
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestHeavy(t *testing.T) {
	out, err := run(t, "a b a c\na b a\n", "heavy")
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(out), "TOTAL")
	assert.Contains(t, out, "a")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "advent dev (commit: none)\n", out)
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0o600))

	_, err := run(t, "1\n", "--config", path, "top", "-k", "1")
	assert.Error(t, err)
}
