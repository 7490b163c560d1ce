package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readResult struct {
	Path    string  `json:"path"`
	Content *string `json:"content"`
	Error   string  `json:"error"`
}

func readJSON(t *testing.T, out string) []readResult {
	t.Helper()
	var res []readResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), "output: %s", out)
	return res
}

func TestRead(t *testing.T) {
	t.Run("batch in order", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "alpha\n")
		env.write("src/b.go", "package b\n")

		res := readJSON(t, env.runStdout("read", "src/b.go", "missing.txt", "src", "a.txt"))

		require.Len(t, res, 4)
		assert.Equal(t, "src/b.go", res[0].Path)
		require.NotNil(t, res[0].Content)
		assert.Equal(t, "package b\n", *res[0].Content)
		assert.Equal(t, "File not found", res[1].Error)
		assert.Equal(t, "Path is not a file", res[2].Error)
		require.NotNil(t, res[3].Content)
		assert.Equal(t, "alpha\n", *res[3].Content)
	})

	t.Run("line range", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "1\n2\n3\n4\n")

		res := readJSON(t, env.runStdout("read", "a.txt", "-l", "2:3"))
		require.NotNil(t, res[0].Content)
		assert.Equal(t, "2\n3", *res[0].Content)

		res = readJSON(t, env.runStdout("read", "a.txt", "-l", "10:"))
		require.NotNil(t, res[0].Content)
		assert.Equal(t, "", *res[0].Content)
	})

	t.Run("invalid line range", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "1\n")

		out, err := env.runErr("read", "a.txt", "-l", "5:2")
		require.Error(t, err)
		env.contains(out, "start_line (5) cannot be greater than end_line (2)")
	})

	t.Run("dir flag", func(t *testing.T) {
		env := newTestEnv(t)
		other := t.TempDir()
		env.write("a.txt", "here\n")

		res := readJSON(t, env.runStdout("--dir", env.dir, "read", "a.txt"))
		require.NotNil(t, res[0].Content)
		assert.Equal(t, "here\n", *res[0].Content)

		res = readJSON(t, env.runStdout("--dir", other, "read", "a.txt"))
		assert.Equal(t, "File not found", res[0].Error)
	})
}
