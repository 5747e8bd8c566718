package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotypuzzle/doty/pkg/dates"
	"github.com/dotypuzzle/doty/pkg/version"
)

// A 2x3 board with a domino and a monomino. Targeting the top row leaves
// the bottom row to be tiled, which has exactly two solutions.
const tinyDefinition = `board: |
  ┏━━━┳━━━┳━━━┓
  ┃  A┃  B┃  C┃
  ┣━━━╋━━━╋━━━┫
  ┃  D┃  E┃  F┃
  ┗━━━┻━━━┻━━━┛
pieces: |
  D M
  🟦 🟦
  🟦 ⬜️
`

func writeTinyPuzzle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinyDefinition), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, version.String(), out)
}

func TestSolveTinyPuzzle(t *testing.T) {
	out, err := execute(t, "--puzzle", writeTinyPuzzle(t), "a", "b", "c")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Target date: A B C\n"), out)
	assert.Contains(t, out, "┃  A┃  B┃  C┃")
	assert.NotContains(t, out, "No solution found")
}

func TestCountTinyPuzzle(t *testing.T) {
	out, err := execute(t, "--count", "--puzzle", writeTinyPuzzle(t), "a", "b", "c")
	require.NoError(t, err)

	assert.Contains(t, out, "Target date: A B C\n")
	assert.Contains(t, out, "\r\x1b[K|solutions| ≥ 1")
	assert.True(t, strings.HasSuffix(out, "\r\x1b[K|solutions| = 2\n"), out)
}

func TestCountAndShowTinyPuzzle(t *testing.T) {
	out, err := execute(t, "-c", "-s", "--puzzle", writeTinyPuzzle(t), "a", "b", "c")
	require.NoError(t, err)

	assert.Contains(t, out, "Solution #1:\n")
	// Height 2 board: each rendered solution is 2*2+3 lines up.
	assert.Contains(t, out, "\x1b[7A\nSolution #2:\n")
	assert.True(t, strings.HasSuffix(out, "\r\x1b[K|solutions| = 2\n"), out)
}

func TestCountWithoutInstanceConstraints(t *testing.T) {
	out, err := execute(t, "--count", "--disable", "I.1,I.2", "--puzzle", writeTinyPuzzle(t), "a", "b", "c")
	require.NoError(t, err)

	// 7 domino placements, each leaving 4 cells for the monomino.
	assert.True(t, strings.HasSuffix(out, "|solutions| = 28\n"), out)
}

func TestNoSolution(t *testing.T) {
	// B, D and F leave three pairwise non-adjacent cells for the domino.
	out, err := execute(t, "--puzzle", writeTinyPuzzle(t), "b", "d", "f")
	require.ErrorIs(t, err, errNoSolution)

	assert.Contains(t, out, "Target date: B D F\n")
	assert.Contains(t, out, "No solution found\n")
}

func TestVerboseBreakdown(t *testing.T) {
	out, err := execute(t, "-v", "--puzzle", writeTinyPuzzle(t), "a", "b", "c")
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "Target date:"), strings.Index(out, "[THEORY]"))
	assert.Contains(t, out, "[THEORY] Formula components:\n")
	assert.Contains(t, out, "[THEORY] - Included: T.1 T.2 T.3.1 T.3.2 E.1.1 E.2.1 I.1 I.2\n")
	assert.Contains(t, out, "[THEORY] - Excluded: T.4 E.1.2 E.2.2\n")
	assert.Contains(t, out, "[CNF] Formula size:\n")
	assert.Contains(t, out, "[CNF] - variables: 25\n")
	assert.Contains(t, out, "[CNF] - clauses:   ")
	assert.Contains(t, out, "[CNF] - literals:  ")
	assert.Contains(t, out, "[TIME] Total CPU time: ")
	assert.Contains(t, out, "[TIME] - Preprocessing: ")
	assert.Contains(t, out, "[TIME] - SAT solving: ")
	assert.Contains(t, out, "[TIME] - Other: ")
}

func TestDumpArtifacts(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })

	prefix := dates.ExportPrefix([]string{"A", "B", "C"}, time.Now())

	t.Run("SingleSolve", func(t *testing.T) {
		require.NoError(t, os.Chdir(t.TempDir()))
		out, err := execute(t, "--dump", "-v", "--puzzle", writeTinyPuzzle(t), "a", "b", "c")
		require.NoError(t, err)

		assert.Contains(t, out, "[DIMACS] Dumping instance(s):\n")
		assert.Contains(t, out, "[DIMACS] - '"+prefix+"_SAT_multiModel.cnf'\n")
		assert.FileExists(t, prefix+"_SAT_multiModel.cnf")
		assert.NoFileExists(t, prefix+"_SAT_singleModel.cnf")
		assert.NoFileExists(t, prefix+"_UNSAT.cnf")
	})

	t.Run("Exhausted", func(t *testing.T) {
		require.NoError(t, os.Chdir(t.TempDir()))
		_, err := execute(t, "--count", "--dump", "--puzzle", writeTinyPuzzle(t), "a", "b", "c")
		require.NoError(t, err)

		assert.FileExists(t, prefix+"_SAT_multiModel.cnf")
		assert.FileExists(t, prefix+"_SAT_singleModel.cnf")
		assert.FileExists(t, prefix+"_UNSAT.cnf")
	})

	t.Run("Unsatisfiable", func(t *testing.T) {
		require.NoError(t, os.Chdir(t.TempDir()))
		unsatPrefix := dates.ExportPrefix([]string{"B", "D", "F"}, time.Now())
		_, err := execute(t, "--dump", "--puzzle", writeTinyPuzzle(t), "b", "d", "f")
		require.ErrorIs(t, err, errNoSolution)

		assert.FileExists(t, unsatPrefix+"_UNSAT.cnf")
	})
}

func TestUnknownComponentFlag(t *testing.T) {
	_, err := execute(t, "--enable", "X.9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theory component "X.9"`)
}

func TestMissingPuzzleFile(t *testing.T) {
	_, err := execute(t, "--puzzle", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading puzzle definition")
}
