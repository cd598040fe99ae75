package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satcore/cdcl/internal/sat"
)

func writeInstance(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.cnf")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSolveFile_sat(t *testing.T) {
	path := writeInstance(t, "p cnf 1 1\n1 0\n")

	solver, result, err := solveFile(path, 0, false, "")
	require.NoError(t, err)
	require.Equal(t, sat.StatusSat, result.Status)
	require.Equal(t, 1, solver.NumVariables())
}

func TestSolveFile_unsat(t *testing.T) {
	path := writeInstance(t, "p cnf 1 2\n1 0\n-1 0\n")

	_, result, err := solveFile(path, 0, false, "")
	require.NoError(t, err)
	require.Equal(t, sat.StatusUnsat, result.Status)
}

func TestSolveFile_missingFile(t *testing.T) {
	_, _, err := solveFile(filepath.Join(t.TempDir(), "missing.cnf"), 0, false, "")
	require.Error(t, err)
}

func TestSolveFile_malformedInstance(t *testing.T) {
	path := writeInstance(t, "not a dimacs file\n")

	_, _, err := solveFile(path, 0, false, "")
	require.Error(t, err)
}

func TestNewRootCommand_requiresInstanceArg(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"solve"})
	root.SetOut(new(discardWriter))
	root.SetErr(new(discardWriter))

	err := root.Execute()
	require.Error(t, err)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
