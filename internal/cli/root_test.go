package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tablecheck/internal/cli/commands"
)

func writeFixtures(t *testing.T, csvRows string) (checksPath, dataPath string) {
	t.Helper()
	dir := t.TempDir()

	checksPath = filepath.Join(dir, "checks.hcl")
	require.NoError(t, os.WriteFile(checksPath, []byte(`
checkset "orders" {
  check "amount_positive" {
    expr        = positive(amount)
    description = "order amounts are > 0"
  }
  check "amount_le_total" {
    expr = le(amount, total)
  }
}
`), 0o644))

	dataPath = filepath.Join(dir, "orders.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte(csvRows), 0o644))
	return checksPath, dataPath
}

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunCommandPassing(t *testing.T) {
	checks, data := writeFixtures(t, "amount,total\n1,2\n3,4\n")

	stdout, _, err := executeCommand(t, "run", "--checks", checks, "--data", data)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Checkset: orders")
	assert.Contains(t, stdout, "2/2 checks passed (100.0%)")
	assert.Contains(t, stdout, "✓ all checks passed")
}

func TestRunCommandFailing(t *testing.T) {
	checks, data := writeFixtures(t, "amount,total\n-1,2\n3,4\n")

	stdout, stderr, err := executeCommand(t, "run", "--checks", checks, "--data", data)
	require.ErrorIs(t, err, commands.ErrChecksFailed)
	assert.Contains(t, stdout, "1 rows failed")
	assert.Contains(t, stdout, "row 1: amount=-1")
	assert.Contains(t, stderr, "✗ 1 of 2 checks failed")
	assert.NotContains(t, stdout, "✗ 1 of 2 checks failed")
}

func TestRunCommandConcurrent(t *testing.T) {
	checks, data := writeFixtures(t, "amount,total\n1,2\n3,4\n")

	stdout, _, err := executeCommand(t, "run", "--checks", checks, "--data", data, "--concurrent", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2/2 checks passed")
}

func TestRunCommandJSON(t *testing.T) {
	checks, data := writeFixtures(t, "amount,total\n-1,2\n3,4\n")

	stdout, stderr, err := executeCommand(t, "run", "--checks", checks, "--data", data, "--output", "json")
	require.ErrorIs(t, err, commands.ErrChecksFailed)
	assert.Empty(t, stderr, "json mode emits no styled lines")

	var out commands.RunOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "orders", out.Checkset)
	assert.Equal(t, 1, out.Passed)
	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Checks, 2)
	assert.Equal(t, "amount_positive", out.Checks[0].Name, "failed checks listed first")
	assert.Equal(t, []int{1}, out.Checks[0].FailingRows)
}

func TestRunCommandMissingData(t *testing.T) {
	checks, _ := writeFixtures(t, "amount,total\n1,2\n")

	_, _, err := executeCommand(t, "run", "--checks", checks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data file is required")
}

func TestChecksCommand(t *testing.T) {
	checks, _ := writeFixtures(t, "amount,total\n1,2\n")

	stdout, _, err := executeCommand(t, "checks", "--checks", checks)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Checkset: orders (2 checks)")
	assert.Contains(t, stdout, "amount_positive")
	assert.Contains(t, stdout, "[amount, total]")
}

func TestChecksCommandTable(t *testing.T) {
	checks, _ := writeFixtures(t, "amount,total\n1,2\n")

	stdout, _, err := executeCommand(t, "checks", "--checks", checks, "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "amount_positive")
	assert.Contains(t, stdout, "positive")
	assert.Contains(t, stdout, "order amounts are > 0")
}

func TestPredicatesCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "predicates")
	require.NoError(t, err)
	for _, name := range []string{"not_null", "non_empty", "positive", "gt", "eq"} {
		assert.Contains(t, stdout, name)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tablecheck "+Version)
}
