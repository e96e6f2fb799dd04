package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krowne/krownebase/internal/services"
)

func runPimctl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestImportDryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("sku,product_description\nKR-1,Beer tower\nKR-2,Hand sink\n"), 0o600))

	out, err := runPimctl(t, "import", "--dry-run", path)
	require.NoError(t, err)

	var result services.ImportResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.RecordsProcessed)
	assert.Equal(t, "CSV uploaded successfully", result.Message)
}

func TestImportDryRunReportsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("sku,product_description\n"), 0o600))

	_, err := runPimctl(t, "import", "--dry-run", path)
	assert.Error(t, err)
}

func TestImportRequiresFile(t *testing.T) {
	_, err := runPimctl(t, "import")
	assert.Error(t, err)

	_, err = runPimctl(t, "import", "--dry-run", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
