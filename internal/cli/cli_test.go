package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textbits/alphamap/internal/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "none", Date: "unknown"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alphabet.abm")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckCommand(t *testing.T) {
	path := writeDefinition(t, "[41,5A]\n[61,7A]\n")
	_, err := execute(t, "check", path)
	assert.NoError(t, err)
}

func TestCheckCommandOutOfOrder(t *testing.T) {
	path := writeDefinition(t, "[61,7A]\n[41,5A]\n")
	_, err := execute(t, "check", path)
	assert.Error(t, err)
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, err := execute(t, "check", filepath.Join(t.TempDir(), "nope.abm"))
	assert.Error(t, err)
}

func TestCompileAndDump(t *testing.T) {
	def := writeDefinition(t, "# letters\n[41,5A]\n[61,7A]\n")
	out := filepath.Join(t.TempDir(), "alphabet.bin")

	_, err := execute(t, "compile", def, out)
	require.NoError(t, err)

	blob, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, blob, 8+8*2)

	dumped, err := execute(t, "dump", out)
	require.NoError(t, err)
	assert.Equal(t, "[41,5A]\n[61,7A]\n", dumped)
}

func TestDumpRejectsForeignFile(t *testing.T) {
	path := writeDefinition(t, "not a binary block")
	_, err := execute(t, "dump", path)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	_, err := execute(t, "version")
	assert.NoError(t, err)
}
