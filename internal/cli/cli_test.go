package cli

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/tg-mosaic/internal/tiler"
)

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	// Keep a developer's ~/.tg-mosaic.yaml out of the tests.
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func createTestImage(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.png")
	require.NoError(t, imaging.Save(imaging.New(width, height, color.NRGBA{200, 10, 10, 255}), path))
	return path
}

func TestSplit(t *testing.T) {
	src := createTestImage(t, 130, 100)
	outDir := filepath.Join(t.TempDir(), "out")

	stdout, _, err := runCLI(t, "", "split", src, outDir)
	require.NoError(t, err)

	assert.Equal(t, "created 2 tiles in "+outDir+"\n", stdout)
	assert.FileExists(t, filepath.Join(outDir, tiler.TileName(0)))
	assert.FileExists(t, filepath.Join(outDir, tiler.TileName(1)))
}

func TestSplit_OutputFlag(t *testing.T) {
	src := createTestImage(t, 250, 50)
	outDir := filepath.Join(t.TempDir(), "flagged")

	stdout, _, err := runCLI(t, "", "split", "-o", outDir, src)
	require.NoError(t, err)
	assert.Contains(t, stdout, "created 5 tiles in "+outDir)
}

func TestSplit_OutputFromEnv(t *testing.T) {
	src := createTestImage(t, 100, 100)
	outDir := filepath.Join(t.TempDir(), "from-env")
	t.Setenv("TG_MOSAIC_OUTPUT", outDir)

	stdout, _, err := runCLI(t, "", "split", src)
	require.NoError(t, err)
	assert.Contains(t, stdout, "created 1 tiles in "+outDir)
	assert.FileExists(t, filepath.Join(outDir, tiler.TileName(0)))
}

func TestSplit_DebugLogging(t *testing.T) {
	src := createTestImage(t, 130, 100)

	_, stderr, err := runCLI(t, "", "--debug", "--log-format", "json", "split", src, t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"tile written"`)
	assert.Contains(t, stderr, `"message":"image split"`)
}

func TestSplit_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("nope"), 0o644))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no arguments", []string{"split"}, "accepts between 1 and 2 arg(s)"},
		{"missing source", []string{"split", filepath.Join(dir, "missing.png"), dir}, "file not found"},
		{"directory source", []string{"split", dir, dir}, "not a regular file"},
		{"undecodable source", []string{"split", garbage, filepath.Join(dir, "out")}, "failed to decode image"},
		{"bad log level", []string{"--log-level", "loud", "split", garbage}, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPlan(t *testing.T) {
	src := createTestImage(t, 250, 50)

	stdout, _, err := runCLI(t, "", "plan", src)
	require.NoError(t, err)

	assert.Regexp(t, `source:\s+250x50\n`, stdout)
	assert.Regexp(t, `normalized:\s+500x100 \(resized\)\n`, stdout)
	assert.Regexp(t, `tiles:\s+5\n`, stdout)
	assert.Regexp(t, `last tile:\s+100px wide\n`, stdout)
}

func TestServe(t *testing.T) {
	stdout, _, err := runCLI(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n", "serve")
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{}}`, stdout)
}

func TestConfigFile(t *testing.T) {
	src := createTestImage(t, 100, 100)
	outDir := filepath.Join(t.TempDir(), "configured")

	cfgPath := filepath.Join(t.TempDir(), "mosaic.yaml")
	cfg := "log-level: debug\nlog-format: json\noutput: " + outDir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	stdout, stderr, err := runCLI(t, "", "--config", cfgPath, "split", src)
	require.NoError(t, err)
	assert.Contains(t, stdout, outDir)
	assert.Contains(t, stderr, `"message":"using config file"`)
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tg-mosaic "+Version)
	assert.Contains(t, stdout, "Git commit:")
}
