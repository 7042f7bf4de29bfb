package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error makes the loader fail inside app.NewApp, which panics.
	invalidHCL := `
		resource "image" "color" {
			format = "R8G8B8A8_UNORM"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600), "failed to set up test file")

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_RecordsFrames(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	graph := `
		resource "image" "color" {
			format = "B8G8R8A8_UNORM_SRGB"
			width  = 16
			height = 16
		}
		node "clear_color" "clear" {
			view "target" {
				resource = "color"
				access   = ["render_target", "clear"]
			}
		}
	`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(graph), 0600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-frames", "2", "-no-debug-print", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "frame 2: 1 entries\n  [0] clear (clear_color) tag=0\n")
}
