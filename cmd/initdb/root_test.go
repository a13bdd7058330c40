package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestEnv points the database and log directory into dir.
func setTestEnv(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("DATABASE_DSN", filepath.Join(dir, "trading.db"))
	t.Setenv("LOGS_DIR", filepath.Join(dir, "logs"))
	t.Setenv("LOGGER_LEVEL", "error")
}

// execute runs the command with configDir and returns its stdout.
func execute(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// runRoot executes the command against dir and returns its stdout.
func runRoot(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	setTestEnv(t, dir)
	return execute(t, dir, args...)
}

func TestRootCmd_Success(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Database initialized!")
	assert.Contains(t, out, filepath.Join(dir, "trading.db"))
	assert.FileExists(t, filepath.Join(dir, "trading.db"))
	assert.DirExists(t, filepath.Join(dir, "logs"))
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	_, err := runRoot(t, t.TempDir(), "extra")

	assert.Error(t, err)
}

func TestRootCmd_Failure(t *testing.T) {
	dir := t.TempDir()
	setTestEnv(t, dir)
	// Parent directory of the database does not exist.
	t.Setenv("DATABASE_DSN", filepath.Join(dir, "missing", "trading.db"))

	out, err := execute(t, dir)

	require.Error(t, err)
	assert.Contains(t, out, "Database initialization failed")
	assert.DirExists(t, filepath.Join(dir, "logs"))
}

// TestMainExitCode re-executes the test binary so main can call os.Exit.
func TestMainExitCode(t *testing.T) {
	if os.Getenv("INITDB_RUN_MAIN") == "1" {
		os.Args = []string{"initdb", "--config", os.Getenv("INITDB_CONFIG_DIR")}
		main()
		return
	}

	testCases := []struct {
		name     string
		dsn      func(dir string) string
		exitCode int
	}{
		{
			name:     "Success",
			dsn:      func(dir string) string { return filepath.Join(dir, "trading.db") },
			exitCode: 0,
		},
		{
			name:     "Database failure",
			dsn:      func(dir string) string { return filepath.Join(dir, "missing", "trading.db") },
			exitCode: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			cmd := exec.Command(os.Args[0], "-test.run=^TestMainExitCode$")
			cmd.Env = append(os.Environ(),
				"INITDB_RUN_MAIN=1",
				"INITDB_CONFIG_DIR="+dir,
				"DATABASE_DSN="+tc.dsn(dir),
				"LOGS_DIR="+filepath.Join(dir, "logs"),
				"LOGGER_LEVEL=error",
			)

			err := cmd.Run()

			if tc.exitCode == 0 {
				assert.NoError(t, err)
				return
			}
			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tc.exitCode, exitErr.ExitCode())
		})
	}
}
