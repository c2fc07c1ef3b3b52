package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempLogPath points the log at a temp dir for the duration of the test.
func useTempLogPath(t *testing.T) string {
	t.Helper()
	resetForTest()

	tmpDir := t.TempDir()
	origGetLogPath := getLogPath
	getLogPath = func() (string, error) {
		return filepath.Join(tmpDir, LogDirName, LogFileName), nil
	}
	t.Cleanup(func() {
		getLogPath = origGetLogPath
		Close()
		resetForTest()
	})
	return filepath.Join(tmpDir, LogDirName, LogFileName)
}

func TestInit_Disabled(t *testing.T) {
	resetForTest()

	require.NoError(t, Init(false))
	assert.False(t, Enabled())

	// Logging should be no-ops
	Log("test message", "key", "value")
	Logf("test %s", "formatted")
}

func TestInit_Enabled(t *testing.T) {
	logPath := useTempLogPath(t)

	require.NoError(t, Init(true))
	assert.True(t, Enabled())

	Log("commit", "value", "Banana", "index", 0)
	Logf("test %s %d", "formatted", 42)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	s := string(content)
	assert.Contains(t, s, "debug log started")
	assert.Contains(t, s, "commit")
	assert.Contains(t, s, "value=Banana")
	assert.Contains(t, s, "index=0")
	assert.Contains(t, s, "test formatted 42")
}

func TestInit_TruncatesExistingLog(t *testing.T) {
	logPath := useTempLogPath(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(logPath), 0755))
	require.NoError(t, os.WriteFile(logPath, []byte("old log content that should be truncated\n"), 0600))

	require.NoError(t, Init(true))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "old log content")
	assert.Contains(t, string(content), "debug log started")
}

func TestInit_FailureLeavesLoggingDisabled(t *testing.T) {
	logPath := useTempLogPath(t)

	// A file where the log directory should be makes MkdirAll fail
	require.NoError(t, os.WriteFile(filepath.Dir(logPath), []byte("not a dir"), 0600))

	require.Error(t, Init(true))
	assert.False(t, Enabled())
	Log("dropped", "key", "value")
}

func TestClose(t *testing.T) {
	useTempLogPath(t)

	require.NoError(t, Init(true))

	// Multiple closes should be safe
	Close()
	Close()
	Close()
}

func TestGetLogPath(t *testing.T) {
	path, err := GetLogPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(LogDirName, LogFileName)),
		"GetLogPath() = %q, want suffix %q", path, filepath.Join(LogDirName, LogFileName))
}

// resetForTest resets the package state for testing.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = nil
}
