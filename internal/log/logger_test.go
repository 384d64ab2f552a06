package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, minLevel Level) (*Logger, string) {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "test.log")
	logger, err := New(logPath, minLevel)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, logPath
}

func readLog(t *testing.T, logPath string) string {
	t.Helper()

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_WritesAllLevels(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelDebug)

	logger.Debug("debug line")
	logger.Info("info line")
	logger.Warn("warn line")
	logger.Error("error line")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "DEBUG: debug line")
	require.Contains(t, content, "INFO: info line")
	require.Contains(t, content, "WARN: warn line")
	require.Contains(t, content, "ERROR: error line")
}

func TestLogger_MinLevelFilters(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelWarn)

	logger.Debug("debug line")
	logger.Info("info line")
	logger.Warn("warn line")
	logger.Error("error line")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.NotContains(t, content, "DEBUG")
	require.NotContains(t, content, "INFO")
	require.Contains(t, content, "WARN: warn line")
	require.Contains(t, content, "ERROR: error line")
}

func TestLogger_FormatsArguments(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)

	logger.Info("opened %s after %d tries", "history.db", 2)
	require.NoError(t, logger.Close())

	require.Contains(t, readLog(t, logPath), "INFO: opened history.db after 2 tries")
}

func TestLogger_FileKeptPrivate(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)

	logger.Info("line")
	require.NoError(t, logger.Close())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_CreatesDirectory(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	logPath := filepath.Join(logDir, "test.log")

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestLogger_TightensExistingFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(logPath, []byte("old\n"), 0644))

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_Appends(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	first, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	first.Info("first line")
	require.NoError(t, first.Close())

	second, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	second.Info("second line")
	require.NoError(t, second.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "first line")
	require.Contains(t, content, "second line")
}

func TestLogger_SetEnabled(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)

	logger.Info("before")
	logger.SetEnabled(false)
	logger.Info("while off")
	logger.SetEnabled(true)
	logger.Info("after")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "before")
	require.NotContains(t, content, "while off")
	require.Contains(t, content, "after")
}

func TestLogger_Writer(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelDebug)

	w := logger.Writer(LevelInfo)
	n, err := w.Write([]byte("piped line"))
	require.NoError(t, err)
	require.Equal(t, len("piped line"), n)
	require.NoError(t, logger.Close())

	require.Contains(t, readLog(t, logPath), "INFO: piped line")
}

func TestLogger_NilReceiverIsSafe(t *testing.T) {
	var logger *Logger

	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
	logger.SetEnabled(true)
	require.NoError(t, logger.Close())
}

func TestNew_DirectoryCreationFails(t *testing.T) {
	// A regular file where a path component should be a directory.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	_, err := New(filepath.Join(blocker, "sub", "test.log"), LevelInfo)
	require.Error(t, err)
	require.Contains(t, err.Error(), "create log directory")
}

func TestNew_OpenFails(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	readOnly := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.Mkdir(readOnly, 0500))

	_, err := New(filepath.Join(readOnly, "test.log"), LevelInfo)
	require.Error(t, err)
	require.Contains(t, err.Error(), "open log file")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{input: "debug", want: LevelDebug},
		{input: "DEBUG", want: LevelDebug},
		{input: "info", want: LevelInfo},
		{input: "Warn", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "verbose", want: LevelWarn},
		{input: "", want: LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

// TestInit drives the package-level logger. It owns the only Init call in
// this package; Init is once-only per process.
func TestInit(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "global.log")

	require.NoError(t, Init(logPath, LevelInfo))
	require.NotNil(t, GetLogger())

	Debug("filtered out")
	Info("global info line")
	Warn("global warn line")
	Error("global error line")
	require.NoError(t, Close())

	content := readLog(t, logPath)
	require.NotContains(t, content, "filtered out")
	require.Contains(t, content, "INFO: global info line")
	require.Contains(t, content, "WARN: global warn line")
	require.Contains(t, content, "ERROR: global error line")

	// A second Init is a no-op and keeps the first logger.
	require.NoError(t, Init(filepath.Join(t.TempDir(), "other.log"), LevelDebug))
	require.NotNil(t, GetLogger())
}

func TestGlobalFuncs_NoLogger(t *testing.T) {
	defaultLoggerMu.Lock()
	saved := defaultLogger
	defaultLogger = nil
	defaultLoggerMu.Unlock()
	defer func() {
		defaultLoggerMu.Lock()
		defaultLogger = saved
		defaultLoggerMu.Unlock()
	}()

	Debug("nowhere")
	Info("nowhere")
	Warn("nowhere")
	Error("nowhere")
	require.NoError(t, Close())
	require.Nil(t, GetLogger())
}

func TestNopLogger(t *testing.T) {
	nop := NopLogger{}

	nop.Debug("ignored %d", 1)
	nop.Info("ignored")
	nop.Warn("ignored")
	nop.Error("ignored")
	require.NoError(t, nop.Close())
}
