package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/FabLrc/GithubCICDChecker/internal/config"
	"github.com/FabLrc/GithubCICDChecker/internal/logging"
	"github.com/FabLrc/GithubCICDChecker/internal/tui"
)

//nolint:gochecknoglobals // Tracks the optional rotating log file so Execute can close it on exit.
var (
	logFileWriter io.WriteCloser
	logFileMutex  sync.Mutex
)

// InitLogger initializes the zerolog logger according to the verbosity flags
// and the log section of the configuration. Flags win over the configured
// level. When a log file is configured, entries are mirrored to it as JSON
// through a rotating, sensitive-data-filtering writer.
func InitLogger(verbose, quiet bool, logCfg config.LogConfig) (zerolog.Logger, error) {
	level := selectLevel(verbose, quiet, logCfg.Level)
	output := selectOutput()

	if logCfg.File != "" {
		fileWriter, err := createLogFileWriter(logCfg)
		if err != nil {
			return zerolog.Logger{}, err
		}
		setLogFileWriter(fileWriter)
		output = zerolog.MultiLevelWriter(output, fileWriter)
	}

	logger := zerolog.New(output).
		Level(level).
		Hook(logging.NewSensitiveDataHook()).
		With().
		Timestamp().
		Logger()

	// Keep the zerolog global in sync so packages resolving a logger via
	// zerolog.Ctx fall back to the same destination.
	log.Logger = logger

	return logger, nil
}

// InitLoggerWithWriter builds a logger writing to the given writer, for tests
// that assert on log output.
func InitLoggerWithWriter(w io.Writer, verbose, quiet bool, logCfg config.LogConfig) zerolog.Logger {
	return zerolog.New(w).
		Level(selectLevel(verbose, quiet, logCfg.Level)).
		Hook(logging.NewSensitiveDataHook()).
		With().
		Timestamp().
		Logger()
}

// selectLevel maps verbosity flags and the configured level to a zerolog
// level. --verbose and --quiet take precedence over the config file.
func selectLevel(verbose, quiet bool, configured string) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		if configured == "" {
			return zerolog.InfoLevel
		}
		level, err := zerolog.ParseLevel(configured)
		if err != nil {
			return zerolog.InfoLevel
		}
		return level
	}
}

// selectOutput picks the console destination: a human-friendly console writer
// when stderr is a terminal, raw JSON otherwise (pipes, CI).
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    !tui.HasColorSupport(),
		}
	}
	return os.Stderr
}

// createLogFileWriter opens the rotating log file described by the config.
// The writer filters sensitive values before anything reaches disk.
func createLogFileWriter(logCfg config.LogConfig) (io.WriteCloser, error) {
	if dir := filepath.Dir(logCfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	rotating := &lumberjack.Logger{
		Filename:   logCfg.File,
		MaxSize:    logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
		MaxAge:     logCfg.MaxAgeDays,
		Compress:   true,
	}

	return &filteringWriteCloser{
		FilteringWriter: logging.NewFilteringWriter(rotating),
		closer:          rotating,
	}, nil
}

// filteringWriteCloser pairs a FilteringWriter with the Close method of the
// underlying rotating file.
type filteringWriteCloser struct {
	*logging.FilteringWriter
	closer io.Closer
}

func (f *filteringWriteCloser) Close() error {
	return f.closer.Close()
}

func setLogFileWriter(w io.WriteCloser) {
	logFileMutex.Lock()
	defer logFileMutex.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
	}
	logFileWriter = w
}

// CloseLogFile closes the log file writer if one was opened. Safe to call
// multiple times.
func CloseLogFile() {
	logFileMutex.Lock()
	defer logFileMutex.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}
