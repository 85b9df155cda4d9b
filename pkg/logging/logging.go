package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/gl-driver-switch/pkg/paths"
)

// FileLevel is the minimum level written to the log file regardless of
// verbosity, so every relink leaves a record.
const FileLevel = zerolog.InfoLevel

// ConsoleLevel maps the -v count to the console log level
func ConsoleLevel(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// console is the stderr writer installed by SetupLogger
var (
	console    zerolog.LevelWriter = LevelFilter(newConsoleWriter(), zerolog.WarnLevel)
	withCaller bool
)

func newConsoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}
}

// newLogger builds the global logger on top of w
func newLogger(w io.Writer) zerolog.Logger {
	ctx := zerolog.New(w).With().Timestamp()
	// Add caller information for debug and trace levels
	if withCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// SetupLogger configures the global logger to write to the console at the
// level selected by verbosity. It touches no files; see OpenAuditLog.
func SetupLogger(verbosity int) {
	consoleLevel := ConsoleLevel(verbosity)
	zerolog.SetGlobalLevel(consoleLevel)

	console = LevelFilter(newConsoleWriter(), consoleLevel)
	withCaller = verbosity >= 2
	log.Logger = newLogger(console)

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// OpenAuditLog adds the log file at paths.LogFilePath to the global logger,
// recording FileLevel and above whatever the console level is. The returned
// function closes the file and goes back to console only logging; it is
// never nil, so callers can defer it even when the file could not be opened.
func OpenAuditLog() (func(), error) {
	logPath := paths.LogFilePath()
	file, err := setupLogFile(logPath)
	if err != nil {
		// Not being able to write the log file must never get in the way of
		// a switch, and a warning here would clutter the one-line diagnostics
		log.Debug().Err(err).Str("path", logPath).Msg("Failed to create log file, logging to console only")
		return func() {}, err
	}

	prevLevel := zerolog.GlobalLevel()
	if FileLevel < prevLevel {
		zerolog.SetGlobalLevel(FileLevel)
	}
	log.Logger = newLogger(zerolog.MultiLevelWriter(console, LevelFilter(file, FileLevel)))
	log.Debug().Str("logFile", logPath).Msg("Audit log opened")

	return func() {
		log.Logger = newLogger(console)
		zerolog.SetGlobalLevel(prevLevel)
		_ = file.Close()
	}, nil
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// levelFilter drops events below level before they reach w
type levelFilter struct {
	w     io.Writer
	level zerolog.Level
}

// LevelFilter wraps w so it only receives events at level or above
func LevelFilter(w io.Writer, level zerolog.Level) zerolog.LevelWriter {
	return &levelFilter{w: w, level: level}
}

func (f *levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f *levelFilter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < f.level {
		return len(p), nil
	}
	return f.w.Write(p)
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
