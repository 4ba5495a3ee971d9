// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

var output io.Writer = os.Stderr

// logFile is the file opened by Configure, closed on the next Configure.
var logFile *os.File

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets level and destination. An empty level falls back to
// SHELF_LOG_LEVEL, then "warn". An empty file keeps stderr.
func Configure(level, file string) error {
	if level == "" {
		level = strings.ToLower(os.Getenv("SHELF_LOG_LEVEL"))
	}

	var out io.Writer = os.Stderr
	var f *os.File
	if file != "" {
		var err error
		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		out = f
	}
	setOutput(out, level)
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	return nil
}

// Quiet keeps logging off the terminal unless a log file was configured;
// used while the full-screen UI owns stdout and stderr.
func Quiet() {
	if output == os.Stderr {
		setOutput(io.Discard, Logger.GetLevel().String())
	}
}

func setOutput(w io.Writer, level string) {
	output = w
	Logger = log.New(w)
	Logger.SetTimeFormat("")
	Logger.SetLevel(parseLogLevel(level))
}

func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

func Debug(msg interface{}, keyvals ...interface{}) { Logger.Debug(msg, keyvals...) }

func Info(msg interface{}, keyvals ...interface{}) { Logger.Info(msg, keyvals...) }

func Warn(msg interface{}, keyvals ...interface{}) { Logger.Warn(msg, keyvals...) }

func Error(msg interface{}, keyvals ...interface{}) { Logger.Error(msg, keyvals...) }

// NewStyledLogger returns a logger for one component, writing wherever the
// global logger writes and at the same level.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()
	styles.Keys["screen"] = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	styles.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	l := log.NewWithOptions(output, log.Options{Prefix: prefix})
	l.SetStyles(styles)
	l.SetLevel(Logger.GetLevel())
	return l
}
