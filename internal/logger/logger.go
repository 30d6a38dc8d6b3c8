// Package logger is the levelled logger shared by the CLI and the hosts.
// Output goes to stdout and, once Init is called with a directory, to a
// rotating timepicker.log as well.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level is the severity of a log line.
type Level string

const (
	Debug Level = "DEBUG"
	Info  Level = "INFO"
	Warn  Level = "WARN"
	Error Level = "ERROR"
)

// FileName is the log file created inside the directory passed to Init.
const FileName = "timepicker.log"

func (l Level) priority() int {
	switch l {
	case Debug:
		return 0
	case Info:
		return 1
	case Warn:
		return 2
	case Error:
		return 3
	default:
		return 1
	}
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a Level.
// Unknown names map to Info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

var (
	mu         sync.Mutex
	minLevel   = Info
	fileLogger *lumberjack.Logger
)

func init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0) // timestamps are written by Log
}

// SetLevel sets the minimum level that is written.
func SetLevel(level string) {
	mu.Lock()
	minLevel = ParseLevel(level)
	mu.Unlock()
}

// CurrentLevel returns the minimum level that is written.
func CurrentLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

// Init tees output into a rotating file under logDir. An empty logDir
// keeps stdout only.
func Init(logDir string) error {
	if logDir == "" {
		return nil
	}
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if fileLogger != nil {
		fileLogger.Close()
	}
	fileLogger = &lumberjack.Logger{
		Filename:   filepath.Join(logDir, FileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
	return nil
}

// Close flushes and detaches the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if fileLogger == nil {
		return nil
	}
	err := fileLogger.Close()
	fileLogger = nil
	log.SetOutput(os.Stdout)
	return err
}

// SetOutput redirects all output, replacing stdout and any log file.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Log writes "timestamp [LEVEL] message" if level is at or above the
// minimum.
func Log(level Level, format string, v ...any) {
	if level.priority() < CurrentLevel().priority() {
		return
	}
	log.Printf("%s [%s] %s", time.Now().Format(time.RFC3339), level, fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...any) { Log(Debug, format, v...) }
func Infof(format string, v ...any)  { Log(Info, format, v...) }
func Warnf(format string, v ...any)  { Log(Warn, format, v...) }
func Errorf(format string, v ...any) { Log(Error, format, v...) }
