// =======================
// logging/logger.go
// =======================

package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface used by the hosts.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	WithField(key string, value interface{}) Logger
	// Close releases the log file, if any. Loggers derived with WithField
	// share it.
	Close() error
}

var _ Logger = (*logrusLogger)(nil)

type logrusLogger struct {
	entry *logrus.Entry
	file  io.Closer
}

// Options selects where log lines go.
type Options struct {
	Level string
	// Dir, when set, receives plot3d.log.
	Dir string
	// Console mirrors log lines to stdout. The terminal viewer turns it off
	// because the screen belongs to tcell.
	Console bool
}

// New builds a logrus backed Logger.
func New(opts Options) (Logger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetFormatter(&SimpleFormatter{TimestampFormat: "2006/01/02 15:04:05.000000"})

	var writers []io.Writer
	var file io.Closer
	if opts.Console {
		writers = append(writers, os.Stdout)
	}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory '%s': %w", opts.Dir, err)
		}
		path := filepath.Join(opts.Dir, "plot3d.log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
		}
		writers = append(writers, f)
		file = f
	}
	switch len(writers) {
	case 0:
		l.SetOutput(io.Discard)
	case 1:
		l.SetOutput(writers[0])
	default:
		l.SetOutput(io.MultiWriter(writers...))
	}

	return &logrusLogger{entry: logrus.NewEntry(l), file: file}, nil
}

// NewWithWriter logs everything at the given level to w.
func NewWithWriter(w io.Writer, level string) Logger {
	l := logrus.New()
	if lv, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lv)
	}
	l.SetFormatter(&SimpleFormatter{})
	l.SetOutput(w)
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

// Discard drops every line.
func Discard() Logger { return NewWithWriter(io.Discard, "panic") }

func (l *logrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logrusLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logrusLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithField(key, value), file: l.file}
}

func (l *logrusLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// SimpleFormatter writes one compact line per entry:
// 2025/04/06 17:30:00.000000 [INF] message key1=value1 key2=value2
type SimpleFormatter struct {
	TimestampFormat string
}

func (f *SimpleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	ts := f.TimestampFormat
	if ts == "" {
		ts = "2006/01/02 15:04:05.000000"
	}
	b.WriteString(entry.Time.Format(ts))

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 3 {
		level = level[:3]
	}
	fmt.Fprintf(b, " [%s] %s", level, entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
