package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

const (
	// default log level
	defaultLogLevel = logrus.InfoLevel

	// default rotating log file params
	defaultLogMaxSize    = 100  // maximum file size before rotation, in MB
	defaultLogMaxBackups = 3    // maximum number of old log files to keep
	defaultLogMaxAge     = 28   // maximum number of days to retain old log files
	defaultLogCompress   = true // whether to compress the rotated log files using gzip
)

// Fields is the set of structured key/value pairs attached to a log entry.
type Fields = logrus.Fields

// Logger is the logging interface handed to collaborating packages.
type Logger interface {
	Trace(keyvals ...interface{})
	Tracef(msg string, args ...interface{})
	Debug(keyvals ...interface{})
	Debugf(msg string, args ...interface{})
	Info(keyvals ...interface{})
	Infof(msg string, args ...interface{})
	Warn(keyvals ...interface{})
	Warnf(msg string, args ...interface{})
	Error(keyvals ...interface{})
	Errorf(msg string, args ...interface{})
	Fatal(keyvals ...interface{})
	Fatalf(msg string, args ...interface{})

	WithField(key string, val interface{}) Logger
	WithFields(fields Fields) Logger
}

// LogWrapper carries a logrus entry so that field-scoped children share the
// parent's underlying logger.
type LogWrapper struct {
	entry *logrus.Entry
}

// Interface assertion
var _ Logger = (*LogWrapper)(nil)

// global is the process wide logger backing the package level functions.
var global = NewLogger()

// NewLogger returns a logger writing to stdout at info level, adjusted by
// the given options.
func NewLogger(opts ...Options) *LogWrapper {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(defaultLogLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		PadLevelText:    true,
		FullTimestamp:   true,
		TimestampFormat: "01-02|15:04:05.000",
	})
	lw := &LogWrapper{entry: logrus.NewEntry(logger)}
	for _, opt := range opts {
		opt(lw)
	}
	return lw
}

// ConfigureLogger applies the given options to the global logger.
func ConfigureLogger(opts ...Options) {
	for _, opt := range opts {
		opt(global)
	}
}

func (l *LogWrapper) Trace(keyvals ...interface{}) {
	l.entry.Trace(keyvals...)
}

func (l *LogWrapper) Tracef(msg string, args ...interface{}) {
	l.entry.Tracef(msg, args...)
}

func (l *LogWrapper) Debug(keyvals ...interface{}) {
	l.entry.Debug(keyvals...)
}

func (l *LogWrapper) Debugf(msg string, args ...interface{}) {
	l.entry.Debugf(msg, args...)
}

func (l *LogWrapper) Info(keyvals ...interface{}) {
	l.entry.Info(keyvals...)
}

func (l *LogWrapper) Infof(msg string, args ...interface{}) {
	l.entry.Infof(msg, args...)
}

func (l *LogWrapper) Warn(keyvals ...interface{}) {
	l.entry.Warn(keyvals...)
}

func (l *LogWrapper) Warnf(msg string, args ...interface{}) {
	l.entry.Warnf(msg, args...)
}

func (l *LogWrapper) Error(keyvals ...interface{}) {
	l.entry.Error(keyvals...)
}

func (l *LogWrapper) Errorf(msg string, args ...interface{}) {
	l.entry.Errorf(msg, args...)
}

func (l *LogWrapper) Fatal(keyvals ...interface{}) {
	l.entry.Fatal(keyvals...)
}

func (l *LogWrapper) Fatalf(msg string, args ...interface{}) {
	l.entry.Fatalf(msg, args...)
}

func (l *LogWrapper) WithField(key string, val interface{}) Logger {
	return &LogWrapper{entry: l.entry.WithField(key, val)}
}

func (l *LogWrapper) WithFields(fields Fields) Logger {
	return &LogWrapper{entry: l.entry.WithFields(fields)}
}

func WithField(key string, val interface{}) Logger {
	return global.WithField(key, val)
}

func WithFields(fields Fields) Logger {
	return global.WithFields(fields)
}

func Trace(keyvals ...interface{}) {
	global.Trace(keyvals...)
}

func Tracef(msg string, args ...interface{}) {
	global.Tracef(msg, args...)
}

func Debug(keyvals ...interface{}) {
	global.Debug(keyvals...)
}

func Debugf(msg string, args ...interface{}) {
	global.Debugf(msg, args...)
}

func Info(keyvals ...interface{}) {
	global.Info(keyvals...)
}

func Infof(msg string, args ...interface{}) {
	global.Infof(msg, args...)
}

func Warn(keyvals ...interface{}) {
	global.Warn(keyvals...)
}

func Warnf(msg string, args ...interface{}) {
	global.Warnf(msg, args...)
}

func Error(keyvals ...interface{}) {
	global.Error(keyvals...)
}

func Errorf(msg string, args ...interface{}) {
	global.Errorf(msg, args...)
}

func Fatal(keyvals ...interface{}) {
	global.Fatal(keyvals...)
}

func Fatalf(msg string, args ...interface{}) {
	global.Fatalf(msg, args...)
}
