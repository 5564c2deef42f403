package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger is the minimal logging surface library packages depend on.
type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type logrusLogger struct {
	internal *logrus.Logger
}

// New returns a Logger backed by the standard logrus logger.
func New() Logger {
	return &logrusLogger{internal: logrus.StandardLogger()}
}

// Wrap returns a Logger backed by an explicit logrus instance.
func Wrap(l *logrus.Logger) Logger {
	return &logrusLogger{internal: l}
}

// fields converts alternating key/value args into logrus fields.
func fields(args []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		f[key] = args[i+1]
	}
	return f
}

func (l *logrusLogger) Info(msg string, args ...interface{}) {
	l.internal.WithFields(fields(args)).Info(msg)
}

func (l *logrusLogger) Debug(msg string, args ...interface{}) {
	l.internal.WithFields(fields(args)).Debug(msg)
}

func (l *logrusLogger) Warn(msg string, args ...interface{}) {
	l.internal.WithFields(fields(args)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, args ...interface{}) {
	l.internal.WithFields(fields(args)).Error(msg)
}
