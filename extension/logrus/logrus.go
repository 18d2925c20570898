package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/hellofresh/goledger"
)

type (
	wrapper struct {
		entry *logrus.Entry
	}

	entry logrus.Fields
)

// Wrap wraps a logrus.Logger
func Wrap(logger *logrus.Logger) goledger.Logger {
	return &wrapper{entry: logrus.NewEntry(logger)}
}

// WrapEntry wraps a logrus.Entry
func WrapEntry(entry *logrus.Entry) goledger.Logger {
	return &wrapper{entry: entry}
}

// StandardLogger return a wrapped version of the logrus.StandardLogger()
func StandardLogger() goledger.Logger {
	return Wrap(logrus.StandardLogger())
}

// Error writes a log with log level error
func (w *wrapper) Error(msg string, fields func(goledger.LoggerEntry)) {
	w.log(logrus.ErrorLevel, msg, fields)
}

// Warn writes a log with log level warning
func (w *wrapper) Warn(msg string, fields func(goledger.LoggerEntry)) {
	w.log(logrus.WarnLevel, msg, fields)
}

// Info writes a log with log level info
func (w *wrapper) Info(msg string, fields func(goledger.LoggerEntry)) {
	w.log(logrus.InfoLevel, msg, fields)
}

// Debug writes a log with log level debug
func (w *wrapper) Debug(msg string, fields func(goledger.LoggerEntry)) {
	w.log(logrus.DebugLevel, msg, fields)
}

// WithFields returns a logger that adds the fields to every entry
func (w *wrapper) WithFields(fields func(goledger.LoggerEntry)) goledger.Logger {
	if fields == nil {
		return w
	}

	e := entry{}
	fields(e)

	return &wrapper{entry: w.entry.WithFields(logrus.Fields(e))}
}

func (w *wrapper) log(level logrus.Level, msg string, fields func(goledger.LoggerEntry)) {
	if !w.entry.Logger.IsLevelEnabled(level) {
		return
	}

	if fields == nil {
		w.entry.Log(level, msg)
		return
	}

	e := entry{}
	fields(e)
	w.entry.WithFields(logrus.Fields(e)).Log(level, msg)
}

func (e entry) Int(k string, v int) {
	e[k] = v
}

func (e entry) Int64(k string, v int64) {
	e[k] = v
}

func (e entry) String(k, v string) {
	e[k] = v
}

func (e entry) Error(err error) {
	e[logrus.ErrorKey] = err
}

func (e entry) Any(k string, v interface{}) {
	e[k] = v
}
