package goledger

type (
	// Logger a structured logger interface
	Logger interface {
		Error(msg string, fields func(LoggerEntry))
		Warn(msg string, fields func(LoggerEntry))
		Info(msg string, fields func(LoggerEntry))
		Debug(msg string, fields func(LoggerEntry))

		WithFields(fields func(LoggerEntry)) Logger
	}

	// LoggerEntry represents the entry to be logged.
	// This entry can be enhanced with more data.
	LoggerEntry interface {
		Int(k string, v int)
		Int64(k string, v int64)
		String(k, v string)
		Error(err error)
		Any(k string, v interface{})
	}
)
