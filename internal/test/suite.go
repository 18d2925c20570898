package test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"

	"github.com/hellofresh/goledger"
	goledgerLogrus "github.com/hellofresh/goledger/extension/logrus"
)

// Suite is an extension of github.com/stretchr/testify/suite.Suite
type Suite struct {
	suite.Suite

	Logger     *logrus.Logger
	LoggerHook *test.Hook
}

// SetupTest set logrus output to use the current testing.T
func (s *Suite) SetupTest() {
	s.Logger = logrus.New()
	s.Logger.SetLevel(logrus.DebugLevel)
	s.Logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	s.Logger.SetOutput(testLogWriter{t: s.T()})

	s.LoggerHook = test.NewLocal(s.Logger)
}

// TearDownTest cleanup suite variables
func (s *Suite) TearDownTest() {
	s.Logger = nil
	s.LoggerHook = nil
}

// GetLogger returns the suite logger wrapped as a goledger.Logger
func (s *Suite) GetLogger() goledger.Logger {
	return goledgerLogrus.Wrap(s.Logger)
}

// SetT sets the current *testing.T context
func (s *Suite) SetT(t *testing.T) {
	s.Suite.SetT(t)

	if s.Logger != nil {
		s.Logger.SetOutput(testLogWriter{t: t})
	}
}

// AssertNoLogsWithLevelOrHigher check that there are no log entries of the given level or higher.
// For example `AssertNoLogsWithLevelOrHigher(logrus.ErrorLevel)` asserts that no error, fatal or panic entries were recorded.
func (s *Suite) AssertNoLogsWithLevelOrHigher(lvl logrus.Level) {
	for _, logEntry := range s.LoggerHook.AllEntries() {
		s.False(
			logEntry.Level <= lvl,
			"No log of level %s or higher was expected but got: %s",
			lvl,
			logEntry.Message,
		)
	}
}

// LogMessages returns the messages of all recorded log entries
func (s *Suite) LogMessages() []string {
	entries := s.LoggerHook.AllEntries()
	messages := make([]string, len(entries))
	for i, entry := range entries {
		messages[i] = entry.Message
	}

	return messages
}

// testLogWriter sends every logrus line to the log of the running test,
// so ledger logs only show up for failing or verbose runs
type testLogWriter struct {
	t testing.TB
}

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(bytes.TrimRight(p, "\n")))

	return len(p), nil
}
