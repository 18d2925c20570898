//go:build unit

package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellofresh/goledger/banking"
	"github.com/hellofresh/goledger/driver/inmemory"
)

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer) {
	bank, err := banking.NewBank("ACME", "USD", inmemory.NewEventStore(nil), banking.NewEventRegistry(), nil, nil)
	require.NoError(t, err)

	out := &bytes.Buffer{}

	return &cli{district: banking.NewFinancialDistrict(bank), out: out}, out
}

func TestCLI_Run(t *testing.T) {
	ctx := context.Background()
	c, out := newTestCLI(t)

	require.NoError(t, c.run(ctx, "setup-all", nil))
	require.NoError(t, c.run(ctx, "open", []string{"ACME", "A", "Alice"}))
	require.NoError(t, c.run(ctx, "open", []string{"ACME", "B"}))
	require.NoError(t, c.run(ctx, "set-limit", []string{"ACME", "A", "10000"}))
	require.NoError(t, c.run(ctx, "transfer", []string{"ACME", "A", "B", "1250"}))
	require.NoError(t, c.run(ctx, "block", []string{"ACME", "B", "audit"}))

	require.NoError(t, c.run(ctx, "list", []string{"ACME"}))
	assert.Contains(t, out.String(), "Alice")
	assert.Contains(t, out.String(), "-12.50 USD")
	assert.Contains(t, out.String(), "100.00 USD")
	assert.Contains(t, out.String(), "true")

	out.Reset()
	require.NoError(t, c.run(ctx, "history", []string{"ACME", "B"}))
	assert.Contains(t, out.String(), "+12.50 USD from A")
	assert.Contains(t, out.String(), "AccountBlocked")

	require.NoError(t, c.run(ctx, "unblock", []string{"ACME", "B"}))
	require.NoError(t, c.run(ctx, "close", []string{"ACME", "B"}))
}

func TestCLI_RunFailures(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCLI(t)

	testCases := []struct {
		title    string
		command  string
		args     []string
		exitCode int
	}{
		{"no bank", "open", nil, 2},
		{"unknown bank", "open", []string{"NOPE", "A"}, 3},
		{"too many arguments", "close", []string{"ACME", "A", "B"}, 2},
		{"invalid amount", "transfer", []string{"ACME", "A", "B", "ten"}, 2},
		{"unknown account", "close", []string{"ACME", "A"}, 3},
		{"unknown account history", "history", []string{"ACME", "A"}, 3},
		{"unknown command", "rob", []string{"ACME"}, 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.title, func(t *testing.T) {
			err := c.run(ctx, testCase.command, testCase.args)

			assert.Error(t, err)
			assert.Equal(t, testCase.exitCode, exitCode(err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 4, exitCode(banking.ErrOverdraftLimitExceeded))
	assert.Equal(t, 5, exitCode(banking.ErrAccountAlreadyExists))
	assert.Equal(t, 1, exitCode(errors.New("connection refused")))
}
