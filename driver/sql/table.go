package sql

import (
	"regexp"
	"strings"
)

var tableNameInvalidCharRegex = regexp.MustCompile("[^a-z0-9_]+")

// GenerateTableName returns the name of the event table of a bank
func GenerateTableName(bankID string) (string, error) {
	name := strings.ToLower(bankID)
	// remove not allowed symbols
	name = tableNameInvalidCharRegex.ReplaceAllString(name, "")
	// remove underscore at the end
	name = strings.TrimRight(name, "_")
	if len(name) == 0 {
		return "", ErrTableNameEmpty
	}

	return "events_" + name, nil
}
