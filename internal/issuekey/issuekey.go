// Package issuekey extracts canonical issue keys from free-form text such
// as branch names or raw user input.
package issuekey

import (
	"errors"
	"fmt"
	"regexp"
)

// Prefix is the fixed project prefix all issue keys carry.
const Prefix = "TTM"

// keyPattern matches the first issue key in a string. Digits are capped at
// six so timestamps and similar long numbers never over-match.
var keyPattern = regexp.MustCompile(Prefix + `-\d{1,6}`)

// ErrNoIssueKey reports that the input contained no issue key.
var ErrNoIssueKey = errors.New("no issue key found")

// Extract returns the first substring of input matching the key pattern,
// scanning left to right. The prefix match is case-sensitive.
func Extract(input string) (string, error) {
	if m := keyPattern.FindString(input); m != "" {
		return m, nil
	}
	return "", fmt.Errorf("%w in %q", ErrNoIssueKey, input)
}
