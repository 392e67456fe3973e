package validation

import (
	"fmt"
	"strings"
)

// NormalizeQuestion lowercases and trims a question so FAQ keys are
// case-insensitive and unique.
func NormalizeQuestion(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

// NormalizeInput lowercases raw user input for matching.
func NormalizeInput(text string) string {
	return strings.ToLower(text)
}

// ValidateInstantKeyword checks an instant-response table key at load time.
// Keywords must be non-empty and already lowercase; the table is rejected
// otherwise so a bad entry cannot silently never match.
func ValidateInstantKeyword(keyword string) error {
	if strings.TrimSpace(keyword) == "" {
		return fmt.Errorf("instant response keyword is empty")
	}
	if keyword != strings.ToLower(keyword) {
		return fmt.Errorf("instant response keyword %q is not lowercase", keyword)
	}
	return nil
}

// ParseModeratorCommand splits a moderator command payload of the form
// "<id> <answer text...>" into its parts.
func ParseModeratorCommand(args string) (id string, answer string, err error) {
	parts := strings.SplitN(strings.TrimSpace(args), " ", 2)
	if len(parts) < 2 || parts[0] == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", fmt.Errorf("usage: <question-id> <answer text>")
	}
	return parts[0], strings.TrimSpace(parts[1]), nil
}
