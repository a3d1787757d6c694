package president

import (
	"errors"
	"fmt"

	"github.com/mpsalisbury/president/pkg/cards"
)

var (
	// ErrMalformedRequest marks an intent whose shape is invalid.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrRuleViolation marks a well-formed intent that breaks a game rule.
	ErrRuleViolation = errors.New("not in the rules")
	// ErrNoLegalOption is returned when an automated player has nothing it may choose.
	ErrNoLegalOption = errors.New("no legal option")
	ErrInvalidConfig = errors.New("invalid game configuration")

	ErrInvariantViolation = cards.ErrInvariantViolation
)

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedRequest, fmt.Sprintf(format, args...))
}

func violation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrRuleViolation, fmt.Sprintf(format, args...))
}
