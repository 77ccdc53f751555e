package mutate

import (
	"errors"
	"fmt"
)

// Code is the numeric tag accepted on the command line.
type Code string

const (
	// CodeSubstitute selects SubstituteLetter.
	CodeSubstitute Code = "1"
	// CodeCapitalize selects CapitalizeLetter.
	CodeCapitalize Code = "2"
)

// ErrNoValidRules is returned when rule tokens were given but none parsed.
var ErrNoValidRules = errors.New("no valid rules given")

// InvalidRuleError reports a rule token that is not a known code.
type InvalidRuleError struct {
	Token string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule %q", e.Token)
}

// DefaultRules is the list applied when no rule is requested.
func DefaultRules() []Rule {
	return []Rule{&SubstituteLetter{}, &CapitalizeLetter{}}
}

// ParseCodes turns rule tokens into rules, preserving order. Each
// unrecognised token yields an *InvalidRuleError in invalid and is skipped.
// If tokens is non-empty and none is valid, err is ErrNoValidRules.
func ParseCodes(tokens []string) (rules []Rule, invalid []error, err error) {
	for _, tok := range tokens {
		switch Code(tok) {
		case CodeSubstitute:
			rules = append(rules, &SubstituteLetter{})
		case CodeCapitalize:
			rules = append(rules, &CapitalizeLetter{})
		default:
			invalid = append(invalid, &InvalidRuleError{Token: tok})
		}
	}
	if len(tokens) > 0 && len(rules) == 0 {
		return nil, invalid, ErrNoValidRules
	}
	return rules, invalid, nil
}
