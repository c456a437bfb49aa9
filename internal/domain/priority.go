package domain

import (
	"encoding/json"
	"fmt"
)

// Priority is the closed set of recommendation priorities.
// The zero value means "no priority"; it never matches a specific filter.
type Priority string

const (
	PriorityMustDo          Priority = "must-do"
	PriorityRecommended     Priority = "recommended"
	PriorityOptional        Priority = "optional"
	PriorityFun             Priority = "fun"
	PriorityCultural        Priority = "cultural"
	PrioritySpecialOccasion Priority = "special-occasion"
	PriorityInstagram       Priority = "instagram"
	PriorityNYERecommended  Priority = "nye-recommended"
	PriorityNYEOption       Priority = "nye-option"
)

// PriorityAll is the filter sentinel meaning "do not restrict by priority".
// It is not a member of the record enumeration.
const PriorityAll Priority = "all"

var priorities = []Priority{
	PriorityMustDo,
	PriorityRecommended,
	PriorityOptional,
	PriorityFun,
	PriorityCultural,
	PrioritySpecialOccasion,
	PriorityInstagram,
	PriorityNYERecommended,
	PriorityNYEOption,
}

// filterPriorities are the priorities offered as filter buttons.
var filterPriorities = []Priority{
	PriorityMustDo,
	PriorityRecommended,
	PriorityOptional,
	PriorityNYERecommended,
}

// Priorities returns every record priority in display order.
func Priorities() []Priority {
	out := make([]Priority, len(priorities))
	copy(out, priorities)
	return out
}

// IsFilterOption reports whether p is offered as a filter button.
func (p Priority) IsFilterOption() bool {
	for _, f := range filterPriorities {
		if f == p {
			return true
		}
	}
	return false
}

// ParsePriority accepts exactly one of the enumerated values.
func ParsePriority(s string) (Priority, error) {
	for _, p := range priorities {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown priority %q", ErrValidation, s)
}

// ParsePriorityFilter parses a filter value: "" and "all" mean PriorityAll,
// anything else must be an enumerated priority.
func ParsePriorityFilter(s string) (Priority, error) {
	if s == "" || s == string(PriorityAll) {
		return PriorityAll, nil
	}
	return ParsePriority(s)
}

// Label returns the badge text for p.
func (p Priority) Label() string {
	switch p {
	case PriorityMustDo:
		return "Must Do!"
	case PriorityRecommended:
		return "Recommended"
	case PriorityOptional:
		return "Optional"
	case PriorityFun:
		return "Fun!"
	case PriorityCultural:
		return "Cultural"
	case PrioritySpecialOccasion:
		return "Special"
	case PriorityInstagram:
		return "Insta-worthy"
	case PriorityNYERecommended:
		return "NYE Pick!"
	case PriorityNYEOption:
		return "NYE Option"
	case PriorityAll:
		return "All"
	default:
		return string(p)
	}
}

// UnmarshalJSON rejects priorities outside the enumeration so an unexpected
// value in a tips document fails loudly instead of silently never matching.
// An empty string is treated as "no priority".
func (p *Priority) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: priority must be a string", ErrValidation)
	}
	if s == "" {
		*p = ""
		return nil
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
