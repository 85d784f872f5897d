package tutor

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Strategy explains a topic in one teaching style.
// Teach must always return a non-empty string.
type Strategy interface {
	Name() string
	Teach(topic string, ctx Context) string
}

// CheckedStrategy is implemented by strategies that read operands. The
// returned text equals Teach's; err is non-nil when the operands could not
// be used and the text is the generic fallback.
type CheckedStrategy interface {
	Strategy
	TeachChecked(topic string, ctx Context) (string, error)
}

// StrategyFactory creates a strategy for the given profile.
type StrategyFactory func(profile UserProfile) (Strategy, error)

// Built-in strategy names.
const (
	StrategyChild        = "child"
	StrategyMiddleSchool = "middle-school"
	StrategyHighSchool   = "high-school"
)

// ErrUnknownStrategy is returned when a strategy name has no factory.
var ErrUnknownStrategy = errors.New("unknown strategy")

var builtinFactories = map[string]StrategyFactory{
	StrategyChild:        func(UserProfile) (Strategy, error) { return ChildStrategy{}, nil },
	StrategyMiddleSchool: func(UserProfile) (Strategy, error) { return MiddleSchoolStrategy{}, nil },
	StrategyHighSchool:   func(UserProfile) (Strategy, error) { return HighSchoolStrategy{}, nil },
}

// NewStrategy returns the built-in strategy registered under name.
func NewStrategy(name string) (Strategy, error) {
	factory := builtinFactories[normalizeName(name)]
	if factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return factory(UserProfile{})
}

// StrategyNames lists the built-in strategy names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(builtinFactories))
	for name := range builtinFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectStrategy applies the age policy: up to 9 gets the child strategy,
// 10 through 14 the middle school one, everyone else high school.
func SelectStrategy(profile UserProfile) Strategy {
	switch {
	case profile.Age <= 9:
		return ChildStrategy{}
	case profile.Age <= 14:
		return MiddleSchoolStrategy{}
	default:
		return HighSchoolStrategy{}
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
