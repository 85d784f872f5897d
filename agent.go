package tutor

import (
	"errors"
	"log/slog"
	"reflect"
	"sort"
)

// Agent answers teaching requests with its active strategy.
type Agent struct {
	profile           UserProfile
	strategy          Strategy
	strategyName      string
	strategyFactories map[string]StrategyFactory
	logger            *slog.Logger
	debug             bool
}

// New constructs an Agent for profile. Without a strategy option the
// strategy is chosen by SelectStrategy.
func New(profile UserProfile, opts ...Option) *Agent {
	a := &Agent{
		profile:           profile,
		strategyFactories: make(map[string]StrategyFactory, len(builtinFactories)),
		logger:            slog.New(slog.DiscardHandler),
	}
	for name, factory := range builtinFactories {
		a.strategyFactories[name] = factory
	}
	for _, opt := range opts {
		opt(a)
	}
	if isNilStrategy(a.strategy) {
		a.strategy = a.resolveStrategy()
	}
	return a
}

// resolveStrategy never returns nil: a bad name or a failing factory falls
// back to the age policy.
func (a *Agent) resolveStrategy() Strategy {
	name := normalizeName(a.strategyName)
	if name == "" {
		return SelectStrategy(a.profile)
	}
	factory := a.strategyFactories[name]
	if factory == nil {
		a.logger.Warn("unknown strategy, using age default", "strategy", a.strategyName, "age", a.profile.Age)
		return SelectStrategy(a.profile)
	}
	strategy, err := factory(a.profile)
	if err != nil || isNilStrategy(strategy) {
		a.logger.Warn("strategy factory failed, using age default", "strategy", name, "error", err)
		return SelectStrategy(a.profile)
	}
	return strategy
}

// Profile returns the profile the agent was created with.
func (a *Agent) Profile() UserProfile {
	return a.profile
}

// Strategy returns the active strategy.
func (a *Agent) Strategy() Strategy {
	return a.strategy
}

// SetStrategy replaces the active strategy. A nil strategy, including a nil
// pointer wrapped in the interface, is ignored.
func (a *Agent) SetStrategy(strategy Strategy) {
	if isNilStrategy(strategy) {
		a.logger.Warn("ignoring nil strategy", "active", a.strategy.Name())
		return
	}
	a.strategy = strategy
}

// Teach explains topic with the active strategy. The context is optional;
// only the first one given is used.
func (a *Agent) Teach(topic string, ctx ...Context) string {
	var c Context
	if len(ctx) > 0 && ctx[0] != nil {
		c = ctx[0]
	} else {
		c = Context{}
	}

	if a.debug {
		keys := c.Keys()
		sort.Strings(keys)
		a.logger.Debug("teach", "strategy", a.strategy.Name(), "topic", topic, "context_keys", keys)
	}
	checked, ok := a.strategy.(CheckedStrategy)
	if !ok {
		return a.strategy.Teach(topic, c)
	}
	text, err := checked.TeachChecked(topic, c)
	var invalid *InvalidContextError
	if errors.As(err, &invalid) {
		a.logger.Warn("invalid operand, explanation falls back to the generic form",
			"strategy", a.strategy.Name(), "key", invalid.Key, "value", invalid.Value, "topic", topic)
	}
	return text
}

func isNilStrategy(s Strategy) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
