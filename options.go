package tutor

import "log/slog"

// Option configures an Agent.
type Option func(*Agent)

// WithStrategy sets the initial strategy, bypassing the age policy.
func WithStrategy(strategy Strategy) Option {
	return func(a *Agent) { a.strategy = strategy }
}

// WithStrategyName selects a built-in or registered strategy by name.
// Unknown names fall back to the age policy.
func WithStrategyName(name string) Option {
	return func(a *Agent) { a.strategyName = name }
}

// WithStrategyFactory registers a strategy factory by name.
func WithStrategyFactory(name string, factory StrategyFactory) Option {
	return func(a *Agent) {
		if a.strategyFactories == nil {
			a.strategyFactories = make(map[string]StrategyFactory)
		}
		a.strategyFactories[normalizeName(name)] = factory
	}
}

// WithLogger sets the logger. Nil keeps the default discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDebug enables debug logging of every delegated call.
func WithDebug(enabled bool) Option {
	return func(a *Agent) { a.debug = enabled }
}
