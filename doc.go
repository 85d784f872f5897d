// Package tutor provides a small conversational teaching agent whose
// explanation style is a replaceable Strategy.
//
// An Agent is created for a UserProfile and picks a default strategy by age:
//
//   - up to 9 years: ChildStrategy, explanations with everyday objects
//   - 10 to 14 years: MiddleSchoolStrategy, step by step with exercises
//   - 15 and older: HighSchoolStrategy, formal definitions
//
// The strategy can be swapped at any time with SetStrategy, or chosen up front
// with WithStrategy / WithStrategyName.
//
// # Basic Usage
//
//	agent := tutor.New(tutor.UserProfile{Age: 7})
//	fmt.Println(agent.Teach("adição", tutor.Context{"a": 2, "b": 3}))
//
//	agent.SetStrategy(tutor.HighSchoolStrategy{})
//	fmt.Println(agent.Teach("equação"))
//
// # Context Values
//
// Strategies that compute an answer read the operands "a" and "b" from the
// Context. Integers, floats, decimal.Decimal, json.Number and numeric strings
// are accepted and combined with exact decimal arithmetic (see Operands).
// Values with more than 1000 digits or an exponent beyond ±1000 are rejected.
// When an operand is missing or not numeric the strategy falls back to its
// generic explanation, so Teach always returns a non-empty string.
// Strategies implementing CheckedStrategy report that fallback, and the Agent
// logs it at warn level when a logger is configured with WithLogger.
//
// # Custom Strategies
//
// Implement Strategy to add a teaching style:
//
//	type Strategy interface {
//	    Name() string
//	    Teach(topic string, ctx Context) string
//	}
//
// and either pass it to SetStrategy or register a factory with
// WithStrategyFactory so it can be selected by name.
//
// See the examples/demo directory for a complete program.
package tutor
