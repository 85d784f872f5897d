package tutor

// UserProfile describes the learner a session is opened for.
// The Agent keeps its own copy; callers cannot change it after New.
type UserProfile struct {
	Age            int
	EducationLevel string // optional, empty when unknown
}

// Context carries auxiliary values for a single Teach call, such as the
// operands "a" and "b". A nil Context behaves like an empty one.
type Context map[string]any

// Has reports whether key is present with a non-nil value.
func (c Context) Has(key string) bool {
	v, ok := c[key]
	return ok && v != nil
}

// Keys returns the context keys in unspecified order.
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
