package tutor

// HighSchoolStrategy gives formal definitions and applications.
type HighSchoolStrategy struct{}

func (HighSchoolStrategy) Name() string {
	return StrategyHighSchool
}

func (HighSchoolStrategy) Teach(topic string, _ Context) string {
	switch {
	case matches(equationTopics, topic):
		return equationExplanation
	case matches(derivativeTopics, topic):
		return derivativeExplanation
	}
	return highSchoolGeneric(topic)
}
