package tutor

// MiddleSchoolStrategy explains step by step with short exercises.
type MiddleSchoolStrategy struct{}

func (MiddleSchoolStrategy) Name() string {
	return StrategyMiddleSchool
}

func (s MiddleSchoolStrategy) Teach(topic string, ctx Context) string {
	text, _ := s.TeachChecked(topic, ctx)
	return text
}

// TeachChecked returns the operand error when the multiplication
// explanation fell back to the generic one.
func (MiddleSchoolStrategy) TeachChecked(topic string, ctx Context) (string, error) {
	switch {
	case matches(fractionTopics, topic):
		return fractionExplanation, nil
	case matches(multiplicationTopics, topic):
		a, b, err := Operands(ctx)
		if err != nil {
			return middleSchoolGeneric(topic), err
		}
		return middleSchoolMultiplication(a, b), nil
	}
	return middleSchoolGeneric(topic), nil
}
