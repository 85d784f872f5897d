package tutor

// ChildStrategy explains with everyday objects for young children.
type ChildStrategy struct{}

func (ChildStrategy) Name() string {
	return StrategyChild
}

func (s ChildStrategy) Teach(topic string, ctx Context) string {
	text, _ := s.TeachChecked(topic, ctx)
	return text
}

// TeachChecked returns the operand error when the addition explanation fell
// back to its generic form.
func (ChildStrategy) TeachChecked(topic string, ctx Context) (string, error) {
	if matches(additionTopics, topic) {
		a, b, err := Operands(ctx)
		if err != nil {
			return childAdditionGeneric, err
		}
		return childAddition(a, b), nil
	}
	return childGeneric(topic), nil
}
