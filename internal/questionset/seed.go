package questionset

import "fmt"

// defaultSet is the built-in daily check-in, set by init().
var defaultSet *Set

// DefaultCategories returns the built-in category table.
func DefaultCategories() []CategoryInfo {
	return []CategoryInfo{
		{ID: Focus, Label: "Focus"},
		{ID: People, Label: "People"},
		{ID: Energy, Label: "Energy"},
	}
}

// DefaultScale returns the built-in 5-point agreement scale.
func DefaultScale() []ScalePoint {
	return []ScalePoint{
		{Value: 1, Label: "Strongly disagree"},
		{Value: 2, Label: "Disagree"},
		{Value: 3, Label: "Neutral"},
		{Value: 4, Label: "Agree"},
		{Value: 5, Label: "Strongly agree"},
	}
}

// DefaultQuestions returns the built-in questions, interleaving categories.
func DefaultQuestions() []Question {
	return []Question{
		{ID: 1, Text: "Today I finished most of what I planned.", Category: Focus},
		{ID: 2, Text: "I worked cooperatively with the people around me.", Category: People},
		{ID: 3, Text: "I had the energy to take on something new.", Category: Energy},
		{ID: 4, Text: "I broke my tasks into small steps and acted on them.", Category: Focus},
		{ID: 5, Text: "I stayed respectful even when there was conflict.", Category: People},
		{ID: 6, Text: "Even when my mood swung, I bounced back quickly.", Category: Energy},
		{ID: 7, Text: "I handled my most important goals first.", Category: Focus},
		{ID: 8, Text: "I talked with others and gave and received help.", Category: People},
		{ID: 9, Text: "I felt energetic in body and mind.", Category: Energy},
	}
}

// DefaultTitle is the title of the built-in set.
const DefaultTitle = "Daily Check-in"

func init() {
	s, err := New(DefaultTitle, DefaultCategories(), DefaultScale(), DefaultQuestions())
	if err != nil {
		panic(fmt.Sprintf("built-in question set: %v", err))
	}
	defaultSet = s
}

// Default returns the built-in question set.
func Default() *Set {
	return defaultSet
}
