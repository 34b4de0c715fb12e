package questionset

// Category groups questions for aggregate scoring.
type Category string

const (
	Focus  Category = "Focus"
	People Category = "People"
	Energy Category = "Energy"
)

// Score bounds of the Likert scale.
const (
	MinScore = 1
	MaxScore = 5
)

// CategoryInfo pairs a category with its display label.
type CategoryInfo struct {
	ID    Category `yaml:"id"`
	Label string   `yaml:"label"`
}

// Question is a single Likert item.
type Question struct {
	ID       int      `yaml:"id"`
	Text     string   `yaml:"text"`
	Category Category `yaml:"category"`
}

// ScalePoint is one selectable value of the scale.
type ScalePoint struct {
	Value int    `yaml:"value"`
	Label string `yaml:"label"`
}

// Set is an immutable, validated question set. Build one with New, Load or
// Parse; the zero value is not usable.
type Set struct {
	title      string
	categories []CategoryInfo
	scale      []ScalePoint
	questions  []Question

	byID       map[int]int
	labels     map[Category]string
	perCatSize map[Category]int
}

// New validates the given tables and builds a Set from them.
// The slices are copied; later changes by the caller do not affect the Set.
func New(title string, categories []CategoryInfo, scale []ScalePoint, questions []Question) (*Set, error) {
	if err := validate(categories, scale, questions); err != nil {
		return nil, err
	}

	s := &Set{
		title:      title,
		categories: append([]CategoryInfo(nil), categories...),
		scale:      append([]ScalePoint(nil), scale...),
		questions:  append([]Question(nil), questions...),
		byID:       make(map[int]int, len(questions)),
		labels:     make(map[Category]string, len(categories)),
		perCatSize: make(map[Category]int, len(categories)),
	}
	for i, q := range s.questions {
		s.byID[q.ID] = i
		s.perCatSize[q.Category]++
	}
	for _, c := range s.categories {
		s.labels[c.ID] = c.Label
	}
	return s, nil
}

// Title returns the survey title.
func (s *Set) Title() string { return s.title }

// Len returns the number of questions.
func (s *Set) Len() int { return len(s.questions) }

// At returns the question at position i in survey order.
func (s *Set) At(i int) Question { return s.questions[i] }

// Lookup finds a question by id.
func (s *Set) Lookup(id int) (Question, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Question{}, false
	}
	return s.questions[i], true
}

// Questions returns a copy of the questions in survey order.
func (s *Set) Questions() []Question {
	return append([]Question(nil), s.questions...)
}

// Categories returns a copy of the category table in reporting order.
func (s *Set) Categories() []CategoryInfo {
	return append([]CategoryInfo(nil), s.categories...)
}

// Scale returns a copy of the scale points, lowest value first.
func (s *Set) Scale() []ScalePoint {
	return append([]ScalePoint(nil), s.scale...)
}

// Label returns the display label of c, falling back to the raw id.
func (s *Set) Label(c Category) string {
	if l, ok := s.labels[c]; ok && l != "" {
		return l
	}
	return string(c)
}

// CountIn returns how many questions belong to c.
func (s *Set) CountIn(c Category) int {
	return s.perCatSize[c]
}
