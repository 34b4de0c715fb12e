package questionset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	s := Default()
	require.NotNil(t, s)

	assert.Equal(t, DefaultTitle, s.Title())
	assert.Equal(t, 9, s.Len())
	assert.Len(t, s.Categories(), 3)
	for _, c := range s.Categories() {
		assert.Equal(t, 3, s.CountIn(c.ID), "category %s", c.ID)
	}
}

func TestDefault_OrderIsStable(t *testing.T) {
	s := Default()
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, i+1, s.At(i).ID)
	}
}

func TestLookup(t *testing.T) {
	s := Default()

	q, ok := s.Lookup(4)
	require.True(t, ok)
	assert.Equal(t, Focus, q.Category)

	_, ok = s.Lookup(99)
	assert.False(t, ok)
}

func TestLabel_FallsBackToID(t *testing.T) {
	s := Default()
	assert.Equal(t, "People", s.Label(People))
	assert.Equal(t, "Sleep", s.Label(Category("Sleep")))
}

func TestNew_CopiesInput(t *testing.T) {
	qs := DefaultQuestions()
	s, err := New("t", DefaultCategories(), DefaultScale(), qs)
	require.NoError(t, err)

	qs[0].Text = "mutated"
	assert.NotEqual(t, "mutated", s.At(0).Text)

	got := s.Questions()
	got[1].Text = "mutated"
	assert.NotEqual(t, "mutated", s.At(1).Text)
}

func TestValidate_DetectsDuplicateID(t *testing.T) {
	qs := []Question{
		{ID: 1, Text: "a", Category: Focus},
		{ID: 1, Text: "b", Category: People},
	}
	_, err := New("t", DefaultCategories(), DefaultScale(), qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate question ID: 1")

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestValidate_DetectsUnknownCategory(t *testing.T) {
	qs := []Question{{ID: 1, Text: "a", Category: "Sleep"}}
	_, err := New("t", DefaultCategories(), DefaultScale(), qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "Sleep"`)
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	qs := []Question{
		{ID: 1, Text: "", Category: Focus},
		{ID: 1, Text: "b", Category: "Nope"},
	}
	_, err := New("t", DefaultCategories(), DefaultScale(), qs)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 3)
}

func TestValidate_Scale(t *testing.T) {
	tests := []struct {
		name  string
		scale []ScalePoint
		want  string
	}{
		{"too short", DefaultScale()[:4], "scale has 4 points"},
		{"out of order", []ScalePoint{{1, "a"}, {3, "b"}, {2, "c"}, {4, "d"}, {5, "e"}}, "scale point 1 has value 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("t", DefaultCategories(), tt.scale, DefaultQuestions())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_NoQuestions(t *testing.T) {
	_, err := New("t", DefaultCategories(), DefaultScale(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no questions")
}

const sampleYAML = `
title: Weekly Review
categories:
  - id: Focus
    label: Deep work
  - id: Sleep
    label: Rest
questions:
  - id: 10
    text: I protected my focus time.
    category: Focus
  - id: 20
    text: I slept at least seven hours.
    category: Sleep
`

func TestParse_YAML(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Weekly Review", s.Title())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Rest", s.Label("Sleep"))
	assert.Equal(t, DefaultScale(), s.Scale(), "missing scale falls back to the default")
}

func TestParse_DefaultsTitle(t *testing.T) {
	doc := strings.Replace(sampleYAML, "title: Weekly Review\n", "", 1)
	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, s.Title())
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "categories: [{id: A, label: A}]\nquestions: [{id: 1, text: x, category: A}]\nextra: 1\n"},
		{"string id", "categories: [{id: A, label: A}]\nquestions: [{id: one, text: x, category: A}]\n"},
		{"missing questions", "categories: [{id: A, label: A}]\n"},
		{"scale value out of range", "categories: [{id: A, label: A}]\nquestions: [{id: 1, text: x, category: A}]\n" +
			"scale: [{value: 0, label: a}, {value: 2, label: b}, {value: 3, label: c}, {value: 4, label: d}, {value: 5, label: e}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), "schema")
		})
	}
}

func TestParse_SemanticViolation(t *testing.T) {
	doc := "categories: [{id: A, label: A}]\nquestions: [{id: 1, text: x, category: B}]\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "B"`)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("categories: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode question set")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
