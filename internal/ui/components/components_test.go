package components

import (
	"strings"
	"testing"

	"github.com/abhisek/daycheck/internal/questionset"
)

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		pct  int
		want int
	}{
		{0, 0},
		{33, 6},
		{50, 10},
		{100, 20},
		{140, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar(tt.pct, 40)
		if got := p.Filled(20); got != tt.want {
			t.Errorf("Filled(20) at %d%% = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestProgressBar_Caption(t *testing.T) {
	if v := NewProgressBar(33, 40).View(); !strings.Contains(v, "33%") {
		t.Errorf("default caption missing from %q", v)
	}
	if v := NewProgressBar(60, 40).WithCaption("9 / 15 (60%)").View(); !strings.Contains(v, "9 / 15 (60%)") {
		t.Errorf("custom caption missing from %q", v)
	}
}

func TestScalePicker_Navigation(t *testing.T) {
	points := questionset.DefaultScale()

	tests := []struct {
		name     string
		selected int
		next     int
		prev     int
	}{
		{"nothing selected starts in the middle", 0, 3, 3},
		{"low end", 1, 2, 1},
		{"high end", 5, 5, 4},
		{"middle", 3, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewScalePicker(points, tt.selected)
			if got := p.Next(); got != tt.next {
				t.Errorf("Next() = %d, want %d", got, tt.next)
			}
			if got := p.Prev(); got != tt.prev {
				t.Errorf("Prev() = %d, want %d", got, tt.prev)
			}
		})
	}
}

func TestScalePicker_View(t *testing.T) {
	v := NewScalePicker(questionset.DefaultScale(), 2).View(80)
	for _, want := range []string{"1", "2", "3", "4", "5"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing value %s", want)
		}
	}
	if NewScalePicker(nil, 0).View(80) != "" {
		t.Error("empty picker should render nothing")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Strongly disagree", 8); got != "Strongl…" {
		t.Errorf("truncate = %q, want %q", got, "Strongl…")
	}
	if got := truncate("Agree", 8); got != "Agree" {
		t.Errorf("truncate = %q, want unchanged", got)
	}
}

func TestButton_View(t *testing.T) {
	if v := NewButton("Next", true).View(); !strings.Contains(v, "Next") {
		t.Errorf("primary button = %q", v)
	}
	if v := NewButton("Back", false).View(); !strings.Contains(v, "Back") {
		t.Errorf("secondary button = %q", v)
	}
}
