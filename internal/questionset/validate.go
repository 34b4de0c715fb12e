package questionset

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a question set.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question set: %s", strings.Join(e.Problems, "; "))
}

// validate performs all structural checks on the given tables.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validate(categories []CategoryInfo, scale []ScalePoint, questions []Question) error {
	var errs []string

	catSet := make(map[Category]bool, len(categories))
	for _, c := range categories {
		if c.ID == "" {
			errs = append(errs, "category with empty id")
			continue
		}
		if catSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category: %q", c.ID))
		}
		catSet[c.ID] = true
	}

	// The scale must be exactly MinScore..MaxScore in ascending order.
	if len(scale) != MaxScore-MinScore+1 {
		errs = append(errs, fmt.Sprintf("scale has %d points, want %d", len(scale), MaxScore-MinScore+1))
	} else {
		for i, p := range scale {
			if p.Value != MinScore+i {
				errs = append(errs, fmt.Sprintf("scale point %d has value %d, want %d", i, p.Value, MinScore+i))
			}
		}
	}

	if len(questions) == 0 {
		errs = append(errs, "no questions")
	}

	idSet := make(map[int]bool, len(questions))
	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		idSet[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %d has empty text", q.ID))
		}
		if !catSet[q.Category] {
			errs = append(errs, fmt.Sprintf("question %d references unknown category %q", q.ID, q.Category))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
