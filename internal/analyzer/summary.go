package analyzer

import "github.com/mcncl/rdjson/internal/models"

// Summarize counts the values in a tree. The root object itself is counted
// and sits at depth 1.
func Summarize(root models.ObjectValue) models.Summary {
	s := models.Summary{Counts: make(map[models.ValueKind]int)}
	summarize(root, 1, &s)
	return s
}

func summarize(v models.Value, depth int, s *models.Summary) {
	s.Counts[v.Kind()]++

	switch val := v.(type) {
	case models.ObjectValue:
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		s.Keys += val.Len()
		for _, child := range val.Entries {
			summarize(child, depth+1, s)
		}
	case models.ArrayValue:
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		for _, child := range val.Items {
			summarize(child, depth+1, s)
		}
	case models.NumberValue:
		if val.IsInteger() {
			s.Integers++
		} else {
			s.Floats++
		}
	}
}
