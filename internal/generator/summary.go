package generator

import (
	"bytes"
	"fmt"

	"github.com/mcncl/rdjson/internal/models"
)

// GenerateSummary renders value counts for a document
func (g *Generator) GenerateSummary(s models.Summary) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "objects:   %d\n", s.Counts[models.KindObject])
	fmt.Fprintf(&buf, "arrays:    %d\n", s.Counts[models.KindArray])
	fmt.Fprintf(&buf, "strings:   %d\n", s.Counts[models.KindString])
	fmt.Fprintf(&buf, "numbers:   %d (%d integer, %d float)\n", s.Counts[models.KindNumber], s.Integers, s.Floats)
	fmt.Fprintf(&buf, "bools:     %d\n", s.Counts[models.KindBool])
	fmt.Fprintf(&buf, "nulls:     %d\n", s.Counts[models.KindNull])
	fmt.Fprintf(&buf, "keys:      %d\n", s.Keys)
	fmt.Fprintf(&buf, "max depth: %d\n", s.MaxDepth)
	return buf.String()
}
