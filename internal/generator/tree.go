package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mcncl/rdjson/internal/models"
)

const treeIndent = "  "

// GenerateTree renders a parsed document as an indented listing, one value
// per line. Object keys are listed in sorted order. The output is meant for
// reading, it is not JSON.
func (g *Generator) GenerateTree(root models.ObjectValue) string {
	var buf bytes.Buffer
	writeTreeValue(&buf, root, 0)
	return buf.String()
}

func writeTreeValue(buf *bytes.Buffer, v models.Value, depth int) {
	buf.WriteString(describe(v))
	buf.WriteString("\n")

	prefix := strings.Repeat(treeIndent, depth+1)
	switch val := v.(type) {
	case models.ObjectValue:
		for _, key := range val.Keys() {
			child, _ := val.Get(key)
			fmt.Fprintf(buf, "%s%s: ", prefix, key)
			writeTreeValue(buf, child, depth+1)
		}
	case models.ArrayValue:
		for i, child := range val.Items {
			fmt.Fprintf(buf, "%s[%d]: ", prefix, i)
			writeTreeValue(buf, child, depth+1)
		}
	}
}

func describe(v models.Value) string {
	switch val := v.(type) {
	case models.ObjectValue:
		return fmt.Sprintf("object (%d %s)", val.Len(), plural(val.Len(), "entry", "entries"))
	case models.ArrayValue:
		return fmt.Sprintf("array (%d %s)", val.Len(), plural(val.Len(), "item", "items"))
	case models.StringValue:
		return fmt.Sprintf("string \"%s\"", string(val))
	case models.NumberValue:
		if val.IsInteger() {
			return fmt.Sprintf("number %s (integer)", val)
		}
		return fmt.Sprintf("number %s (float)", val)
	case models.BoolValue:
		return fmt.Sprintf("bool %t", bool(val))
	case models.NullValue:
		return "null"
	default:
		return "unknown"
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
