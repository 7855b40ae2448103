package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcncl/rdjson/internal/models"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("generator")

const generatedHeader = "// Code generated by rdjson. DO NOT EDIT.\n"

// Generator renders parsed documents and analysis results as text
type Generator struct{}

// NewGenerator creates a new Generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateStructs renders the structs of result as a Go source file. Structs
// and fields keep the analyzer's order, so the root struct comes first and
// parents precede their children. Alignment is left to gofmt.
func (g *Generator) GenerateStructs(result models.AnalysisResult, packageName string) (string, error) {
	if packageName == "" {
		packageName = "main"
	}

	var sb strings.Builder
	sb.WriteString(generatedHeader)
	fmt.Fprintf(&sb, "\npackage %s\n", packageName)
	writeImports(&sb, result.Imports)

	for _, def := range result.Structs {
		fmt.Fprintf(&sb, "\ntype %s struct {\n", def.Name)
		for _, field := range def.Fields {
			fmt.Fprintf(&sb, "\t%s %s %s\n", field.GoName, field.GoType, field.JSONTag)
		}
		sb.WriteString("}\n")
	}

	log.Debugf("rendered %d structs into package %s", len(result.Structs), packageName)
	return sb.String(), nil
}

// writeImports writes one import block, standard library paths first
func writeImports(sb *strings.Builder, imports map[string]struct{}) {
	if len(imports) == 0 {
		return
	}

	var std, external []string
	for path := range imports {
		// standard library paths have no dot in their first element
		if strings.Contains(strings.SplitN(path, "/", 2)[0], ".") {
			external = append(external, path)
		} else {
			std = append(std, path)
		}
	}
	sort.Strings(std)
	sort.Strings(external)

	sb.WriteString("\nimport (\n")
	for _, path := range std {
		fmt.Fprintf(sb, "\t%q\n", path)
	}
	if len(std) > 0 && len(external) > 0 {
		sb.WriteString("\n")
	}
	for _, path := range external {
		fmt.Fprintf(sb, "\t%q\n", path)
	}
	sb.WriteString(")\n")
}
