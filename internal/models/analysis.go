package models

// TypeKind classifies the Go type inferred for a value
type TypeKind int

const (
	TypeInterface TypeKind = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeStruct
	TypeSlice
)

// TypeInfo describes the Go type inferred for a value
type TypeInfo struct {
	Kind             TypeKind
	Name             string    // Go type name for scalars, e.g. "int64"
	StructName       string    // set when Kind is TypeStruct
	SliceElementType *TypeInfo // set when Kind is TypeSlice
	IsPointer        bool
}

// String renders the type as it appears in Go source
func (t TypeInfo) String() string {
	name := t.Name
	switch t.Kind {
	case TypeStruct:
		name = t.StructName
	case TypeSlice:
		if t.SliceElementType != nil {
			name = "[]" + t.SliceElementType.String()
		}
	}
	if t.IsPointer {
		return "*" + name
	}
	return name
}

// FieldInfo is one field of a generated struct
type FieldInfo struct {
	JSONKey string
	GoName  string
	GoType  TypeInfo
	JSONTag string
}

// StructDef is a struct discovered while walking a tree
type StructDef struct {
	Name   string
	Fields []FieldInfo
	IsRoot bool
}

// AnalysisResult holds the structs discovered in a document
type AnalysisResult struct {
	Structs []StructDef
	Imports map[string]struct{}
}

// Summary counts what a parsed document contains
type Summary struct {
	Counts   map[ValueKind]int
	Integers int
	Floats   int
	Keys     int
	MaxDepth int
}

// Document is a parsed root object together with where it came from
type Document struct {
	Root   ObjectValue
	Source string
}
