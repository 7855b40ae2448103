package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mcncl/rdjson/internal/config"
	"github.com/mcncl/rdjson/internal/models"
	"github.com/op/go-logging"
)

// DefaultRootName is the default name for the root struct if not specified.
const DefaultRootName = "RootType"

var log = logging.MustGetLogger("analyzer")

var rfc3339Regex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)

var (
	interfaceType = models.TypeInfo{Kind: models.TypeInterface, Name: "interface{}"}
	stringType    = models.TypeInfo{Kind: models.TypeString, Name: "string"}
	intType       = models.TypeInfo{Kind: models.TypeInt, Name: "int64"}
	floatType     = models.TypeInfo{Kind: models.TypeFloat, Name: "float64"}
	boolType      = models.TypeInfo{Kind: models.TypeBool, Name: "bool"}
	timeType      = models.TypeInfo{Kind: models.TypeString, Name: "time.Time"}
	mapType       = models.TypeInfo{Kind: models.TypeInterface, Name: "map[string]interface{}"}
)

// Analyzer walks a parsed document and derives Go struct definitions
type Analyzer struct {
	// structNames tracks generated struct names to avoid collisions
	structNames map[string]bool
	result      models.AnalysisResult
	config      *config.Config
}

// NewAnalyzer creates a new Analyzer with the default configuration.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(config.NewConfig())
}

// NewAnalyzerWithConfig creates a new Analyzer with custom configuration.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	return &Analyzer{
		structNames: make(map[string]bool),
		result: models.AnalysisResult{
			Structs: make([]models.StructDef, 0),
			Imports: make(map[string]struct{}),
		},
		config: cfg,
	}
}

// Analyze returns the struct definitions for doc. The root object becomes the
// struct named rootStructName.
func (a *Analyzer) Analyze(doc models.Document, rootStructName string) (models.AnalysisResult, error) {
	if rootStructName == "" {
		rootStructName = DefaultRootName
	}
	rootStructName = a.uniqueStructName(goIdentifier(a.config.GetFieldName(rootStructName)))

	a.analyzeStruct([]models.ObjectValue{doc.Root}, rootStructName, true)
	log.Debugf("analyzed %s: %d structs, %d imports", rootStructName, len(a.result.Structs), len(a.result.Imports))
	return a.result, nil
}

func (a *Analyzer) analyzeValue(v models.Value, suggestedName string) models.TypeInfo {
	switch val := v.(type) {
	case models.NullValue:
		return interfaceType
	case models.BoolValue:
		return boolType
	case models.StringValue:
		if rfc3339Regex.MatchString(string(val)) {
			a.result.Imports["time"] = struct{}{}
			return timeType
		}
		return stringType
	case models.NumberValue:
		if val.IsInteger() {
			return intType
		}
		return floatType
	case models.ObjectValue:
		if val.IsEmpty() {
			return mapType
		}
		name := a.uniqueStructName(suggestedName)
		a.analyzeStruct([]models.ObjectValue{val}, name, false)
		return models.TypeInfo{Kind: models.TypeStruct, Name: name, StructName: name, IsPointer: true}
	case models.ArrayValue:
		return a.analyzeArray(val, suggestedName)
	default:
		return interfaceType
	}
}

func (a *Analyzer) analyzeArray(arr models.ArrayValue, suggestedName string) models.TypeInfo {
	element := interfaceType
	if !arr.IsEmpty() {
		element = a.elementType(arr.Items, singularize(suggestedName))
	}
	return models.TypeInfo{
		Kind:             models.TypeSlice,
		Name:             "[]" + element.String(),
		SliceElementType: &element,
	}
}

// elementType finds one Go type for every item of an array. Objects are
// merged into one struct; ints widen to float64 when mixed with floats.
func (a *Analyzer) elementType(items []models.Value, suggestedName string) models.TypeInfo {
	objects := make([]models.ObjectValue, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(models.ObjectValue); ok && !obj.IsEmpty() {
			objects = append(objects, obj)
		}
	}
	if len(objects) == len(items) {
		name := a.uniqueStructName(suggestedName)
		a.analyzeStruct(objects, name, false)
		return models.TypeInfo{Kind: models.TypeStruct, Name: name, StructName: name}
	}

	if merged, ok := mergeArrays(items); ok {
		return a.analyzeArray(merged, suggestedName)
	}

	var merged *models.TypeInfo
	for _, item := range items {
		if _, ok := item.(models.ObjectValue); ok {
			return interfaceType
		}
		t := a.analyzeValue(item, suggestedName)
		if merged == nil {
			merged = &t
			continue
		}
		merged = widen(*merged, t)
		if merged.Kind == models.TypeInterface {
			return interfaceType
		}
	}
	return *merged
}

// mergeArrays concatenates the items of values when there are at least two
// arrays and nothing else but nulls, so that sibling arrays share one
// element type.
func mergeArrays(values []models.Value) (models.ArrayValue, bool) {
	var items []models.Value
	arrays := 0
	for _, v := range values {
		switch val := v.(type) {
		case models.ArrayValue:
			arrays++
			items = append(items, val.Items...)
		case models.NullValue:
		default:
			return models.ArrayValue{}, false
		}
	}
	if arrays < 2 {
		return models.ArrayValue{}, false
	}
	return models.NewArray(items...), true
}

func widen(a, b models.TypeInfo) *models.TypeInfo {
	if typesEqual(a, b) {
		return &a
	}
	if isNumeric(a) && isNumeric(b) {
		f := floatType
		return &f
	}
	i := interfaceType
	return &i
}

func isNumeric(t models.TypeInfo) bool {
	return t.Kind == models.TypeInt || t.Kind == models.TypeFloat
}

func typesEqual(a, b models.TypeInfo) bool {
	if a.Kind != b.Kind || a.Name != b.Name || a.IsPointer != b.IsPointer || a.StructName != b.StructName {
		return false
	}
	if a.Kind == models.TypeSlice {
		if a.SliceElementType == nil || b.SliceElementType == nil {
			return a.SliceElementType == b.SliceElementType
		}
		return typesEqual(*a.SliceElementType, *b.SliceElementType)
	}
	return true
}

// analyzeStruct builds one struct from the union of keys of objects. Keys
// missing from some of the objects become optional pointer fields.
func (a *Analyzer) analyzeStruct(objects []models.ObjectValue, name string, isRoot bool) {
	keys := make([]string, 0)
	seen := make(map[string]int)
	for _, obj := range objects {
		for _, key := range obj.Keys() {
			if seen[key] == 0 {
				keys = append(keys, key)
			}
			seen[key]++
		}
	}

	// reserve the slot so parents are listed before their children
	index := len(a.result.Structs)
	a.result.Structs = append(a.result.Structs, models.StructDef{Name: name, IsRoot: isRoot})

	fieldNames := make(map[string]bool)
	fields := make([]models.FieldInfo, 0, len(keys))
	for _, key := range keys {
		goName := uniqueName(fieldNames, goIdentifier(a.config.GetFieldName(key)))

		var values []models.Value
		for _, obj := range objects {
			if v, ok := obj.Get(key); ok {
				values = append(values, v)
			}
		}

		fieldType := a.fieldType(key, values, name+goName)
		optional := seen[key] < len(objects)
		if optional && !fieldType.IsPointer && fieldType.Kind != models.TypeSlice && fieldType.Kind != models.TypeInterface {
			fieldType.IsPointer = true
		}

		omitempty := optional || fieldType.IsPointer || fieldType.Kind == models.TypeSlice || fieldType.Kind == models.TypeInterface
		fields = append(fields, models.FieldInfo{
			JSONKey: key,
			GoName:  goName,
			GoType:  fieldType,
			JSONTag: jsonTag(key, omitempty),
		})
	}

	a.result.Structs[index].Fields = fields
}

func (a *Analyzer) fieldType(key string, values []models.Value, suggestedName string) models.TypeInfo {
	if mapping, found := a.config.FindTypeMapping(key); found {
		if mapping.Import != "" {
			a.result.Imports[mapping.Import] = struct{}{}
		}
		return models.TypeInfo{Kind: models.TypeString, Name: mapping.Type}
	}

	objects := make([]models.ObjectValue, 0, len(values))
	for _, v := range values {
		if obj, ok := v.(models.ObjectValue); ok && !obj.IsEmpty() {
			objects = append(objects, obj)
		}
	}
	if len(objects) > 1 && len(objects) == len(values) {
		name := a.uniqueStructName(suggestedName)
		a.analyzeStruct(objects, name, false)
		return models.TypeInfo{Kind: models.TypeStruct, Name: name, StructName: name, IsPointer: true}
	}
	if len(objects) > 0 && len(objects) < len(values) {
		return interfaceType
	}

	if merged, ok := mergeArrays(values); ok {
		return a.analyzeArray(merged, suggestedName)
	}

	var merged *models.TypeInfo
	nullable := false
	for _, v := range values {
		if _, ok := v.(models.NullValue); ok {
			nullable = true
			continue
		}
		t := a.analyzeValue(v, suggestedName)
		if merged == nil {
			merged = &t
			continue
		}
		merged = widen(*merged, t)
	}
	if merged == nil {
		return interfaceType
	}
	if nullable && merged.Kind != models.TypeSlice && merged.Kind != models.TypeInterface {
		merged.IsPointer = true
	}
	return *merged
}

// uniqueStructName returns baseName, or baseName with the first free
// numeric suffix once baseName is taken.
func (a *Analyzer) uniqueStructName(baseName string) string {
	return uniqueName(a.structNames, baseName)
}

func uniqueName(used map[string]bool, base string) string {
	name := base
	for i := 1; used[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	used[name] = true
	return name
}

// goIdentifier drops characters that cannot appear in a Go identifier and
// makes sure the result starts with an upper-case letter.
func goIdentifier(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		}
	}
	ident := sb.String()
	if ident == "" {
		return "Field"
	}
	first := []rune(ident)[0]
	if !unicode.IsLetter(first) {
		return "Field" + ident
	}
	if !unicode.IsUpper(first) {
		return string(unicode.ToUpper(first)) + string([]rune(ident)[1:])
	}
	return ident
}

// jsonTag renders the struct tag. Keys that cannot sit inside a raw string
// literal get an interpreted literal instead.
func jsonTag(key string, omitempty bool) string {
	value := key
	if omitempty {
		value += ",omitempty"
	}
	tag := fmt.Sprintf("json:%q", value)
	if strings.ContainsAny(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}

var knownSingulars = map[string]string{
	"series":    "series",
	"status":    "status",
	"news":      "news",
	"children":  "child",
	"people":    "person",
	"data":      "data",
	"media":     "media",
	"addresses": "address",
}

// singularize converts a plural PascalCase name to a singular one using a
// few English suffix rules.
func singularize(plural string) string {
	for word, singular := range knownSingulars {
		if hasSuffixFold(plural, word) {
			prefix := plural[:len(plural)-len(word)]
			if prefix == "" {
				return goIdentifier(singular)
			}
			return prefix + strings.ToUpper(singular[:1]) + singular[1:]
		}
	}

	switch {
	case hasSuffixFold(plural, "ies") && len(plural) > 3:
		return plural[:len(plural)-3] + "y"
	case hasSuffixFold(plural, "ss"), hasSuffixFold(plural, "us"), hasSuffixFold(plural, "is"):
		return plural
	case hasSuffixFold(plural, "s") && len(plural) > 1:
		return plural[:len(plural)-1]
	default:
		return plural
	}
}

// hasSuffixFold is strings.HasSuffix ignoring case. suffix is ASCII, so a
// match always ends s on a rune boundary.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
