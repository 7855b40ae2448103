package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Output modes understood by the CLI
const (
	ModeCheck   = "check"
	ModeTree    = "tree"
	ModeSummary = "summary"
	ModeStructs = "structs"
)

// Modes lists every valid output mode
var Modes = []string{ModeCheck, ModeTree, ModeSummary, ModeStructs}

// Config represents the complete configuration for rdjson
type Config struct {
	Parser     ParserConfig     `yaml:"parser"`
	Output     OutputConfig     `yaml:"output"`
	Naming     NamingConfig     `yaml:"naming"`
	Types      TypesConfig      `yaml:"types"`
	Formatting FormattingConfig `yaml:"formatting"`
	Log        LogConfig        `yaml:"log"`
}

// ParserConfig controls parse limits and leniency
type ParserConfig struct {
	MaxDepth           int  `yaml:"max_depth"`
	ExtendedWhitespace bool `yaml:"extended_whitespace"`
}

// OutputConfig controls what is printed for a parsed document
type OutputConfig struct {
	Mode     string `yaml:"mode"`
	Package  string `yaml:"package"`
	RootName string `yaml:"root_name"`
}

// NamingConfig controls Go field naming in structs mode
type NamingConfig struct {
	PascalCaseFields bool              `yaml:"pascal_case_fields"`
	FieldMappings    map[string]string `yaml:"field_mappings"`
}

// TypesConfig holds key-pattern type overrides for structs mode
type TypesConfig struct {
	Mappings []TypeMapping `yaml:"mappings"`
}

// TypeMapping forces the Go type of every key matching Pattern
type TypeMapping struct {
	Pattern string `yaml:"pattern"`
	Type    string `yaml:"type"`
	Import  string `yaml:"import,omitempty"`

	// compiled regex (not serialized)
	regex *regexp.Regexp
}

// FormattingConfig controls gofmt of generated code
type FormattingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig controls logging
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth:           512,
			ExtendedWhitespace: false,
		},
		Output: OutputConfig{
			Mode:     ModeTree,
			Package:  "main",
			RootName: "RootType",
		},
		Naming: NamingConfig{
			PascalCaseFields: true,
			FieldMappings:    make(map[string]string),
		},
		Types: TypesConfig{
			Mappings: []TypeMapping{},
		},
		Formatting: FormattingConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level:      "warning",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.compilePatterns(); err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".rdjson.yml", ".rdjson.yaml", "rdjson.yml", "rdjson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks values that yaml decoding cannot
func (c *Config) Validate() error {
	if !IsValidMode(c.Output.Mode) {
		return fmt.Errorf("invalid output mode '%s': must be one of %v", c.Output.Mode, Modes)
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth %d: must not be negative", c.Parser.MaxDepth)
	}
	return nil
}

// IsValidMode reports whether mode is one of Modes
func IsValidMode(mode string) bool {
	for _, m := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

func (c *Config) compilePatterns() error {
	for i := range c.Types.Mappings {
		mapping := &c.Types.Mappings[i]
		regex, err := regexp.Compile(mapping.Pattern)
		if err != nil {
			return fmt.Errorf("invalid type mapping pattern '%s': %w", mapping.Pattern, err)
		}
		mapping.regex = regex
	}
	return nil
}

// MatchesField checks if this type mapping matches the given key
func (tm *TypeMapping) MatchesField(key string) bool {
	if tm.regex == nil {
		regex, err := regexp.Compile(tm.Pattern)
		if err != nil {
			return false
		}
		tm.regex = regex
	}
	return tm.regex.MatchString(key)
}

// GetFieldName returns the Go field name for a document key, applying naming rules
func (c *Config) GetFieldName(key string) string {
	if mapped, exists := c.Naming.FieldMappings[key]; exists {
		return mapped
	}

	if c.Naming.PascalCaseFields {
		return strcase.ToCamel(key)
	}

	return key
}

// FindTypeMapping finds the first type mapping that matches the key
func (c *Config) FindTypeMapping(key string) (TypeMapping, bool) {
	for i := range c.Types.Mappings {
		if c.Types.Mappings[i].MatchesField(key) {
			return c.Types.Mappings[i], true
		}
	}
	return TypeMapping{}, false
}

// Overrides carries CLI flag values. Zero values leave the config untouched.
type Overrides struct {
	Mode               string
	Package            string
	RootName           string
	MaxDepth           int
	ExtendedWhitespace bool
	Debug              bool
	LogFile            string
	NoFormat           bool
}

// Apply copies every non-zero override onto c
func (o Overrides) Apply(c *Config) {
	if o.Mode != "" {
		c.Output.Mode = o.Mode
	}
	if o.Package != "" {
		c.Output.Package = o.Package
	}
	if o.RootName != "" {
		c.Output.RootName = o.RootName
	}
	if o.MaxDepth > 0 {
		c.Parser.MaxDepth = o.MaxDepth
	}
	if o.ExtendedWhitespace {
		c.Parser.ExtendedWhitespace = true
	}
	if o.Debug {
		c.Log.Level = "debug"
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	if o.NoFormat {
		c.Formatting.Enabled = false
	}
}

// LoadConfigWithCLI loads the config file (if any) and applies CLI
// overrides on top: CLI > config file > defaults
func LoadConfigWithCLI(configPath string, overrides Overrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	overrides.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
