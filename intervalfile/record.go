package intervalfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Record is an interval read from a file.
type Record struct {
	Start  int    `yaml:"start"`
	Length int    `yaml:"length"`
	Label  string `yaml:"label,omitempty"`
	Line   int    `yaml:"-"` // line of the record in its file, if known
}

// End returns the first position after the record's interval.
func (r Record) End() int {
	return r.Start + r.Length
}

func (r Record) String() string {
	if r.Label == "" {
		return fmt.Sprintf("[%d,%d)", r.Start, r.End())
	}
	return fmt.Sprintf("[%d,%d) %s", r.Start, r.End(), r.Label)
}

// Positions is the introspector for records.
type Positions struct{}

// Start returns the start of a record's interval.
func (Positions) Start(r Record) int { return r.Start }

// Length returns the length of a record's interval.
func (Positions) Length(r Record) int { return r.Length }

// Format is a file format for interval records.
type Format int

// Supported formats.
const (
	LineFormat Format = iota
	YAMLFormat
)

func (f Format) String() string {
	switch f {
	case LineFormat:
		return "lines"
	case YAMLFormat:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromName selects a format from the extension of a file name.
// Files ending in .yaml or .yml are read as YAML, all others as lines.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAMLFormat
	}
	return LineFormat
}
