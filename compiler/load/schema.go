// Package load holds the table descriptions consumed by the code generator.
//
// A description is produced by an introspection step (a YAML project file, or an
// atlas schema inspected elsewhere) and is read-only once handed to compiler/gen.
package load

import (
	"fmt"
	"strings"
)

// Table represents one introspected database table together with its
// per-table generation settings.
type Table struct {
	Catalog string `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Schema  string `yaml:"schema,omitempty" json:"schema,omitempty"`
	Name    string `yaml:"name" json:"name"`
	// Domain overrides the domain object name derived from Name.
	Domain string `yaml:"domain,omitempty" json:"domain,omitempty"`
	// Consolidated models plain and LOB columns with one holder type.
	Consolidated  bool       `yaml:"consolidated,omitempty" json:"consolidated,omitempty"`
	RootInterface string     `yaml:"root_interface,omitempty" json:"root_interface,omitempty"`
	Statements    Statements `yaml:"statements,omitempty" json:"statements,omitempty"`
	Columns       []*Column  `yaml:"columns" json:"columns"`
}

// Column represents an introspected column.
type Column struct {
	Name string `yaml:"name" json:"name"`
	// Type is the JDBC-style type name (BIGINT, VARCHAR, CLOB, ...).
	Type       string `yaml:"type" json:"type"`
	GoType     string `yaml:"go_type,omitempty" json:"go_type,omitempty"`
	Property   string `yaml:"property,omitempty" json:"property,omitempty"`
	PrimaryKey bool   `yaml:"primary_key,omitempty" json:"primary_key,omitempty"`
	// LOB forces large-object classification regardless of Type.
	LOB      bool `yaml:"lob,omitempty" json:"lob,omitempty"`
	Nullable bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
}

// Statements holds the per-table statement switches. A nil switch
// means enabled.
type Statements struct {
	Insert         *bool `yaml:"insert,omitempty" json:"insert,omitempty"`
	SelectByKey    *bool `yaml:"select_by_key,omitempty" json:"select_by_key,omitempty"`
	SelectByParams *bool `yaml:"select_by_params,omitempty" json:"select_by_params,omitempty"`
	UpdateByKey    *bool `yaml:"update_by_key,omitempty" json:"update_by_key,omitempty"`
	DeleteByKey    *bool `yaml:"delete_by_key,omitempty" json:"delete_by_key,omitempty"`
	DeleteByParams *bool `yaml:"delete_by_params,omitempty" json:"delete_by_params,omitempty"`
	CountByParams  *bool `yaml:"count_by_params,omitempty" json:"count_by_params,omitempty"`
	UpdateByParams *bool `yaml:"update_by_params,omitempty" json:"update_by_params,omitempty"`
}

// Enabled reports the value of a switch, defaulting to true.
func Enabled(b *bool) bool { return b == nil || *b }

// Bool returns a pointer to b, for building Statements in code.
func Bool(b bool) *bool { return &b }

// lobTypes are the JDBC types classified as large objects.
var lobTypes = map[string]struct{}{
	"BLOB":          {},
	"CLOB":          {},
	"NCLOB":         {},
	"LONGVARCHAR":   {},
	"LONGNVARCHAR":  {},
	"LONGVARBINARY": {},
	"BINARY":        {},
	"VARBINARY":     {},
}

// IsLOB reports whether the column is a large-object column.
func (c *Column) IsLOB() bool {
	if c.LOB {
		return true
	}
	_, ok := lobTypes[strings.ToUpper(c.Type)]
	return ok && !c.PrimaryKey
}

// FullName returns the dotted catalog.schema.name identity of the table.
func (t *Table) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{t.Catalog, t.Schema, t.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// Validate reports structural problems in the description.
func (t *Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("table: missing name")
	}
	seen := make(map[string]struct{}, len(t.Columns))
	for i, c := range t.Columns {
		if c == nil || c.Name == "" {
			return fmt.Errorf("table %q: column %d: missing name", t.Name, i)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("table %q: duplicate column %q", t.Name, c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.PrimaryKey && c.LOB {
			return fmt.Errorf("table %q: column %q cannot be both primary key and LOB", t.Name, c.Name)
		}
	}
	return nil
}
