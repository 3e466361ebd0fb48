package load

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"
)

// AtlasSource is a project entry that takes its tables from an atlas HCL
// schema file instead of listing them inline.
type AtlasSource struct {
	// File is resolved against the project file's directory.
	File    string `yaml:"file"`
	Dialect string `yaml:"dialect"`
	// Tables restricts the import to the named tables, given as "name" or
	// "schema.name". Empty imports every table.
	Tables        []string   `yaml:"tables,omitempty"`
	Consolidated  bool       `yaml:"consolidated,omitempty"`
	RootInterface string     `yaml:"root_interface,omitempty"`
	Statements    Statements `yaml:"statements,omitempty"`
}

// Load reads the source's HCL file relative to dir and converts the selected
// tables in schema order.
func (s *AtlasSource) Load(dir string) ([]*Table, error) {
	path := s.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading atlas schema: %w", err)
	}
	realm, err := EvalAtlasHCL(s.Dialect, data)
	if err != nil {
		return nil, fmt.Errorf("atlas schema %s: %w", s.File, err)
	}
	opts := AtlasOptions{
		Consolidated:  s.Consolidated,
		RootInterface: s.RootInterface,
		Statements:    s.Statements,
	}
	found := make(map[string]bool, len(s.Tables))
	var tables []*Table
	for _, sc := range realm.Schemas {
		for _, t := range sc.Tables {
			name := sc.Name + "." + t.Name
			if len(s.Tables) > 0 {
				switch {
				case slices.Contains(s.Tables, name):
					found[name] = true
				case slices.Contains(s.Tables, t.Name):
					found[t.Name] = true
				default:
					continue
				}
			}
			tables = append(tables, FromAtlas(t, opts))
		}
	}
	for _, name := range s.Tables {
		if !found[name] {
			return nil, fmt.Errorf("atlas schema %s: table %q not found", s.File, name)
		}
	}
	return tables, nil
}

// EvalAtlasHCL evaluates an atlas HCL schema document written for the named
// dialect.
func EvalAtlasHCL(dialect string, data []byte) (*schema.Realm, error) {
	var (
		r   schema.Realm
		err error
	)
	switch strings.ToLower(dialect) {
	case "postgres", "postgresql":
		err = postgres.EvalHCLBytes(data, &r, nil)
	case "mysql", "mariadb":
		err = mysql.EvalHCLBytes(data, &r, nil)
	case "sqlite", "sqlite3":
		err = sqlite.EvalHCLBytes(data, &r, nil)
	default:
		return nil, fmt.Errorf("unsupported atlas dialect %q", dialect)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// AtlasOptions controls how an atlas table is turned into a Table.
type AtlasOptions struct {
	Domain        string
	Consolidated  bool
	RootInterface string
	Statements    Statements
}

// FromAtlas converts a table inspected by atlas into a Table description.
// Binary columns and unsized or text-typed string columns are classified as
// large objects.
func FromAtlas(t *schema.Table, opts AtlasOptions) *Table {
	pk := make(map[string]struct{})
	if t.PrimaryKey != nil {
		for _, p := range t.PrimaryKey.Parts {
			if p.C != nil {
				pk[p.C.Name] = struct{}{}
			}
		}
	}
	out := &Table{
		Name:          t.Name,
		Domain:        opts.Domain,
		Consolidated:  opts.Consolidated,
		RootInterface: opts.RootInterface,
		Statements:    opts.Statements,
	}
	if t.Schema != nil {
		out.Schema = t.Schema.Name
	}
	for _, c := range t.Columns {
		_, isPK := pk[c.Name]
		col := &Column{
			Name:       c.Name,
			PrimaryKey: isPK,
		}
		if c.Type != nil {
			col.Nullable = c.Type.Null
			col.Type, col.GoType, col.LOB = atlasType(c.Type.Type)
		}
		if isPK {
			col.LOB = false
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}

// atlasType maps an atlas column type to its JDBC name, Go type and
// large-object classification.
func atlasType(t schema.Type) (jdbc, goType string, lob bool) {
	switch t := t.(type) {
	case *schema.IntegerType:
		switch strings.ToLower(t.T) {
		case "smallint", "int2", "tinyint":
			return "SMALLINT", "int16", false
		case "int", "integer", "int4", "mediumint":
			return "INTEGER", "int32", false
		default:
			return "BIGINT", "int64", false
		}
	case *schema.BoolType:
		return "BOOLEAN", "bool", false
	case *schema.FloatType:
		return "DOUBLE", "float64", false
	case *schema.DecimalType:
		return "DECIMAL", "string", false
	case *schema.TimeType:
		return "TIMESTAMP", "time.Time", false
	case *schema.BinaryType:
		return "BLOB", "[]byte", true
	case *schema.JSONType:
		return "LONGVARCHAR", "string", true
	case *schema.StringType:
		switch strings.ToLower(t.T) {
		case "text", "mediumtext", "longtext", "clob":
			return "CLOB", "string", true
		}
		return "VARCHAR", "string", false
	case *schema.UUIDType:
		return "CHAR", "string", false
	case *schema.EnumType:
		return "VARCHAR", "string", false
	default:
		return "OTHER", "any", false
	}
}
