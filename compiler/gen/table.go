package gen

import (
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/syssam/mapgen/compiler/load"
)

// rules holds the inflection rules for domain, property and method names.
var rules = inflect.NewDefaultRuleset()

// The following types are the table facts every rule and generator reads.
// A Table is built once per run and never modified afterwards.
type (
	// Table holds the introspected shape and the per-table settings of one
	// database table.
	Table struct {
		// Catalog, Schema and Name identify the table (case-sensitive).
		Catalog, Schema, Name string
		// Domain is the domain object name (User for table users).
		Domain string
		// PrimaryKey, Columns and LOBs partition the table columns.
		// Columns holds the plain (non-key, non-LOB) columns.
		PrimaryKey []*Column
		Columns    []*Column
		LOBs       []*Column
		// Statements are the per-table statement switches.
		Statements Statements
		// Runtime is the mapping-document family.
		Runtime Runtime
		// Consolidated reports that one holder type carries every column.
		Consolidated bool
		// RootInterface is embedded by the client interface, if set.
		RootInterface string
		// Package is the import path of the generated package.
		Package string
	}

	// Column holds the information of a table column used by the generators.
	Column struct {
		// Name is the database column name.
		Name string
		// JDBCType is the JDBC-style type name.
		JDBCType string
		// GoType is the Go type of the holder field.
		GoType string
		// Property is the exported holder field name.
		Property string
		// Nullable reports whether the column accepts NULL.
		Nullable bool
	}

	// Statements are the eight independent statement switches.
	Statements struct {
		Insert         bool
		SelectByKey    bool
		SelectByParams bool
		UpdateByKey    bool
		DeleteByKey    bool
		DeleteByParams bool
		CountByParams  bool
		UpdateByParams bool
	}
)

// AllStatements returns Statements with every switch set.
func AllStatements() Statements {
	return Statements{
		Insert:         true,
		SelectByKey:    true,
		SelectByParams: true,
		UpdateByKey:    true,
		DeleteByKey:    true,
		DeleteByParams: true,
		CountByParams:  true,
		UpdateByParams: true,
	}
}

// NewTable builds the table facts from a loaded description.
func NewTable(lt *load.Table, c *Config) (*Table, error) {
	if lt == nil {
		return nil, NewConfigError("Table", nil, "table cannot be nil")
	}
	if err := lt.Validate(); err != nil {
		return nil, &TableError{Table: lt.FullName(), Message: "invalid description", Cause: err}
	}
	t := &Table{
		Catalog:       lt.Catalog,
		Schema:        lt.Schema,
		Name:          lt.Name,
		Domain:        lt.Domain,
		Runtime:       c.Runtime,
		Consolidated:  lt.Consolidated,
		RootInterface: lt.RootInterface,
		Package:       c.Package,
		Statements: Statements{
			Insert:         load.Enabled(lt.Statements.Insert),
			SelectByKey:    load.Enabled(lt.Statements.SelectByKey),
			SelectByParams: load.Enabled(lt.Statements.SelectByParams),
			UpdateByKey:    load.Enabled(lt.Statements.UpdateByKey),
			DeleteByKey:    load.Enabled(lt.Statements.DeleteByKey),
			DeleteByParams: load.Enabled(lt.Statements.DeleteByParams),
			CountByParams:  load.Enabled(lt.Statements.CountByParams),
			UpdateByParams: load.Enabled(lt.Statements.UpdateByParams),
		},
	}
	if t.Domain == "" {
		t.Domain = DomainName(lt.Name)
	}
	if t.RootInterface == "" {
		t.RootInterface = c.RootInterface
	}
	for _, lc := range lt.Columns {
		col := &Column{
			Name:     lc.Name,
			JDBCType: strings.ToUpper(lc.Type),
			GoType:   lc.GoType,
			Property: lc.Property,
			Nullable: lc.Nullable,
		}
		if col.Property == "" {
			col.Property = pascal(lc.Name)
		}
		if col.GoType == "" {
			col.GoType = "any"
		}
		switch {
		case lc.PrimaryKey:
			t.PrimaryKey = append(t.PrimaryKey, col)
		case lc.IsLOB():
			t.LOBs = append(t.LOBs, col)
		default:
			t.Columns = append(t.Columns, col)
		}
	}
	return t, nil
}

// DomainName derives the domain object name from a table name,
// e.g. user_accounts becomes UserAccount.
func DomainName(table string) string {
	if i := strings.LastIndexByte(table, '.'); i >= 0 {
		table = table[i+1:]
	}
	return pascal(rules.Singularize(strings.ToLower(table)))
}

// FullName returns the dotted catalog.schema.name identity.
func (t *Table) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{t.Catalog, t.Schema, t.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// HasPrimaryKey reports whether the table has primary-key columns.
func (t *Table) HasPrimaryKey() bool { return len(t.PrimaryKey) > 0 }

// HasColumns reports whether the table has plain columns.
func (t *Table) HasColumns() bool { return len(t.Columns) > 0 }

// HasLOBs reports whether the table has large-object columns.
func (t *Table) HasLOBs() bool { return len(t.LOBs) > 0 }

// BaseColumns returns the primary-key and plain columns.
func (t *Table) BaseColumns() []*Column {
	cols := make([]*Column, 0, len(t.PrimaryKey)+len(t.Columns))
	cols = append(cols, t.PrimaryKey...)
	return append(cols, t.Columns...)
}

// AllColumns returns every column: primary key, plain, then LOB.
func (t *Table) AllColumns() []*Column {
	return append(t.BaseColumns(), t.LOBs...)
}

// NonKeyColumns returns the plain and LOB columns.
func (t *Table) NonKeyColumns() []*Column {
	cols := make([]*Column, 0, len(t.Columns)+len(t.LOBs))
	cols = append(cols, t.Columns...)
	return append(cols, t.LOBs...)
}

// RecordType returns the holder type of the primary-key and plain columns.
// With a consolidated table it holds every column.
func (t *Table) RecordType() string { return t.Domain }

// LOBRecordType returns the holder type that carries the LOB columns.
func (t *Table) LOBRecordType() string {
	if t.SplitHolders() {
		return t.Domain + "WithBLOBs"
	}
	return t.Domain
}

// SplitHolders reports whether LOB columns live in a separate holder type.
func (t *Table) SplitHolders() bool { return !t.Consolidated && t.HasLOBs() }

// AllFieldsType returns the holder type that carries every column. It is
// the insert parameter and the select-by-key result.
func (t *Table) AllFieldsType() string {
	if t.SplitHolders() {
		return t.LOBRecordType()
	}
	return t.RecordType()
}

// KeyType returns the holder type of a composite primary key.
func (t *Table) KeyType() string { return t.Domain + "Key" }

// ParamsType returns the by-params filter holder type.
func (t *Table) ParamsType() string { return t.Domain + "Params" }

// InterfaceName returns the client interface name.
func (t *Table) InterfaceName() string { return t.Domain + "Mapper" }

// ProviderName returns the SQL provider type name.
func (t *Table) ProviderName() string { return t.Domain + "SQLProvider" }

// Namespace returns the mapping document namespace. Modern documents are
// bound to the client interface, legacy documents to the table.
func (t *Table) Namespace() string {
	if t.Runtime == Legacy {
		return t.FullName()
	}
	if t.Package == "" {
		return t.InterfaceName()
	}
	return t.Package + "." + t.InterfaceName()
}

// FileName returns the base file name of the table's artifacts.
func (t *Table) FileName() string {
	return snake(t.Domain)
}

// ParamName returns the lower camel-case Go parameter name of a column.
func (c *Column) ParamName() string {
	return camel(c.Name)
}
