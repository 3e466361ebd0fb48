package mapper

import (
	"strings"

	"github.com/syssam/mapgen/compiler/gen"
)

// runtimePkg returns the import path of the runtime package generated code
// refers to.
func runtimePkg() string {
	return "github.com/syssam/mapgen"
}

// qualify returns the fully qualified name of a type of the generated package.
func qualify(t *gen.Table, name string) string {
	if t.Package == "" {
		return name
	}
	return t.Package + "." + name
}

// verb returns the statement kind of an operation.
func verb(op gen.Operation) string {
	switch op {
	case gen.OpInsert, gen.OpInsertSelective:
		return "insert"
	case gen.OpSelectByKey, gen.OpSelectByParamsWithLOB, gen.OpSelectByParamsWithoutLOB, gen.OpCountByParams:
		return "select"
	case gen.OpDeleteByKey, gen.OpDeleteByParams:
		return "delete"
	default:
		return "update"
	}
}

// keyType returns the Go type of the select/delete-by-key parameter: the
// column type of a single-column key, the key holder otherwise.
func keyType(t *gen.Table) string {
	if len(t.PrimaryKey) == 1 {
		return t.PrimaryKey[0].GoType
	}
	return "*" + t.KeyType()
}

// keyParams returns the by-key parameters following the context.
func keyParams(t *gen.Table) []gen.Param {
	if len(t.PrimaryKey) == 1 {
		c := t.PrimaryKey[0]
		return []gen.Param{ctxParam(), {Name: c.ParamName(), Type: c.GoType}}
	}
	return []gen.Param{ctxParam(), {Name: "key", Type: keyType(t)}}
}

func ctxParam() gen.Param {
	return gen.Param{Name: "ctx", Type: "context.Context"}
}

func recordParam(typ string) gen.Param {
	return gen.Param{Name: "record", Type: "*" + typ}
}

func paramsParam(t *gen.Table) gen.Param {
	return gen.Param{Name: "params", Type: "*" + t.ParamsType()}
}

func affected() []string { return []string{"int64", "error"} }

func list(typ string) []string { return []string{"[]*" + typ, "error"} }

func one(typ string) []string { return []string{"*" + typ, "error"} }

// The following helpers build SQL text. Column properties address holder
// fields; prefix addresses a nested holder such as "Record.".

// columnList returns the comma-separated column names.
func columnList(cols []*gen.Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// placeholder returns the parameter placeholder of a column property.
func placeholder(r gen.Runtime, prop string, c *gen.Column) string {
	if r == gen.Legacy {
		if c.JDBCType == "" {
			return "#" + prop + "#"
		}
		return "#" + prop + ":" + c.JDBCType + "#"
	}
	if c.JDBCType == "" {
		return "#{" + prop + "}"
	}
	return "#{" + prop + ",jdbcType=" + c.JDBCType + "}"
}

// valueList returns the comma-separated placeholders of the columns.
func valueList(r gen.Runtime, prefix string, cols []*gen.Column) string {
	vs := make([]string, len(cols))
	for i, c := range cols {
		vs[i] = placeholder(r, prefix+c.Property, c)
	}
	return strings.Join(vs, ", ")
}

// assignments returns the "column = placeholder" pairs of a set clause.
func assignments(r gen.Runtime, prefix string, cols []*gen.Column) string {
	as := make([]string, len(cols))
	for i, c := range cols {
		as[i] = c.Name + " = " + placeholder(r, prefix+c.Property, c)
	}
	return strings.Join(as, ", ")
}

// keyCondition returns the primary-key where condition.
func keyCondition(r gen.Runtime, prefix string, t *gen.Table) string {
	cs := make([]string, len(t.PrimaryKey))
	for i, c := range t.PrimaryKey {
		cs[i] = c.Name + " = " + placeholder(r, prefix+c.Property, c)
	}
	return strings.Join(cs, " and ")
}
