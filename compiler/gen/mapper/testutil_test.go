package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/mapgen/compiler/gen"
	"github.com/syssam/mapgen/compiler/load"
)

const testPackage = "example.com/app/mapper"

// usersTable returns a users description with a single-column key, two plain
// columns and, if lob is set, a large-object column.
func usersTable(lob bool) *load.Table {
	t := &load.Table{
		Name: "users",
		Columns: []*load.Column{
			{Name: "id", Type: "BIGINT", GoType: "int64", PrimaryKey: true},
			{Name: "user_name", Type: "VARCHAR", GoType: "string"},
			{Name: "email", Type: "VARCHAR", GoType: "*string", Nullable: true},
		},
	}
	if lob {
		t.Columns = append(t.Columns, &load.Column{Name: "bio", Type: "CLOB", GoType: "string"})
	}
	return t
}

// ordersTable returns an orders description keyed by order_id only.
func ordersTable() *load.Table {
	return &load.Table{
		Name:    "orders",
		Columns: []*load.Column{{Name: "order_id", Type: "BIGINT", GoType: "int64", PrimaryKey: true}},
	}
}

// resolved holds a table with its resolved operations and names.
type resolved struct {
	table *gen.Table
	ops   gen.OperationSet
	names gen.Names
}

func resolve(t testing.TB, lt *load.Table, r gen.Runtime, strategy gen.NamingStrategy) resolved {
	t.Helper()
	tbl, err := gen.NewTable(lt, &gen.Config{Runtime: r, Package: testPackage})
	require.NoError(t, err)
	return resolveTable(t, tbl, strategy)
}

func resolveTable(t testing.TB, tbl *gen.Table, strategy gen.NamingStrategy) resolved {
	t.Helper()
	ops := gen.Resolve(tbl)
	names, err := gen.ResolveNames(tbl, ops, strategy)
	require.NoError(t, err)
	return resolved{table: tbl, ops: ops, names: names}
}

// latticeTable returns the table facts of one point of the lattice of the
// eight statement switches, the three column partitions, consolidation and
// runtime.
func latticeTable(mask int) *gen.Table {
	bit := func(i int) bool { return mask&(1<<i) != 0 }
	t := &gen.Table{
		Name:   "users",
		Domain: "User",
		Statements: gen.Statements{
			Insert:         bit(0),
			SelectByKey:    bit(1),
			SelectByParams: bit(2),
			UpdateByKey:    bit(3),
			DeleteByKey:    bit(4),
			DeleteByParams: bit(5),
			CountByParams:  bit(6),
			UpdateByParams: bit(7),
		},
		Consolidated: bit(11),
		Runtime:      gen.Legacy,
		Package:      testPackage,
	}
	if bit(8) {
		t.PrimaryKey = []*gen.Column{{Name: "id", Property: "ID", GoType: "int64", JDBCType: "BIGINT"}}
	}
	if bit(9) {
		t.Columns = []*gen.Column{{Name: "name", Property: "Name", GoType: "string", JDBCType: "VARCHAR"}}
	}
	if bit(10) {
		t.LOBs = []*gen.Column{{Name: "bio", Property: "Bio", GoType: "string", JDBCType: "CLOB"}}
	}
	if bit(12) {
		t.Runtime = gen.Modern
	}
	return t
}

const latticeSize = 1 << 13
