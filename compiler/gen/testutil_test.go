package gen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/mapgen/compiler/load"
)

// shape describes the column partition of a test table.
type shape struct {
	pk, plain, lob int
}

func (s shape) String() string {
	return fmt.Sprintf("pk=%d/plain=%d/lob=%d", s.pk, s.plain, s.lob)
}

// shapes covers every present-or-absent combination of the three partitions,
// plus a composite key.
var shapes = []shape{
	{0, 0, 0}, {0, 0, 1}, {0, 2, 0}, {0, 2, 1},
	{1, 0, 0}, {1, 0, 1}, {1, 2, 0}, {1, 2, 1},
	{2, 2, 2},
}

// loadTable returns a description of table name with the given shape and
// every statement switch enabled.
func loadTable(name string, s shape) *load.Table {
	t := &load.Table{Name: name}
	for i := range s.pk {
		t.Columns = append(t.Columns, &load.Column{Name: fmt.Sprintf("id_%d", i), Type: "BIGINT", GoType: "int64", PrimaryKey: true})
	}
	for i := range s.plain {
		t.Columns = append(t.Columns, &load.Column{Name: fmt.Sprintf("col_%d", i), Type: "VARCHAR", GoType: "string"})
	}
	for i := range s.lob {
		t.Columns = append(t.Columns, &load.Column{Name: fmt.Sprintf("doc_%d", i), Type: "CLOB", GoType: "string"})
	}
	return t
}

// newTestTable builds table facts with the given shape under runtime r.
func newTestTable(t testing.TB, s shape, r Runtime, consolidated bool) *Table {
	t.Helper()
	lt := loadTable("users", s)
	lt.Consolidated = consolidated
	tbl, err := NewTable(lt, &Config{Runtime: r, Package: "example.com/app/mapper"})
	require.NoError(t, err)
	return tbl
}

// statementsOf decodes the low 8 bits of mask into statement switches.
func statementsOf(mask int) Statements {
	return Statements{
		Insert:         mask&(1<<0) != 0,
		SelectByKey:    mask&(1<<1) != 0,
		SelectByParams: mask&(1<<2) != 0,
		UpdateByKey:    mask&(1<<3) != 0,
		DeleteByKey:    mask&(1<<4) != 0,
		DeleteByParams: mask&(1<<5) != 0,
		CountByParams:  mask&(1<<6) != 0,
		UpdateByParams: mask&(1<<7) != 0,
	}
}
