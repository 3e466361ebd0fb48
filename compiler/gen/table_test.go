package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/mapgen/compiler/load"
)

func TestNewTable(t *testing.T) {
	t.Run("partitions columns", func(t *testing.T) {
		lt := &load.Table{
			Schema: "app",
			Name:   "user_accounts",
			Columns: []*load.Column{
				{Name: "id", Type: "bigint", PrimaryKey: true},
				{Name: "first_name", Type: "VARCHAR", GoType: "string"},
				{Name: "avatar", Type: "BLOB", GoType: "[]byte"},
				{Name: "notes", Type: "VARCHAR", LOB: true},
			},
			Statements: load.Statements{DeleteByKey: load.Bool(false)},
		}
		tbl, err := NewTable(lt, &Config{Runtime: Modern, RootInterface: "BaseMapper"})
		require.NoError(t, err)

		assert.Equal(t, "UserAccount", tbl.Domain)
		assert.Equal(t, "app.user_accounts", tbl.FullName())
		require.Len(t, tbl.PrimaryKey, 1)
		assert.Equal(t, "BIGINT", tbl.PrimaryKey[0].JDBCType)
		assert.Equal(t, "any", tbl.PrimaryKey[0].GoType)
		require.Len(t, tbl.Columns, 1)
		assert.Equal(t, "FirstName", tbl.Columns[0].Property)
		require.Len(t, tbl.LOBs, 2)
		assert.Equal(t, "BaseMapper", tbl.RootInterface)
		assert.False(t, tbl.Statements.DeleteByKey)
		assert.True(t, tbl.Statements.Insert)
	})

	t.Run("explicit names win", func(t *testing.T) {
		lt := &load.Table{
			Name:          "tbl_person",
			Domain:        "Person",
			RootInterface: "PersonBase",
			Columns:       []*load.Column{{Name: "id", Type: "INTEGER", Property: "PersonID", PrimaryKey: true}},
		}
		tbl, err := NewTable(lt, &Config{Runtime: Modern, RootInterface: "BaseMapper"})
		require.NoError(t, err)
		assert.Equal(t, "Person", tbl.Domain)
		assert.Equal(t, "PersonBase", tbl.RootInterface)
		assert.Equal(t, "PersonID", tbl.PrimaryKey[0].Property)
	})

	t.Run("nil description", func(t *testing.T) {
		_, err := NewTable(nil, &Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("invalid description", func(t *testing.T) {
		lt := &load.Table{Name: "users", Columns: []*load.Column{{Name: "id"}, {Name: "id"}}}
		_, err := NewTable(lt, &Config{})
		require.Error(t, err)
		assert.True(t, IsTableError(err))
		assert.Contains(t, err.Error(), "duplicate column")
	})
}

func TestDomainName(t *testing.T) {
	tests := map[string]string{
		"users":         "User",
		"user_accounts": "UserAccount",
		"app.orders":    "Order",
		"CATEGORIES":    "Category",
		"person":        "Person",
	}
	for in, want := range tests {
		assert.Equal(t, want, DomainName(in), in)
	}
}

func TestTableHolderTypes(t *testing.T) {
	t.Run("split holders", func(t *testing.T) {
		tbl := newTestTable(t, shape{pk: 1, plain: 1, lob: 1}, Modern, false)
		assert.True(t, tbl.SplitHolders())
		assert.Equal(t, "User", tbl.RecordType())
		assert.Equal(t, "UserWithBLOBs", tbl.LOBRecordType())
		assert.Equal(t, "UserWithBLOBs", tbl.AllFieldsType())
	})

	t.Run("consolidated holder", func(t *testing.T) {
		tbl := newTestTable(t, shape{pk: 1, plain: 1, lob: 1}, Modern, true)
		assert.False(t, tbl.SplitHolders())
		assert.Equal(t, "User", tbl.LOBRecordType())
		assert.Equal(t, "User", tbl.AllFieldsType())
	})

	t.Run("no LOBs", func(t *testing.T) {
		tbl := newTestTable(t, shape{pk: 1, plain: 1}, Modern, false)
		assert.False(t, tbl.SplitHolders())
		assert.Equal(t, "User", tbl.AllFieldsType())
	})

	tbl := newTestTable(t, shape{pk: 2, plain: 1, lob: 1}, Modern, false)
	assert.Equal(t, "UserKey", tbl.KeyType())
	assert.Equal(t, "UserParams", tbl.ParamsType())
	assert.Equal(t, "UserMapper", tbl.InterfaceName())
	assert.Equal(t, "UserSQLProvider", tbl.ProviderName())
	assert.Equal(t, "user", tbl.FileName())
	assert.Len(t, tbl.BaseColumns(), 3)
	assert.Len(t, tbl.AllColumns(), 4)
	assert.Len(t, tbl.NonKeyColumns(), 2)
	assert.Equal(t, "id_0", tbl.AllColumns()[0].Name)
	assert.Equal(t, "doc_0", tbl.AllColumns()[3].Name)
}

func TestTableNamespace(t *testing.T) {
	modern := newTestTable(t, shape{pk: 1}, Modern, false)
	assert.Equal(t, "example.com/app/mapper.UserMapper", modern.Namespace())

	modern.Package = ""
	assert.Equal(t, "UserMapper", modern.Namespace())

	legacy := newTestTable(t, shape{pk: 1}, Legacy, false)
	legacy.Schema = "app"
	assert.Equal(t, "app.users", legacy.Namespace())
}

func TestColumnParamName(t *testing.T) {
	assert.Equal(t, "userID", (&Column{Name: "user_id"}).ParamName())
	assert.Equal(t, "name", (&Column{Name: "name"}).ParamName())
}
