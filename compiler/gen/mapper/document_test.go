package mapper

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/mapgen/compiler/gen"
	"github.com/syssam/mapgen/compiler/load"
)

func TestDocumentEmissionOrder(t *testing.T) {
	t.Run("modern", func(t *testing.T) {
		r := resolve(t, usersTable(true), gen.Modern, gen.Plain)
		doc, err := genDocument(r.table, r.ops, r.names)
		require.NoError(t, err)

		assert.Equal(t, "UserMapper", doc.Name)
		assert.Equal(t, "mapper", doc.Root.Name)
		ns, _ := doc.Root.Attr("namespace")
		assert.Equal(t, testPackage+".UserMapper", ns)
		assert.Equal(t, []string{
			"BaseResultMap",
			"ResultMapWithBLOBs",
			"Params_Where_Clause",
			"Update_By_Params_Where_Clause",
			"Base_Column_List",
			"Blob_Column_List",
			"selectByParamsWithBLOBs",
			"selectByParamsWithoutBLOBs",
			"selectByKey",
			"deleteByKey",
			"deleteByParams",
			"insert",
			"insertSelective",
			"countByParams",
			"updateByParamsSelective",
			"updateByParamsWithBLOBs",
			"updateByParamsWithoutBLOBs",
			"updateByKeySelective",
			"updateByKeyWithBLOBs",
			"updateByKeyWithoutBLOBs",
		}, doc.IDs())
	})

	t.Run("legacy", func(t *testing.T) {
		r := resolve(t, usersTable(false), gen.Legacy, gen.Plain)
		doc, err := genDocument(r.table, r.ops, r.names)
		require.NoError(t, err)

		assert.Equal(t, "users_SqlMap", doc.Name)
		assert.Equal(t, "sqlMap", doc.Root.Name)
		assert.Equal(t, []string{
			"BaseResultMap",
			"Params_Where_Clause",
			"Base_Column_List",
			"selectByParams",
			"selectByKey",
			"deleteByKey",
			"deleteByParams",
			"insert",
			"insertSelective",
			"countByParams",
			"updateByParamsSelective",
			"updateByParams",
			"updateByKeySelective",
			"updateByKey",
		}, doc.IDs())
	})
}

func TestDocumentRefsResolve(t *testing.T) {
	for _, strategy := range []gen.NamingStrategy{gen.Plain, gen.Qualified} {
		t.Run(strategy.String(), func(t *testing.T) {
			for mask := range latticeSize {
				r := resolveTable(t, latticeTable(mask), strategy)
				doc, err := genDocument(r.table, r.ops, r.names)
				if err != nil {
					t.Fatalf("lattice point %#x: %v", mask, err)
				}
				if missing := doc.Dangling(); len(missing) > 0 {
					t.Fatalf("lattice point %#x: unresolved references %v", mask, missing)
				}
				enabled := r.ops.Enabled()
				for _, op := range enabled {
					if doc.Lookup(r.names.Of(op)) == nil {
						t.Fatalf("lattice point %#x: no element for %s", mask, op)
					}
				}
				if len(doc.Elements()) != len(enabled) {
					t.Fatalf("lattice point %#x: %d elements for %d operations", mask, len(doc.Elements()), len(enabled))
				}
			}
		})
	}
}

func TestDocumentRuntimeSplit(t *testing.T) {
	find := func(doc *gen.Document, id string) []string {
		var refs []string
		doc.Lookup(id).Walk(func(n *gen.Node) bool {
			if v, ok := n.Attr("refid"); ok {
				refs = append(refs, v)
			}
			return true
		})
		return refs
	}

	modern := resolve(t, usersTable(true), gen.Modern, gen.Plain)
	doc, err := genDocument(modern.table, modern.ops, modern.names)
	require.NoError(t, err)
	assert.Equal(t, []string{gen.UpdateWhereClauseID}, find(doc, "updateByParamsSelective"))
	assert.Equal(t, []string{gen.WhereClauseID}, find(doc, "countByParams"))

	legacy := resolve(t, usersTable(true), gen.Legacy, gen.Plain)
	doc, err = genDocument(legacy.table, legacy.ops, legacy.names)
	require.NoError(t, err)
	assert.Equal(t, []string{"users." + gen.WhereClauseID}, find(doc, "updateByParamsSelective"))
	assert.Nil(t, doc.Lookup(gen.UpdateWhereClauseID))
}

func TestDocumentSyntax(t *testing.T) {
	t.Run("modern", func(t *testing.T) {
		r := resolve(t, usersTable(true), gen.Modern, gen.Plain)
		doc, err := genDocument(r.table, r.ops, r.names)
		require.NoError(t, err)
		out, err := doc.XML()
		require.NoError(t, err)
		s := string(out)

		assert.Contains(t, s, `<resultMap id="BaseResultMap" type="example.com/app/mapper.User">`)
		assert.Contains(t, s, `<id column="id" property="ID" jdbcType="BIGINT"></id>`)
		assert.Contains(t, s, `<resultMap id="ResultMapWithBLOBs" type="example.com/app/mapper.UserWithBLOBs" extends="BaseResultMap">`)
		assert.Contains(t, s, "id, user_name, email")
		assert.Contains(t, s, "#{UserName,jdbcType=VARCHAR}")
		assert.Contains(t, s, `<foreach collection="Params.OredCriteria" item="criteria" separator="or">`)
		assert.Contains(t, s, `<if test="Email != null">`)
		assert.Contains(t, s, "<set>")
		assert.Contains(t, s, `parameterType="map"`)
		assert.Contains(t, s, "where id = #{ID,jdbcType=BIGINT}")
	})

	t.Run("legacy", func(t *testing.T) {
		r := resolve(t, usersTable(false), gen.Legacy, gen.Plain)
		doc, err := genDocument(r.table, r.ops, r.names)
		require.NoError(t, err)
		out, err := doc.XML()
		require.NoError(t, err)
		s := string(out)

		assert.Contains(t, s, `<sqlMap namespace="users">`)
		assert.Contains(t, s, `<resultMap id="BaseResultMap" class="example.com/app/mapper.User">`)
		assert.Contains(t, s, "#UserName:VARCHAR#")
		assert.Contains(t, s, `<iterate property="OredCriteria" conjunction="or" prepend="where" removeFirstPrepend="iterate">`)
		assert.Contains(t, s, `<isNotNull prepend="," property="Email">`)
		assert.Contains(t, s, `<include refid="users.Base_Column_List"></include>`)
		assert.Contains(t, s, `parameterClass="int64"`)
		assert.False(t, strings.Contains(s, "Update_By_Params_Where_Clause"))
	})
}

func TestDocumentComposite(t *testing.T) {
	lt := usersTable(false)
	lt.Columns = slices.Insert(lt.Columns, 1, &load.Column{Name: "tenant_id", Type: "BIGINT", GoType: "int64", PrimaryKey: true})
	r := resolve(t, lt, gen.Modern, gen.Plain)
	doc, err := genDocument(r.table, r.ops, r.names)
	require.NoError(t, err)

	node := doc.Lookup("deleteByKey")
	require.NotNil(t, node)
	typ, _ := node.Attr("parameterType")
	assert.Equal(t, testPackage+".UserKey", typ)
	assert.Equal(t, "delete from users where id = #{ID,jdbcType=BIGINT} and tenant_id = #{TenantID,jdbcType=BIGINT}", node.Children[0].Text)
}

func TestDocumentEmptyRoot(t *testing.T) {
	lt := usersTable(false)
	lt.Statements.Insert = load.Bool(false)
	lt.Statements.SelectByKey = load.Bool(false)
	lt.Statements.SelectByParams = load.Bool(false)
	lt.Statements.UpdateByKey = load.Bool(false)
	lt.Statements.DeleteByKey = load.Bool(false)
	lt.Statements.DeleteByParams = load.Bool(false)
	lt.Statements.CountByParams = load.Bool(false)
	lt.Statements.UpdateByParams = load.Bool(false)

	r := resolve(t, lt, gen.Modern, gen.Plain)
	doc, err := genDocument(r.table, r.ops, r.names)
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	assert.Empty(t, doc.Elements())
}
