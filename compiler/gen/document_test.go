package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(r Runtime) *Document {
	root, _, _ := DocType(r)
	return &Document{
		Name:    "UserMapper",
		Runtime: r,
		Root: Elem(root, A("namespace", "users")).Add(
			Elem("sql", A("id", BaseColumnListID)).AddText("id, name"),
			Elem("select", A("id", "selectByKey"), A("resultMap", "users.BaseResultMap")).
				AddText("select").
				Add(Elem("include", A("refid", BaseColumnListID))).
				AddText("from users where id = #{id}"),
		),
	}
}

func TestDocumentTree(t *testing.T) {
	d := testDocument(Modern)

	assert.Equal(t, KindDocument, d.Kind())
	assert.Equal(t, "UserMapper", d.ArtifactName())
	assert.False(t, d.Empty())
	assert.Equal(t, []string{BaseColumnListID, "selectByKey"}, d.IDs())
	assert.NotNil(t, d.Lookup("selectByKey"))
	assert.Nil(t, d.Lookup("deleteByKey"))

	t.Run("refs strip namespace", func(t *testing.T) {
		assert.Equal(t, []string{"BaseResultMap", BaseColumnListID}, d.Refs())
		assert.Equal(t, []string{"BaseResultMap"}, d.Dangling())
	})

	t.Run("walk skips children", func(t *testing.T) {
		var names []string
		d.Root.Walk(func(n *Node) bool {
			if !n.IsText() {
				names = append(names, n.Name)
			}
			return n.Name != "select"
		})
		assert.Equal(t, []string{"mapper", "sql", "select"}, names)
	})

	t.Run("clone is deep", func(t *testing.T) {
		c := d.Clone()
		c.Root.Children[0].Attrs[0].Value = "Changed"
		c.Root.Add(Elem("sql", A("id", "Extra")))

		assert.Equal(t, BaseColumnListID, d.Root.Children[0].ID())
		assert.Len(t, d.Root.Children, 2)
		assert.Len(t, c.Root.Children, 3)
	})

	t.Run("attributes", func(t *testing.T) {
		v, ok := d.Root.Attr("namespace")
		assert.True(t, ok)
		assert.Equal(t, "users", v)
		_, ok = d.Root.Attr("missing")
		assert.False(t, ok)
		assert.Empty(t, d.Root.ID())
	})
}

func TestDocumentXML(t *testing.T) {
	t.Run("modern", func(t *testing.T) {
		out, err := testDocument(Modern).XML()
		require.NoError(t, err)
		s := string(out)

		assert.True(t, strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, s, `<!DOCTYPE mapper PUBLIC "-//mybatis.org//DTD Mapper 3.0//EN" "http://mybatis.org/dtd/mybatis-3-mapper.dtd">`)
		assert.Contains(t, s, `<mapper namespace="users">`)
		assert.Contains(t, s, `<include refid="Base_Column_List"></include>`)
		assert.Contains(t, s, "#{id}")
		assert.True(t, strings.HasSuffix(s, "</mapper>\n"))
	})

	t.Run("legacy", func(t *testing.T) {
		out, err := testDocument(Legacy).XML()
		require.NoError(t, err)
		assert.Contains(t, string(out), `<!DOCTYPE sqlMap PUBLIC "-//ibatis.apache.org//DTD SQL Map 2.0//EN"`)
		assert.Contains(t, string(out), "<sqlMap ")
	})

	t.Run("escapes text", func(t *testing.T) {
		d := &Document{Runtime: Modern, Root: Elem("mapper").AddText("a < b")}
		out, err := d.XML()
		require.NoError(t, err)
		assert.Contains(t, string(out), "a &lt; b")
	})

	t.Run("identical documents serialize identically", func(t *testing.T) {
		a, err := testDocument(Modern).XML()
		require.NoError(t, err)
		b, err := testDocument(Modern).XML()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
