package mapper

import (
	"github.com/syssam/mapgen/compiler/gen"
)

// modernElements are the document element generators of modern documents
// in emission order.
var modernElements = []element[*gen.Node]{
	{gen.OpResultMapBase, genResultMapBase},
	{gen.OpResultMapWithLOB, genResultMapWithLOB},
	{gen.OpWhereClause, genWhereClause},
	{gen.OpUpdateWhereClause, genUpdateWhereClause},
	{gen.OpBaseColumnList, genBaseColumnList},
	{gen.OpLOBColumnList, genLOBColumnList},
	{gen.OpSelectByParamsWithLOB, genSelectByParamsWithLOB},
	{gen.OpSelectByParamsWithoutLOB, genSelectByParamsWithoutLOB},
	{gen.OpSelectByKey, genSelectByKey},
	{gen.OpDeleteByKey, genDeleteByKey},
	{gen.OpDeleteByParams, genDeleteByParams},
	{gen.OpInsert, genInsert},
	{gen.OpInsertSelective, genInsertSelective},
	{gen.OpCountByParams, genCountByParams},
	{gen.OpUpdateByParamsSelective, genUpdateByParamsSelective},
	{gen.OpUpdateByParamsWithLOB, genUpdateByParamsWithLOB},
	{gen.OpUpdateByParamsWithoutLOB, genUpdateByParamsWithoutLOB},
	{gen.OpUpdateByKeySelective, genUpdateByKeySelective},
	{gen.OpUpdateByKeyWithLOB, genUpdateByKeyWithLOB},
	{gen.OpUpdateByKeyWithoutLOB, genUpdateByKeyWithoutLOB},
}

// legacyElements are the document element generators of legacy documents
// in emission order. Legacy documents have no update where clause.
var legacyElements = []element[*gen.Node]{
	{gen.OpResultMapBase, genResultMapBase},
	{gen.OpResultMapWithLOB, genResultMapWithLOB},
	{gen.OpWhereClause, genWhereClause},
	{gen.OpBaseColumnList, genBaseColumnList},
	{gen.OpLOBColumnList, genLOBColumnList},
	{gen.OpSelectByParamsWithLOB, genSelectByParamsWithLOB},
	{gen.OpSelectByParamsWithoutLOB, genSelectByParamsWithoutLOB},
	{gen.OpSelectByKey, genSelectByKey},
	{gen.OpDeleteByKey, genDeleteByKey},
	{gen.OpDeleteByParams, genDeleteByParams},
	{gen.OpInsert, genInsert},
	{gen.OpInsertSelective, genInsertSelective},
	{gen.OpCountByParams, genCountByParams},
	{gen.OpUpdateByParamsSelective, genUpdateByParamsSelective},
	{gen.OpUpdateByParamsWithLOB, genUpdateByParamsWithLOB},
	{gen.OpUpdateByParamsWithoutLOB, genUpdateByParamsWithoutLOB},
	{gen.OpUpdateByKeySelective, genUpdateByKeySelective},
	{gen.OpUpdateByKeyWithLOB, genUpdateByKeyWithLOB},
	{gen.OpUpdateByKeyWithoutLOB, genUpdateByKeyWithoutLOB},
}

// genDocument assembles the mapping document of a table. The root element
// is present even if no element was emitted.
func genDocument(t *gen.Table, ops gen.OperationSet, n gen.Names) (*gen.Document, error) {
	registry, root, name := modernElements, "mapper", t.InterfaceName()
	if t.Runtime == gen.Legacy {
		registry, root, name = legacyElements, "sqlMap", t.Name+"_SqlMap"
	}
	nodes, err := collect(registry, t, ops, n)
	if err != nil {
		return nil, err
	}
	return &gen.Document{
		Name:    name,
		Runtime: t.Runtime,
		Root:    gen.Elem(root, gen.A("namespace", t.Namespace())).Add(nodes...),
	}, nil
}

// =============================================================================
// Runtime syntax
// =============================================================================

func legacy(t *gen.Table) bool { return t.Runtime == gen.Legacy }

// ref returns a fragment reference. Legacy references are namespace qualified.
func ref(t *gen.Table, id string) string {
	if legacy(t) {
		return t.Namespace() + "." + id
	}
	return id
}

func include(t *gen.Table, id string) *gen.Node {
	return gen.Elem("include", gen.A("refid", ref(t, id)))
}

func typeAttr(t *gen.Table, name string) gen.Attr {
	if legacy(t) {
		return gen.A("class", qualify(t, name))
	}
	return gen.A("type", qualify(t, name))
}

func paramType(t *gen.Table, typ string) gen.Attr {
	if legacy(t) {
		return gen.A("parameterClass", typ)
	}
	return gen.A("parameterType", typ)
}

func resultType(t *gen.Table, typ string) gen.Attr {
	if legacy(t) {
		return gen.A("resultClass", typ)
	}
	return gen.A("resultType", typ)
}

func resultMap(t *gen.Table, id string) gen.Attr {
	return gen.A("resultMap", ref(t, id))
}

// keyParamType returns the parameter type of the by-key statements.
func keyParamType(t *gen.Table) string {
	if len(t.PrimaryKey) == 1 {
		return t.PrimaryKey[0].GoType
	}
	return qualify(t, t.KeyType())
}

// ifPresent wraps children that apply only when a parameter object is given.
func ifPresent(t *gen.Table, children ...*gen.Node) *gen.Node {
	if legacy(t) {
		return gen.Elem("isParameterPresent").Add(children...)
	}
	return gen.Elem("if", gen.A("test", "_parameter != null")).Add(children...)
}

// ifSet wraps children that apply only when a property is set.
func ifSet(t *gen.Table, prop string, children ...*gen.Node) *gen.Node {
	if legacy(t) {
		return gen.Elem("isNotNull", gen.A("prepend", ","), gen.A("property", prop)).Add(children...)
	}
	return gen.Elem("if", gen.A("test", prop+" != null")).Add(children...)
}

// selectiveList returns the nodes of a comma-separated list of the set
// properties; item returns the text of one column.
func selectiveList(t *gen.Table, prefix, open, closing string, cols []*gen.Column, item func(*gen.Column) string) *gen.Node {
	var wrap *gen.Node
	if legacy(t) {
		wrap = gen.Elem("dynamic", gen.A("prepend", open))
	} else {
		wrap = gen.Elem("trim", gen.A("prefix", open), gen.A("suffix", closing), gen.A("suffixOverrides", ","))
	}
	for _, c := range cols {
		text := item(c)
		if !legacy(t) {
			text += ","
		}
		wrap.Add(ifSet(t, prefix+c.Property, gen.Text(text)))
	}
	if legacy(t) {
		wrap.AddText(closing)
	}
	return wrap
}

// dynamicSet returns the set clause of the set properties.
func dynamicSet(t *gen.Table, prefix string, cols []*gen.Column) *gen.Node {
	var wrap *gen.Node
	if legacy(t) {
		wrap = gen.Elem("dynamic", gen.A("prepend", "set"))
	} else {
		wrap = gen.Elem("set")
	}
	for _, c := range cols {
		text := c.Name + " = " + placeholder(t.Runtime, prefix+c.Property, c)
		if !legacy(t) {
			text += ","
		}
		wrap.Add(ifSet(t, prefix+c.Property, gen.Text(text)))
	}
	return wrap
}

// =============================================================================
// Fragments
// =============================================================================

func resultNodes(cols []*gen.Column, tag string) []*gen.Node {
	nodes := make([]*gen.Node, len(cols))
	for i, c := range cols {
		attrs := []gen.Attr{gen.A("column", c.Name), gen.A("property", c.Property)}
		if c.JDBCType != "" {
			attrs = append(attrs, gen.A("jdbcType", c.JDBCType))
		}
		nodes[i] = gen.Elem(tag, attrs...)
	}
	return nodes
}

func genResultMapBase(t *gen.Table, n gen.Names) (*gen.Node, error) {
	m := gen.Elem("resultMap", gen.A("id", n.Of(gen.OpResultMapBase)), typeAttr(t, t.RecordType()))
	keyTag := "id"
	if legacy(t) {
		keyTag = "result"
	}
	m.Add(resultNodes(t.PrimaryKey, keyTag)...)
	return m.Add(resultNodes(t.Columns, "result")...), nil
}

func genResultMapWithLOB(t *gen.Table, n gen.Names) (*gen.Node, error) {
	m := gen.Elem("resultMap",
		gen.A("id", n.Of(gen.OpResultMapWithLOB)),
		typeAttr(t, t.LOBRecordType()),
		gen.A("extends", ref(t, n.Of(gen.OpResultMapBase))),
	)
	return m.Add(resultNodes(t.LOBs, "result")...), nil
}

func genWhereClause(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return whereClause(t, n.Of(gen.OpWhereClause), "OredCriteria"), nil
}

func genUpdateWhereClause(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return whereClause(t, n.Of(gen.OpUpdateWhereClause), "Params.OredCriteria"), nil
}

// whereClause builds the where clause of a params holder whose criteria
// groups live under collection.
func whereClause(t *gen.Table, id, collection string) *gen.Node {
	sql := gen.Elem("sql", gen.A("id", id))
	if legacy(t) {
		item := collection + "[].Criteria[]"
		is := func(flag string, children ...*gen.Node) *gen.Node {
			return gen.Elem("isEqual", gen.A("property", item+"."+flag), gen.A("compareValue", "true")).Add(children...)
		}
		cond := "$" + item + ".Condition$"
		inner := gen.Elem("iterate", gen.A("property", collection+"[].Criteria"), gen.A("conjunction", "and")).Add(
			is("NoValue", gen.Text(cond)),
			is("SingleValue", gen.Text(cond+" #"+item+".Value#")),
			is("BetweenValue", gen.Text(cond+" #"+item+".Value# and #"+item+".SecondValue#")),
			is("ListValue", gen.Text(cond),
				gen.Elem("iterate", gen.A("property", item+".Value"), gen.A("open", "("), gen.A("close", ")"), gen.A("conjunction", ",")).
					AddText("#"+item+".Value[]#"),
			),
		)
		return sql.Add(gen.Elem("iterate",
			gen.A("property", collection), gen.A("conjunction", "or"),
			gen.A("prepend", "where"), gen.A("removeFirstPrepend", "iterate"),
		).Add(
			gen.Elem("isEqual", gen.A("property", collection+"[].Valid"), gen.A("compareValue", "true")).
				AddText("(").Add(inner).AddText(")"),
		))
	}
	when := func(flag string, children ...*gen.Node) *gen.Node {
		return gen.Elem("when", gen.A("test", "criterion."+flag)).Add(children...)
	}
	cond := "and ${criterion.Condition}"
	return sql.Add(gen.Elem("where").Add(
		gen.Elem("foreach", gen.A("collection", collection), gen.A("item", "criteria"), gen.A("separator", "or")).Add(
			gen.Elem("if", gen.A("test", "criteria.Valid")).Add(
				gen.Elem("trim", gen.A("prefix", "("), gen.A("prefixOverrides", "and"), gen.A("suffix", ")")).Add(
					gen.Elem("foreach", gen.A("collection", "criteria.Criteria"), gen.A("item", "criterion")).Add(
						gen.Elem("choose").Add(
							when("NoValue", gen.Text(cond)),
							when("SingleValue", gen.Text(cond+" #{criterion.Value}")),
							when("BetweenValue", gen.Text(cond+" #{criterion.Value} and #{criterion.SecondValue}")),
							when("ListValue", gen.Text(cond),
								gen.Elem("foreach",
									gen.A("collection", "criterion.Value"), gen.A("item", "listItem"),
									gen.A("open", "("), gen.A("close", ")"), gen.A("separator", ","),
								).AddText("#{listItem}"),
							),
						),
					),
				),
			),
		),
	))
}

func genBaseColumnList(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("sql", gen.A("id", n.Of(gen.OpBaseColumnList))).AddText(columnList(t.BaseColumns())), nil
}

func genLOBColumnList(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("sql", gen.A("id", n.Of(gen.OpLOBColumnList))).AddText(columnList(t.LOBs)), nil
}

// =============================================================================
// Statements
// =============================================================================

// selectByParams builds a select-by-params statement over the column lists.
func selectByParams(t *gen.Table, id, resultMapID string, lists ...string) *gen.Node {
	s := gen.Elem("select", gen.A("id", id), paramType(t, qualify(t, t.ParamsType())), resultMap(t, resultMapID))
	s.AddText("select")
	if legacy(t) {
		s.Add(gen.Elem("isParameterPresent").Add(
			gen.Elem("isEqual", gen.A("property", "Distinct"), gen.A("compareValue", "true")).AddText("distinct"),
		))
	} else {
		s.Add(gen.Elem("if", gen.A("test", "Distinct")).AddText("distinct"))
	}
	for i, l := range lists {
		if i > 0 {
			s.AddText(",")
		}
		s.Add(include(t, l))
	}
	s.AddText("from " + t.FullName())
	if legacy(t) {
		return s.Add(gen.Elem("isParameterPresent").Add(
			include(t, gen.WhereClauseID),
			gen.Elem("isNotNull", gen.A("property", "OrderByClause")).AddText("order by $OrderByClause$"),
		))
	}
	return s.Add(
		ifPresent(t, include(t, gen.WhereClauseID)),
		gen.Elem("if", gen.A("test", "OrderByClause != null")).AddText("order by ${OrderByClause}"),
	)
}

func genSelectByParamsWithLOB(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return selectByParams(t, n.Of(gen.OpSelectByParamsWithLOB), n.Of(gen.OpResultMapWithLOB),
		n.Of(gen.OpBaseColumnList), n.Of(gen.OpLOBColumnList)), nil
}

func genSelectByParamsWithoutLOB(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return selectByParams(t, n.Of(gen.OpSelectByParamsWithoutLOB), n.Of(gen.OpResultMapBase),
		n.Of(gen.OpBaseColumnList)), nil
}

func genSelectByKey(t *gen.Table, n gen.Names) (*gen.Node, error) {
	rm := n.Of(gen.OpResultMapBase)
	if t.HasLOBs() {
		rm = n.Of(gen.OpResultMapWithLOB)
	}
	s := gen.Elem("select", gen.A("id", n.Of(gen.OpSelectByKey)), paramType(t, keyParamType(t)), resultMap(t, rm))
	s.AddText("select")
	if t.HasPrimaryKey() || t.HasColumns() {
		s.Add(include(t, n.Of(gen.OpBaseColumnList)))
	}
	if t.HasLOBs() {
		if t.HasPrimaryKey() || t.HasColumns() {
			s.AddText(",")
		}
		s.Add(include(t, n.Of(gen.OpLOBColumnList)))
	}
	return s.AddText("from " + t.FullName() + " where " + keyCondition(t.Runtime, "", t)), nil
}

func genDeleteByKey(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("delete", gen.A("id", n.Of(gen.OpDeleteByKey)), paramType(t, keyParamType(t))).
		AddText("delete from " + t.FullName() + " where " + keyCondition(t.Runtime, "", t)), nil
}

func genDeleteByParams(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("delete", gen.A("id", n.Of(gen.OpDeleteByParams)), paramType(t, qualify(t, t.ParamsType()))).
		AddText("delete from "+t.FullName()).
		Add(ifPresent(t, include(t, gen.WhereClauseID))), nil
}

func genInsert(t *gen.Table, n gen.Names) (*gen.Node, error) {
	cols := t.AllColumns()
	return gen.Elem("insert", gen.A("id", n.Of(gen.OpInsert)), paramType(t, qualify(t, t.AllFieldsType()))).
		AddText("insert into " + t.FullName() + " (" + columnList(cols) + ")").
		AddText("values (" + valueList(t.Runtime, "", cols) + ")"), nil
}

func genInsertSelective(t *gen.Table, n gen.Names) (*gen.Node, error) {
	cols := t.AllColumns()
	open := "values ("
	if legacy(t) {
		open = "("
	}
	s := gen.Elem("insert", gen.A("id", n.Of(gen.OpInsertSelective)), paramType(t, qualify(t, t.AllFieldsType()))).
		AddText("insert into "+t.FullName()).
		Add(selectiveList(t, "", "(", ")", cols, func(c *gen.Column) string { return c.Name }))
	if legacy(t) {
		s.AddText("values")
	}
	return s.Add(selectiveList(t, "", open, ")", cols, func(c *gen.Column) string {
		return placeholder(t.Runtime, c.Property, c)
	})), nil
}

func genCountByParams(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("select",
		gen.A("id", n.Of(gen.OpCountByParams)),
		paramType(t, qualify(t, t.ParamsType())),
		resultType(t, "int64"),
	).AddText("select count(*) from "+t.FullName()).
		Add(ifPresent(t, include(t, gen.WhereClauseID))), nil
}

// updateWhere returns the where clause of the update-by-params statements.
// Legacy documents share the where clause of the other by-params statements.
func updateWhere(t *gen.Table) *gen.Node {
	if legacy(t) {
		return ifPresent(t, include(t, gen.WhereClauseID))
	}
	return ifPresent(t, include(t, gen.UpdateWhereClauseID))
}

func updateByParamsType(t *gen.Table) gen.Attr {
	return paramType(t, "map")
}

func genUpdateByParamsSelective(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("update", gen.A("id", n.Of(gen.OpUpdateByParamsSelective)), updateByParamsType(t)).
		AddText("update "+t.FullName()).
		Add(dynamicSet(t, "Record.", t.AllColumns()), updateWhere(t)), nil
}

func genUpdateByParamsWithLOB(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("update", gen.A("id", n.Of(gen.OpUpdateByParamsWithLOB)), updateByParamsType(t)).
		AddText("update "+t.FullName()+" set "+assignments(t.Runtime, "Record.", t.AllColumns())).
		Add(updateWhere(t)), nil
}

func genUpdateByParamsWithoutLOB(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("update", gen.A("id", n.Of(gen.OpUpdateByParamsWithoutLOB)), updateByParamsType(t)).
		AddText("update "+t.FullName()+" set "+assignments(t.Runtime, "Record.", t.BaseColumns())).
		Add(updateWhere(t)), nil
}

func genUpdateByKeySelective(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("update", gen.A("id", n.Of(gen.OpUpdateByKeySelective)), paramType(t, qualify(t, t.AllFieldsType()))).
		AddText("update "+t.FullName()).
		Add(dynamicSet(t, "", t.NonKeyColumns())).
		AddText("where " + keyCondition(t.Runtime, "", t)), nil
}

func genUpdateByKeyWithLOB(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("update", gen.A("id", n.Of(gen.OpUpdateByKeyWithLOB)), paramType(t, qualify(t, t.LOBRecordType()))).
		AddText("update " + t.FullName() + " set " + assignments(t.Runtime, "", t.NonKeyColumns())).
		AddText("where " + keyCondition(t.Runtime, "", t)), nil
}

func genUpdateByKeyWithoutLOB(t *gen.Table, n gen.Names) (*gen.Node, error) {
	return gen.Elem("update", gen.A("id", n.Of(gen.OpUpdateByKeyWithoutLOB)), paramType(t, qualify(t, t.RecordType()))).
		AddText("update " + t.FullName() + " set " + assignments(t.Runtime, "", t.Columns)).
		AddText("where " + keyCondition(t.Runtime, "", t)), nil
}
