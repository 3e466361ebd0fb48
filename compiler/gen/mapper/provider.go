package mapper

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/mapgen/compiler/gen"
)

// providerElements are the SQL provider method generators in emission order.
var providerElements = []element[*gen.Method]{
	{gen.OpCountByParams, genProviderCountByParams},
	{gen.OpDeleteByParams, genProviderDeleteByParams},
	{gen.OpInsertSelective, genProviderInsertSelective},
	{gen.OpSelectByParamsWithLOB, genProviderSelectByParamsWithLOB},
	{gen.OpSelectByParamsWithoutLOB, genProviderSelectByParamsWithoutLOB},
	{gen.OpUpdateByParamsSelective, genProviderUpdateByParamsSelective},
	{gen.OpUpdateByParamsWithLOB, genProviderUpdateByParamsWithLOB},
	{gen.OpUpdateByParamsWithoutLOB, genProviderUpdateByParamsWithoutLOB},
	{gen.OpUpdateByKeySelective, genProviderUpdateByKeySelective},
}

const applyWhereName = "applyWhere"

// genProvider assembles the SQL provider of a table. The applyWhere helper
// is added only if a by-params method was emitted.
func genProvider(t *gen.Table, ops gen.OperationSet, n gen.Names) (*gen.Provider, error) {
	methods, err := collect(providerElements, t, ops, n)
	if err != nil {
		return nil, err
	}
	for _, m := range methods {
		if m.Op.ByParams() {
			methods = append(methods, genApplyWhere(t))
			break
		}
	}
	return &gen.Provider{
		Name:    t.ProviderName(),
		Package: t.Package,
		Methods: methods,
	}, nil
}

// genApplyWhere generates the helper validating a params holder and writing
// its where clause. Update statements address the params under "Params.".
func genApplyWhere(t *gen.Table) *gen.Method {
	return &gen.Method{
		Name:   applyWhereName,
		Helper: true,
		Params: []gen.Param{
			{Name: "b", Type: "*strings.Builder"},
			{Name: "params", Type: "*" + t.ParamsType()},
			{Name: "update", Type: "bool"},
		},
		Results: []string{"error"},
		Body: []jen.Code{
			jen.If(jen.Id("params").Op("==").Nil()).Block(jen.Return(jen.Nil())),
			jen.If(
				jen.Err().Op(":=").Id("params").Dot("Validate").Call(),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Err())),
			jen.Id("prefix").Op(":=").Lit("OredCriteria"),
			jen.If(jen.Id("update")).Block(
				jen.Id("prefix").Op("=").Lit("Params.OredCriteria"),
			),
			jen.Id("params").Dot("WriteWhere").Call(jen.Id("b"), jen.Id("prefix")),
			jen.Return(jen.Nil()),
		},
	}
}

// providerMethod returns a provider method skeleton returning the SQL text.
// By-params methods also return the validation error of the params.
func providerMethod(op gen.Operation, n gen.Names, doc string, params ...gen.Param) *gen.Method {
	name := n.Method(op)
	m := &gen.Method{
		Op:      op,
		Name:    name,
		Doc:     fmt.Sprintf("%s returns the SQL text of %s.", name, doc),
		Params:  params,
		Results: []string{"string"},
	}
	if op.ByParams() {
		m.Results = append(m.Results, "error")
	}
	return m
}

func builder() jen.Code {
	return jen.Var().Id("b").Qual("strings", "Builder")
}

func write(s string) jen.Code {
	return jen.Id("b").Dot("WriteString").Call(jen.Lit(s))
}

func applyWhere(update bool) jen.Code {
	return jen.If(
		jen.Err().Op(":=").Id("p").Dot(applyWhereName).Call(jen.Op("&").Id("b"), jen.Id("params"), jen.Lit(update)),
		jen.Err().Op("!=").Nil(),
	).Block(jen.Return(jen.Lit(""), jen.Err()))
}

func returnBuilder() jen.Code {
	return jen.Return(jen.Id("b").Dot("String").Call(), jen.Nil())
}

func genProviderCountByParams(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpCountByParams, n, "the count statement", gen.Param{Name: "params", Type: "*" + t.ParamsType()})
	m.Body = []jen.Code{
		builder(),
		write("select count(*) from " + t.FullName()),
		applyWhere(false),
		returnBuilder(),
	}
	return m, nil
}

func genProviderDeleteByParams(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpDeleteByParams, n, "the delete statement", gen.Param{Name: "params", Type: "*" + t.ParamsType()})
	m.Body = []jen.Code{
		builder(),
		write("delete from " + t.FullName()),
		applyWhere(false),
		returnBuilder(),
	}
	return m, nil
}

func genProviderInsertSelective(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpInsertSelective, n, "the insert statement of the non-zero fields",
		gen.Param{Name: "record", Type: "*" + t.AllFieldsType()})
	m.Body = append(m.Body, jen.Var().Id("cols").Op(",").Id("vals").Index().String())
	for _, c := range t.AllColumns() {
		m.Body = append(m.Body, jen.If(nonZero("record", c)).Block(
			jen.Id("cols").Op("=").Append(jen.Id("cols"), jen.Lit(c.Name)),
			jen.Id("vals").Op("=").Append(jen.Id("vals"), jen.Lit(placeholder(gen.Modern, c.Property, c))),
		))
	}
	m.Body = append(m.Body, jen.Return(
		jen.Lit("insert into "+t.FullName()+" (").
			Op("+").Qual("strings", "Join").Call(jen.Id("cols"), jen.Lit(", ")).
			Op("+").Lit(") values (").
			Op("+").Qual("strings", "Join").Call(jen.Id("vals"), jen.Lit(", ")).
			Op("+").Lit(")"),
	))
	return m, nil
}

func genProviderSelectByParamsWithLOB(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpSelectByParamsWithLOB, n, "the select statement of every column",
		gen.Param{Name: "params", Type: "*" + t.ParamsType()})
	m.Body = selectBody(t, t.AllColumns())
	return m, nil
}

func genProviderSelectByParamsWithoutLOB(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpSelectByParamsWithoutLOB, n, "the select statement of the key and plain columns",
		gen.Param{Name: "params", Type: "*" + t.ParamsType()})
	m.Body = selectBody(t, t.BaseColumns())
	return m, nil
}

func selectBody(t *gen.Table, cols []*gen.Column) []jen.Code {
	present := jen.Id("params").Op("!=").Nil()
	return []jen.Code{
		builder(),
		write("select "),
		jen.If(present.Clone().Op("&&").Id("params").Dot("Distinct")).Block(write("distinct ")),
		write(columnList(cols) + " from " + t.FullName()),
		applyWhere(false),
		jen.If(present.Clone().Op("&&").Id("params").Dot("OrderByClause").Op("!=").Lit("")).Block(
			jen.Id("b").Dot("WriteString").Call(jen.Lit(" order by ").Op("+").Id("params").Dot("OrderByClause")),
		),
		returnBuilder(),
	}
}

func genProviderUpdateByParamsSelective(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpUpdateByParamsSelective, n, "the update statement of the non-zero fields",
		gen.Param{Name: "record", Type: "*" + t.AllFieldsType()},
		gen.Param{Name: "params", Type: "*" + t.ParamsType()})
	m.Body = append(selectiveSet(t.AllColumns(), "Record."),
		jen.Var().Id("b").Qual("strings", "Builder"),
		write("update "+t.FullName()+" set "),
		jen.Id("b").Dot("WriteString").Call(jen.Qual("strings", "Join").Call(jen.Id("sets"), jen.Lit(", "))),
		applyWhere(true),
		returnBuilder(),
	)
	return m, nil
}

func genProviderUpdateByParamsWithLOB(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpUpdateByParamsWithLOB, n, "the update statement of every column",
		gen.Param{Name: "record", Type: "*" + t.LOBRecordType()},
		gen.Param{Name: "params", Type: "*" + t.ParamsType()})
	m.Body = []jen.Code{
		builder(),
		write("update " + t.FullName() + " set " + assignments(gen.Modern, "Record.", t.AllColumns())),
		applyWhere(true),
		returnBuilder(),
	}
	return m, nil
}

func genProviderUpdateByParamsWithoutLOB(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpUpdateByParamsWithoutLOB, n, "the update statement of the key and plain columns",
		gen.Param{Name: "record", Type: "*" + t.RecordType()},
		gen.Param{Name: "params", Type: "*" + t.ParamsType()})
	m.Body = []jen.Code{
		builder(),
		write("update " + t.FullName() + " set " + assignments(gen.Modern, "Record.", t.BaseColumns())),
		applyWhere(true),
		returnBuilder(),
	}
	return m, nil
}

func genProviderUpdateByKeySelective(t *gen.Table, n gen.Names) (*gen.Method, error) {
	m := providerMethod(gen.OpUpdateByKeySelective, n, "the update statement of the non-zero non-key fields",
		gen.Param{Name: "record", Type: "*" + t.AllFieldsType()})
	m.Body = append(selectiveSet(t.NonKeyColumns(), ""),
		jen.Return(
			jen.Lit("update "+t.FullName()+" set ").
				Op("+").Qual("strings", "Join").Call(jen.Id("sets"), jen.Lit(", ")).
				Op("+").Lit(" where "+keyCondition(gen.Modern, "", t)),
		),
	)
	return m, nil
}

// selectiveSet declares the sets slice holding an assignment per non-zero
// field of record.
func selectiveSet(cols []*gen.Column, prefix string) []jen.Code {
	code := []jen.Code{jen.Var().Id("sets").Index().String()}
	for _, c := range cols {
		code = append(code, jen.If(nonZero("record", c)).Block(
			jen.Id("sets").Op("=").Append(jen.Id("sets"), jen.Lit(c.Name+" = "+placeholder(gen.Modern, prefix+c.Property, c))),
		))
	}
	return code
}

// nonZero returns the condition that a record field is set.
func nonZero(recv string, c *gen.Column) *jen.Statement {
	return jen.Op("!").Qual(runtimePkg(), "IsZero").Call(jen.Id(recv).Dot(c.Property))
}
