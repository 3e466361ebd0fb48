package mapper

import (
	"fmt"

	"github.com/syssam/mapgen/compiler/gen"
)

// interfaceElements are the client method generators in emission order.
var interfaceElements = []element[*gen.Method]{
	{gen.OpCountByParams, genCountByParamsMethod},
	{gen.OpDeleteByParams, genDeleteByParamsMethod},
	{gen.OpDeleteByKey, genDeleteByKeyMethod},
	{gen.OpInsert, genInsertMethod},
	{gen.OpInsertSelective, genInsertSelectiveMethod},
	{gen.OpSelectByParamsWithLOB, genSelectByParamsWithLOBMethod},
	{gen.OpSelectByParamsWithoutLOB, genSelectByParamsWithoutLOBMethod},
	{gen.OpSelectByKey, genSelectByKeyMethod},
	{gen.OpUpdateByParamsSelective, genUpdateByParamsSelectiveMethod},
	{gen.OpUpdateByParamsWithLOB, genUpdateByParamsWithLOBMethod},
	{gen.OpUpdateByParamsWithoutLOB, genUpdateByParamsWithoutLOBMethod},
	{gen.OpUpdateByKeySelective, genUpdateByKeySelectiveMethod},
	{gen.OpUpdateByKeyWithLOB, genUpdateByKeyWithLOBMethod},
	{gen.OpUpdateByKeyWithoutLOB, genUpdateByKeyWithoutLOBMethod},
}

// annotatedElements wrap the client method generators with the SQL
// directives of the annotated client family.
var annotatedElements = annotate(interfaceElements)

func annotate(registry []element[*gen.Method]) []element[*gen.Method] {
	out := make([]element[*gen.Method], len(registry))
	for i, e := range registry {
		out[i] = element[*gen.Method]{
			op: e.op,
			emit: func(t *gen.Table, n gen.Names) (*gen.Method, error) {
				m, err := e.emit(t, n)
				if err != nil {
					return nil, err
				}
				m.Directives = append(m.Directives, directive(t, n, e.op))
				return m, nil
			},
		}
	}
	return out
}

// genInterface assembles the client interface of a table.
func genInterface(registry []element[*gen.Method], t *gen.Table, ops gen.OperationSet, n gen.Names) (*gen.Interface, error) {
	methods, err := collect(registry, t, ops, n)
	if err != nil {
		return nil, err
	}
	return &gen.Interface{
		Name:    t.InterfaceName(),
		Package: t.Package,
		Embeds:  t.RootInterface,
		Records: genRecords(t, ops),
		Methods: methods,
	}, nil
}

// genRecords returns the holder types the enabled methods refer to.
func genRecords(t *gen.Table, ops gen.OperationSet) []*gen.Record {
	var records []*gen.Record
	if ops.KeyTypeNeeded(t) {
		records = append(records, &gen.Record{
			Name:   t.KeyType(),
			Doc:    fmt.Sprintf("%s holds the primary key of table %s.", t.KeyType(), t.FullName()),
			Fields: fields(t.PrimaryKey),
		})
	}
	base := t.BaseColumns()
	if t.Consolidated {
		base = t.AllColumns()
	}
	records = append(records, &gen.Record{
		Name:   t.RecordType(),
		Doc:    fmt.Sprintf("%s holds a row of table %s.", t.RecordType(), t.FullName()),
		Fields: fields(base),
	})
	if t.SplitHolders() {
		records = append(records, &gen.Record{
			Name:   t.LOBRecordType(),
			Doc:    fmt.Sprintf("%s holds a row of table %s with its large-object columns.", t.LOBRecordType(), t.FullName()),
			Embeds: []string{t.RecordType()},
			Fields: fields(t.LOBs),
		})
	}
	if ops.ParamsTypeNeeded() {
		records = append(records, &gen.Record{
			Name:   t.ParamsType(),
			Doc:    fmt.Sprintf("%s filters the by-params statements of table %s.", t.ParamsType(), t.FullName()),
			Embeds: []string{runtimePkg() + ".Params"},
		})
	}
	return records
}

func fields(cols []*gen.Column) []*gen.Field {
	fs := make([]*gen.Field, len(cols))
	for i, c := range cols {
		fs[i] = &gen.Field{Name: c.Property, Type: c.GoType, Column: c.Name}
	}
	return fs
}

func genCountByParamsMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpCountByParams)
	return &gen.Method{
		Op:      gen.OpCountByParams,
		Name:    name,
		Doc:     name + " counts the rows matching params.",
		Params:  []gen.Param{ctxParam(), paramsParam(t)},
		Results: affected(),
	}, nil
}

func genDeleteByParamsMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpDeleteByParams)
	return &gen.Method{
		Op:      gen.OpDeleteByParams,
		Name:    name,
		Doc:     name + " deletes the rows matching params.",
		Params:  []gen.Param{ctxParam(), paramsParam(t)},
		Results: affected(),
	}, nil
}

func genDeleteByKeyMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpDeleteByKey)
	return &gen.Method{
		Op:      gen.OpDeleteByKey,
		Name:    name,
		Doc:     name + " deletes the row with the given primary key.",
		Params:  keyParams(t),
		Results: affected(),
	}, nil
}

func genInsertMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpInsert)
	return &gen.Method{
		Op:      gen.OpInsert,
		Name:    name,
		Doc:     name + " inserts every column of record.",
		Params:  []gen.Param{ctxParam(), recordParam(t.AllFieldsType())},
		Results: affected(),
	}, nil
}

func genInsertSelectiveMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpInsertSelective)
	return &gen.Method{
		Op:      gen.OpInsertSelective,
		Name:    name,
		Doc:     name + " inserts the non-zero fields of record.",
		Params:  []gen.Param{ctxParam(), recordParam(t.AllFieldsType())},
		Results: affected(),
	}, nil
}

func genSelectByParamsWithLOBMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpSelectByParamsWithLOB)
	return &gen.Method{
		Op:      gen.OpSelectByParamsWithLOB,
		Name:    name,
		Doc:     name + " returns the rows matching params, large-object columns included.",
		Params:  []gen.Param{ctxParam(), paramsParam(t)},
		Results: list(t.LOBRecordType()),
	}, nil
}

func genSelectByParamsWithoutLOBMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpSelectByParamsWithoutLOB)
	return &gen.Method{
		Op:      gen.OpSelectByParamsWithoutLOB,
		Name:    name,
		Doc:     name + " returns the rows matching params.",
		Params:  []gen.Param{ctxParam(), paramsParam(t)},
		Results: list(t.RecordType()),
	}, nil
}

func genSelectByKeyMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpSelectByKey)
	return &gen.Method{
		Op:      gen.OpSelectByKey,
		Name:    name,
		Doc:     name + " returns the row with the given primary key or mapgen.ErrNotFound.",
		Params:  keyParams(t),
		Results: one(t.AllFieldsType()),
	}, nil
}

func genUpdateByParamsSelectiveMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpUpdateByParamsSelective)
	return &gen.Method{
		Op:      gen.OpUpdateByParamsSelective,
		Name:    name,
		Doc:     name + " sets the non-zero fields of record on the rows matching params.",
		Params:  []gen.Param{ctxParam(), recordParam(t.AllFieldsType()), paramsParam(t)},
		Results: affected(),
	}, nil
}

func genUpdateByParamsWithLOBMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpUpdateByParamsWithLOB)
	return &gen.Method{
		Op:      gen.OpUpdateByParamsWithLOB,
		Name:    name,
		Doc:     name + " sets every column of record on the rows matching params.",
		Params:  []gen.Param{ctxParam(), recordParam(t.LOBRecordType()), paramsParam(t)},
		Results: affected(),
	}, nil
}

func genUpdateByParamsWithoutLOBMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpUpdateByParamsWithoutLOB)
	return &gen.Method{
		Op:      gen.OpUpdateByParamsWithoutLOB,
		Name:    name,
		Doc:     name + " sets the key and plain columns of record on the rows matching params.",
		Params:  []gen.Param{ctxParam(), recordParam(t.RecordType()), paramsParam(t)},
		Results: affected(),
	}, nil
}

func genUpdateByKeySelectiveMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpUpdateByKeySelective)
	return &gen.Method{
		Op:      gen.OpUpdateByKeySelective,
		Name:    name,
		Doc:     name + " sets the non-zero fields of record on the row with its primary key.",
		Params:  []gen.Param{ctxParam(), recordParam(t.AllFieldsType())},
		Results: affected(),
	}, nil
}

func genUpdateByKeyWithLOBMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpUpdateByKeyWithLOB)
	return &gen.Method{
		Op:      gen.OpUpdateByKeyWithLOB,
		Name:    name,
		Doc:     name + " sets every non-key column of record on the row with its primary key.",
		Params:  []gen.Param{ctxParam(), recordParam(t.LOBRecordType())},
		Results: affected(),
	}, nil
}

func genUpdateByKeyWithoutLOBMethod(t *gen.Table, n gen.Names) (*gen.Method, error) {
	name := n.Method(gen.OpUpdateByKeyWithoutLOB)
	return &gen.Method{
		Op:      gen.OpUpdateByKeyWithoutLOB,
		Name:    name,
		Doc:     name + " sets the plain columns of record on the row with its primary key.",
		Params:  []gen.Param{ctxParam(), recordParam(t.RecordType())},
		Results: affected(),
	}, nil
}

// providerBacked reports whether the annotated client delegates the
// statement to the SQL provider.
func providerBacked(op gen.Operation) bool {
	for _, e := range providerElements {
		if e.op == op {
			return true
		}
	}
	return false
}

// directive returns the SQL directive of an annotated client method.
func directive(t *gen.Table, n gen.Names, op gen.Operation) string {
	if providerBacked(op) {
		return fmt.Sprintf("mapgen:%sProvider %s.%s", verb(op), t.ProviderName(), n.Method(op))
	}
	return "mapgen:" + verb(op) + " " + staticSQL(t, op)
}

// staticSQL returns the statement text of an operation whose SQL does not
// depend on its arguments.
func staticSQL(t *gen.Table, op gen.Operation) string {
	r := gen.Modern
	switch op {
	case gen.OpInsert:
		cols := t.AllColumns()
		return fmt.Sprintf("insert into %s (%s) values (%s)", t.FullName(), columnList(cols), valueList(r, "", cols))
	case gen.OpSelectByKey:
		return fmt.Sprintf("select %s from %s where %s", columnList(t.AllColumns()), t.FullName(), keyCondition(r, "", t))
	case gen.OpDeleteByKey:
		return fmt.Sprintf("delete from %s where %s", t.FullName(), keyCondition(r, "", t))
	case gen.OpUpdateByKeyWithLOB:
		return fmt.Sprintf("update %s set %s where %s", t.FullName(), assignments(r, "", t.NonKeyColumns()), keyCondition(r, "", t))
	case gen.OpUpdateByKeyWithoutLOB:
		return fmt.Sprintf("update %s set %s where %s", t.FullName(), assignments(r, "", t.Columns), keyCondition(r, "", t))
	}
	return ""
}
