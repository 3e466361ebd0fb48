package mapper

import (
	"github.com/syssam/mapgen/compiler/gen"
)

// element is the generator of one artifact fragment for one operation.
// Registries of elements are ordered; the order is the emission order.
type element[F any] struct {
	op   gen.Operation
	emit func(t *gen.Table, n gen.Names) (F, error)
}

// collect walks the registry in order and emits the fragments of the
// enabled operations. A disabled operation is skipped without calling its
// generator.
func collect[F any](registry []element[F], t *gen.Table, ops gen.OperationSet, n gen.Names) ([]F, error) {
	var out []F
	for _, e := range registry {
		if !ops.Has(e.op) {
			continue
		}
		if err := check(t, e.op); err != nil {
			return nil, err
		}
		f, err := e.emit(t, n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// check reports an operation that reached its generator although the table
// lacks the columns the fragment is built from.
func check(t *gen.Table, op gen.Operation) error {
	switch op {
	case gen.OpSelectByKey, gen.OpUpdateByKeySelective:
		if !t.HasPrimaryKey() {
			return gen.NewTableError(t.FullName(), op, "no primary-key columns")
		}
		if !t.HasColumns() && !t.HasLOBs() {
			return gen.NewTableError(t.FullName(), op, "no non-key columns")
		}
	case gen.OpDeleteByKey:
		if !t.HasPrimaryKey() {
			return gen.NewTableError(t.FullName(), op, "no primary-key columns")
		}
	case gen.OpUpdateByKeyWithoutLOB:
		if !t.HasPrimaryKey() {
			return gen.NewTableError(t.FullName(), op, "no primary-key columns")
		}
		if !t.HasColumns() {
			return gen.NewTableError(t.FullName(), op, "no plain columns")
		}
	case gen.OpUpdateByParamsWithoutLOB:
		if !t.HasPrimaryKey() && !t.HasColumns() {
			return gen.NewTableError(t.FullName(), op, "no key or plain columns")
		}
	case gen.OpUpdateByKeyWithLOB:
		if !t.HasPrimaryKey() {
			return gen.NewTableError(t.FullName(), op, "no primary-key columns")
		}
		fallthrough
	case gen.OpSelectByParamsWithLOB, gen.OpUpdateByParamsWithLOB, gen.OpResultMapWithLOB, gen.OpLOBColumnList:
		if !t.HasLOBs() {
			return gen.NewTableError(t.FullName(), op, "no large-object columns")
		}
	}
	return nil
}
