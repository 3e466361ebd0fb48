package gen

import (
	"strconv"
	"strings"
)

// Operation is one generate-or-not decision made per table.
type Operation uint8

// Operations in their canonical order.
const (
	OpInsert Operation = iota
	OpInsertSelective
	OpSelectByKey
	OpSelectByParamsWithLOB
	OpSelectByParamsWithoutLOB
	OpUpdateByKeyWithLOB
	OpUpdateByKeyWithoutLOB
	OpUpdateByKeySelective
	OpDeleteByKey
	OpDeleteByParams
	OpCountByParams
	OpUpdateByParamsWithLOB
	OpUpdateByParamsWithoutLOB
	OpUpdateByParamsSelective
	OpResultMapBase
	OpResultMapWithLOB
	OpBaseColumnList
	OpLOBColumnList
	OpWhereClause
	OpUpdateWhereClause

	numOperations
)

var opNames = [numOperations]string{
	OpInsert:                   "insert",
	OpInsertSelective:          "insertSelective",
	OpSelectByKey:              "selectByKey",
	OpSelectByParamsWithLOB:    "selectByParamsWithLOB",
	OpSelectByParamsWithoutLOB: "selectByParamsWithoutLOB",
	OpUpdateByKeyWithLOB:       "updateByKeyWithLOB",
	OpUpdateByKeyWithoutLOB:    "updateByKeyWithoutLOB",
	OpUpdateByKeySelective:     "updateByKeySelective",
	OpDeleteByKey:              "deleteByKey",
	OpDeleteByParams:           "deleteByParams",
	OpCountByParams:            "countByParams",
	OpUpdateByParamsWithLOB:    "updateByParamsWithLOB",
	OpUpdateByParamsWithoutLOB: "updateByParamsWithoutLOB",
	OpUpdateByParamsSelective:  "updateByParamsSelective",
	OpResultMapBase:            "resultMapBase",
	OpResultMapWithLOB:         "resultMapWithLOB",
	OpBaseColumnList:           "baseColumnList",
	OpLOBColumnList:            "lobColumnList",
	OpWhereClause:              "whereClauseFragment",
	OpUpdateWhereClause:        "updateWhereClauseFragment",
}

// Operations returns all operations in canonical order.
func Operations() []Operation {
	ops := make([]Operation, numOperations)
	for i := range ops {
		ops[i] = Operation(i)
	}
	return ops
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool { return o < numOperations }

// String returns the operation name.
func (o Operation) String() string {
	if !o.Valid() {
		return "Operation(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// Statement reports whether the operation produces an executable statement,
// as opposed to a shared document fragment.
func (o Operation) Statement() bool { return o < OpResultMapBase }

// ByParams reports whether the operation filters with a params holder.
func (o Operation) ByParams() bool {
	switch o {
	case OpSelectByParamsWithLOB, OpSelectByParamsWithoutLOB,
		OpDeleteByParams, OpCountByParams,
		OpUpdateByParamsWithLOB, OpUpdateByParamsWithoutLOB, OpUpdateByParamsSelective:
		return true
	}
	return false
}

// ParseOperation returns the operation with the given name.
func ParseOperation(s string) (Operation, bool) {
	for i, n := range opNames {
		if strings.EqualFold(n, s) {
			return Operation(i), true
		}
	}
	return 0, false
}

// OperationSet holds the generate decision for every operation.
// It is a value type and is never modified after Resolve returns it.
type OperationSet [numOperations]bool

// Has reports whether the operation is enabled.
func (s OperationSet) Has(o Operation) bool { return o.Valid() && s[o] }

// Enabled returns the enabled operations in canonical order.
func (s OperationSet) Enabled() []Operation {
	var ops []Operation
	for i, on := range s {
		if on {
			ops = append(ops, Operation(i))
		}
	}
	return ops
}

// SubsetOf reports whether every operation enabled in s is enabled in o.
func (s OperationSet) SubsetOf(o OperationSet) bool {
	for i := range s {
		if s[i] && !o[i] {
			return false
		}
	}
	return true
}

// Any reports whether at least one of ops is enabled.
func (s OperationSet) Any(ops ...Operation) bool {
	for _, o := range ops {
		if s.Has(o) {
			return true
		}
	}
	return false
}
