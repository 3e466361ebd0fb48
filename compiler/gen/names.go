package gen

// Names binds every operation of one table to its identifier. Statement
// identifiers depend on the naming strategy; fragment identifiers are local
// to the mapping document and fixed.
type Names struct {
	Strategy NamingStrategy
	ids      [numOperations]string
}

// Fragment identifiers.
const (
	BaseResultMapID     = "BaseResultMap"
	ResultMapWithLOBID  = "ResultMapWithBLOBs"
	BaseColumnListID    = "Base_Column_List"
	LOBColumnListID     = "Blob_Column_List"
	WhereClauseID       = "Params_Where_Clause"
	UpdateWhereClauseID = "Update_By_Params_Where_Clause"
)

const (
	withLOBSuffix    = "WithBLOBs"
	withoutLOBSuffix = "WithoutBLOBs"
	selectiveSuffix  = "Selective"
	byKeySuffix      = "ByKey"
	byParamsSuffix   = "ByParams"
)

// stems split a statement identifier into its verb and its qualifier. The
// qualified strategy places the domain name between the two.
var stems = [...]struct{ verb, rest string }{
	OpInsert:                   {"insert", ""},
	OpInsertSelective:          {"insert", selectiveSuffix},
	OpSelectByKey:              {"select", byKeySuffix},
	OpSelectByParamsWithLOB:    {"select", byParamsSuffix + withLOBSuffix},
	OpSelectByParamsWithoutLOB: {"select", byParamsSuffix + withoutLOBSuffix},
	OpUpdateByKeyWithLOB:       {"update", byKeySuffix + withLOBSuffix},
	OpUpdateByKeyWithoutLOB:    {"update", byKeySuffix + withoutLOBSuffix},
	OpUpdateByKeySelective:     {"update", byKeySuffix + selectiveSuffix},
	OpDeleteByKey:              {"delete", byKeySuffix},
	OpDeleteByParams:           {"delete", byParamsSuffix},
	OpCountByParams:            {"count", byParamsSuffix},
	OpUpdateByParamsWithLOB:    {"update", byParamsSuffix + withLOBSuffix},
	OpUpdateByParamsWithoutLOB: {"update", byParamsSuffix + withoutLOBSuffix},
	OpUpdateByParamsSelective:  {"update", byParamsSuffix + selectiveSuffix},
}

// ResolveNames binds the enabled operations of the set to identifiers.
//
// The update pairs collapse onto one unsuffixed name when only one variant
// is enabled or when the table keeps every column in one holder type. The
// select-by-params pair collapses only when one variant is enabled. Both
// strategies make the same decisions and differ in spelling only.
//
// A NamingCollisionError is returned if two enabled operations end up with
// the same identifier.
func ResolveNames(t *Table, s OperationSet, strategy NamingStrategy) (Names, error) {
	n := Names{Strategy: strategy}
	domain := ""
	if strategy == Qualified {
		domain = t.Domain
	}
	for op, st := range stems {
		n.ids[op] = st.verb + domain + st.rest
	}
	collapse := func(with, without Operation, base string, consolidate bool) {
		if s[with] != s[without] || (consolidate && t.Consolidated) {
			n.ids[with], n.ids[without] = base, base
		}
	}
	collapse(OpSelectByParamsWithLOB, OpSelectByParamsWithoutLOB, "select"+domain+byParamsSuffix, false)
	collapse(OpUpdateByKeyWithLOB, OpUpdateByKeyWithoutLOB, "update"+domain+byKeySuffix, true)
	collapse(OpUpdateByParamsWithLOB, OpUpdateByParamsWithoutLOB, "update"+domain+byParamsSuffix, true)

	n.ids[OpResultMapBase] = BaseResultMapID
	n.ids[OpResultMapWithLOB] = ResultMapWithLOBID
	n.ids[OpBaseColumnList] = BaseColumnListID
	n.ids[OpLOBColumnList] = LOBColumnListID
	n.ids[OpWhereClause] = WhereClauseID
	n.ids[OpUpdateWhereClause] = UpdateWhereClauseID

	seen := make(map[string]Operation, numOperations)
	for _, op := range s.Enabled() {
		if prev, ok := seen[n.ids[op]]; ok {
			return Names{}, &NamingCollisionError{
				Table:      t.FullName(),
				Name:       n.ids[op],
				Operations: [2]Operation{prev, op},
			}
		}
		seen[n.ids[op]] = op
	}
	return n, nil
}

// Of returns the identifier of the operation.
func (n Names) Of(op Operation) string {
	if !op.Valid() {
		return ""
	}
	return n.ids[op]
}

// Method returns the exported Go method name of a statement operation.
func (n Names) Method(op Operation) string {
	id := n.Of(op)
	if id == "" {
		return ""
	}
	return rules.Capitalize(id)
}
