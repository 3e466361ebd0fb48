package gen

// Resolve decides which operations apply to the table. It is a pure function
// of the table facts and never fails: a capability the table lacks is
// expressed as a disabled operation.
//
// A consolidated table with LOB columns carries every column in one holder
// type, so only the with-LOB variant of each update pair is generated. Both
// variants of such a pair would otherwise resolve to the same name.
func Resolve(t *Table) OperationSet {
	var (
		s       OperationSet
		st      = t.Statements
		pk      = t.HasPrimaryKey()
		plain   = t.HasColumns()
		lob     = t.HasLOBs()
		unified = t.Consolidated && lob
		anySel  = st.SelectByParams || st.SelectByKey
	)
	s[OpInsert] = st.Insert
	s[OpInsertSelective] = st.Insert
	s[OpSelectByKey] = st.SelectByKey && pk && (plain || lob)
	s[OpSelectByParamsWithoutLOB] = st.SelectByParams
	s[OpSelectByParamsWithLOB] = st.SelectByParams && lob
	s[OpUpdateByKeyWithoutLOB] = st.UpdateByKey && pk && plain && !unified
	s[OpUpdateByKeyWithLOB] = st.UpdateByKey && pk && lob
	s[OpUpdateByKeySelective] = st.UpdateByKey && pk && (plain || lob)
	s[OpDeleteByKey] = st.DeleteByKey && pk
	s[OpDeleteByParams] = st.DeleteByParams
	s[OpCountByParams] = st.CountByParams
	s[OpUpdateByParamsWithoutLOB] = st.UpdateByParams && (pk || plain) && !unified
	s[OpUpdateByParamsWithLOB] = st.UpdateByParams && lob
	s[OpUpdateByParamsSelective] = st.UpdateByParams
	s[OpResultMapBase] = anySel
	s[OpResultMapWithLOB] = anySel && lob
	s[OpBaseColumnList] = s[OpSelectByKey] || s[OpSelectByParamsWithoutLOB]
	s[OpLOBColumnList] = anySel && lob
	s[OpWhereClause] = s[OpSelectByParamsWithoutLOB] || s[OpSelectByParamsWithLOB] ||
		s[OpDeleteByParams] || s[OpCountByParams]
	switch t.Runtime {
	case Legacy:
		// Legacy documents share one where clause with update-by-params.
		s[OpWhereClause] = s[OpWhereClause] || st.UpdateByParams
	case Modern:
		s[OpUpdateWhereClause] = st.UpdateByParams
	}
	return s
}

// ParamsTypeNeeded reports whether the by-params holder type is referenced
// by any enabled operation.
func (s OperationSet) ParamsTypeNeeded() bool {
	for _, op := range Operations() {
		if op.ByParams() && s[op] {
			return true
		}
	}
	return false
}

// KeyTypeNeeded reports whether the composite key holder type is referenced.
// A single-column key is passed as a scalar.
func (s OperationSet) KeyTypeNeeded(t *Table) bool {
	return len(t.PrimaryKey) > 1 && s.Any(OpSelectByKey, OpDeleteByKey)
}
