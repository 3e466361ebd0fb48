// Package mapgen holds the runtime types shared by generated clients: the
// by-params filter holder and the errors client implementations return.
package mapgen

import (
	"fmt"
	"reflect"
	"strings"
)

// Params is the filter of the by-params statements. Generated params types
// embed it. Criteria groups are joined with "or"; the criteria of one group
// are joined with "and".
type Params struct {
	Distinct      bool
	OrderByClause string
	OredCriteria  []*Criteria
}

// Criteria is one and-joined group of criterion.
type Criteria struct {
	Criteria []*Criterion
}

// Criterion is a single condition. Exactly one of the value kinds is set.
type Criterion struct {
	Condition    string
	Value        any
	SecondValue  any
	NoValue      bool
	SingleValue  bool
	BetweenValue bool
	ListValue    bool
}

// Or starts a new criteria group and returns it.
func (p *Params) Or() *Criteria {
	c := &Criteria{}
	p.OredCriteria = append(p.OredCriteria, c)
	return c
}

// Where returns the first criteria group, creating it if needed.
func (p *Params) Where() *Criteria {
	if len(p.OredCriteria) == 0 {
		return p.Or()
	}
	return p.OredCriteria[0]
}

// Clear removes every criteria group and resets the flags.
func (p *Params) Clear() {
	*p = Params{}
}

// Valid reports whether the group has at least one criterion.
func (c *Criteria) Valid() bool {
	return c != nil && len(c.Criteria) > 0
}

// Add appends a condition without value, e.g. "name is null".
func (c *Criteria) Add(condition string) *Criteria {
	return c.add(&Criterion{Condition: condition, NoValue: true})
}

// AddValue appends a condition followed by one value, e.g. "id =".
func (c *Criteria) AddValue(condition string, v any) *Criteria {
	return c.add(&Criterion{Condition: condition, Value: v, SingleValue: true})
}

// AddBetween appends a condition followed by two values, e.g. "id between".
func (c *Criteria) AddBetween(condition string, v1, v2 any) *Criteria {
	return c.add(&Criterion{Condition: condition, Value: v1, SecondValue: v2, BetweenValue: true})
}

// AddList appends a condition followed by a value list, e.g. "id in".
func (c *Criteria) AddList(condition string, vs ...any) *Criteria {
	return c.add(&Criterion{Condition: condition, Value: vs, ListValue: true})
}

func (c *Criteria) add(cr *Criterion) *Criteria {
	c.Criteria = append(c.Criteria, cr)
	return c
}

// Validate reports the first malformed criterion.
func (p *Params) Validate() error {
	for i, c := range p.OredCriteria {
		for j, cr := range c.Criteria {
			if err := cr.validate(); err != nil {
				return &CriterionError{Group: i, Index: j, Err: err}
			}
		}
	}
	return nil
}

func (cr *Criterion) validate() error {
	if strings.TrimSpace(cr.Condition) == "" {
		return ErrEmptyCondition
	}
	if cr.ListValue {
		if vs, ok := cr.Value.([]any); !ok || len(vs) == 0 {
			return ErrEmptyList
		}
	}
	return nil
}

// WriteWhere writes the where clause of the params. Values are written as
// placeholders that address the criterion under prefix, e.g.
// #{OredCriteria[0].Criteria[1].Value}. Nothing is written if no group is
// valid.
func (p *Params) WriteWhere(b *strings.Builder, prefix string) {
	if p == nil {
		return
	}
	first := true
	for i, c := range p.OredCriteria {
		if !c.Valid() {
			continue
		}
		if first {
			b.WriteString(" where ")
			first = false
		} else {
			b.WriteString(" or ")
		}
		b.WriteByte('(')
		for j, cr := range c.Criteria {
			if j > 0 {
				b.WriteString(" and ")
			}
			at := fmt.Sprintf("%s[%d].Criteria[%d]", prefix, i, j)
			switch {
			case cr.NoValue:
				b.WriteString(cr.Condition)
			case cr.SingleValue:
				fmt.Fprintf(b, "%s #{%s.Value}", cr.Condition, at)
			case cr.BetweenValue:
				fmt.Fprintf(b, "%s #{%s.Value} and #{%s.SecondValue}", cr.Condition, at, at)
			case cr.ListValue:
				vs, _ := cr.Value.([]any)
				fmt.Fprintf(b, "%s (", cr.Condition)
				for k := range vs {
					if k > 0 {
						b.WriteString(", ")
					}
					fmt.Fprintf(b, "#{%s.Value[%d]}", at, k)
				}
				b.WriteByte(')')
			}
		}
		b.WriteByte(')')
	}
}

// IsZero reports whether v is nil or the zero value of its type. Selective
// statements skip such fields.
func IsZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
