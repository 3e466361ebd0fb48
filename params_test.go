package mapgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/mapgen"
)

func TestParamsWriteWhere(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		build  func(p *mapgen.Params)
		prefix string
		want   string
	}{
		{
			name:   "Empty",
			build:  func(*mapgen.Params) {},
			prefix: "OredCriteria",
			want:   "",
		},
		{
			name: "EmptyGroupSkipped",
			build: func(p *mapgen.Params) {
				p.Or()
				p.Or().Add("deleted_at is null")
			},
			prefix: "OredCriteria",
			want:   " where (deleted_at is null)",
		},
		{
			name: "AllKinds",
			build: func(p *mapgen.Params) {
				p.Where().
					AddValue("id =", 1).
					AddBetween("age between", 18, 30).
					AddList("status in", "a", "b")
			},
			prefix: "OredCriteria",
			want: " where (id = #{OredCriteria[0].Criteria[0].Value}" +
				" and age between #{OredCriteria[0].Criteria[1].Value} and #{OredCriteria[0].Criteria[1].SecondValue}" +
				" and status in (#{OredCriteria[0].Criteria[2].Value[0]}, #{OredCriteria[0].Criteria[2].Value[1]}))",
		},
		{
			name: "OredGroupsWithPrefix",
			build: func(p *mapgen.Params) {
				p.Or().AddValue("name =", "a")
				p.Or().AddValue("name =", "b")
			},
			prefix: "Params.OredCriteria",
			want: " where (name = #{Params.OredCriteria[0].Criteria[0].Value})" +
				" or (name = #{Params.OredCriteria[1].Criteria[0].Value})",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &mapgen.Params{}
			tt.build(p)
			var b strings.Builder
			p.WriteWhere(&b, tt.prefix)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestParamsNil(t *testing.T) {
	var p *mapgen.Params
	var b strings.Builder
	p.WriteWhere(&b, "OredCriteria")
	assert.Empty(t, b.String())
}

func TestParamsWhereAndClear(t *testing.T) {
	p := &mapgen.Params{Distinct: true, OrderByClause: "id desc"}
	c := p.Where()
	require.Same(t, c, p.Where())
	c.Add("a is null")
	require.Len(t, p.OredCriteria, 1)
	assert.NoError(t, p.Validate())

	p.Clear()
	assert.Empty(t, p.OredCriteria)
	assert.False(t, p.Distinct)
	assert.Empty(t, p.OrderByClause)
}

func TestParamsValidate(t *testing.T) {
	p := &mapgen.Params{}
	p.Where().AddValue(" ", 1)
	assert.ErrorIs(t, p.Validate(), mapgen.ErrEmptyCondition)
}

func TestIsZero(t *testing.T) {
	var nilPtr *string
	s := "x"
	assert.True(t, mapgen.IsZero(nil))
	assert.True(t, mapgen.IsZero(0))
	assert.True(t, mapgen.IsZero(""))
	assert.True(t, mapgen.IsZero(nilPtr))
	assert.False(t, mapgen.IsZero(&s))
	assert.False(t, mapgen.IsZero(int64(3)))
}
