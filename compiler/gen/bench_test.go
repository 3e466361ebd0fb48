package gen

import (
	"context"
	"fmt"
	"testing"

	"github.com/syssam/mapgen/compiler/load"
)

func BenchmarkResolve(b *testing.B) {
	tbl := newTestTable(b, shape{pk: 2, plain: 8, lob: 2}, Modern, false)
	for b.Loop() {
		ops := Resolve(tbl)
		if _, err := ResolveNames(tbl, ops, Qualified); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	tables := make([]*load.Table, 64)
	for i := range tables {
		tables[i] = loadTable(fmt.Sprintf("table_%d", i), shapes[i%len(shapes)])
	}
	g := NewGenerator(testConfig(b, WithClient(ClientAnnotated)), &stubDialect{})
	ctx := context.Background()
	b.ResetTimer()
	for b.Loop() {
		res, err := g.Generate(ctx, tables...)
		if err != nil {
			b.Fatal(err)
		}
		if err := res.Err(); err != nil {
			b.Fatal(err)
		}
	}
}
