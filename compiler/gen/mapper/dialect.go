package mapper

import (
	"context"

	"github.com/syssam/mapgen/compiler/gen"
	"github.com/syssam/mapgen/compiler/load"
)

// Generate is a convenience function that generates the artifacts of the
// tables and writes them to the configured target directory. It returns the
// generation result and the written paths.
//
// Table failures are reported by the returned result; the error reports a
// cancelled run or a failed write.
//
// Example:
//
//	import "github.com/syssam/mapgen/compiler/gen/mapper"
//	res, paths, err := mapper.Generate(ctx, cfg, tables...)
func Generate(ctx context.Context, c *gen.Config, tables ...*load.Table) (*gen.Result, []string, error) {
	if c == nil || c.Target == "" {
		return nil, nil, gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	res, err := gen.NewGenerator(c, NewDialect(c)).Generate(ctx, tables...)
	if err != nil {
		return res, nil, err
	}
	paths, err := gen.NewWriter(c).Write(ctx, res)
	return res, paths, err
}

// Dialect implements gen.Dialect for the mapped, annotated and
// document-only client families.
//
// Generated artifacts:
//   - A client interface with the holder types its methods use
//   - An SQL provider type for the dynamic statements of annotated clients
//   - A mapping document in the legacy or modern syntax
type Dialect struct {
	annotated bool
}

// NewDialect creates the dialect for the configured client family.
func NewDialect(c *gen.Config) *Dialect {
	return &Dialect{annotated: c.Client.Provider}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "mapper"
}

// GenInterface generates the client interface.
// Annotated clients carry their SQL as method directives.
func (d *Dialect) GenInterface(t *gen.Table, ops gen.OperationSet, n gen.Names) (*gen.Interface, error) {
	if d.annotated {
		return genInterface(annotatedElements, t, ops, n)
	}
	return genInterface(interfaceElements, t, ops, n)
}

// GenProvider generates the SQL provider of an annotated client.
func (d *Dialect) GenProvider(t *gen.Table, ops gen.OperationSet, n gen.Names) (*gen.Provider, error) {
	return genProvider(t, ops, n)
}

// GenDocument generates the mapping document for the table runtime.
func (d *Dialect) GenDocument(t *gen.Table, ops gen.OperationSet, n gen.Names) (*gen.Document, error) {
	return genDocument(t, ops, n)
}
