package gen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/mapgen/compiler/load"
)

// Generator runs the per-table pipeline: rule resolution, name resolution,
// assembly and offering of the artifacts. Tables are independent and are
// generated concurrently.
type Generator struct {
	cfg     *Config
	dialect Dialect
	hooks   []Hook
	log     *slog.Logger
}

// NewGenerator creates a generator for the given configuration and dialect.
// The hooks registered in the configuration are captured here; later changes
// to the configuration do not affect the generator.
//
// Example:
//
//	import "github.com/syssam/mapgen/compiler/gen/mapper"
//
//	cfg := gen.MustNewConfig(gen.WithPackage("example.com/app/mapper"))
//	g := gen.NewGenerator(cfg, mapper.NewDialect(cfg))
//	res, err := g.Generate(ctx, tables...)
func NewGenerator(c *Config, d Dialect) *Generator {
	return &Generator{
		cfg:     c,
		dialect: d,
		hooks:   slices.Clone(c.Hooks),
		log:     c.logger(),
	}
}

// Result holds the outcome of a run, one entry per table in input order.
type Result struct {
	Tables []*TableResult
}

// TableResult holds the outcome of one table.
type TableResult struct {
	// Name is the full name of the table.
	Name string
	// Table is nil if the description was rejected.
	Table *Table
	// Operations and Names are the resolved decisions.
	Operations OperationSet
	Names      Names
	// Artifacts are the finalized artifacts: the client interface, its extra
	// units, then the mapping document.
	Artifacts []Artifact
	// Discarded are the assemblies that ended discarded.
	Discarded []*Assembly
	// Err is the table failure, if any. A failed table has no artifacts.
	Err error
}

// Err returns the joined errors of all failed tables.
func (r *Result) Err() error {
	var errs []error
	for _, t := range r.Tables {
		if t.Err != nil {
			errs = append(errs, t.Err)
		}
	}
	return errors.Join(errs...)
}

// Artifacts returns the finalized artifacts of all tables in order.
func (r *Result) Artifacts() []Artifact {
	var as []Artifact
	for _, t := range r.Tables {
		as = append(as, t.Artifacts...)
	}
	return as
}

// Artifact returns the finalized artifact of the given kind, or nil.
func (t *TableResult) Artifact(k Kind) Artifact {
	for _, a := range t.Artifacts {
		if a.Kind() == k {
			return a
		}
	}
	return nil
}

// Generate generates the artifacts of every table. A failing table is
// recorded in its TableResult and does not stop the others.
//
// Cancelling the context stops scheduling further tables. Tables already
// running complete; tables never started are recorded with the context
// error, which is then also returned.
//
// Tables whose artifacts would share a Go type or a file name with an
// earlier table fail with a TableError.
func (g *Generator) Generate(ctx context.Context, tables ...*load.Table) (*Result, error) {
	if g.dialect == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set")
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	var (
		res     = &Result{Tables: make([]*TableResult, len(tables))}
		skipped atomic.Bool
		errg    = new(errgroup.Group)
	)
	errg.SetLimit(g.cfg.workers())
	for i, lt := range tables {
		tr := &TableResult{}
		if lt != nil {
			tr.Name = lt.FullName()
		}
		res.Tables[i] = tr
		if err := ctx.Err(); err != nil {
			tr.Err = err
			skipped.Store(true)
			continue
		}
		// Go blocks while all workers are busy.
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				tr.Err = err
				skipped.Store(true)
				return nil
			}
			g.run(tr, lt)
			return nil
		})
	}
	// Table failures are recorded per table.
	_ = errg.Wait()
	g.claim(res)
	if skipped.Load() {
		return res, ctx.Err()
	}
	return res, nil
}

// claim fails every table whose artifacts would declare a Go type or write
// a file already owned by an earlier table in input order.
func (g *Generator) claim(res *Result) {
	owners := make(map[string]string)
	for _, tr := range res.Tables {
		if tr.Err != nil || tr.Table == nil {
			continue
		}
		var keys []string
		for _, a := range tr.Artifacts {
			if a.Kind() != KindDocument && len(keys) == 0 {
				keys = append(keys, "type "+tr.Table.Domain)
			}
			keys = append(keys, "file "+FileName(a))
		}
		if k, owner := claimed(owners, keys); owner != "" {
			tr.Artifacts = nil
			g.fail(tr, &TableError{
				Table:   tr.Name,
				Message: fmt.Sprintf("%s already generated for table %s", k, owner),
			})
			continue
		}
		for _, k := range keys {
			owners[k] = tr.Name
		}
	}
}

func claimed(owners map[string]string, keys []string) (string, string) {
	for _, k := range keys {
		if owner, ok := owners[k]; ok {
			return k, owner
		}
	}
	return "", ""
}

// GenerateTable runs the pipeline for one table synchronously.
func (g *Generator) GenerateTable(lt *load.Table) *TableResult {
	tr := &TableResult{}
	if lt != nil {
		tr.Name = lt.FullName()
	}
	g.run(tr, lt)
	return tr
}

func (g *Generator) run(tr *TableResult, lt *load.Table) {
	t, err := NewTable(lt, g.cfg)
	if err != nil {
		g.fail(tr, err)
		return
	}
	tr.Table = t
	tr.Operations = Resolve(t)
	tr.Names, err = ResolveNames(t, tr.Operations, g.cfg.Naming)
	if err != nil {
		g.fail(tr, err)
		return
	}
	assemblies, err := g.assemble(t, tr.Operations, tr.Names)
	if err != nil {
		g.fail(tr, err)
		return
	}
	for _, as := range assemblies {
		if as.State == Finalized {
			tr.Artifacts = append(tr.Artifacts, as.Artifact)
			continue
		}
		tr.Discarded = append(tr.Discarded, as)
		g.log.Debug("artifact discarded", "table", tr.Name, "kind", as.Kind, "name", as.Name, "reason", as.Reason)
	}
	g.log.Debug("table generated", "table", tr.Name, "operations", len(tr.Operations.Enabled()), "artifacts", len(tr.Artifacts))
}

// assemble builds and offers the artifacts the client family requires. The
// provider is offered before the interface that carries it as an extra unit.
func (g *Generator) assemble(t *Table, ops OperationSet, names Names) ([]*Assembly, error) {
	var (
		family = g.cfg.Client
		out    []*Assembly
	)
	if family.Interface {
		var units []*Assembly
		if family.Provider {
			p, err := g.dialect.GenProvider(t, ops, names)
			if err != nil {
				return nil, err
			}
			as := Assemble(p)
			as.Offer(t, g.hooks)
			units = append(units, as)
		}
		i, err := g.dialect.GenInterface(t, ops, names)
		if err != nil {
			return nil, err
		}
		for _, u := range units {
			if u.State == Finalized {
				i.Units = append(i.Units, u.Artifact)
			}
		}
		as := Assemble(i)
		as.Offer(t, g.hooks)
		out = append(out, as)
		out = append(out, units...)
	}
	if family.Document {
		d, err := g.dialect.GenDocument(t, ops, names)
		if err != nil {
			return nil, err
		}
		as := Assemble(d)
		as.Offer(t, g.hooks)
		out = append(out, as)
	}
	return out, nil
}

func (g *Generator) fail(tr *TableResult, err error) {
	tr.Err = err
	g.log.Warn("table generation failed", "table", tr.Name, "error", err)
}
