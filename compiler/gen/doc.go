// Package gen decides which data-access operations apply to a table and
// assembles the artifacts that implement them.
//
// # Architecture
//
// Data flows strictly downward, one table at a time:
//
//	load.Table (introspected shape and statement switches)
//	        ↓
//	   Table (immutable table facts)
//	        ↓
//	   Resolve → OperationSet
//	        ↓
//	   ResolveNames → Names
//	        ↓
//	   Dialect (ordered element generators per artifact kind)
//	        ↓
//	   Assembly.Offer (hooks may veto, documents may be modified)
//	        ↓
//	   Result (finalized artifacts, discards, table errors)
//
// # Key Types
//
//   - Table: the facts of one table (columns, key, LOBs, switches, runtime)
//   - OperationSet: the generate decision of each Operation
//   - Names: the identifier of each operation under a NamingStrategy
//   - Interface, Provider, Document: the artifacts
//   - Hook: a veto or modification callback offered every artifact
//   - Generator: the concurrent per-table driver
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: Configuration errors
//   - TableError: an operation reached a generator the table cannot support
//   - NamingCollisionError: two enabled operations share an identifier
//   - GenerationError: rendering and writing errors
//
// A failing table is recorded in its TableResult; other tables continue.
// A vetoed artifact is not an error, it ends in the Discarded state.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./mapper"),
//	    gen.WithPackage("github.com/org/project/mapper"),
//	    gen.WithRuntime(gen.Modern),
//	    gen.WithClient(gen.ClientAnnotated),
//	    gen.WithNaming(gen.Qualified),
//	)
//
// # Usage
//
//	import "github.com/syssam/mapgen/compiler/gen/mapper"
//
//	res, err := gen.NewGenerator(cfg, mapper.NewDialect(cfg)).Generate(ctx, tables...)
//	if err != nil {
//	    return err
//	}
//	paths, err := gen.NewWriter(cfg).Write(ctx, res)
package gen
