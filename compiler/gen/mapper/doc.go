// Package mapper provides the artifact generators of the mapgen pipeline.
//
// This package implements the gen.Dialect interface. Every artifact is
// assembled from an ordered registry of per-operation elements; the order of
// a registry is the emission order of the artifact.
//
// Usage:
//
//	import (
//	    "github.com/syssam/mapgen/compiler/gen"
//	    "github.com/syssam/mapgen/compiler/gen/mapper"
//	)
//
//	cfg := gen.MustNewConfig(gen.WithTarget("mapper"), gen.WithPackage("example.com/app/mapper"))
//	res, err := gen.NewGenerator(cfg, mapper.NewDialect(cfg)).Generate(ctx, tables...)
//
// Generated files per table:
//
//	{target}/
//	├── {domain}_mapper.go        # Client interface and holder types
//	├── {domain}_sql_provider.go  # SQL provider (annotated clients)
//	├── {Domain}Mapper.xml        # Modern mapping document
//	└── {table}_SqlMap.xml        # Legacy mapping document
package mapper
