package gen

import (
	"log/slog"
	"path"
	"runtime"
)

// Config holds the global generation settings. It is resolved before any
// table is processed and read-only during a run.
type Config struct {
	// Target is the output directory.
	Target string
	// Package is the import path of the generated package.
	Package string
	// Header is written at the top of every generated Go file.
	Header string
	// Runtime selects the mapping-document family.
	Runtime Runtime
	// Client selects the client-interface family.
	Client ClientFamily
	// Naming selects the identifier spelling.
	Naming NamingStrategy
	// RootInterface is embedded by every client interface unless a table
	// overrides it.
	RootInterface string
	// Hooks are offered every assembled artifact, in registration order.
	Hooks []Hook
	// Workers bounds the number of tables generated concurrently.
	Workers int
	// Logger receives progress records. Defaults to slog.Default().
	Logger *slog.Logger
}

// OutputConfig groups output-related settings.
type OutputConfig struct {
	Target  string
	Package string
	Header  string
}

// Output returns the output-related settings.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:  c.Target,
		Package: c.Package,
		Header:  c.Header,
	}
}

// PackageName returns the name of the generated package.
func (c *Config) PackageName() string {
	if c.Package == "" {
		return "mapper"
	}
	return path.Base(c.Package)
}

// Validate reports configuration combinations no run can satisfy.
func (c *Config) Validate() error {
	if c.Runtime != Legacy && c.Runtime != Modern {
		return NewConfigError("Runtime", c.Runtime, "runtime must be legacy or modern")
	}
	if c.Client.Name == "" {
		return NewConfigError("Client", nil, "missing client family")
	}
	if !c.Client.Supports(c.Runtime) {
		return NewConfigError("Client", c.Client.Name, "client family does not support the "+c.Runtime.String()+" runtime")
	}
	for i, h := range c.Hooks {
		if h == nil {
			return NewConfigError("Hooks", i, "hook cannot be nil")
		}
	}
	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
