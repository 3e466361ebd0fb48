package gen

import (
	"errors"
	"log/slog"

	"github.com/syssam/mapgen/compiler/load"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated Go file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the output package import path.
// For example: "github.com/org/project/mapper".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithRuntime selects the mapping-document family.
func WithRuntime(r Runtime) Option {
	return func(c *Config) error {
		if r != Legacy && r != Modern {
			return NewConfigError("Runtime", r, "unsupported runtime; use Legacy or Modern")
		}
		c.Runtime = r
		return nil
	}
}

// WithClient selects the client-interface family.
func WithClient(f ClientFamily) Option {
	return func(c *Config) error {
		if f.Name == "" {
			return NewConfigError("Client", nil, "client family cannot be empty")
		}
		c.Client = f
		return nil
	}
}

// WithNaming selects the identifier spelling.
func WithNaming(n NamingStrategy) Option {
	return func(c *Config) error {
		if n != Plain && n != Qualified {
			return NewConfigError("Naming", n, "unsupported naming strategy")
		}
		c.Naming = n
		return nil
	}
}

// WithRootInterface sets the interface embedded by every client interface.
func WithRootInterface(name string) Option {
	return func(c *Config) error {
		c.RootInterface = name
		return nil
	}
}

// WithHooks registers artifact hooks.
// Hooks are offered every assembled artifact, in registration order.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		for i, h := range hooks {
			if h == nil {
				return NewConfigError("Hooks", i, "hook cannot be nil")
			}
		}
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithWorkers bounds the number of tables generated concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the progress logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithProject applies the settings of a loaded project file.
func WithProject(p *load.Project) Option {
	return func(c *Config) error {
		if p == nil {
			return NewConfigError("Project", nil, "project cannot be nil")
		}
		r, err := ParseRuntime(p.Runtime)
		if err != nil {
			return err
		}
		f, err := ParseClientFamily(p.Client)
		if err != nil {
			return err
		}
		n, err := ParseNamingStrategy(p.Naming)
		if err != nil {
			return err
		}
		c.Target, c.Package, c.Header = p.Target, p.Package, p.Header
		c.Runtime, c.Client, c.Naming = r, f, n
		c.RootInterface = p.RootInterface
		if p.Workers > 0 {
			c.Workers = p.Workers
		}
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options. The runtime defaults
// to Modern and the client family to ClientMapped.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Runtime: Modern,
		Client:  ClientMapped,
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
