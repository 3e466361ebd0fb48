package gen

import (
	"fmt"
	"slices"
	"strings"
)

// Runtime selects the mapping-document family.
type Runtime uint8

const (
	_ Runtime = iota

	// Legacy documents share one where-clause fragment across every by-params
	// statement, update included.
	Legacy

	// Modern documents build the update-by-params where clause from a dedicated
	// fragment, since the params holder is nested under the update record.
	Modern
)

// String returns the runtime name.
func (r Runtime) String() string {
	switch r {
	case Legacy:
		return "legacy"
	case Modern:
		return "modern"
	default:
		return fmt.Sprintf("Runtime(%d)", r)
	}
}

// ParseRuntime returns the runtime with the given name.
func ParseRuntime(s string) (Runtime, error) {
	switch strings.ToLower(s) {
	case "legacy":
		return Legacy, nil
	case "", "modern":
		return Modern, nil
	default:
		return 0, NewConfigError("Runtime", s, "unsupported runtime; use legacy or modern")
	}
}

// NamingStrategy selects how operation identifiers are spelled.
type NamingStrategy uint8

const (
	// Plain names serve one client interface per table (updateByKey).
	Plain NamingStrategy = iota
	// Qualified names embed the domain object name so many tables can share
	// one client interface (updateUserByKey).
	Qualified
)

// String returns the strategy name.
func (n NamingStrategy) String() string {
	if n == Qualified {
		return "qualified"
	}
	return "plain"
}

// ParseNamingStrategy returns the naming strategy with the given name.
func ParseNamingStrategy(s string) (NamingStrategy, error) {
	switch strings.ToLower(s) {
	case "", "plain":
		return Plain, nil
	case "qualified":
		return Qualified, nil
	default:
		return 0, NewConfigError("Naming", s, "unsupported naming strategy; use plain or qualified")
	}
}

var (
	// ClientMapped emits a client interface whose statements live in a
	// matching mapping document.
	ClientMapped = ClientFamily{
		Name:        "mapped",
		Description: "Client interface backed by a mapping document",
		Interface:   true,
		Document:    true,
		Runtimes:    []Runtime{Legacy, Modern},
	}

	// ClientAnnotated emits a client interface whose methods carry their SQL
	// as directives, plus an SQL provider type for the dynamic statements.
	// It produces no mapping document.
	ClientAnnotated = ClientFamily{
		Name:        "annotated",
		Description: "Client interface with SQL directives and an SQL provider type",
		Interface:   true,
		Provider:    true,
		Runtimes:    []Runtime{Modern},
	}

	// ClientNone emits mapping documents only.
	ClientNone = ClientFamily{
		Name:        "none",
		Description: "Mapping documents only",
		Document:    true,
		Runtimes:    []Runtime{Legacy, Modern},
	}

	// ClientFamilies holds every client family.
	ClientFamilies = []ClientFamily{
		ClientMapped,
		ClientAnnotated,
		ClientNone,
	}
)

// A ClientFamily describes which artifacts the client side of a run emits.
type ClientFamily struct {
	// Name of the family.
	Name string

	// A Description of this family.
	Description string

	// Interface indicates that a client interface is emitted.
	Interface bool

	// Document indicates a dependency on the mapping document matching the
	// configured runtime.
	Document bool

	// Provider indicates that an SQL provider type is emitted as an extra
	// compilation unit of the interface.
	Provider bool

	// Runtimes lists the runtimes the family can be paired with.
	Runtimes []Runtime
}

// Supports reports whether the family can be paired with the runtime.
func (f ClientFamily) Supports(r Runtime) bool {
	return slices.Contains(f.Runtimes, r)
}

// ParseClientFamily returns the client family with the given name.
func ParseClientFamily(s string) (ClientFamily, error) {
	if s == "" {
		return ClientMapped, nil
	}
	for _, f := range ClientFamilies {
		if strings.EqualFold(f.Name, s) {
			return f, nil
		}
	}
	return ClientFamily{}, NewConfigError("Client", s, "unsupported client family; use mapped, annotated or none")
}
