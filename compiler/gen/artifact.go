package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// Kind identifies the kind of an artifact.
type Kind uint8

// Artifact kinds.
const (
	_ Kind = iota
	KindInterface
	KindProvider
	KindDocument
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindProvider:
		return "provider"
	case KindDocument:
		return "document"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Artifact is one complete output unit assembled from fragments.
type Artifact interface {
	// Kind returns the artifact kind.
	Kind() Kind
	// ArtifactName returns the name the artifact is written under.
	ArtifactName() string
	// Empty reports whether the artifact is pointless and may be discarded
	// without being offered to the hooks.
	Empty() bool
}

// The following types describe the Go artifacts. They are plain data so that
// hooks and tests can inspect them; the writer renders them with jennifer.
type (
	// Interface is a client interface with its holder types.
	Interface struct {
		// Name of the interface type.
		Name string
		// Package is the import path of the interface.
		Package string
		// Embeds is the optional supertype.
		Embeds string
		// Records are the holder types the methods refer to.
		Records []*Record
		// Methods in emission order.
		Methods []*Method
		// Units are extra compilation units produced along with the interface.
		Units []Artifact
	}

	// Provider is a type whose methods build the SQL text of the dynamic
	// statements of an annotated client.
	Provider struct {
		// Name of the provider type.
		Name string
		// Package is the import path of the provider.
		Package string
		// Methods in emission order. Helper methods come last.
		Methods []*Method
	}

	// Method is a client or provider method.
	Method struct {
		// Op is the operation the method implements. It is meaningless for
		// helper methods.
		Op Operation
		// Name is the Go method name.
		Name string
		// Doc is the method comment.
		Doc string
		// Directives are //mapgen: comment lines placed after Doc.
		Directives []string
		// Params and Results use Go type spellings, e.g. "*User",
		// "[]*User" or "context.Context".
		Params  []Param
		Results []string
		// Body is the method body. Interface methods have none.
		Body []jen.Code
		// Helper marks an unexported support method.
		Helper bool
	}

	// Param is a method parameter.
	Param struct {
		Name string
		Type string
	}

	// Record is a holder struct type.
	Record struct {
		// Name of the struct type.
		Name string
		// Doc is the type comment.
		Doc string
		// Embeds are embedded types, in order.
		Embeds []string
		// Fields in column order.
		Fields []*Field
	}

	// Field is a holder struct field bound to a column.
	Field struct {
		Name   string
		Type   string
		Column string
	}
)

// Kind implements the Artifact interface.
func (*Interface) Kind() Kind { return KindInterface }

// ArtifactName implements the Artifact interface.
func (i *Interface) ArtifactName() string { return i.Name }

// Empty reports whether the interface has neither methods nor extra units.
func (i *Interface) Empty() bool { return len(i.Methods) == 0 && len(i.Units) == 0 }

// MethodNames returns the method names in emission order.
func (i *Interface) MethodNames() []string { return methodNames(i.Methods) }

// Kind implements the Artifact interface.
func (*Provider) Kind() Kind { return KindProvider }

// ArtifactName implements the Artifact interface.
func (p *Provider) ArtifactName() string { return p.Name }

// Empty reports whether the provider has no methods.
func (p *Provider) Empty() bool { return len(p.Methods) == 0 }

// MethodNames returns the method names in emission order.
func (p *Provider) MethodNames() []string { return methodNames(p.Methods) }

func methodNames(ms []*Method) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}
	return names
}

// Method returns the method implementing the operation, or nil.
func (i *Interface) Method(op Operation) *Method { return findMethod(i.Methods, op) }

// Method returns the method implementing the operation, or nil.
func (p *Provider) Method(op Operation) *Method { return findMethod(p.Methods, op) }

func findMethod(ms []*Method, op Operation) *Method {
	for _, m := range ms {
		if !m.Helper && m.Op == op {
			return m
		}
	}
	return nil
}
