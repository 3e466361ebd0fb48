package gen

// =============================================================================
// Interface Segregation: one generator interface per artifact kind
// =============================================================================

// ClientGenerator builds the client interface of a table.
// The generator is called only when the client family emits an interface.
type ClientGenerator interface {
	// GenInterface collects the enabled method fragments in emission order.
	GenInterface(t *Table, ops OperationSet, names Names) (*Interface, error)
}

// ProviderGenerator builds the SQL provider of a table.
// The generator is called only when the client family emits a provider.
type ProviderGenerator interface {
	// GenProvider collects the enabled provider methods in emission order.
	GenProvider(t *Table, ops OperationSet, names Names) (*Provider, error)
}

// DocumentGenerator builds the mapping document of a table.
// The generator is called only when the client family depends on a document.
type DocumentGenerator interface {
	// GenDocument collects the enabled document elements in emission order.
	GenDocument(t *Table, ops OperationSet, names Names) (*Document, error)
}

// Dialect is the complete set of artifact generators.
type Dialect interface {
	ClientGenerator
	ProviderGenerator
	DocumentGenerator
}
