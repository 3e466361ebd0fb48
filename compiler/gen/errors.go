package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("mapgen: missing configuration")
	// ErrInconsistentTable indicates table facts that contradict an operation
	// that reached a generator.
	ErrInconsistentTable = errors.New("mapgen: inconsistent table")
	// ErrNamingCollision indicates two enabled operations bound to one identifier.
	ErrNamingCollision = errors.New("mapgen: naming collision")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("mapgen: code generation failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("mapgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("mapgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// TableError reports an operation that reached a generator although the
// table facts cannot support it, e.g. a by-key statement for a table
// without primary-key columns. It always indicates a rule defect.
type TableError struct {
	Table     string
	Operation string
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *TableError) Error() string {
	var b strings.Builder
	b.WriteString("mapgen: inconsistent table")
	if e.Table != "" {
		b.WriteString(" ")
		b.WriteString(e.Table)
	}
	if e.Operation != "" {
		b.WriteString(" for operation ")
		b.WriteString(e.Operation)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *TableError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for TableError.
func (e *TableError) Is(target error) bool {
	return target == ErrInconsistentTable
}

// NewTableError creates a new TableError.
func NewTableError(table string, op Operation, message string) *TableError {
	return &TableError{
		Table:     table,
		Operation: op.String(),
		Message:   message,
	}
}

// NamingCollisionError reports two enabled operations resolved to the same
// identifier.
type NamingCollisionError struct {
	Table      string
	Name       string
	Operations [2]Operation
}

// Error implements the error interface.
func (e *NamingCollisionError) Error() string {
	return fmt.Sprintf("mapgen: naming collision on table %s: %s and %s both resolve to %q",
		e.Table, e.Operations[0], e.Operations[1], e.Name)
}

// Is reports whether the target matches the sentinel error for NamingCollisionError.
func (e *NamingCollisionError) Is(target error) bool {
	return target == ErrNamingCollision
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "interface", "provider", "document", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("mapgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsTableError reports whether the error is a TableError.
func IsTableError(err error) bool {
	var tableErr *TableError
	return errors.As(err, &tableErr)
}

// IsNamingCollisionError reports whether the error is a NamingCollisionError.
func IsNamingCollisionError(err error) bool {
	var nameErr *NamingCollisionError
	return errors.As(err, &nameErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
