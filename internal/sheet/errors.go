package sheet

import "errors"

// Sentinel errors for cell store construction and mutation. Callers match
// them with errors.Is; the wrapped message names the offending cell.
var (
	// ErrDuplicateAddress indicates a cell address was defined twice.
	ErrDuplicateAddress = errors.New("duplicate cell address")

	// ErrUnknownAddress indicates a lookup or mutation of an address that
	// was never defined.
	ErrUnknownAddress = errors.New("unknown cell address")

	// ErrUnknownReference indicates a formula references an address that
	// does not exist in the store.
	ErrUnknownReference = errors.New("unknown cell reference")

	// ErrNotLiteral indicates an attempt to overwrite a formula cell's value.
	ErrNotLiteral = errors.New("cell is not a literal")

	// ErrCyclicDependency indicates the formula graph contains a cycle.
	ErrCyclicDependency = errors.New("cyclic cell dependency")

	// ErrTypeMismatch indicates a literal value of an unsupported type.
	ErrTypeMismatch = errors.New("literal type mismatch")

	// ErrSealed indicates a definition was attempted after Seal.
	ErrSealed = errors.New("store is sealed")

	// ErrNotSealed indicates evaluation was attempted before Seal.
	ErrNotSealed = errors.New("store is not sealed")
)
