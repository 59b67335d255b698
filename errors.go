package swaggen

import "fmt"

// UnhandledTypeError indicates that a DataType variant outside the
// closed sum reached the synthesizer's dispatch. This is an internal
// invariant violation and aborts the pass.
type UnhandledTypeError struct {
	Type DataType
}

// Error names the offending type.
func (e *UnhandledTypeError) Error() string {
	return fmt.Sprintf("swaggen: unhandled data type %T", e.Type)
}

// TypeNameCollisionError indicates two distinct named types sharing one
// name within a single generation target. Definitions are keyed by name,
// so this is a hard failure, never a silent overwrite.
type TypeNameCollisionError struct {
	Name string
}

// Error names the colliding type name.
func (e *TypeNameCollisionError) Error() string {
	return fmt.Sprintf("swaggen: duplicate definition for type %q", e.Name)
}

// OperationIDCollisionError indicates two routes resolving to the same
// operation id within one document.
type OperationIDCollisionError struct {
	OperationID string
	RouteA      string
	RouteB      string
}

// Error names both routes and the shared operation id.
func (e *OperationIDCollisionError) Error() string {
	return fmt.Sprintf("swaggen: routes %s and %s both resolve to operation id %q",
		e.RouteA, e.RouteB, e.OperationID)
}

// UnresolvedRefError indicates an IR file referencing a type name that
// is never declared.
type UnresolvedRefError struct {
	Name string
}

// Error names the missing type.
func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("swaggen: reference to undeclared type %q", e.Name)
}
