package mapgen

import (
	"fmt"

	"gridforge/pkg/engine/grid"
)

// ConfigError reports a required collaborator or resource missing from a
// command's configuration: no kernel, no rule, no noise source.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// MissingFieldError reports a named source field absent from the grid.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q not found on data grid", e.Field)
}

// TypeMismatchError reports a command applied to a field of the wrong
// category.
type TypeMismatchError struct {
	Field string
	Want  string
	Got   grid.FieldKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q is a %s field, want %s", e.Field, e.Got, e.Want)
}

// DomainError reports a configuration value outside its valid domain,
// such as an Initialize size below 1 or an empty required list.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }
