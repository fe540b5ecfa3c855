// Package eval defines the injected expression-evaluator collaborator.
// An expression is compiled once per command invocation and then run once
// per voxel against a fixed set of named scalar inputs, so evaluation is
// the dominant cost of most commands. The common accumulator and result
// rules have compiled fast paths that skip the interpreter entirely.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Program is a compiled scalar expression. Eval must be a pure function
// of its inputs and returns one scalar (int, float or bool).
type Program interface {
	Eval(inputs map[string]any) (any, error)
}

// Evaluator compiles expression strings into programs.
type Evaluator interface {
	Compile(src string) (Program, error)
}

// Default returns the standard expression evaluator.
func Default() Evaluator { return ExprLang{} }

// ExprLang compiles expressions with the expr language. Undefined
// variables are allowed at compile time because the input set is only
// known per voxel.
type ExprLang struct{}

// Compile parses and compiles an expression string.
func (ExprLang) Compile(src string) (Program, error) {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return exprProgram{prog: prog}, nil
}

type exprProgram struct {
	prog *vm.Program
}

func (p exprProgram) Eval(inputs map[string]any) (any, error) {
	return expr.Run(p.prog, inputs)
}

// ProgramFunc adapts a plain function to the Program interface.
type ProgramFunc func(inputs map[string]any) (any, error)

// Eval calls the wrapped function.
func (f ProgramFunc) Eval(inputs map[string]any) (any, error) { return f(inputs) }

// Sum is the default numeric accumulator, equivalent to "acc + this".
func Sum() Program {
	return ProgramFunc(func(in map[string]any) (any, error) {
		acc, err := AsFloat(in["acc"])
		if err != nil {
			return nil, err
		}
		this, err := AsFloat(in["this"])
		if err != nil {
			return nil, err
		}
		return acc + this, nil
	})
}

// Or is the default boolean accumulator, equivalent to "acc or this".
func Or() Program {
	return ProgramFunc(func(in map[string]any) (any, error) {
		acc, err := AsBool(in["acc"])
		if err != nil {
			return nil, err
		}
		this, err := AsBool(in["this"])
		if err != nil {
			return nil, err
		}
		return acc || this, nil
	})
}

// Replace is the default cellular-automaton result rule, equivalent to
// "sum": the accumulated value replaces the prior state.
func Replace() Program {
	return ProgramFunc(func(in map[string]any) (any, error) {
		return in["sum"], nil
	})
}

// AsInt coerces an evaluation result to int64.
func AsInt(v any) (int64, error) {
	switch v := v.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("expression returned %T, want integer", v)
	}
}

// AsFloat coerces an evaluation result to float64.
func AsFloat(v any) (float64, error) {
	switch v := v.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("expression returned %T, want float", v)
	}
}

// AsBool coerces an evaluation result to bool. Numbers are true when
// non-zero.
func AsBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("expression returned %T, want bool", v)
	}
}
