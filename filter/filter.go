package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/stayscan/stayscan/ihg"
)

// Filter is a compiled boolean expression evaluated against area price
// entries, e.g. `Cash != nil && Cash < 150` or `Points == nil`.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match evaluates the filter against one entry.
func (f *Filter) Match(entry ihg.AreaPriceEntry) (bool, error) {
	result, err := expr.Run(f.program, environment(entry))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			HotelCode:  entry.HotelCode,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			HotelCode:  entry.HotelCode,
			Reason:     "expression did not produce a boolean",
		}
	}
	return matched, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expression
}

// environment flattens an entry into the variables visible to expressions.
// Nil prices stay nil so expressions can test for missing availability.
func environment(entry ihg.AreaPriceEntry) map[string]any {
	env := map[string]any{
		"Code":     entry.HotelCode,
		"Name":     entry.Name,
		"Currency": entry.Currency,
		"Cash":     nil,
		"Points":   nil,
	}
	if entry.CashPrice != nil {
		env["Cash"] = *entry.CashPrice
	}
	if entry.Points != nil {
		env["Points"] = *entry.Points
	}
	return env
}
