// Completion: 100% - Function table and auto-currying specializer complete
package main

import (
	"strconv"
)

// Function is one entry in the function table. Curried derivations are
// ordinary entries: a derived function can itself be curried again, chaining
// from the most recent residual.
type Function struct {
	Name       string
	Params     []string
	IsCurried  bool
	CurryLevel int  // Number of arguments already bound
	UseBraces  bool // Brace style resolved from the pragma flags at declaration
}

// FunctionTable records functions in declaration order. Name lookups return
// the earliest declaration, matching the original linear-scan behavior.
type FunctionTable struct {
	byName map[string]*Function
	order  []*Function
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{byName: make(map[string]*Function)}
}

// Add appends a function. A later entry never shadows an earlier one with
// the same name.
func (ft *FunctionTable) Add(fn *Function) {
	if _, ok := ft.byName[fn.Name]; !ok {
		ft.byName[fn.Name] = fn
	}
	ft.order = append(ft.order, fn)
}

// Lookup finds a function by name
func (ft *FunctionTable) Lookup(name string) (*Function, bool) {
	fn, ok := ft.byName[name]
	return fn, ok
}

// Len returns the number of functions, derived entries included
func (ft *FunctionTable) Len() int {
	return len(ft.order)
}

// Functions returns all functions in declaration order
func (ft *FunctionTable) Functions() []*Function {
	return ft.order
}

// CurriedName builds the deterministic name for a derivation of origin with
// provided arguments bound: origin_curried_N. Distinct curry points on the
// same origin get distinct names.
func CurriedName(origin string, provided int) string {
	return origin + "_curried_" + strconv.Itoa(provided)
}

// Curry derives a partially-applied function from fn with the first provided
// parameters bound, registers it in the table, and returns it. It returns
// nil when provided covers the full parameter list (a full application is
// not this component's business) or when auto-currying is disabled.
func (ft *FunctionTable) Curry(fn *Function, provided int, flags *Pragmas) *Function {
	if !flags.AutoCurry {
		return nil
	}
	if provided < 0 || provided >= len(fn.Params) {
		return nil
	}
	curried := &Function{
		Name:       CurriedName(fn.Name, provided),
		Params:     append([]string(nil), fn.Params[provided:]...),
		IsCurried:  true,
		CurryLevel: provided,
		UseBraces:  fn.UseBraces,
	}
	ft.Add(curried)
	return curried
}
