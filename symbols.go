// Completion: 100% - Write-once symbol table complete
package main

import (
	"errors"
	"fmt"
	"strconv"
)

// ValueType tags a binding's dynamic type
type ValueType int

const (
	TypeUndefined ValueType = iota
	TypeNumber
	TypeString
	TypeFunction
	TypeObject
	TypePattern
)

func (t ValueType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeFunction:
		return "function"
	case TypeObject:
		return "object"
	case TypePattern:
		return "pattern"
	default:
		return "undefined"
	}
}

var ErrImmutableRebind = errors.New("variable is already assigned and cannot be changed (immutable)")

// Binding is one name-to-value association. Once Assigned flips to true the
// binding can never be re-declared or re-assigned for the rest of the unit.
type Binding struct {
	Name     string
	Type     ValueType
	Num      float64
	Str      string
	Assigned bool
	Zone     int    // Zone id the binding's storage is charged against
	Pattern  string // Last match result recorded for this binding, if any
}

// Value returns the textual representation of the binding's value, which is
// what the pattern matcher compares literals against.
func (b *Binding) Value() string {
	switch b.Type {
	case TypeNumber:
		return strconv.FormatFloat(b.Num, 'f', -1, 64)
	case TypeString:
		return b.Str
	default:
		return ""
	}
}

// SymbolTable records variable bindings for one compilation unit. Lookups go
// through a name-keyed map; iteration for emission follows declaration order.
type SymbolTable struct {
	byName map[string]*Binding
	order  []*Binding
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Binding)}
}

// Declare creates a binding for name, or reuses an existing unassigned
// placeholder. Declaring over an assigned binding fails with
// ErrImmutableRebind and performs no mutation at all.
func (st *SymbolTable) Declare(name string, t ValueType, zone int) error {
	if existing, ok := st.byName[name]; ok {
		if existing.Assigned {
			return fmt.Errorf("%w: %q", ErrImmutableRebind, name)
		}
		existing.Type = t
		existing.Zone = zone
		return nil
	}
	b := &Binding{Name: name, Type: t, Zone: zone}
	st.byName[name] = b
	st.order = append(st.order, b)
	return nil
}

// AssignNumber sets a concrete numeric value. This is the only transition
// from unassigned to assigned, and it is one-directional.
func (st *SymbolTable) AssignNumber(name string, v float64) error {
	b, err := st.assignable(name)
	if err != nil {
		return err
	}
	b.Type = TypeNumber
	b.Num = v
	b.Assigned = true
	return nil
}

// AssignString sets a concrete string value
func (st *SymbolTable) AssignString(name, s string) error {
	b, err := st.assignable(name)
	if err != nil {
		return err
	}
	b.Type = TypeString
	b.Str = s
	b.Assigned = true
	return nil
}

func (st *SymbolTable) assignable(name string) (*Binding, error) {
	b, ok := st.byName[name]
	if !ok {
		return nil, fmt.Errorf("cannot assign undeclared variable %q", name)
	}
	if b.Assigned {
		return nil, fmt.Errorf("%w: %q", ErrImmutableRebind, name)
	}
	return b, nil
}

// Lookup finds a binding by name
func (st *SymbolTable) Lookup(name string) (*Binding, bool) {
	b, ok := st.byName[name]
	return b, ok
}

// Len returns the number of distinct declared names
func (st *SymbolTable) Len() int {
	return len(st.order)
}

// Bindings returns all bindings in declaration order
func (st *SymbolTable) Bindings() []*Binding {
	return st.order
}
