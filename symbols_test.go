package main

import (
	"errors"
	"fmt"
	"testing"
)

// TestDeclareAndAssign tests the basic write-once lifecycle
func TestDeclareAndAssign(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Declare("x", TypeNumber, 0); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	b, ok := st.Lookup("x")
	if !ok {
		t.Fatal("Lookup failed after Declare")
	}
	if b.Assigned {
		t.Error("Fresh binding should be unassigned")
	}

	if err := st.AssignNumber("x", 42); err != nil {
		t.Fatalf("AssignNumber failed: %v", err)
	}
	if !b.Assigned || b.Num != 42 {
		t.Errorf("Expected x = 42 assigned, got %v %f", b.Assigned, b.Num)
	}
}

// TestImmutableRebind tests that re-declaring an assigned name fails
// without mutating the table, and a second assign is rejected
func TestImmutableRebind(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("x", TypeNumber, 0)
	st.AssignNumber("x", 1)

	err := st.Declare("x", TypeString, 0)
	if !errors.Is(err, ErrImmutableRebind) {
		t.Fatalf("Expected ErrImmutableRebind, got %v", err)
	}

	err = st.AssignNumber("x", 2)
	if !errors.Is(err, ErrImmutableRebind) {
		t.Fatalf("Expected second assign to be rejected, got %v", err)
	}

	b, _ := st.Lookup("x")
	if b.Num != 1 {
		t.Errorf("Rebind changed the value: got %f, want 1", b.Num)
	}
	if b.Type != TypeNumber {
		t.Errorf("Rejected declaration changed the type: %s", b.Type)
	}
	if st.Len() != 1 {
		t.Errorf("Rejected declaration grew the table: %d", st.Len())
	}
}

// TestPlaceholderReuse tests that an unassigned binding can be re-declared
func TestPlaceholderReuse(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("x", TypeNumber, 0)
	if err := st.Declare("x", TypeString, 1); err != nil {
		t.Fatalf("Re-declaring an unassigned placeholder failed: %v", err)
	}
	b, _ := st.Lookup("x")
	if b.Type != TypeString || b.Zone != 1 {
		t.Errorf("Placeholder not updated: type=%s zone=%d", b.Type, b.Zone)
	}
	if st.Len() != 1 {
		t.Errorf("Placeholder reuse grew the table: %d", st.Len())
	}
}

// TestTableSizeCountsDistinctNames tests that the table size equals the
// number of distinct names regardless of rejected re-declarations
func TestTableSizeCountsDistinctNames(t *testing.T) {
	st := NewSymbolTable()
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("v%d", i)
		st.Declare(name, TypeNumber, 0)
		st.AssignNumber(name, float64(i))
	}
	// Attempt a pile of rejected re-declarations
	for i := 0; i < 5; i++ {
		for j := 0; j < 3; j++ {
			st.Declare(fmt.Sprintf("v%d", i), TypeString, 0)
		}
	}
	if st.Len() != 5 {
		t.Errorf("Expected 5 distinct names, got %d", st.Len())
	}
}

// TestAssignUndeclared tests that assigning a name that was never declared
// is an error
func TestAssignUndeclared(t *testing.T) {
	st := NewSymbolTable()
	if err := st.AssignNumber("ghost", 1); err == nil {
		t.Error("Expected error assigning undeclared name")
	}
	if err := st.AssignString("ghost", "boo"); err == nil {
		t.Error("Expected error assigning undeclared name")
	}
}

// TestBindingsPreserveDeclarationOrder tests iteration order for emission
func TestBindingsPreserveDeclarationOrder(t *testing.T) {
	st := NewSymbolTable()
	names := []string{"zulu", "alpha", "mike"}
	for _, name := range names {
		st.Declare(name, TypeNumber, 0)
	}
	got := st.Bindings()
	if len(got) != len(names) {
		t.Fatalf("Expected %d bindings, got %d", len(names), len(got))
	}
	for i, name := range names {
		if got[i].Name != name {
			t.Errorf("Binding %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

// TestBindingValue tests the textual representation the matcher sees
func TestBindingValue(t *testing.T) {
	tests := []struct {
		name     string
		binding  Binding
		expected string
	}{
		{"integer", Binding{Type: TypeNumber, Num: 42}, "42"},
		{"float", Binding{Type: TypeNumber, Num: 3.5}, "3.5"},
		{"string", Binding{Type: TypeString, Str: "hello"}, "hello"},
		{"undefined", Binding{Type: TypeUndefined}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Value(); got != tt.expected {
				t.Errorf("Value() = %q, want %q", got, tt.expected)
			}
		})
	}
}
