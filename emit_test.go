package main

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func newTestState(t *testing.T) *CompilerState {
	t.Helper()
	cs := NewCompilerState("test.zen")
	cs.SetDiagnostics(io.Discard)
	return cs
}

// TestEmitDataSection tests that only assigned number and string bindings
// are emitted, in declaration order
func TestEmitDataSection(t *testing.T) {
	cs := newTestState(t)
	cs.Symbols.Declare("x", TypeNumber, 0)
	cs.Symbols.AssignNumber("x", 42)
	cs.Symbols.Declare("name", TypeString, 0)
	cs.Symbols.AssignString("name", "ZenLang")
	cs.Symbols.Declare("ghost", TypeNumber, 0) // never assigned
	cs.Symbols.Declare("obj", TypeObject, 0)   // unsupported type
	b, _ := cs.Symbols.Lookup("obj")
	b.Assigned = true

	out := cs.EmitAssembly()

	if !strings.HasPrefix(out, ".section .data\n") {
		t.Error("Artifact does not start with the data section")
	}
	if !strings.Contains(out, "x: .quad 42.000000\n") {
		t.Errorf("Missing numeric declaration:\n%s", out)
	}
	if !strings.Contains(out, `name: .asciz "ZenLang"`) {
		t.Errorf("Missing string declaration:\n%s", out)
	}
	if strings.Contains(out, "ghost") {
		t.Error("Unassigned binding was emitted")
	}
	if strings.Contains(out, "obj") {
		t.Error("Object-typed binding was emitted instead of skipped")
	}

	// Declaration order: x before name
	if strings.Index(out, "x: .quad") > strings.Index(out, "name: .asciz") {
		t.Error("Data section is not in declaration order")
	}
}

// TestEmitTextSection tests function stubs and the curry-level comment
func TestEmitTextSection(t *testing.T) {
	cs := newTestState(t)
	cs.Flags.AutoCurry = true
	add := &Function{Name: "add", Params: []string{"a", "b"}}
	cs.Funcs.Add(add)
	cs.Funcs.Curry(add, 1, cs.Flags)

	out := cs.EmitAssembly()

	if !strings.Contains(out, ".section .text\n") || !strings.Contains(out, ".global _start\n") {
		t.Error("Missing text section header")
	}
	if !strings.Contains(out, "\nadd:\n    # Function: add\n    ret\n") {
		t.Errorf("Missing add stub:\n%s", out)
	}
	if !strings.Contains(out, "\nadd_curried_1:\n    # Function: add_curried_1\n    # Curried function (level 1)\n    ret\n") {
		t.Errorf("Missing derived stub with curry comment:\n%s", out)
	}
}

// TestEmitExitSequence tests the fixed process-exit tail
func TestEmitExitSequence(t *testing.T) {
	cs := newTestState(t)
	out := cs.EmitAssembly()
	tail := "    # Exit program\n    mov $60, %rax\n    mov $0, %rdi\n    syscall\n"
	if !strings.HasSuffix(out, tail) {
		t.Errorf("Artifact does not end with the exit sequence:\n%s", out)
	}
}

// TestEmitDeterministic tests that emission is a pure function of table
// state
func TestEmitDeterministic(t *testing.T) {
	cs := newTestState(t)
	cs.Compile("let x = 1\nlet s = \"two\"\nfn f(a)")
	first := cs.EmitAssembly()
	second := cs.EmitAssembly()
	if first != second {
		t.Error("Two emissions of the same tables differ")
	}
}

// TestEmitEmptyUnit tests that an empty unit still produces a complete
// artifact
func TestEmitEmptyUnit(t *testing.T) {
	cs := newTestState(t)
	out := cs.EmitAssembly()
	for _, want := range []string{".section .data", ".section .text", ".global _start", "_start:", "syscall"} {
		if !strings.Contains(out, want) {
			t.Errorf("Empty-unit artifact missing %q", want)
		}
	}
}

// TestWriteAssembly tests writing the artifact to disk
func TestWriteAssembly(t *testing.T) {
	cs := newTestState(t)
	cs.Compile("let x = 7")

	path := filepath.Join(t.TempDir(), "out.s")
	if err := cs.WriteAssembly(path); err != nil {
		t.Fatalf("WriteAssembly failed: %v", err)
	}
	if cs.Phase() != PhaseDone {
		t.Errorf("Expected phase done after emission, got %s", cs.Phase())
	}
}

// TestWriteAssemblyUnwritable tests that an unwritable path is the fatal
// error kind
func TestWriteAssemblyUnwritable(t *testing.T) {
	cs := newTestState(t)
	err := cs.WriteAssembly(filepath.Join(t.TempDir(), "missing", "dir", "out.s"))
	if err == nil {
		t.Fatal("Expected error for unwritable output path")
	}
	ce, ok := err.(CompilerError)
	if !ok {
		t.Fatalf("Expected CompilerError, got %T", err)
	}
	if ce.Level != LevelFatal || ce.Category != CategoryEmit {
		t.Errorf("Expected fatal emit error, got %s/%s", ce.Level, ce.Category)
	}
}
