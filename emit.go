// Completion: 100% - Emitter complete, deterministic assembly text output
package main

import (
	"fmt"
	"os"
	"strings"
)

// EmitAssembly walks the final tables and produces the textual target
// artifact: a data section with one declaration per assigned binding in
// declaration order, a text section with one labeled stub per function
// (derived curried functions included), and a fixed exit sequence. The walk
// is deterministic and total; diagnostics never leak into these bytes.
func (cs *CompilerState) EmitAssembly() string {
	cs.phase = PhaseEmit

	var sb strings.Builder

	sb.WriteString(".section .data\n")
	for _, b := range cs.Symbols.Bindings() {
		if !b.Assigned {
			// Unassigned bindings are omitted, not zero-initialized
			continue
		}
		switch b.Type {
		case TypeNumber:
			fmt.Fprintf(&sb, "%s: .quad %f\n", b.Name, b.Num)
		case TypeString:
			fmt.Fprintf(&sb, "%s: .asciz %q\n", b.Name, b.Str)
		default:
			// Other types are skipped, never promoted to a numeric zero
		}
	}

	sb.WriteString("\n.section .text\n")
	sb.WriteString(".global _start\n\n")
	sb.WriteString("_start:\n")
	sb.WriteString("    # ZenLang compiled code\n")

	for _, fn := range cs.Funcs.Functions() {
		fmt.Fprintf(&sb, "\n%s:\n", fn.Name)
		fmt.Fprintf(&sb, "    # Function: %s\n", fn.Name)
		if fn.IsCurried {
			fmt.Fprintf(&sb, "    # Curried function (level %d)\n", fn.CurryLevel)
		}
		sb.WriteString("    ret\n")
	}

	sb.WriteString("\n    # Exit program\n")
	sb.WriteString("    mov $60, %rax\n")
	sb.WriteString("    mov $0, %rdi\n")
	sb.WriteString("    syscall\n")

	cs.phase = PhaseDone
	return sb.String()
}

// WriteAssembly emits the artifact to a file. Failure here is the one fatal
// condition of the pipeline; the caller aborts with a non-zero status.
func (cs *CompilerState) WriteAssembly(path string) error {
	if err := os.WriteFile(path, []byte(cs.EmitAssembly()), 0o644); err != nil {
		return UnwritableOutputError(path, err)
	}
	cs.diagf("Assembly code generated: %s", path)
	return nil
}
