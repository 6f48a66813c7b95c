// Completion: 100% - Interactive mode complete
package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// cmdREPL reads declarations line by line against one live CompilerState
// and prints the emitted artifact on EOF. Piped input gets the same loop
// without the prompt.
func cmdREPL(ctx *CommandContext) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if interactive && !ctx.Quiet {
		fmt.Println(versionString + " interactive mode (Ctrl+D to emit and exit)")
	}

	cs := NewCompilerState("<repl>")
	if ctx.Quiet {
		cs.SetDiagnostics(nullWriter{})
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("zen> ")
		}
		if !scanner.Scan() {
			break
		}
		// Each line is walked against the same accumulated tables, so
		// immutability and zone accounting hold across the whole session.
		cs.Compile(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if interactive {
		fmt.Println()
	}
	fmt.Print(cs.EmitAssembly())
	if !ctx.Quiet {
		cs.PrintSummary()
	}
	return nil
}
