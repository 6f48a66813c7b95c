// Completion: 100% - CLI complete
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
)

// cli.go - Command-line interface for zenc
//
// Subcommands:
// - zenc build <file.zen> [-o output.s]
// - zenc <file.zen> (shorthand for build)
// - zenc example (write example.zen to the current directory)
// - zenc repl (interactive declaration entry)
// - zenc help / zenc version

// CommandContext holds the execution context for a CLI command
type CommandContext struct {
	Args       []string
	Verbose    bool
	Quiet      bool
	Watch      bool
	OutputPath string
	UseColor   bool
}

// RunCLI determines which command to run based on arguments
func RunCLI(args []string, verbose, quiet, watch bool, outputPath string) error {
	ctx := &CommandContext{
		Args:       args,
		Verbose:    verbose,
		Quiet:      quiet,
		Watch:      watch,
		OutputPath: outputPath,
		UseColor:   !env.Bool("NO_COLOR"),
	}

	if len(args) == 0 {
		return cmdHelp(ctx)
	}

	switch subcmd := args[0]; subcmd {
	case "build":
		return cmdBuild(ctx, args[1:])

	case "example":
		return cmdExample(ctx)

	case "repl":
		return cmdREPL(ctx)

	case "help", "--help", "-h":
		return cmdHelp(ctx)

	case "version", "--version", "-V":
		fmt.Println(versionString)
		return nil

	default:
		// A .zen file is shorthand for build
		if strings.HasSuffix(subcmd, ".zen") {
			return cmdBuild(ctx, args)
		}
		return fmt.Errorf("unknown command: %s\n\nRun 'zenc help' for usage information", subcmd)
	}
}

// cmdBuild compiles a ZenLang source file to assembly text. The argument
// list is everything after the subcommand: flag.Parse stops at the first
// non-flag argument, so a trailing -o lands here and is picked up by hand.
func cmdBuild(ctx *CommandContext, args []string) error {
	inputFile := ""
	for i := 0; i < len(args); i++ {
		if (args[i] == "-o" || args[i] == "--output") && i+1 < len(args) {
			ctx.OutputPath = args[i+1]
			i++ // Skip the output filename
		} else if !strings.HasPrefix(args[i], "-") && inputFile == "" {
			inputFile = args[i]
		}
	}
	if inputFile == "" {
		return fmt.Errorf("usage: zenc build <file.zen> [-o output.s]")
	}

	if ctx.Watch {
		return watchAndCompile(ctx, inputFile)
	}
	return compileFile(ctx, inputFile)
}

// compileFile runs the full pipeline for one compilation unit
func compileFile(ctx *CommandContext, inputFile string) error {
	source, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("cannot open input file %s: %v", inputFile, err)
	}

	if !ctx.Quiet {
		fmt.Fprintf(os.Stderr, "----=[ %s ]=----\n", versionString)
		fmt.Fprintf(os.Stderr, "Compiling: %s\n\n", inputFile)
	}

	cs := NewCompilerState(inputFile)
	if ctx.Quiet {
		cs.SetDiagnostics(nullWriter{})
	}

	if ctx.Verbose {
		for _, tok := range TokenizeAll(string(source)) {
			fmt.Fprintf(os.Stderr, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Value)
		}
	}

	cs.Compile(string(source))

	if err := cs.WriteAssembly(ctx.OutputPath); err != nil {
		// UnwritableOutput is the one fatal error: abort non-zero
		if ce, ok := err.(CompilerError); ok {
			fmt.Fprint(os.Stderr, ce.Format(ctx.UseColor))
			return err
		}
		return err
	}

	if cs.Errors.ErrorCount() > 0 || cs.Errors.WarningCount() > 0 {
		fmt.Fprint(os.Stderr, cs.Errors.Report(ctx.UseColor))
	}
	if !ctx.Quiet {
		cs.PrintSummary()
	}
	return nil
}

// watchAndCompile recompiles the input whenever it changes on disk
func watchAndCompile(ctx *CommandContext, inputFile string) error {
	if err := compileFile(ctx, inputFile); err != nil {
		return err
	}

	fw, err := NewFileWatcher(func(path string) {
		fmt.Fprintf(os.Stderr, "\n%s changed, recompiling\n", path)
		if err := compileFile(ctx, inputFile); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	})
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.AddFile(inputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", inputFile)
	fw.Watch()
	return nil
}

// cmdExample writes the example program to the current directory
func cmdExample(ctx *CommandContext) error {
	const path = "example.zen"
	if err := WriteExampleProgram(path); err != nil {
		return err
	}
	if !ctx.Quiet {
		fmt.Printf("Created example program: %s\n", path)
		fmt.Println("Try: zenc example.zen")
	}
	return nil
}

// cmdHelp prints usage information
func cmdHelp(ctx *CommandContext) error {
	fmt.Println(versionString)
	fmt.Println("Usage: zenc [flags] <command|file.zen>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build <file.zen>   compile to assembly text")
	fmt.Println("  <file.zen>         shorthand for build")
	fmt.Println("  example            write example.zen to the current directory")
	fmt.Println("  repl               interactive declaration entry")
	fmt.Println("  version            print version information")
	fmt.Println("  help               this overview")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -o, --output       output filename (default " + defaultOutputName + ")")
	fmt.Println("  -v, --verbose      verbose diagnostics")
	fmt.Println("  -q, --quiet        suppress diagnostics")
	fmt.Println("      --watch        recompile on file changes")
	fmt.Println()
	fmt.Println("ZenLang features:")
	fmt.Println("  1. Immutable dynamic typing - bindings are write-once")
	fmt.Println("  2. Pragma-controlled syntax - #pragma braces / no-braces")
	fmt.Println("  3. Pattern matching - #pragma pattern-match")
	fmt.Println("  4. Auto-currying - #pragma auto-curry")
	fmt.Println("  5. Memory zones - zone fast (64KB)")
	return nil
}

// nullWriter swallows diagnostics in quiet mode
type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
