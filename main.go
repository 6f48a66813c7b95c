// Completion: 100% - Entry point complete, all flags working
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
)

const versionString = "zenc 1.0.0"

// defaultOutputName is the artifact path used when -o is not given.
// ZENC_OUTPUT only changes this default; pragmas remain the sole
// configuration channel of the compiler core itself.
var defaultOutputName = env.Str("ZENC_OUTPUT", "output.s")

func main() {
	var (
		outputFlag      = flag.String("o", defaultOutputName, "output filename")
		outputLongFlag  = flag.String("output", defaultOutputName, "output filename")
		versionShort    = flag.Bool("V", false, "print version information and exit")
		versionLong     = flag.Bool("version", false, "print version information and exit")
		verboseFlag     = flag.Bool("v", false, "verbose mode (show token stream and phase transitions)")
		verboseLongFlag = flag.Bool("verbose", false, "verbose mode (show token stream and phase transitions)")
		quietFlag       = flag.Bool("q", false, "quiet mode (suppress diagnostics)")
		quietLongFlag   = flag.Bool("quiet", false, "quiet mode (suppress diagnostics)")
		watchFlag       = flag.Bool("watch", false, "watch mode: recompile on file changes")
	)
	flag.Parse()

	if *versionShort || *versionLong {
		fmt.Println(versionString)
		return
	}

	outputPath := *outputFlag
	if *outputLongFlag != defaultOutputName {
		outputPath = *outputLongFlag
	}

	err := RunCLI(
		flag.Args(),
		*verboseFlag || *verboseLongFlag,
		*quietFlag || *quietLongFlag,
		*watchFlag,
		outputPath,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
