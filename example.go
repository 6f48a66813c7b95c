// Completion: 100% - Example program scaffold complete
package main

import (
	"os"
)

// exampleProgram demonstrates every ZenLang feature this compiler handles
const exampleProgram = `# ZenLang Example Program
#pragma braces
#pragma pattern-match
#pragma auto-curry

# Memory zone for fast calculations
zone fast_math (64KB)

# Immutable variables - once assigned, cannot change
let x = 42
let name = "ZenLang"
let pi = 3.14159

# Bindings can be charged against a named zone
let cached @fast_math = 1000

# Function with auto-currying support
fn add(a, b) {
    return a + b
}

fn multiply(a, b, c) {
    return a * b * c
}

# Partial application derives multiply_curried_1
curry multiply 1

# Pattern matching on a binding's value
match name {
    case "ZenLang" => "Processing ZenLang"
    case "number" => "Processing number"
    case * => "Unknown type"
}
`

// WriteExampleProgram writes example.zen so new users have something to
// compile right away.
func WriteExampleProgram(path string) error {
	return os.WriteFile(path, []byte(exampleProgram), 0o644)
}
