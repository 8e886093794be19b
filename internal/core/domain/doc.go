// Package domain defines the core calculator types for keycalc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Operator: The pending binary operation (add, subtract, multiply, divide, pow)
//   - Action: One logical keypad or keyboard action fed to the engine
//   - State: A snapshot of the engine's input buffer, operator and operand
//   - AppSettings: User configuration for the engine and front ends
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
