// Package services implements the driving port interfaces.
// Services contain the calculator logic and orchestrate
// calls to driven ports (display sinks, config stores).
//
// Services are pure Go with no CGO.
package services
