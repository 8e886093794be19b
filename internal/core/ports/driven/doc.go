// Package driven defines interfaces the calculator core uses to reach the
// outside world. These are the "driven" ports in hexagonal architecture
// terminology - the application drives them.
//
// Implementations live in internal/adapters/driven.
package driven
