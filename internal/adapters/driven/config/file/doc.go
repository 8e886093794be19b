// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data through an afero filesystem, which is the OS
// filesystem in production and an in-memory one in tests.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
package file
