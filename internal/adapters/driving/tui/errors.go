package tui

import "errors"

// ErrMissingCalculator is returned when the calculator is not provided.
var ErrMissingCalculator = errors.New("tui: calculator is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
