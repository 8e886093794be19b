package driven

// DisplaySink receives every value the calculator emits for display.
type DisplaySink interface {
	// Show presents a display value. It must not call back into the engine.
	Show(value string)
}

// DisplayFunc adapts a plain function to DisplaySink.
type DisplayFunc func(value string)

// Show calls f(value).
func (f DisplayFunc) Show(value string) {
	f(value)
}
