package domain

import "context"

// PropertySink receives extracted properties. A later Set for the same name
// replaces the earlier value.
type PropertySink interface {
	Set(name, value string)
}

// Runner launches an external command and returns its standard output
type Runner interface {
	// Run executes name with args in dir, waits for it to exit and returns
	// stdout split into lines. A non-zero exit status is not an error.
	Run(ctx context.Context, dir, name string, args ...string) ([]string, error)
}

// PropertySinkFunc adapts a function to PropertySink
type PropertySinkFunc func(name, value string)

// Set calls f(name, value)
func (f PropertySinkFunc) Set(name, value string) {
	f(name, value)
}
