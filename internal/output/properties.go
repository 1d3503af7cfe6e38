package output

import (
	"github.com/magiconair/properties"
)

// Properties is an in-memory property store that keeps keys in the order
// they were first set. It implements domain.PropertySink.
type Properties struct {
	props *properties.Properties
}

// NewProperties creates an empty store
func NewProperties() *Properties {
	p := properties.NewProperties()
	// Values are stored verbatim; "${...}" in VCS output is not a reference.
	p.DisableExpansion = true
	return &Properties{props: p}
}

// Set stores value under name, replacing any earlier value
func (p *Properties) Set(name, value string) {
	// With expansion disabled Set cannot fail.
	_, _, _ = p.props.Set(name, value)
}

// Get returns the value stored under name
func (p *Properties) Get(name string) (string, bool) {
	return p.props.Get(name)
}

// Keys returns the property names in insertion order
func (p *Properties) Keys() []string {
	return p.props.Keys()
}

// Map returns a copy of all properties
func (p *Properties) Map() map[string]string {
	return p.props.Map()
}

// Len returns the number of properties
func (p *Properties) Len() int {
	return p.props.Len()
}
