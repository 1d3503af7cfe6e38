package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockPropertySink mocks the domain.PropertySink interface
type MockPropertySink struct {
	mock.Mock
}

// Set records the property write
func (m *MockPropertySink) Set(name, value string) {
	m.Called(name, value)
}

// NewRecordingSink returns a MockPropertySink that accepts any write
func NewRecordingSink() *MockPropertySink {
	m := &MockPropertySink{}
	m.On("Set", mock.Anything, mock.Anything).Return()
	return m
}

// Writes returns the (name, value) pairs passed to Set, in call order
func (m *MockPropertySink) Writes() [][2]string {
	var out [][2]string
	for _, call := range m.Calls {
		if call.Method != "Set" {
			continue
		}
		out = append(out, [2]string{call.Arguments.String(0), call.Arguments.String(1)})
	}
	return out
}

// Values returns the final value of every written property
func (m *MockPropertySink) Values() map[string]string {
	out := map[string]string{}
	for _, w := range m.Writes() {
		out[w[0]] = w[1]
	}
	return out
}
