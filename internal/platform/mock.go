package platform

import "sync"

// MockProvider is a test implementation of the Provider interface that
// records shutdown invocations instead of touching the host.
type MockProvider struct {
	directive string
	err       error
	calls     int
	mu        sync.Mutex
}

// NewMockProvider creates a MockProvider reporting the given directive.
func NewMockProvider(directive string) *MockProvider {
	return &MockProvider{directive: directive}
}

// SetError sets the error that Shutdown will return.
func (m *MockProvider) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Shutdown records the invocation and returns the configured error.
func (m *MockProvider) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.err
}

// Directive returns the configured directive string.
func (m *MockProvider) Directive() string {
	return m.directive
}

// Calls returns how many times Shutdown has been invoked.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
