package mocks

import (
	"errors"
	"sync"

	"github.com/phrazzld/tasks-api/internal/service/auth"
)

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
// By default a password matches a hash of the form "hashed:<password>",
// which is what MockUserStore.Create stores.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error

	mu                sync.Mutex
	compareCalls      int
	compareDummyCalls int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.mu.Lock()
	m.compareCalls++
	m.mu.Unlock()

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// CompareDummy implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) CompareDummy(string) {
	m.mu.Lock()
	m.compareDummyCalls++
	m.mu.Unlock()
}

// Calls returns how many times Compare and CompareDummy were called.
func (m *MockPasswordVerifier) Calls() (compare, dummy int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compareCalls, m.compareDummyCalls
}
