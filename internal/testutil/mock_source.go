package testutil

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/bahaa0627-dev/wanderlog/internal/simctl"
)

// MockSource implements simctl.Source for testing.
type MockSource struct {
	mu      sync.Mutex
	Devices []simctl.Device
	ListErr error
	// AddErr fails every AddMedia call. AddErrFiles fails only calls whose
	// path base matches a key.
	AddErr      error
	AddErrFiles map[string]error

	ListCalls  int
	AddCalls   int
	AddedPaths []string
}

var _ simctl.Source = (*MockSource)(nil)

func (m *MockSource) ListDevices(_ context.Context) ([]simctl.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	return m.Devices, m.ListErr
}

func (m *MockSource) AddMedia(_ context.Context, _ string, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls++
	m.AddedPaths = append(m.AddedPaths, path)
	if err, ok := m.AddErrFiles[filepath.Base(path)]; ok {
		return err
	}
	return m.AddErr
}
