//go:build !linux

package gamepad

import "github.com/lixenwraith/inputmap/input"

// Manager is empty on platforms without evdev
type Manager struct{}

// Scan always fails with ErrUnsupported
func Scan(opts ...Option) (*Manager, error) {
	return nil, ErrUnsupported
}

// Rescan always fails with ErrUnsupported
func (m *Manager) Rescan() error {
	return ErrUnsupported
}

// Poll returns nothing
func (m *Manager) Poll() []input.Event {
	return nil
}

// Devices returns nothing
func (m *Manager) Devices() []Info {
	return nil
}

// Close is a no-op
func (m *Manager) Close() error {
	return nil
}
