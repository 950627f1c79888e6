package state

import (
	"sync"

	"github.com/goto/approvalflow/domain"
)

// State holds the connection state and operating mode shared by the sync components. One instance is
// owned by the orchestrator and injected into the components that read or change it.
type State struct {
	mu         sync.RWMutex
	connection domain.ConnectionState
	connErr    error
	mode       domain.OperatingMode
}

func New() *State {
	return &State{
		connection: domain.ConnectionStateDisconnected,
		mode:       domain.OperatingModeLive,
	}
}

func (s *State) Mode() domain.OperatingMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *State) IsDegraded() bool {
	return s.Mode() == domain.OperatingModeDegraded
}

// SetMode changes the operating mode and reports whether it actually changed.
func (s *State) SetMode(mode domain.OperatingMode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == mode {
		return false
	}
	s.mode = mode
	return true
}

// Connection returns the connection state and the error of the last failure, if any.
func (s *State) Connection() (domain.ConnectionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connection, s.connErr
}

func (s *State) IsConnected() bool {
	c, _ := s.Connection()
	return c == domain.ConnectionStateConnected
}

// SetConnection stores the connection state. err is kept only for the disconnected state.
func (s *State) SetConnection(c domain.ConnectionState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connection = c
	if c == domain.ConnectionStateDisconnected {
		s.connErr = err
	} else {
		s.connErr = nil
	}
}
