package bridge

import "sync"

// ManualHeightSource is a hand-cranked HeightSource for tests and the
// simulated server.
type ManualHeightSource struct {
	mu     sync.Mutex
	height uint64
}

func NewManualHeightSource(start uint64) *ManualHeightSource {
	return &ManualHeightSource{height: start}
}

func (m *ManualHeightSource) CurrentHeight() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.height, nil
}

func (m *ManualHeightSource) Advance(n uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.height += n
}
