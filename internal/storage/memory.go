package storage

// Memory is an in-process slot store. Values are lost when the process exits.
// Used when the database cannot be opened and in tests.
type Memory struct {
	slots map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

// GetSlot returns the value stored under key.
func (m *Memory) GetSlot(key string) (string, bool, error) {
	v, ok := m.slots[key]
	return v, ok, nil
}

// SetSlot stores value under key.
func (m *Memory) SetSlot(key, value string) error {
	m.slots[key] = value
	return nil
}
