package mocks

import "sync"

// MockQueue is an in-memory MessageQueue that records published messages
// and dispatches them synchronously to subscribers.
type MockQueue struct {
	mu          sync.Mutex
	Published   map[string][][]byte
	handlers    map[string][]func(data []byte) error
	PublishFunc func(subject string, data []byte) error
}

func NewMockQueue() *MockQueue {
	return &MockQueue{
		Published: make(map[string][][]byte),
		handlers:  make(map[string][]func(data []byte) error),
	}
}

func (m *MockQueue) Publish(subject string, data []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(subject, data)
	}

	m.mu.Lock()
	m.Published[subject] = append(m.Published[subject], data)
	handlers := m.handlers[subject]
	m.mu.Unlock()

	for _, h := range handlers {
		if err := h(data); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockQueue) Subscribe(subject string, handler func(data []byte) error) error {
	m.mu.Lock()
	m.handlers[subject] = append(m.handlers[subject], handler)
	m.mu.Unlock()
	return nil
}

func (m *MockQueue) Close() error {
	return nil
}
