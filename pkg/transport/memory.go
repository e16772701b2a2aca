package transport

import (
	"sync"
	"time"
)

// Record is one outgoing cookie captured by Memory.
type Record struct {
	Name       string
	Value      string
	Attributes Attributes
}

// Memory is an in-process cookie jar.
// Reads see seeded cookies and the latest write for each name.
type Memory struct {
	mu      sync.RWMutex
	cookies map[string]string
	writes  []Record
	now     func() time.Time
}

// NewMemory creates a jar seeded with incoming cookies.
func NewMemory(incoming map[string]string) *Memory {
	m := &Memory{
		cookies: make(map[string]string, len(incoming)),
		now:     time.Now,
	}
	for name, value := range incoming {
		m.cookies[name] = value
	}
	return m
}

// Read implements Transport.
func (m *Memory) Read(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.cookies[name]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Write implements Transport. A negative MaxAge or an Expires in the past
// removes the cookie from the jar, as a browser would.
func (m *Memory) Write(name, value string, attrs Attributes) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes = append(m.writes, Record{Name: name, Value: value, Attributes: attrs})

	expired := attrs.MaxAge < 0 || (!attrs.Expires.IsZero() && !attrs.Expires.After(m.now()))
	if expired {
		delete(m.cookies, name)
		return nil
	}

	m.cookies[name] = value
	return nil
}

// Records returns every recorded write in order.
func (m *Memory) Records() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record, len(m.writes))
	copy(out, m.writes)
	return out
}

// Last returns the most recent write for name.
func (m *Memory) Last(name string) (Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.writes) - 1; i >= 0; i-- {
		if m.writes[i].Name == name {
			return m.writes[i], true
		}
	}
	return Record{}, false
}
