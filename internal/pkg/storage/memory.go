package storage

// MemoryStore is the in-memory fallback used when no backend is reachable,
// and the backing store for tests. Data lives only for the session.
type MemoryStore struct {
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Available() bool {
	return true
}
