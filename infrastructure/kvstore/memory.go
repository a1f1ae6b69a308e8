package kvstore

import "sync"

// MemoryStore é a implementação em memória do Store, usada tanto no wiring
// de produção quanto nos testes do rastreador de vendas em espera.
type MemoryStore struct {
	mu          sync.RWMutex
	values      map[string]string
	subscribers map[int]func(key string)
	nextSubID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:      make(map[string]string),
		subscribers: make(map[int]func(key string)),
	}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	s.notify(key)
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	s.notify(key)
}

func (s *MemoryStore) Subscribe(fn func(key string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// notify entrega o sinal de mudança de forma síncrona, fora do lock de
// escrita, para que os handlers possam reler o store sem deadlock.
func (s *MemoryStore) notify(key string) {
	s.mu.RLock()
	fns := make([]func(string), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(key)
	}
}
