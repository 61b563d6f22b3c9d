package composer

import "sync"

// Registry holds one Composer per console session. Carts exist only
// here, in process memory, for the duration of composing one sale.
type Registry struct {
	mu    sync.RWMutex
	carts map[string]*Composer
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Composer)}
}

// Get returns the session's composer, creating it on first use.
func (r *Registry) Get(sessionID string) *Composer {
	r.mu.RLock()
	c, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.carts[sessionID]; ok {
		return c
	}
	c = New()
	r.carts[sessionID] = c
	return c
}

// Drop discards the session's composer, if any.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
