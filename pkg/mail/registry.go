package mail

import "sync"

// ContentTypeProvider returns the content type for messages that do not
// carry one.
type ContentTypeProvider func() string

// ContentTypeRegistry holds named content-type providers. The most recently
// registered provider wins.
type ContentTypeRegistry struct {
	mu        sync.RWMutex
	providers map[string]ContentTypeProvider
	order     []string
}

// NewContentTypeRegistry creates an empty registry.
func NewContentTypeRegistry() *ContentTypeRegistry {
	return &ContentTypeRegistry{
		providers: make(map[string]ContentTypeProvider),
	}
}

// Register installs a provider under name. Registering an existing name
// replaces it and moves it to the top.
func (r *ContentTypeRegistry) Register(name string, p ContentTypeProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; ok {
		r.remove(name)
	}
	r.providers[name] = p
	r.order = append(r.order, name)
}

// Unregister removes the provider registered under name. It reports whether
// anything was removed; removing an unknown name is a no-op.
func (r *ContentTypeRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return false
	}
	r.remove(name)
	return true
}

// Registered reports whether a provider is installed under name.
func (r *ContentTypeRegistry) Registered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}

// Len returns the number of installed providers.
func (r *ContentTypeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Resolve returns the content type of the newest provider, or fallback when
// none is installed.
func (r *ContentTypeRegistry) Resolve(fallback string) string {
	if r == nil {
		return fallback
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return fallback
	}
	return r.providers[r.order[len(r.order)-1]]()
}

// remove deletes name; callers hold the write lock.
func (r *ContentTypeRegistry) remove(name string) {
	delete(r.providers, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
