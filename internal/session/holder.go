package session

import (
	"net/http"
	"sync"
)

// Holder is the auth state for one request. It is hydrated once from the
// store; Login and Logout update both the in-request copy and the store.
type Holder struct {
	mu      sync.RWMutex
	store   Store
	current *Session
	loaded  bool
}

func NewHolder(store Store) *Holder {
	return &Holder{store: store}
}

// Hydrate loads the persisted session. Only the first call reads the store.
// An unreadable session hydrates as signed out and the error is returned for
// logging.
func (h *Holder) Hydrate(r *http.Request) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.loaded {
		return nil
	}
	h.loaded = true

	s, err := h.store.Load(r)
	if err != nil {
		h.current = nil
		return err
	}
	if s != nil && s.Valid() {
		h.current = s
	}
	return nil
}

func (h *Holder) Loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loaded
}

// Current returns the signed-in session, if any.
func (h *Holder) Current() (Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return Session{}, false
	}
	return *h.current, true
}

// Token is the bearer token for backend calls, or "".
func (h *Holder) Token() string {
	s, _ := h.Current()
	return s.AccessToken
}

func (h *Holder) Login(w http.ResponseWriter, r *http.Request, s Session) error {
	if err := h.store.Save(w, r, s); err != nil {
		return err
	}
	h.mu.Lock()
	h.current = &s
	h.loaded = true
	h.mu.Unlock()
	return nil
}

func (h *Holder) Logout(w http.ResponseWriter, r *http.Request) error {
	h.mu.Lock()
	h.current = nil
	h.loaded = true
	h.mu.Unlock()
	return h.store.Clear(w, r)
}
