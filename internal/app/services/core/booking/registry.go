package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrWizardNotFound = errors.New("booking wizard not found")

type registryEntry struct {
	mu     sync.Mutex
	wizard *Wizard
	// guarded by Registry.mu
	clientID string
	lastSeen time.Time
}

// Registry keeps the live wizards in memory, each owned by one client.
// Wizards idle for longer than idleTimeout are dropped as abandoned.
type Registry struct {
	mu          sync.Mutex
	entries     map[string]*registryEntry
	idleTimeout time.Duration
	now         func() time.Time
}

func NewRegistry(idleTimeout time.Duration) *Registry {
	return &Registry{
		entries:     make(map[string]*registryEntry),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Create registers a new wizard after fn prepared it. Nothing is registered
// when fn fails.
func (r *Registry) Create(clientID string, fn func(w *Wizard) error) (string, error) {
	wizard := NewWizard()
	if fn != nil {
		if err := fn(wizard); err != nil {
			return "", err
		}
	}

	id := uuid.NewString()
	r.mu.Lock()
	r.entries[id] = &registryEntry{
		clientID: clientID,
		wizard:   wizard,
		lastSeen: r.now(),
	}
	r.mu.Unlock()
	return id, nil
}

// With runs fn while holding the wizard's lock. A wizard owned by another
// client is reported as missing.
func (r *Registry) With(clientID, id string, fn func(w *Wizard) error) error {
	r.mu.Lock()
	entry, ok := r.entries[id]
	if ok && r.expired(entry) {
		delete(r.entries, id)
		ok = false
	}
	owned := ok && entry.clientID == clientID
	if owned {
		entry.lastSeen = r.now()
	}
	r.mu.Unlock()

	if !owned {
		return ErrWizardNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.wizard)
}

func (r *Registry) Delete(clientID, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok || entry.clientID != clientID {
		return false
	}
	delete(r.entries, id)
	return true
}

// Transfer hands every live wizard owned by from over to to and returns how
// many moved.
func (r *Registry) Transfer(from, to string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	moved := 0
	for id, entry := range r.entries {
		if entry.clientID != from {
			continue
		}
		if r.expired(entry) {
			delete(r.entries, id)
			continue
		}
		entry.clientID = to
		moved++
	}
	return moved
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep evicts idle wizards and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.entries {
		if r.expired(entry) {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

// Run sweeps on every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration, onSweep func(evicted int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted := r.Sweep()
			if onSweep != nil {
				onSweep(evicted)
			}
		}
	}
}

// expired must be called with r.mu held.
func (r *Registry) expired(entry *registryEntry) bool {
	if r.idleTimeout <= 0 {
		return false
	}
	return r.now().Sub(entry.lastSeen) > r.idleTimeout
}
