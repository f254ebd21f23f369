package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	current := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newTestRegistry := func() *Registry {
		r := NewRegistry(30 * time.Minute)
		r.now = func() time.Time { return current }
		return r
	}

	t.Run("Wizard Is Owned By Its Client", func(t *testing.T) {
		r := newTestRegistry()
		id, err := r.Create("client-a", nil)
		require.NoError(t, err)

		assert.NoError(t, r.With("client-a", id, func(w *Wizard) error { return nil }))
		assert.ErrorIs(t, r.With("client-b", id, func(w *Wizard) error { return nil }), ErrWizardNotFound)
		assert.False(t, r.Delete("client-b", id))
		assert.True(t, r.Delete("client-a", id))
		assert.ErrorIs(t, r.With("client-a", id, func(w *Wizard) error { return nil }), ErrWizardNotFound)
	})

	t.Run("Transfer Moves Ownership", func(t *testing.T) {
		r := newTestRegistry()
		first, _ := r.Create("client-a", nil)
		second, _ := r.Create("client-a", nil)
		other, _ := r.Create("client-c", nil)

		assert.Equal(t, 2, r.Transfer("client-a", "client-b"))
		assert.ErrorIs(t, r.With("client-a", first, func(w *Wizard) error { return nil }), ErrWizardNotFound)
		assert.NoError(t, r.With("client-b", first, func(w *Wizard) error { return nil }))
		assert.NoError(t, r.With("client-b", second, func(w *Wizard) error { return nil }))
		assert.NoError(t, r.With("client-c", other, func(w *Wizard) error { return nil }))
	})

	t.Run("Idle Wizards Are Swept", func(t *testing.T) {
		r := newTestRegistry()
		idle, _ := r.Create("client-a", nil)
		active, _ := r.Create("client-a", nil)

		current = current.Add(20 * time.Minute)
		require.NoError(t, r.With("client-a", active, func(w *Wizard) error { return nil }))

		current = current.Add(15 * time.Minute)
		assert.Equal(t, 1, r.Sweep())
		assert.Equal(t, 1, r.Len())
		assert.ErrorIs(t, r.With("client-a", idle, func(w *Wizard) error { return nil }), ErrWizardNotFound)
		assert.NoError(t, r.With("client-a", active, func(w *Wizard) error { return nil }))
	})

	t.Run("Expired Wizard Is Missing Before Sweep", func(t *testing.T) {
		r := newTestRegistry()
		id, _ := r.Create("client-a", nil)
		current = current.Add(31 * time.Minute)
		assert.ErrorIs(t, r.With("client-a", id, func(w *Wizard) error { return nil }), ErrWizardNotFound)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("Run Stops With Context", func(t *testing.T) {
		r := newTestRegistry()
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			r.Run(ctx, time.Millisecond, nil)
			close(done)
		}()
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not stop after cancel")
		}
	})
}
