package tui

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// sessionJournal tracks one play session and writes it to the store exactly
// once, whichever way the session ends: quit key, program exit or a dropped
// SSH connection. It is shared by every copy of the Bubble Tea model.
type sessionJournal struct {
	store     *storage.Store
	sim       *arkanoid.Simulation
	user      string
	startedAt time.Time
	launched  atomic.Bool
	once      sync.Once
}

func newSessionJournal(sim *arkanoid.Simulation, store *storage.Store, user string) *sessionJournal {
	return &sessionJournal{
		store:     store,
		sim:       sim,
		user:      user,
		startedAt: time.Now(),
	}
}

func (j *sessionJournal) markLaunched() {
	j.launched.Store(true)
}

func (j *sessionJournal) session() storage.Session {
	return storage.Session{
		User:      j.user,
		Seed:      j.sim.Seed(),
		Ticks:     j.sim.Ticks(),
		BricksHit: j.sim.BricksHit(),
		Launched:  j.launched.Load(),
		StartedAt: j.startedAt,
		EndedAt:   time.Now(),
	}
}

// record saves the session on the first call; later calls do nothing.
func (j *sessionJournal) record() {
	j.once.Do(func() {
		if j.store == nil {
			return
		}
		if _, err := j.store.SaveSession(j.session()); err != nil {
			log.Warn("could not record session", "user", j.user, "error", err)
		}
	})
}
