// Package dispatch turns classifier hits into the configured action: a log
// event in test mode, a host shutdown in live mode.
package dispatch

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arunvm/birdwatch/internal/platform"
)

// Event records one detection. Events live in memory only and exist so
// tests and the preview log can correlate detections.
type Event struct {
	ID   string
	Time time.Time
	Live bool
}

// Dispatcher handles detection events according to the mode flag set at
// startup. The flag is immutable after construction.
type Dispatcher struct {
	live     bool
	provider platform.Provider // nil when the OS is unsupported

	mu     sync.Mutex
	events []Event
}

// New creates a Dispatcher. In live mode the provider issues the host
// shutdown; a nil provider means the OS is unsupported and live-mode
// detections log an error instead.
func New(live bool, provider platform.Provider) *Dispatcher {
	return &Dispatcher{
		live:     live,
		provider: provider,
	}
}

// Live reports whether the dispatcher runs with real OS side effects.
func (d *Dispatcher) Live() bool {
	return d.live
}

// HandleDetection processes one classifier hit.
//
// Test mode logs the event and returns. Live mode logs the event and issues
// the shutdown directive; when no directive exists for this OS it logs an
// error and takes no further action. In every mode the event is recorded
// before any side effect.
func (d *Dispatcher) HandleDetection() error {
	ev := Event{
		ID:   uuid.NewString(),
		Time: time.Now(),
		Live: d.live,
	}

	d.mu.Lock()
	d.events = append(d.events, ev)
	d.mu.Unlock()

	if !d.live {
		log.Printf("[EVENT] Middle finger detected (test mode) event=%s", ev.ID)
		return nil
	}

	log.Printf("[EVENT] Middle finger detected, shutting down... event=%s", ev.ID)

	if d.provider == nil {
		log.Println("[ERROR] Unsupported OS, cannot shutdown")
		return nil
	}

	if err := d.provider.Shutdown(); err != nil {
		return fmt.Errorf("shutdown dispatch: %w", err)
	}

	return nil
}

// Events returns a copy of the recorded detection events.
func (d *Dispatcher) Events() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	events := make([]Event, len(d.events))
	copy(events, d.events)
	return events
}
