package usecase

import (
	"log"
	"sync"
	"time"

	"resume-builder/internal/model"
)

// Store is the durable local persistence for the serialized document: one
// named entry, read and written whole.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// Autosave debounces persistence of the document. Its window is independent
// of the preview's. Write failures are swallowed and logged; the user never
// sees them.
type Autosave struct {
	store Store

	mu      sync.Mutex
	pending *model.Document

	deb *debouncer
}

func NewAutosave(store Store, window time.Duration) *Autosave {
	a := &Autosave{store: store}
	a.deb = newDebouncer(window, a.flush)
	return a
}

// Schedule coalesces rapid calls so only the last document within the
// window is persisted.
func (a *Autosave) Schedule(doc *model.Document) {
	a.mu.Lock()
	a.pending = doc
	a.mu.Unlock()
	a.deb.Trigger()
}

func (a *Autosave) flush() {
	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	a.mu.Unlock()
	if doc == nil {
		return
	}
	data, err := doc.Serialize()
	if err != nil {
		log.Printf("autosave: serialize failed (non-fatal): %v", err)
		return
	}
	if err := a.store.Write(data); err != nil {
		log.Printf("autosave: write failed (non-fatal): %v", err)
	}
}

// Close cancels the timer. A pending write that has not settled is dropped,
// never fired after teardown.
func (a *Autosave) Close() {
	a.deb.Stop()
}
