package usecase

import (
	"log"
	"sync"

	"resume-builder/internal/model"
)

// Session owns the document for one editing lifetime. It is the single
// writer; autosave and preview receive read-only snapshots and subscribe
// independently to edits.
type Session struct {
	mu  sync.Mutex
	doc *model.Document

	autosave *Autosave
	preview  *PreviewEngine
}

// NewSession loads the persisted document, or falls back silently to the
// default when the entry is absent or fails validation. Availability wins
// over correctness feedback here: the user starts from a blank resume
// instead of an error.
func NewSession(store Store, autosave *Autosave, preview *PreviewEngine) *Session {
	doc := model.DefaultDocument()
	data, err := store.Read()
	if err != nil {
		log.Printf("session: no persisted resume, starting from default: %v", err)
	} else if parsed, perr := model.ParseDocument(data); perr != nil {
		log.Printf("session: persisted resume failed validation, starting from default: %v", perr)
	} else {
		doc = parsed
	}

	s := &Session{doc: doc, autosave: autosave, preview: preview}
	preview.Submit(doc)
	return s
}

// Document returns the current snapshot. Callers must treat it as
// read-only.
func (s *Session) Document() *model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Apply validates a full serialized document and, when valid, replaces the
// current one and notifies the subscribers. Validation failures leave the
// document untouched.
func (s *Session) Apply(raw []byte) error {
	doc, err := model.ParseDocument(raw)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	s.autosave.Schedule(doc)
	s.preview.Submit(doc)
	return nil
}

// Close cancels both subscribers' timers.
func (s *Session) Close() {
	s.autosave.Close()
	s.preview.Close()
}
