package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/pkg/pdfs"
)

// Renderer encodes a printable HTML page into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Viewer is the external page rasterizer the preview hands encoded
// documents to. It reports the page count of what it displayed.
type Viewer interface {
	Display(pdf []byte, page int, width int) (pageCount int, err error)
}

// ArtifactStore receives best-effort copies of encoded documents.
type ArtifactStore interface {
	SaveArtifact(pdf []byte) (string, error)
}

type PreviewState int

const (
	StateIdle PreviewState = iota
	StateRendering
	StateDisplaying
)

// Viewport width bounds in logical units.
const (
	minViewportWidth = 200
	maxViewportWidth = 450
)

const encodeAttempts = 3

// PreviewEngine keeps an on-screen preview in sync with the document
// without encoding on every keystroke. Snapshots debounce to the latest;
// each flush bumps a generation counter and only the result matching the
// latest generation is applied, so a superseded cycle that finishes late
// can never overwrite a newer one.
type PreviewEngine struct {
	renderer  Renderer
	viewer    Viewer
	artifacts ArtifactStore

	deb          *debouncer
	retryBackoff time.Duration

	// ctx scopes encode work to the engine lifetime; Close cancels it so
	// teardown does not wait on an in-flight Chrome print.
	ctx    context.Context
	cancel context.CancelFunc

	// displayMu serializes viewer calls so the frame handed over last
	// always carries the latest engine state.
	displayMu sync.Mutex

	mu          sync.Mutex
	pending     *model.Document
	generation  uint64
	state       PreviewState
	pdf         []byte
	pageCount   int
	currentPage int
	width       int
}

func NewPreviewEngine(r Renderer, v Viewer, artifacts ArtifactStore, window time.Duration) *PreviewEngine {
	e := &PreviewEngine{
		renderer:     r,
		viewer:       v,
		artifacts:    artifacts,
		state:        StateIdle,
		currentPage:  1,
		width:        maxViewportWidth,
		retryBackoff: time.Second,
	}
	e.ctx, e.cancel = context.WithCancel(context.Background())
	e.deb = newDebouncer(window, e.flush)
	return e
}

// Submit hands the engine a document snapshot. Snapshots arriving within
// one quiescence window collapse to the latest only.
func (e *PreviewEngine) Submit(doc *model.Document) {
	e.mu.Lock()
	e.pending = doc
	e.mu.Unlock()
	e.deb.Trigger()
}

func (e *PreviewEngine) flush() {
	e.mu.Lock()
	doc := e.pending
	e.pending = nil
	if doc == nil {
		e.mu.Unlock()
		return
	}
	e.generation++
	gen := e.generation
	e.state = StateRendering
	e.mu.Unlock()

	go e.renderCycle(doc, gen)
}

// renderCycle is one encode pass: layout, HTML, PDF. The document is
// treated as a read-only snapshot throughout.
func (e *PreviewEngine) renderCycle(doc *model.Document, gen uint64) {
	tree := render.Render(doc)
	html, err := render.EncodeHTML(tree)
	if err == nil {
		var pdf []byte
		pdf, err = e.encodePDF(html)
		if err == nil {
			e.apply(pdf, gen)
			return
		}
	}
	// Render failures are non-fatal: keep whatever is displayed. A cycle
	// abandoned at Close is not worth a diagnostic.
	if e.ctx.Err() == nil {
		log.Printf("preview: render cycle failed (non-fatal): %v", err)
	}
	e.mu.Lock()
	if gen == e.generation && e.state == StateRendering {
		if e.pdf != nil {
			e.state = StateDisplaying
		} else {
			e.state = StateIdle
		}
	}
	e.mu.Unlock()
}

// encodePDF retries encoding with backoff and validates the PDF signature
// before trusting the output.
func (e *PreviewEngine) encodePDF(html string) ([]byte, error) {
	var pdf []byte
	var err error
	for i := 0; i < encodeAttempts; i++ {
		pdf, err = e.renderer.RenderHTMLToPDF(e.ctx, html)
		if err == nil {
			if pdfs.IsPDF(pdf) {
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		if e.ctx.Err() != nil {
			return nil, e.ctx.Err()
		}
		if i < encodeAttempts-1 {
			select {
			case <-e.ctx.Done():
				return nil, e.ctx.Err()
			case <-time.After(time.Duration(1<<i) * e.retryBackoff):
			}
		}
	}
	return nil, err
}

func (e *PreviewEngine) apply(pdf []byte, gen uint64) {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		log.Printf("preview: discarding stale render (generation %d)", gen)
		return
	}
	e.pdf = pdf
	e.pageCount = pdfs.CountPages(pdf)
	if e.pageCount < 1 {
		e.pageCount = 1
	}
	if e.currentPage > e.pageCount {
		e.currentPage = e.pageCount
	}
	e.state = StateDisplaying
	e.mu.Unlock()

	e.display()

	if e.artifacts != nil {
		if _, err := e.artifacts.SaveArtifact(pdf); err != nil {
			log.Printf("preview: unable to save artifact copy (non-fatal): %v", err)
		}
	}
}

// display hands the current document to the rasterizer. State is re-read
// under the lock right before the call, so an interleaved page step, resize
// or newer render can never surface an outdated frame. Failures leave the
// preview stale rather than propagate.
func (e *PreviewEngine) display() {
	e.displayMu.Lock()
	defer e.displayMu.Unlock()

	e.mu.Lock()
	pdf, page, width := e.pdf, e.currentPage, e.width
	e.mu.Unlock()

	if e.viewer == nil || pdf == nil {
		return
	}
	if _, err := e.viewer.Display(pdf, page, width); err != nil {
		log.Printf("preview: rasterizer failed (non-fatal): %v", err)
	}
}

// Next advances the displayed page, clamped to the page count.
func (e *PreviewEngine) Next() int {
	e.mu.Lock()
	if e.currentPage < e.pageCount {
		e.currentPage++
	}
	page := e.currentPage
	e.mu.Unlock()
	e.display()
	return page
}

// Prev moves back one page, clamped to the first page.
func (e *PreviewEngine) Prev() int {
	e.mu.Lock()
	if e.currentPage > 1 {
		e.currentPage--
	}
	page := e.currentPage
	e.mu.Unlock()
	e.display()
	return page
}

func (e *PreviewEngine) CurrentPage() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPage
}

func (e *PreviewEngine) PageCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pageCount
}

func (e *PreviewEngine) State() PreviewState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SetViewportWidth clamps the width to the supported range and, when it
// changed, re-rasterizes the current document at the new scale. No
// re-encode happens here.
func (e *PreviewEngine) SetViewportWidth(w int) int {
	if w < minViewportWidth {
		w = minViewportWidth
	}
	if w > maxViewportWidth {
		w = maxViewportWidth
	}
	e.mu.Lock()
	changed := w != e.width
	e.width = w
	e.mu.Unlock()
	if changed {
		e.display()
	}
	return w
}

// Snapshot returns the last encoded document and its page metadata.
func (e *PreviewEngine) Snapshot() (pdf []byte, currentPage, pageCount int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pdf, e.currentPage, e.pageCount
}

// Close stops the debounce timer, invalidates in-flight cycles and cancels
// any encode still talking to the PDF backend.
func (e *PreviewEngine) Close() {
	e.deb.Stop()
	e.mu.Lock()
	e.generation++
	e.mu.Unlock()
	e.cancel()
}
