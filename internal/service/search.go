package service

import (
	"context"
	"sync"
	"time"

	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/models"
)

// DefaultQuietWindow is the debounce window between a filter change and the
// query it triggers.
const DefaultQuietWindow = 500 * time.Millisecond

// FileSearcher is the slice of [FileService] the search workflow needs.
type FileSearcher interface {
	Search(ctx context.Context, filter models.SearchFilter) ([]models.FileRecord, error)
}

// SearchWorkflow keeps the user's filter state (free text plus category) and
// re-queries the backend with debounced frequency: every change schedules a
// query, but a newer change within the quiet window cancels and reschedules
// the pending one, so only the last state of a burst produces a request. The
// first query after Activate fires immediately.
//
// In-flight requests are never cancelled, so responses can complete out of
// order. Each dispatched query carries a monotonically increasing sequence
// number and a response is dropped when a newer query has been dispatched or
// a newer response already delivered — the notify callback only ever sees
// results for the most recent state.
type SearchWorkflow struct {
	files  FileSearcher
	quiet  time.Duration
	notify func([]models.FileRecord, error)
	logger *logger.Logger

	mu         sync.Mutex
	filter     models.SearchFilter
	timer      *time.Timer
	dispatched int64
	delivered  int64
}

// NewSearchWorkflow builds a workflow around files with the given quiet
// window (DefaultQuietWindow when non-positive). notify receives the result
// of every surviving query and must be safe to call from a background
// goroutine.
func NewSearchWorkflow(files FileSearcher, quiet time.Duration, notify func([]models.FileRecord, error), log *logger.Logger) *SearchWorkflow {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	if notify == nil {
		notify = func([]models.FileRecord, error) {}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &SearchWorkflow{
		files:  files,
		quiet:  quiet,
		notify: notify,
		filter: models.SearchFilter{Category: models.CategoryAll},
		logger: log.GetChildLogger(),
	}
}

// Activate fires the initial query immediately, bypassing the quiet window.
func (w *SearchWorkflow) Activate(ctx context.Context) {
	w.mu.Lock()
	filter := w.filter
	seq := w.nextSeqLocked()
	w.mu.Unlock()

	go w.run(ctx, seq, filter)
}

// SetText updates the free-text fragment and schedules a debounced query.
func (w *SearchWorkflow) SetText(ctx context.Context, text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.filter.Name = text
	w.scheduleLocked(ctx)
}

// SetCategory updates the category selector and schedules a debounced query.
func (w *SearchWorkflow) SetCategory(ctx context.Context, category string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.filter.Category = category
	w.scheduleLocked(ctx)
}

// Reset clears the filter back to its initial state and cancels any pending
// scheduled query. It does not dispatch; call Activate for a fresh query.
func (w *SearchWorkflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.filter = models.SearchFilter{Category: models.CategoryAll}
}

// Filter returns the current filter state.
func (w *SearchWorkflow) Filter() models.SearchFilter {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filter
}

// Stop cancels any pending scheduled query. In-flight requests are not
// cancelled; their late responses are discarded by the sequence guard.
func (w *SearchWorkflow) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *SearchWorkflow) scheduleLocked(ctx context.Context) {
	if w.timer != nil {
		w.timer.Stop()
	}

	filter := w.filter
	w.timer = time.AfterFunc(w.quiet, func() {
		w.mu.Lock()
		seq := w.nextSeqLocked()
		w.mu.Unlock()

		w.run(ctx, seq, filter)
	})
}

func (w *SearchWorkflow) nextSeqLocked() int64 {
	w.dispatched++
	return w.dispatched
}

func (w *SearchWorkflow) run(ctx context.Context, seq int64, filter models.SearchFilter) {
	files, err := w.files.Search(ctx, filter)

	w.mu.Lock()
	stale := seq < w.dispatched || seq <= w.delivered
	if !stale {
		w.delivered = seq
	}
	w.mu.Unlock()

	if stale {
		w.logger.Debug().Int64("seq", seq).Msg("discarding stale search response")
		return
	}

	w.notify(files, err)
}
