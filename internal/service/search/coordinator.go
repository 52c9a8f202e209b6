// Package search drives the employee listing: a search term, a field filter,
// a debounced upstream query with a stale-response guard, a parallel
// autocomplete lookup, and client-side pagination over the last result set.
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bashyamgroup/employee-console/internal/domain/employee"
)

type Options struct {
	// Debounce is the quiescence delay after the last keystroke before the
	// upstream query fires. Restarted on every keystroke.
	Debounce time.Duration
	PageSize int
	// MinSuggestLen is the term length a suggestion lookup requires
	// (strictly greater than).
	MinSuggestLen int
}

func (o *Options) fillDefaults() {
	if o.Debounce <= 0 {
		o.Debounce = 500 * time.Millisecond
	}
	if o.PageSize <= 0 {
		o.PageSize = 5
	}
	if o.MinSuggestLen <= 0 {
		o.MinSuggestLen = 2
	}
}

// Coordinator holds one session's listing state. All exported methods are
// safe for concurrent use; the debounced query and the suggestion lookup run
// on their own goroutines and reconcile against the latest issued sequence
// number before applying results.
type Coordinator struct {
	repo   employee.Repository
	logger *slog.Logger
	opts   Options

	ctx    context.Context
	cancel context.CancelFunc

	mu              sync.Mutex
	term            string
	filter          employee.Filter
	page            int
	employees       []employee.Employee
	totalPages      int
	suggestions     []string
	showSuggestions bool
	loading         bool
	fetchFailed     bool
	timer           *time.Timer
	seq             uint64
	suggestionSeq   uint64
	closed          bool
}

// New builds a coordinator whose asynchronous work derives from ctx; pass a
// context already carrying the session's upstream token.
func New(ctx context.Context, repo employee.Repository, logger *slog.Logger, opts Options) *Coordinator {
	opts.fillDefaults()
	cctx, cancel := context.WithCancel(ctx)
	return &Coordinator{
		repo:   repo,
		logger: logger,
		opts:   opts,
		ctx:    cctx,
		cancel: cancel,
		filter: employee.FilterAll,
		page:   1,
	}
}

// Load performs the initial fetch for a fresh session.
func (c *Coordinator) Load() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	seq := c.supersedeLocked()
	c.mu.Unlock()
	c.runQuery(seq)
}

// Input records a keystroke: the term echoes immediately, the page resets,
// the upstream query is deferred until the debounce window closes, and a
// suggestion lookup fires in parallel once the term is long enough.
func (c *Coordinator) Input(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.term = term
	c.page = 1
	c.showSuggestions = true

	seq := c.supersedeLocked()
	c.loading = true
	c.timer = time.AfterFunc(c.opts.Debounce, func() {
		c.runQuery(seq)
	})

	if len(term) > c.opts.MinSuggestLen {
		c.suggestionSeq++
		go c.fetchSuggestions(c.suggestionSeq, term)
	}
}

// SetFilter switches the active field filter and re-queries immediately.
func (c *Coordinator) SetFilter(filter employee.Filter) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.filter = filter
	c.page = 1
	seq := c.supersedeLocked()
	c.mu.Unlock()
	c.runQuery(seq)
}

// SelectSuggestion adopts an autocomplete entry as the term, hides the
// dropdown, and re-queries immediately.
func (c *Coordinator) SelectSuggestion(term string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.term = term
	c.page = 1
	c.showSuggestions = false
	seq := c.supersedeLocked()
	c.mu.Unlock()
	c.runQuery(seq)
}

// Clear resets the term and re-queries immediately.
func (c *Coordinator) Clear() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.term = ""
	c.page = 1
	c.suggestions = nil
	c.showSuggestions = false
	seq := c.supersedeLocked()
	c.mu.Unlock()
	c.runQuery(seq)
}

// Refresh re-runs the current query without touching term, filter or page.
// Used after a mutation (e.g. delete) so the listing reflects the upstream.
func (c *Coordinator) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	seq := c.supersedeLocked()
	c.mu.Unlock()
	c.runQuery(seq)
}

// SetPage clamps n to the valid range. Pagination is a pure slice over the
// last fetched result set; no query is issued.
func (c *Coordinator) SetPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.totalPages == 0 {
		c.page = 1
		return
	}
	if n < 1 {
		n = 1
	}
	if n > c.totalPages {
		n = c.totalPages
	}
	c.page = n
}

// Close cancels any pending debounce and in-flight work. The coordinator is
// unusable afterwards.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.cancel()
}

// supersedeLocked invalidates every outstanding query and returns the new
// sequence number. A completion whose number no longer matches is stale and
// must be discarded.
func (c *Coordinator) supersedeLocked() uint64 {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++
	return c.seq
}

func (c *Coordinator) runQuery(seq uint64) {
	c.mu.Lock()
	if c.closed || seq != c.seq {
		c.mu.Unlock()
		return
	}
	opts := employee.SearchOptions{
		Term:   c.term,
		Filter: c.filter,
		Expand: true,
	}
	c.loading = true
	c.mu.Unlock()

	employees, err := c.repo.Search(c.ctx, opts)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.seq {
		return
	}
	c.loading = false
	if err != nil {
		c.logger.Error("employee search failed", "term", opts.Term, "filter", opts.Filter, "error", err)
		c.employees = nil
		c.totalPages = 0
		c.fetchFailed = true
		return
	}
	c.employees = employees
	c.totalPages = (len(employees) + c.opts.PageSize - 1) / c.opts.PageSize
	if c.page > c.totalPages && c.totalPages > 0 {
		c.page = c.totalPages
	}
	c.fetchFailed = false
}

// fetchSuggestions is best-effort: failures are logged and never surfaced,
// and a result for a superseded term is dropped.
func (c *Coordinator) fetchSuggestions(seq uint64, term string) {
	suggestions, err := c.repo.Suggestions(c.ctx, term)
	if err != nil {
		c.logger.Warn("suggestion fetch failed", "term", term, "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.suggestionSeq {
		return
	}
	c.suggestions = suggestions
}
