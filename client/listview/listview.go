// Package listview implements the paging, search and mutation behavior
// shared by every admin list page, decoupled from any rendering layer.
package listview

import (
	"context"
	"sync"
	"time"

	"meetspace-admin/dto"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

// DefaultDebounce is how long search input settles before a reload.
const DefaultDebounce = 300 * time.Millisecond

// Query is the list request the controller maintains.
type Query struct {
	Search  string
	Page    int
	Limit   int
	Filters map[string]string
}

// Fetcher loads one page for the current query.
type Fetcher[T any] func(ctx context.Context, q Query) ([]T, *dto.Pagination, error)

// Deleter removes one item by id.
type Deleter func(ctx context.Context, id string) error

// Controller drives one list page. Fetches triggered while another is in
// flight are all applied as they resolve; the last resolved fetch wins.
type Controller[T any] struct {
	mu sync.Mutex

	fetch    Fetcher[T]
	deleter  Deleter
	debounce time.Duration

	state State
	err   error
	items []T
	page  dto.Pagination
	query Query

	timer         *time.Timer
	pendingDelete string
}

func New[T any](fetch Fetcher[T], deleter Deleter) *Controller[T] {
	return &Controller[T]{
		fetch:    fetch,
		deleter:  deleter,
		debounce: DefaultDebounce,
		query:    Query{Page: 1, Limit: 10, Filters: map[string]string{}},
	}
}

// SetDebounce overrides the search settle window.
func (c *Controller[T]) SetDebounce(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debounce = d
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Items returns the current page's items.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T]) Pagination() dto.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.query
	q.Filters = map[string]string{}
	for k, v := range c.query.Filters {
		q.Filters[k] = v
	}
	return q
}

// Load fetches the current query synchronously.
func (c *Controller[T]) Load(ctx context.Context) {
	c.mu.Lock()
	c.state = StateLoading
	q := c.query
	c.mu.Unlock()

	items, page, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateError
		c.err = err
		return
	}
	c.state = StateSuccess
	c.err = nil
	c.items = items
	if page != nil {
		c.page = *page
	}
}

// SetSearch stores the term and restarts the settle timer; the reload
// fires only once input stops changing for the debounce window.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	c.query.Search = term
	c.query.Page = 1
	if c.timer != nil {
		c.timer.Stop()
	}
	d := c.debounce
	c.timer = time.AfterFunc(d, func() {
		c.Load(context.Background())
	})
	c.mu.Unlock()
}

// SetPage moves to the requested page if it is within bounds.
func (c *Controller[T]) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	if page < 1 || (c.page.Pages > 0 && page > c.page.Pages) {
		c.mu.Unlock()
		return
	}
	c.query.Page = page
	c.mu.Unlock()
	c.Load(ctx)
}

func (c *Controller[T]) SetLimit(ctx context.Context, limit int) {
	if limit < 1 {
		return
	}
	c.mu.Lock()
	c.query.Limit = limit
	c.query.Page = 1
	c.mu.Unlock()
	c.Load(ctx)
}

func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) {
	c.mu.Lock()
	if value == "" {
		delete(c.query.Filters, key)
	} else {
		c.query.Filters[key] = value
	}
	c.query.Page = 1
	c.mu.Unlock()
	c.Load(ctx)
}

func (c *Controller[T]) CanPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Page > 1
}

func (c *Controller[T]) CanNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Page < c.page.Pages
}

// RequestDelete arms the confirmation step; nothing is removed until
// ConfirmDelete.
func (c *Controller[T]) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

func (c *Controller[T]) PendingDelete() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingDelete
}

func (c *Controller[T]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

// ConfirmDelete deletes the armed item and refetches the page.
func (c *Controller[T]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()
	if id == "" {
		return nil
	}

	if err := c.deleter(ctx, id); err != nil {
		c.mu.Lock()
		c.state = StateError
		c.err = err
		c.mu.Unlock()
		return err
	}
	c.Load(ctx)
	return nil
}

// MutateOptimistic applies a local change to the loaded items and pushes
// it to the server without refetching. A push failure surfaces as an
// error state but the local change is kept; the next reload reconciles.
func (c *Controller[T]) MutateOptimistic(ctx context.Context, local func(items []T), push func(ctx context.Context) error) error {
	c.mu.Lock()
	local(c.items)
	c.mu.Unlock()

	if err := push(ctx); err != nil {
		c.mu.Lock()
		c.state = StateError
		c.err = err
		c.mu.Unlock()
		return err
	}
	return nil
}
