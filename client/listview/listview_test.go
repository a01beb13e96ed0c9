package listview

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"meetspace-admin/dto"
)

type item struct {
	ID     string
	Active bool
}

func pageOf(items []item, page, limit int, total int64) ([]item, *dto.Pagination, error) {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return items, &dto.Pagination{Total: total, Page: page, Limit: limit, Pages: pages}, nil
}

func TestLoadTransitionsToSuccess(t *testing.T) {
	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		return pageOf([]item{{ID: "1"}, {ID: "2"}}, q.Page, q.Limit, 2)
	}, nil)

	if c.State() != StateIdle {
		t.Errorf("initial state = %v", c.State())
	}

	c.Load(context.Background())

	if c.State() != StateSuccess {
		t.Errorf("state = %v", c.State())
	}
	if len(c.Items()) != 2 {
		t.Errorf("items = %v", c.Items())
	}
}

func TestLoadTransitionsToError(t *testing.T) {
	boom := errors.New("boom")
	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		return nil, nil, boom
	}, nil)

	c.Load(context.Background())

	if c.State() != StateError {
		t.Errorf("state = %v", c.State())
	}
	if !errors.Is(c.Err(), boom) {
		t.Errorf("err = %v", c.Err())
	}
}

func TestSetSearchDebounces(t *testing.T) {
	var calls int32
	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		atomic.AddInt32(&calls, 1)
		return pageOf(nil, q.Page, q.Limit, 0)
	}, nil)
	c.SetDebounce(30 * time.Millisecond)

	// Rapid keystrokes: only the settled term should fetch.
	c.SetSearch("g")
	c.SetSearch("go")
	c.SetSearch("gop")
	c.SetSearch("goph")

	time.Sleep(10 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("fetched %d times before the window settled", n)
	}

	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("fetched %d times, want 1", n)
	}
	if q := c.Query(); q.Search != "goph" || q.Page != 1 {
		t.Errorf("query = %+v", q)
	}
}

func TestPaginationBoundaries(t *testing.T) {
	var lastPage int
	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		lastPage = q.Page
		return pageOf(nil, q.Page, q.Limit, 25) // 3 pages at limit 10
	}, nil)

	c.Load(context.Background())
	if c.CanPrev() {
		t.Error("CanPrev on first page")
	}
	if !c.CanNext() {
		t.Error("!CanNext with pages remaining")
	}

	c.SetPage(context.Background(), 3)
	if !c.CanPrev() || c.CanNext() {
		t.Errorf("last page: CanPrev=%v CanNext=%v", c.CanPrev(), c.CanNext())
	}

	// Out-of-range moves are ignored.
	c.SetPage(context.Background(), 4)
	c.SetPage(context.Background(), 0)
	if lastPage != 3 {
		t.Errorf("out-of-range page fetched: %d", lastPage)
	}
}

func TestSetLimitAndFilterResetPage(t *testing.T) {
	var got Query
	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		got = q
		return pageOf(nil, q.Page, q.Limit, 100)
	}, nil)

	c.Load(context.Background())
	c.SetPage(context.Background(), 5)

	c.SetLimit(context.Background(), 25)
	if got.Page != 1 || got.Limit != 25 {
		t.Errorf("after SetLimit: %+v", got)
	}

	c.SetPage(context.Background(), 2)
	c.SetFilter(context.Background(), "status", "Published")
	if got.Page != 1 || got.Filters["status"] != "Published" {
		t.Errorf("after SetFilter: %+v", got)
	}

	c.SetFilter(context.Background(), "status", "")
	if _, ok := got.Filters["status"]; ok {
		t.Errorf("cleared filter still present: %+v", got)
	}
}

func TestConfirmDeleteTwoStep(t *testing.T) {
	var deleted []string
	var fetches int
	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		fetches++
		return pageOf(nil, q.Page, q.Limit, 0)
	}, func(ctx context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	})

	c.RequestDelete("abc")
	if len(deleted) != 0 {
		t.Fatal("RequestDelete deleted immediately")
	}
	if c.PendingDelete() != "abc" {
		t.Errorf("pending = %q", c.PendingDelete())
	}

	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != "abc" {
		t.Errorf("deleted = %v", deleted)
	}
	if fetches != 1 {
		t.Errorf("refetches after delete = %d", fetches)
	}
	if c.PendingDelete() != "" {
		t.Error("pending id not cleared")
	}

	// Cancel disarms without deleting.
	c.RequestDelete("def")
	c.CancelDelete()
	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete after cancel: %v", err)
	}
	if len(deleted) != 1 {
		t.Errorf("cancelled delete executed: %v", deleted)
	}
}

func TestMutateOptimisticSkipsRefetch(t *testing.T) {
	var fetches int
	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		fetches++
		return pageOf([]item{{ID: "1", Active: true}}, q.Page, q.Limit, 1)
	}, nil)
	c.Load(context.Background())

	err := c.MutateOptimistic(context.Background(),
		func(items []item) { items[0].Active = false },
		func(ctx context.Context) error { return nil },
	)
	if err != nil {
		t.Fatalf("MutateOptimistic: %v", err)
	}

	if fetches != 1 {
		t.Errorf("optimistic mutation refetched: %d fetches", fetches)
	}
	if c.Items()[0].Active {
		t.Error("local mutation not applied")
	}
}

func TestMutateOptimisticPushFailureKeepsLocal(t *testing.T) {
	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		return pageOf([]item{{ID: "1", Active: true}}, q.Page, q.Limit, 1)
	}, nil)
	c.Load(context.Background())

	boom := errors.New("boom")
	err := c.MutateOptimistic(context.Background(),
		func(items []item) { items[0].Active = false },
		func(ctx context.Context) error { return boom },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if c.State() != StateError {
		t.Errorf("state = %v", c.State())
	}
	if c.Items()[0].Active {
		t.Error("local change reverted; reconcile happens on next reload")
	}
}

func TestLastResolvedFetchWins(t *testing.T) {
	release := make(chan struct{})
	slowStarted := make(chan struct{})

	c := New(func(ctx context.Context, q Query) ([]item, *dto.Pagination, error) {
		if q.Search == "slow" {
			close(slowStarted)
			<-release
			return pageOf([]item{{ID: "slow"}}, 1, 10, 1)
		}
		return pageOf([]item{{ID: "fast"}}, 1, 10, 1)
	}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.mu.Lock()
		c.query.Search = "slow"
		c.mu.Unlock()
		c.Load(context.Background())
	}()

	<-slowStarted
	c.mu.Lock()
	c.query.Search = "fast"
	c.mu.Unlock()
	c.Load(context.Background())

	if c.Items()[0].ID != "fast" {
		t.Fatalf("fast result missing: %v", c.Items())
	}

	close(release)
	wg.Wait()

	// The slow response arrived last; it is applied.
	if c.Items()[0].ID != "slow" {
		t.Errorf("last resolved fetch did not win: %v", c.Items())
	}
}
