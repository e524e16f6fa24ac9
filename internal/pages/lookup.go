package pages

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
	"site/internal/cms"
)

// Lookup memoizes page queries for the lifetime of one request. Create a
// fresh Lookup per request and per call site; it is never shared across
// requests.
type Lookup struct {
	store cms.Store
	draft bool

	group singleflight.Group

	mu    sync.Mutex
	pages map[string]*cms.Page
}

func NewLookup(store cms.Store, draft bool) *Lookup {
	return &Lookup{
		store: store,
		draft: draft,
		pages: make(map[string]*cms.Page),
	}
}

func (l *Lookup) Draft() bool {
	return l.draft
}

// Find returns the page with the given slug, or nil when the store has
// none. Repeated calls with the same slug return the same pointer and
// reach the store once. Concurrent callers share a single query, and
// failures are not remembered.
func (l *Lookup) Find(ctx context.Context, slug string) (*cms.Page, error) {
	if page, ok := l.cached(slug); ok {
		return page, nil
	}

	result, err, _ := l.group.Do(slug, func() (interface{}, error) {
		if page, ok := l.cached(slug); ok {
			return page, nil
		}

		page, err := l.store.FindPage(ctx, cms.PageQuery{
			Slug:           slug,
			Draft:          l.draft,
			OverrideAccess: l.draft,
		})
		if errors.Is(err, cms.ErrNotFound) {
			page, err = nil, nil
		}
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.pages[slug] = page
		l.mu.Unlock()
		return page, nil
	})
	if err != nil {
		return nil, err
	}

	page, _ := result.(*cms.Page)
	return page, nil
}

func (l *Lookup) cached(slug string) (*cms.Page, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	page, ok := l.pages[slug]
	return page, ok
}
