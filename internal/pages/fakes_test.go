package pages

import (
	"context"
	"errors"
	"sync"

	"site/framework"
	"site/internal/cms"
)

type fakeStore struct {
	mu sync.Mutex

	published map[string]*cms.Page
	drafts    map[string]*cms.Page
	slugs     []string

	failNext error

	pageQueries []cms.PageQuery
	slugQueries []cms.SlugQuery
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		published: make(map[string]*cms.Page),
		drafts:    make(map[string]*cms.Page),
	}
}

func (s *fakeStore) FindPage(_ context.Context, q cms.PageQuery) (*cms.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pageQueries = append(s.pageQueries, q)
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return nil, err
	}

	if q.Draft {
		if page, ok := s.drafts[q.Slug]; ok {
			return page, nil
		}
	}
	if page, ok := s.published[q.Slug]; ok {
		return page, nil
	}
	return nil, cms.ErrNotFound
}

func (s *fakeStore) ListPageSlugs(_ context.Context, q cms.SlugQuery) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slugQueries = append(s.slugQueries, q)
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return nil, err
	}
	return s.slugs, nil
}

func (s *fakeStore) FindRedirect(context.Context, string) (*cms.Redirect, error) {
	return nil, errors.New("redirects are resolved by fakeRedirects")
}

func (s *fakeStore) pageQueryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pageQueries)
}

type redirectCall struct {
	url             string
	disableNotFound bool
}

type fakeRedirects struct {
	targets map[string]string
	calls   []redirectCall
}

func (r *fakeRedirects) Resolve(_ context.Context, url string, disableNotFound bool) error {
	r.calls = append(r.calls, redirectCall{url: url, disableNotFound: disableNotFound})
	if location, ok := r.targets[url]; ok {
		return framework.Redirect(location, 0)
	}
	if disableNotFound {
		return nil
	}
	return cms.ErrNotFound
}
