package pages

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"site/internal/cms"
)

func TestLookupMemoizesWithinScope(t *testing.T) {
	store := newFakeStore()
	store.published["about"] = &cms.Page{ID: "1", Slug: "about"}
	lookup := NewLookup(store, false)

	first, err := lookup.Find(context.Background(), "about")
	require.NoError(t, err)
	second, err := lookup.Find(context.Background(), "about")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, store.pageQueryCount())
}

func TestLookupMemoizesMissingPages(t *testing.T) {
	store := newFakeStore()
	lookup := NewLookup(store, false)

	for range 3 {
		page, err := lookup.Find(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, page)
	}

	assert.Equal(t, 1, store.pageQueryCount())
}

func TestLookupSharesConcurrentQueries(t *testing.T) {
	store := newFakeStore()
	store.published["about"] = &cms.Page{ID: "1", Slug: "about"}
	lookup := NewLookup(store, false)

	var wg sync.WaitGroup
	results := make([]*cms.Page, 16)
	for idx := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, err := lookup.Find(context.Background(), "about")
			assert.NoError(t, err)
			results[idx] = page
		}()
	}
	wg.Wait()

	for _, page := range results {
		assert.Same(t, results[0], page)
	}
	assert.Equal(t, 1, store.pageQueryCount())
}

func TestLookupDoesNotRememberFailures(t *testing.T) {
	store := newFakeStore()
	store.published["about"] = &cms.Page{ID: "1", Slug: "about"}
	store.failNext = errors.New("cms unavailable")
	lookup := NewLookup(store, false)

	_, err := lookup.Find(context.Background(), "about")
	require.Error(t, err)

	page, err := lookup.Find(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, "1", page.ID)
	assert.Equal(t, 2, store.pageQueryCount())
}

func TestLookupSeparateInstancesQueryIndependently(t *testing.T) {
	store := newFakeStore()
	store.published["about"] = &cms.Page{ID: "1", Slug: "about"}

	_, err := NewLookup(store, false).Find(context.Background(), "about")
	require.NoError(t, err)
	_, err = NewLookup(store, false).Find(context.Background(), "about")
	require.NoError(t, err)

	assert.Equal(t, 2, store.pageQueryCount())
}

func TestLookupDraftControlsVisibilityAndAccess(t *testing.T) {
	store := newFakeStore()
	store.drafts["preview"] = &cms.Page{ID: "draft-1", Slug: "preview"}

	draftPage, err := NewLookup(store, true).Find(context.Background(), "preview")
	require.NoError(t, err)
	require.NotNil(t, draftPage)
	assert.Equal(t, "draft-1", draftPage.ID)

	publishedPage, err := NewLookup(store, false).Find(context.Background(), "preview")
	require.NoError(t, err)
	assert.Nil(t, publishedPage)

	assert.Equal(t, []cms.PageQuery{
		{Slug: "preview", Draft: true, OverrideAccess: true},
		{Slug: "preview", Draft: false, OverrideAccess: false},
	}, store.pageQueries)
}
