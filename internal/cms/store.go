package cms

import "context"

// Store is the read side of the CMS used by the page route. Service is the
// production implementation.
type Store interface {
	FindPage(ctx context.Context, q PageQuery) (*Page, error)
	ListPageSlugs(ctx context.Context, q SlugQuery) ([]string, error)
	FindRedirect(ctx context.Context, from string) (*Redirect, error)
}

var _ Store = (*Service)(nil)
