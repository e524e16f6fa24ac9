package redirects

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"site/framework"
	"site/internal/cms"
)

const (
	OutcomeMatched  = "matched"
	OutcomeMissing  = "missing"
	OutcomeDisabled = "suppressed"
)

type Finder interface {
	FindRedirect(ctx context.Context, from string) (*cms.Redirect, error)
}

// Resolver maps request paths to the redirect registry kept in the CMS.
type Resolver struct {
	finder  Finder
	observe func(outcome string)
}

func NewResolver(finder Finder, observe func(outcome string)) *Resolver {
	if observe == nil {
		observe = func(string) {}
	}

	return &Resolver{finder: finder, observe: observe}
}

// Resolve returns a temporary *framework.RedirectError when a redirect is
// registered for url. Without a match it returns an error wrapping
// cms.ErrNotFound, or nil when disableNotFound is set.
func (r *Resolver) Resolve(ctx context.Context, url string, disableNotFound bool) error {
	redirect, err := r.finder.FindRedirect(ctx, url)
	if err != nil && !errors.Is(err, cms.ErrNotFound) {
		return fmt.Errorf("resolve redirect for %q: %w", url, err)
	}

	if redirect != nil {
		if location := redirect.Location(); location != "" {
			r.observe(OutcomeMatched)
			return framework.Redirect(location, http.StatusTemporaryRedirect)
		}
	}

	if disableNotFound {
		r.observe(OutcomeDisabled)
		return nil
	}

	r.observe(OutcomeMissing)
	return fmt.Errorf("no redirect for %q: %w", url, cms.ErrNotFound)
}
