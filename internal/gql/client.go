package gql

import (
	"context"
	"net/http"
	"time"

	genqlientgraphql "github.com/Khan/genqlient/graphql"
	"site/internal/config"
)

type accessOverrideKey struct{}

// WithAccessOverride marks requests made with ctx to run with the CMS API
// token, which lets them read documents hidden from anonymous visitors.
func WithAccessOverride(ctx context.Context, override bool) context.Context {
	return context.WithValue(ctx, accessOverrideKey{}, override)
}

func AccessOverride(ctx context.Context) bool {
	override, _ := ctx.Value(accessOverrideKey{}).(bool)
	return override
}

func NewClient(cfg config.Config) genqlientgraphql.Client {
	client := &http.Client{
		Timeout: 15 * time.Second,
		Transport: &authTransport{
			base:  http.DefaultTransport,
			token: cfg.GraphQLAuthToken,
		},
	}

	return genqlientgraphql.NewClient(cfg.GraphQLEndpoint, client)
}

type authTransport struct {
	base  http.RoundTripper
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" || !AccessOverride(req.Context()) {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "users API-Key "+t.token)
	return t.base.RoundTrip(clone)
}
