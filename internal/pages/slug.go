package pages

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// HomeSlug is the slug served at "/". It is never emitted as a static
// param because the bare root path already reaches it.
const HomeSlug = "home"

// ErrMalformedSegment reports a path segment that is not valid percent
// encoded UTF-8.
var ErrMalformedSegment = errors.New("malformed path segment")

// Route is a decoded catch-all path.
type Route struct {
	// URL is the decoded path, always starting with "/".
	URL string
	// Key is the page slug to look up. It is only set when the path has
	// exactly one segment.
	Key    string
	HasKey bool
}

// Decode percent-decodes each raw segment independently. nil segments
// behave like a single "home" segment; an empty non-nil slice decodes to
// "/" without a lookup key.
func Decode(segments []string) (Route, error) {
	if segments == nil {
		segments = []string{HomeSlug}
	}

	decoded := make([]string, 0, len(segments))
	for _, segment := range segments {
		value, err := decodeSegment(segment)
		if err != nil {
			return Route{}, err
		}
		decoded = append(decoded, value)
	}

	route := Route{URL: "/" + strings.Join(decoded, "/")}
	if len(decoded) == 1 {
		route.Key = decoded[0]
		route.HasKey = true
	}

	return route, nil
}

// LookupKey derives only the lookup key, leaving multi-segment paths
// undecoded.
func LookupKey(segments []string) (string, bool, error) {
	if segments == nil {
		return HomeSlug, true, nil
	}
	if len(segments) != 1 {
		return "", false, nil
	}

	key, err := decodeSegment(segments[0])
	if err != nil {
		return "", false, err
	}

	return key, true, nil
}

func decodeSegment(segment string) (string, error) {
	value, err := url.PathUnescape(segment)
	if err != nil {
		return "", fmt.Errorf("decode path segment %q: %w: %w", segment, ErrMalformedSegment, err)
	}
	if !utf8.ValidString(value) {
		return "", fmt.Errorf("decode path segment %q: %w", segment, ErrMalformedSegment)
	}
	return value, nil
}
