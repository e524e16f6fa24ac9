package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name     string
		segments []string
		want     Route
	}{
		{name: "absent means home", segments: nil, want: Route{URL: "/home", Key: "home", HasKey: true}},
		{name: "single", segments: []string{"about"}, want: Route{URL: "/about", Key: "about", HasKey: true}},
		{name: "single escaped", segments: []string{"caf%C3%A9%20menu"}, want: Route{URL: "/café menu", Key: "café menu", HasKey: true}},
		{name: "escaped slash stays in key", segments: []string{"a%2Fb"}, want: Route{URL: "/a/b", Key: "a/b", HasKey: true}},
		{name: "multi", segments: []string{"posts", "hello%21"}, want: Route{URL: "/posts/hello!"}},
		{name: "empty", segments: []string{}, want: Route{URL: "/"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			route, err := Decode(tc.segments)
			require.NoError(t, err)
			assert.Equal(t, tc.want, route)
		})
	}
}

func TestDecodeMalformedEscape(t *testing.T) {
	_, err := Decode([]string{"bad%zz"})
	assert.ErrorIs(t, err, ErrMalformedSegment)

	_, _, err = LookupKey([]string{"bad%zz"})
	assert.ErrorIs(t, err, ErrMalformedSegment)
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	for _, segments := range [][]string{{"%FF"}, {"docs", "%C3"}, {"ok%E2%82"}} {
		_, err := Decode(segments)
		assert.ErrorIs(t, err, ErrMalformedSegment, "segments %q", segments)
	}

	_, _, err := LookupKey([]string{"%FF"})
	assert.ErrorIs(t, err, ErrMalformedSegment)
}

func TestLookupKey(t *testing.T) {
	key, ok, err := LookupKey(nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "home", key)

	key, ok, err = LookupKey([]string{"%C3%BCber"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "über", key)

	_, ok, err = LookupKey([]string{"a", "bad%zz"})
	require.NoError(t, err)
	assert.False(t, ok)
}
