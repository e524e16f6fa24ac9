package router

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

var dynamicSegmentNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

type segmentKind int

const (
	segmentStatic segmentKind = iota
	segmentParam
	segmentCatchAll
	segmentOptionalCatchAll
)

type patternSegment struct {
	name string
	kind segmentKind
}

// Pattern is a compiled route pattern such as "/docs/[section]" or
// "/[[...slug]]". A catch-all segment may only appear last.
type Pattern struct {
	raw      string
	segments []patternSegment
}

type Match struct {
	Params   map[string]string
	CatchAll []string
}

func MustCompile(pattern string) Pattern {
	compiled, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return compiled
}

func Compile(pattern string) (Pattern, error) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" || !strings.HasPrefix(trimmed, "/") {
		return Pattern{}, fmt.Errorf("route pattern %q must start with /", pattern)
	}

	parts := splitPathSegments(trimmed)
	segments := make([]patternSegment, 0, len(parts))
	for idx, part := range parts {
		segment, err := parseSegment(part)
		if err != nil {
			return Pattern{}, fmt.Errorf("route pattern %q: %w", pattern, err)
		}
		isCatchAll := segment.kind == segmentCatchAll || segment.kind == segmentOptionalCatchAll
		if isCatchAll && idx != len(parts)-1 {
			return Pattern{}, fmt.Errorf("route pattern %q: catch-all segment must be last", pattern)
		}
		segments = append(segments, segment)
	}

	return Pattern{raw: trimmed, segments: segments}, nil
}

func (p Pattern) String() string {
	return p.raw
}

// Match compares the pattern against an escaped request path. Returned
// values keep their percent-encoding.
func (p Pattern) Match(requestPath string) (Match, bool) {
	requestSegments := splitPathSegments(requestPath)

	params := make(map[string]string, 2)
	match := Match{}
	for idx, segment := range p.segments {
		if segment.kind == segmentCatchAll || segment.kind == segmentOptionalCatchAll {
			if idx > len(requestSegments) {
				return Match{}, false
			}
			rest := requestSegments[idx:]
			if len(rest) == 0 && segment.kind == segmentCatchAll {
				return Match{}, false
			}
			if len(rest) > 0 {
				match.CatchAll = append([]string(nil), rest...)
				params[segment.name] = strings.Join(rest, "/")
			}
			return withParams(match, params), true
		}

		if idx >= len(requestSegments) {
			return Match{}, false
		}
		if segment.kind == segmentParam {
			params[segment.name] = requestSegments[idx]
			continue
		}
		if segment.name != requestSegments[idx] {
			return Match{}, false
		}
	}

	if len(requestSegments) != len(p.segments) {
		return Match{}, false
	}
	return withParams(match, params), true
}

func withParams(match Match, params map[string]string) Match {
	if len(params) > 0 {
		match.Params = params
	}
	return match
}

func parseSegment(segment string) (patternSegment, error) {
	switch {
	case strings.HasPrefix(segment, "[[...") && strings.HasSuffix(segment, "]]"):
		name := strings.TrimSpace(segment[5 : len(segment)-2])
		if !dynamicSegmentNamePattern.MatchString(name) {
			return patternSegment{}, fmt.Errorf("invalid catch-all name %q", name)
		}
		return patternSegment{name: name, kind: segmentOptionalCatchAll}, nil
	case strings.HasPrefix(segment, "[...") && strings.HasSuffix(segment, "]"):
		name := strings.TrimSpace(segment[4 : len(segment)-1])
		if !dynamicSegmentNamePattern.MatchString(name) {
			return patternSegment{}, fmt.Errorf("invalid catch-all name %q", name)
		}
		return patternSegment{name: name, kind: segmentCatchAll}, nil
	case strings.HasPrefix(segment, "[") || strings.HasSuffix(segment, "]"):
		if !strings.HasPrefix(segment, "[") || !strings.HasSuffix(segment, "]") {
			return patternSegment{}, fmt.Errorf("invalid wildcard segment %q", segment)
		}
		name := strings.TrimSpace(segment[1 : len(segment)-1])
		if !dynamicSegmentNamePattern.MatchString(name) {
			return patternSegment{}, fmt.Errorf("invalid wildcard name %q", name)
		}
		return patternSegment{name: name, kind: segmentParam}, nil
	}

	if strings.ContainsAny(segment, "[]") {
		return patternSegment{}, fmt.Errorf("invalid static segment %q", segment)
	}
	if strings.TrimSpace(segment) == "" {
		return patternSegment{}, errors.New("empty path segment")
	}

	return patternSegment{name: segment, kind: segmentStatic}, nil
}

func splitPathSegments(raw string) []string {
	cleaned := path.Clean("/" + strings.TrimSpace(raw))
	if cleaned == "/" {
		return []string{}
	}

	trimmed := strings.Trim(cleaned, "/")
	if trimmed == "" {
		return []string{}
	}

	return strings.Split(trimmed, "/")
}
