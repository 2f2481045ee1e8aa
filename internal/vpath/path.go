package vpath

import (
	"fmt"
	"strings"
)

// Separator is the reserved token that stands in for "/" inside flat node
// names. A double dash is unlikely to occur in ordinary file names and stays
// readable in raw listings.
const Separator = "--"

// Path is a virtual, slash-separated document path broken into its segments.
// A Path with zero segments is invalid for any operation; Parse never
// produces one.
type Path struct {
	segments []string
}

// Parse converts user input like "/includes/defaults.yaml" into a Path.
// A single leading slash is tolerated. Empty input, empty segments ("a//b")
// and segments containing the reserved separator token are rejected, since
// the latter would silently break the flat-name round trip.
func Parse(input string) (Path, error) {
	trimmed := strings.TrimPrefix(input, "/")
	if trimmed == "" {
		return Path{}, fmt.Errorf("empty document path %q", input)
	}

	segments := strings.Split(trimmed, "/")
	for _, seg := range segments {
		if seg == "" {
			return Path{}, fmt.Errorf("document path %q contains an empty segment", input)
		}
		if strings.Contains(seg, Separator) {
			return Path{}, fmt.Errorf("document path segment %q must not contain %q", seg, Separator)
		}
	}

	return Path{segments: segments}, nil
}

// DecodeFlat recovers the virtual path from a flat node name by splitting on
// the separator token. It is the display-direction inverse of FlatName and
// never fails; names that somehow embed the separator inside a segment
// decode to more segments than were encoded, which is accepted as lossy.
func DecodeFlat(flat string) Path {
	return Path{segments: strings.Split(flat, Separator)}
}

// FlatName encodes the path as a single child name under the configuration
// znode. Pure and idempotent: the same Path always yields the same name.
func (p Path) FlatName() string {
	return strings.Join(p.segments, Separator)
}

// Segments returns the path segments in order. The returned slice must not
// be mutated.
func (p Path) Segments() []string {
	return p.segments
}

// IsZero reports whether the path has no segments.
func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// String renders the path in its user-facing slash form, with a leading "/".
func (p Path) String() string {
	return "/" + strings.Join(p.segments, "/")
}
