// Package arrow composes the textual arrow token for a relationship.
//
// Composition is a pure function over a single Relationship: the same
// input always yields the same token, and no other element's state is
// consulted. Internally the composer classifies the working token into
// one of a fixed set of shape patterns (head, segment, tail) exactly
// once, applies every transform to the decomposed shape, and renders the
// result at the end. This keeps overlapping token shapes (for example
// "-->" being a prefix of "-->>") from interfering with each other.
package arrow

import (
	"fmt"
	"strings"

	"github.com/archigen/archigen/pkg/model"
)

// baseTokens maps each canonical relationship type to its arrow token.
var baseTokens = map[model.RelationshipType]string{
	model.RelAccess:         "-->>",
	model.RelAggregation:    "o-->",
	model.RelAssignment:     "+-->",
	model.RelAssociation:    "--",
	model.RelComposition:    "*-->",
	model.RelFlow:           "~~>",
	model.RelInfluence:      "..>",
	model.RelRealization:    "..|>",
	model.RelServing:        "-->",
	model.RelSpecialization: "--|>",
	model.RelTriggering:     "->",
}

// fallbackToken is used for relationship types outside the base table.
const fallbackToken = "->"

// pattern is one known arrow shape, decomposed into a head marker, a
// line segment and a tail marker. Patterns are ordered most-specific
// first; classification takes the first exact decomposition match.
type pattern struct {
	name string
	head string
	seg  string
	tail string
}

var patterns = []pattern{
	{"bidirectional", "<", "--", ">"},
	{"access-read", "<<", "--", ""},
	{"influence", "", "..", ">"},
	{"specialization", "", "--", "|>"},
	{"realization", "", "..", "|>"},
	{"serving", "", "--", ">"},
	{"reverse-serving", "<", "--", ""},
	{"access-write", "", "--", ">>"},
	{"composition", "*", "--", ">"},
	{"aggregation", "o", "--", ">"},
	{"assignment", "+", "--", ">"},
	{"reverse-assignment", "<", "--", "+"},
	{"reverse-solid", "<", "-", ""},
	{"reverse-dashed", "<", ".", ""},
	{"plain-solid", "", "-", ">"},
	{"plain-dashed", "", ".", ">"},
	{"flow", "", "~~", ">"},
	{"association", "", "--", ""},
}

// shape is a classified token. For tokens matching no known pattern the
// whole token is carried in seg and known is false; such tokens pass
// through segment transforms untouched unless the token itself is a bare
// segment.
type shape struct {
	head  string
	seg   string
	tail  string
	known bool
}

// classify decomposes a token against the pattern table. A pattern
// matches when the token is exactly head + segment + tail.
func classify(token string) shape {
	for _, p := range patterns {
		if len(token) < len(p.head)+len(p.seg)+len(p.tail) {
			continue
		}
		if !strings.HasPrefix(token, p.head) || !strings.HasSuffix(token, p.tail) {
			continue
		}
		if token[len(p.head):len(token)-len(p.tail)] == p.seg {
			return shape{head: p.head, seg: p.seg, tail: p.tail, known: true}
		}
	}
	return shape{seg: token}
}

func (s *shape) render() string {
	return s.head + s.seg + s.tail
}

// segIsDashes reports whether the segment consists solely of dashes.
func (s *shape) segIsDashes() bool {
	if s.seg == "" {
		return false
	}
	return strings.Trim(s.seg, "-") == ""
}

// segIsTildes reports whether the segment consists solely of tildes.
func (s *shape) segIsTildes() bool {
	if s.seg == "" {
		return false
	}
	return strings.Trim(s.seg, "~") == ""
}

// Compose produces the arrow token for a relationship, applying in
// order: base token (or explicit override), orientation, line style,
// compass direction, length modifier, trailing color.
func Compose(r *model.Relationship) string {
	token, ok := baseTokens[r.Type]
	if !ok {
		token = fallbackToken
	}
	if r.ArrowOverride != "" {
		token = r.ArrowOverride
	}

	s := classify(token)

	switch r.Orientation {
	case model.OrientHorizontal:
		if s.seg == "--" {
			s.seg = "-"
		}
	case model.OrientDot:
		if s.segIsDashes() || s.segIsTildes() {
			s.seg = "."
		}
	}

	switch r.LineStyle {
	case model.LineDashed:
		if s.seg == "--" {
			s.seg = ".."
		}
	case model.LineDotted:
		if s.seg == "--" {
			s.seg = "-."
		}
	}

	if r.Direction != model.DirNone && s.known && s.seg != "" {
		s.seg = s.seg[:1] + string(r.Direction) + s.seg[len(s.seg)-1:]
	}

	token = s.render()

	if r.Length >= 1 && r.Length <= 5 {
		token = fmt.Sprintf("%s%d", token, r.Length)
	}

	if r.Color != "" {
		token += " #" + strings.TrimPrefix(r.Color, "#")
	}

	return token
}

// Line renders the full relationship line: quoted endpoint ids joined by
// the composed token, an optional label, and the hidden prefix when the
// positioning hint asks for it.
func Line(r *model.Relationship) string {
	var b strings.Builder
	if r.Hidden {
		b.WriteString("hidden ")
	}
	fmt.Fprintf(&b, "%q %s %q", r.Source, Compose(r), r.Target)
	if r.Label != "" {
		b.WriteString(" : ")
		b.WriteString(r.Label)
	}
	return b.String()
}
