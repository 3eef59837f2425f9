// Package layout computes deterministic 2D positions for diagram
// elements and routing points for relationships.
//
// Elements are bucketed into the canonical layer order (decreasing
// abstraction, Motivation down to Implementation) and placed row by row
// inside each layer band. Small layers get a single centered row sorted
// by centrality; larger layers are split into relationship-aware
// clusters so connected elements end up adjacent. The algorithm is
// deterministic: identical input graphs, in identical insertion order,
// always produce identical output.
package layout

import (
	"sort"

	"github.com/archigen/archigen/pkg/model"
)

// Point is an absolute canvas coordinate.
type Point struct {
	X int
	Y int
}

// Config carries the fixed spacing values of the layout grid.
type Config struct {
	LayerHeight  int // vertical space between layer bands
	ElementWidth int // horizontal pitch per element
	MarginX      int // left margin
	MarginY      int // top margin
	CanvasWidth  int // assumed canvas width for centering
	RowCapacity  int // max elements per row
	RowSpacing   int // vertical pitch between rows inside one layer

	// Relationship routing thresholds and offsets.
	BendThresholdY int // y distance treated as a layer crossing
	BendThresholdX int // x distance below which routing stays vertical
	BendOffsetX    int // x offset from the element origin for midpoints
	BendOffsetY    int // y offset from the element edge for L-paths
}

// DefaultConfig returns the standard layout grid.
func DefaultConfig() Config {
	return Config{
		LayerHeight:    160,
		ElementWidth:   300,
		MarginX:        80,
		MarginY:        80,
		CanvasWidth:    1200,
		RowCapacity:    3,
		RowSpacing:     100,
		BendThresholdY: 80,
		BendThresholdX: 100,
		BendOffsetX:    100,
		BendOffsetY:    30,
	}
}

// adjacency records outgoing and incoming neighbor ids per element.
type adjacency map[string]*links

type links struct {
	out []string
	in  []string
}

func buildAdjacency(d *model.Diagram) adjacency {
	adj := make(adjacency, d.ElementCount())
	for _, e := range d.Elements() {
		adj[e.ID] = &links{}
	}
	for _, r := range d.Relationships() {
		if l, ok := adj[r.Source]; ok {
			l.out = append(l.out, r.Target)
		}
		if l, ok := adj[r.Target]; ok {
			l.in = append(l.in, r.Source)
		}
	}
	return adj
}

func (a adjacency) centrality(id string) int {
	l := a[id]
	if l == nil {
		return 0
	}
	return len(l.out) + len(l.in)
}

func (a adjacency) connects(from, to string) bool {
	l := a[from]
	if l == nil {
		return false
	}
	for _, id := range l.out {
		if id == to {
			return true
		}
	}
	return false
}

func (a adjacency) connectedFrom(to, from string) bool {
	l := a[to]
	if l == nil {
		return false
	}
	for _, id := range l.in {
		if id == from {
			return true
		}
	}
	return false
}

// Positions computes the coordinate for every element. Empty input
// yields an empty, non-nil map.
func Positions(d *model.Diagram, cfg Config) map[string]Point {
	positions := make(map[string]Point, d.ElementCount())
	if d.ElementCount() == 0 {
		return positions
	}

	adj := buildAdjacency(d)
	buckets := bucketByLayer(d)

	y := cfg.MarginY
	for _, layer := range model.LayerOrder() {
		bucket := buckets[layer]
		if len(bucket) == 0 {
			continue
		}

		// Central elements first. The sort is stable so insertion order
		// breaks ties.
		sorted := make([]*model.Element, len(bucket))
		copy(sorted, bucket)
		sort.SliceStable(sorted, func(i, j int) bool {
			return adj.centrality(sorted[i].ID) > adj.centrality(sorted[j].ID)
		})

		if len(sorted) <= cfg.RowCapacity {
			placeSingleRow(positions, sorted, y, cfg)
		} else {
			placeClustered(positions, sorted, adj, y, cfg)
		}

		y += cfg.LayerHeight
	}

	return positions
}

// bucketByLayer groups elements by layer, preserving insertion order.
// Elements with an unrecognized layer land in Business.
func bucketByLayer(d *model.Diagram) map[model.Layer][]*model.Element {
	buckets := make(map[model.Layer][]*model.Element)
	for _, e := range d.Elements() {
		layer := e.Layer
		if !layer.Valid() {
			layer = model.LayerBusiness
		}
		buckets[layer] = append(buckets[layer], e)
	}
	return buckets
}

func placeSingleRow(positions map[string]Point, sorted []*model.Element, y int, cfg Config) {
	centerOffset := (cfg.CanvasWidth - len(sorted)*cfg.ElementWidth) / 2
	x := cfg.MarginX
	if centerOffset > x {
		x = centerOffset
	}
	for _, e := range sorted {
		positions[e.ID] = Point{X: x, Y: y}
		x += cfg.ElementWidth
	}
}

func placeClustered(positions map[string]Point, sorted []*model.Element, adj adjacency, y int, cfg Config) {
	x := cfg.MarginX
	rowY := y
	inRow := 0
	for _, cluster := range clusterRelated(sorted, adj, cfg.RowCapacity) {
		for _, e := range cluster {
			positions[e.ID] = Point{X: x, Y: rowY}
			x += cfg.ElementWidth
			inRow++
			if inRow >= cfg.RowCapacity {
				x = cfg.MarginX
				rowY += cfg.RowSpacing
				inRow = 0
			}
		}
	}
}

// clusterRelated greedily groups connected elements. Each cluster starts
// from the most central remaining element and grows by the candidate
// scoring highest against the current members; when nothing scores above
// zero the next remaining element is taken so progress never stalls.
// Ties always resolve to the earliest candidate, keeping the result
// deterministic.
func clusterRelated(elements []*model.Element, adj adjacency, capacity int) [][]*model.Element {
	remaining := make([]*model.Element, len(elements))
	copy(remaining, elements)

	var clusters [][]*model.Element
	for len(remaining) > 0 {
		seedIdx := 0
		for i, e := range remaining {
			if adj.centrality(e.ID) > adj.centrality(remaining[seedIdx].ID) {
				seedIdx = i
			}
		}
		cluster := []*model.Element{remaining[seedIdx]}
		remaining = append(remaining[:seedIdx], remaining[seedIdx+1:]...)

		for len(cluster) < capacity && len(remaining) > 0 {
			bestIdx := -1
			bestScore := -1
			for i, cand := range remaining {
				score := 0
				for _, member := range cluster {
					if adj.connects(member.ID, cand.ID) {
						score += 2
					}
					if adj.connectedFrom(member.ID, cand.ID) {
						score += 2
					}
					if adj.connects(cand.ID, member.ID) {
						score += 1
					}
					if adj.connectedFrom(cand.ID, member.ID) {
						score += 1
					}
				}
				if score > bestScore {
					bestScore = score
					bestIdx = i
				}
			}
			if bestScore > 0 {
				cluster = append(cluster, remaining[bestIdx])
				remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
			} else {
				cluster = append(cluster, remaining[0])
				remaining = remaining[1:]
			}
		}

		clusters = append(clusters, cluster)
	}
	return clusters
}

// Bendpoints computes routing points between two positioned elements.
// Same-layer (or near-same-layer) connections get none. Layer-crossing
// connections get a single near-vertical midpoint when the endpoints are
// roughly stacked, otherwise two points forming an L-shaped path whose
// exit side follows the sign of the horizontal offset.
func Bendpoints(src, tgt Point, cfg Config) []Point {
	dx := tgt.X - src.X
	dy := tgt.Y - src.Y

	if abs(dy) <= cfg.BendThresholdY {
		return nil
	}

	if abs(dx) < cfg.BendThresholdX {
		return []Point{{X: src.X + cfg.BendOffsetX, Y: src.Y + dy/2}}
	}

	if dx > 0 {
		return []Point{
			{X: src.X + cfg.BendOffsetX + 50, Y: src.Y + cfg.BendOffsetY},
			{X: tgt.X - 50, Y: tgt.Y - cfg.BendOffsetY},
		}
	}
	return []Point{
		{X: src.X - 50, Y: src.Y + cfg.BendOffsetY},
		{X: tgt.X + cfg.BendOffsetX + 50, Y: tgt.Y - cfg.BendOffsetY},
	}
}

// Route computes the routing points for a relationship against a
// position map. Relationships with unpositioned endpoints get none.
func Route(positions map[string]Point, r *model.Relationship, cfg Config) []Point {
	src, ok := positions[r.Source]
	if !ok {
		return nil
	}
	tgt, ok := positions[r.Target]
	if !ok {
		return nil
	}
	return Bendpoints(src, tgt, cfg)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
