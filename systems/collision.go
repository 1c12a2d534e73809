package systems

import (
	"sort"

	"github.com/automoto/koopa/shared/gamemath"
	"github.com/automoto/koopa/tags"
	"github.com/solarlune/resolv"
)

// ColliderQuery returns the static colliders that may touch box, in the
// level's scan order. Implementations may return extra rects but never omit
// one that overlaps box.
type ColliderQuery interface {
	AppendCandidates(dst []gamemath.Rect, box gamemath.Rect) []gamemath.Rect
}

// SpatialIndex answers collider queries from a resolv space bucketed by tile.
// It returns the same rects, in the same order, as scanning every collider.
type SpatialIndex struct {
	space     *resolv.Space
	colliders []gamemath.Rect
	probe     *resolv.Object
	hits      []int
}

// NewSpatialIndex buckets colliders into a space covering width x height.
func NewSpatialIndex(colliders []gamemath.Rect, width, height, cellSize float64) *SpatialIndex {
	cell := max(int(cellSize), 1)
	space := resolv.NewSpace(int(width)+cell, int(height)+cell, cell, cell)

	idx := &SpatialIndex{
		space:     space,
		colliders: colliders,
	}
	for i, c := range colliders {
		obj := resolv.NewObject(c.X, c.Y, c.W, c.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, c.W, c.H))
		obj.Data = i // index into colliders, for scan order
		space.Add(obj)
	}

	idx.probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(idx.probe)
	return idx
}

func (s *SpatialIndex) AppendCandidates(dst []gamemath.Rect, box gamemath.Rect) []gamemath.Rect {
	// resolv maps an object to cells up to X+W-1, so pad the probe by one
	// unit to reach colliders that start on box's far edge.
	probe := box.Inflate(1)
	s.probe.X, s.probe.Y = probe.X, probe.Y
	s.probe.W, s.probe.H = probe.W, probe.H
	s.probe.Update()

	check := s.probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return dst
	}

	s.hits = s.hits[:0]
	seen := make(map[int]bool, len(check.Objects))
	for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
		i, ok := obj.Data.(int)
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		s.hits = append(s.hits, i)
	}
	sort.Ints(s.hits)

	for _, i := range s.hits {
		dst = append(dst, s.colliders[i])
	}
	return dst
}

// Len returns the number of indexed colliders.
func (s *SpatialIndex) Len() int { return len(s.colliders) }
