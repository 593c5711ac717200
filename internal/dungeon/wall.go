package dungeon

import (
	"fmt"
	"strconv"
)

// Segment is one addressable slot along a wall. Its mesh is swapped at
// runtime to open or close a doorway. The zero value is an unset slot.
type Segment struct {
	mesh MeshRef
}

// Mesh returns the mesh currently occupying the segment. Empty means the
// slot was never assigned.
func (s *Segment) Mesh() MeshRef {
	return s.mesh
}

func (s *Segment) setMesh(m MeshRef) {
	s.mesh = m
}

// TaggedSegment is one input slot to BuildWall: the decimal index tag
// assigned to the segment in content, plus the mesh initially occupying it.
type TaggedSegment struct {
	Tag  string
	Mesh MeshRef
}

// SegmentedWall is a wall composed of one or more adjacent segments,
// each independently assignable. Size is fixed at build time.
type SegmentedWall struct {
	segments []*Segment
}

// BuildWall turns an unordered collection of tagged segments into a dense,
// index-addressable wall of len(children) segments. Each child's tag must
// parse as an integer in [0, len(children)).
//
// Two children carrying the same tag silently overwrite each other, last
// write wins; the displaced slot stays unset. Content authored that way is
// almost certainly wrong, but it is accepted here the same way the editor
// pipeline accepts it.
//
// Postcondition: On success the wall has exactly len(children) segments and
// every segment is non-nil.
func BuildWall(children []TaggedSegment) (*SegmentedWall, error) {
	segments := make([]*Segment, len(children))

	for _, child := range children {
		idx, err := parseSegmentTag(child.Tag)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(children) {
			return nil, fmt.Errorf("segment tag %q parses to index %d, wall has %d segments: %w",
				child.Tag, idx, len(children), ErrSegmentIndexOutOfRange)
		}
		segments[idx] = &Segment{mesh: child.Mesh}
	}

	// Duplicate tags leave holes; keep them addressable as unset slots.
	for i, seg := range segments {
		if seg == nil {
			segments[i] = &Segment{}
		}
	}

	return &SegmentedWall{segments: segments}, nil
}

func parseSegmentTag(tag string) (int, error) {
	if tag == "" {
		return 0, fmt.Errorf("segment is missing its index tag: %w", ErrInvalidSegmentTag)
	}
	idx, err := strconv.Atoi(tag)
	if err != nil {
		return 0, fmt.Errorf("segment tag %q is not numeric: %w", tag, ErrInvalidSegmentTag)
	}
	return idx, nil
}

// Len returns the number of segments in the wall.
func (w *SegmentedWall) Len() int {
	return len(w.segments)
}

// IsValidIndex reports whether i addresses a segment of this wall.
func (w *SegmentedWall) IsValidIndex(i int) bool {
	return i >= 0 && i < len(w.segments)
}

// Segment returns the segment at index i.
//
// Postcondition: Returns a non-nil segment, or ErrSegmentIndexOutOfRange if
// !IsValidIndex(i).
func (w *SegmentedWall) Segment(i int) (*Segment, error) {
	if !w.IsValidIndex(i) {
		return nil, fmt.Errorf("segment %d of a %d-segment wall: %w", i, len(w.segments), ErrSegmentIndexOutOfRange)
	}
	return w.segments[i], nil
}
