package packer

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon absorbs float rounding when comparing coordinates, so that boxes
// whose widths sum to the pallet width still fit side by side.
const Epsilon = 1e-9

var (
	ErrOutOfBounds = errors.New("interval outside skyline")
	ErrOverlap     = errors.New("placement overlaps occupied depth")
)

// Node is a skyline breakpoint: from X up to the next node's X the occupied
// depth is Z.
type Node struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Gap is the span between two adjacent breakpoints.
type Gap struct {
	Index int
	X     float64
	Width float64
	Z     float64
}

// Skyline records the occupied depth along the pallet width within one layer.
// The last node is a sentinel at x = width whose Z is never read.
type Skyline struct {
	width float64
	nodes []Node
}

func NewSkyline(width float64) *Skyline {
	return &Skyline{
		width: width,
		nodes: []Node{{X: 0, Z: 0}, {X: width, Z: 0}},
	}
}

func (s *Skyline) Width() float64 {
	return s.width
}

// Nodes returns a copy of the breakpoints, sentinel included.
func (s *Skyline) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

func (s *Skyline) sentinel() int {
	return len(s.nodes) - 1
}

// maxZ 返回 nodes[i..j-1] 中最大的 z
func (s *Skyline) maxZ(i, j int) float64 {
	z := s.nodes[i].Z
	for k := i + 1; k < j; k++ {
		if s.nodes[k].Z > z {
			z = s.nodes[k].Z
		}
	}
	return z
}

// span finds the smallest j > i whose breakpoint is at least width away from
// nodes[i], together with the depth profile maximum under that footprint.
func (s *Skyline) span(i int, width float64) (int, float64, bool) {
	for j := i + 1; j <= s.sentinel(); j++ {
		if s.nodes[j].X-s.nodes[i].X >= width-Epsilon {
			return j, s.maxZ(i, j), true
		}
	}
	return 0, 0, false
}

// FindPlacement returns the anchor for a width x depth footprint that ends up
// with the lowest front face, leftmost on ties. bound is the pallet depth.
func (s *Skyline) FindPlacement(width, depth, bound float64) (float64, float64, bool) {
	var bestX, bestZ float64
	found := false
	for i := 0; i < s.sentinel(); i++ {
		_, z, ok := s.span(i, width)
		if !ok {
			break
		}
		if z+depth > bound+Epsilon {
			continue
		}
		if !found || z < bestZ {
			bestX, bestZ, found = s.nodes[i].X, z, true
		}
	}
	return bestX, bestZ, found
}

func (s *Skyline) Gaps() []Gap {
	gaps := make([]Gap, 0, s.sentinel())
	for i := 0; i < s.sentinel(); i++ {
		gaps = append(gaps, Gap{
			Index: i,
			X:     s.nodes[i].X,
			Width: s.nodes[i+1].X - s.nodes[i].X,
			Z:     s.maxZ(i, i+1),
		})
	}
	return gaps
}

// DepthAt returns the occupied depth of the segment containing x.
func (s *Skyline) DepthAt(x float64) float64 {
	z := s.nodes[0].Z
	for _, n := range s.nodes[:s.sentinel()] {
		if n.X > x+Epsilon {
			break
		}
		z = n.Z
	}
	return z
}

// MaxDepth returns the highest occupied depth over [x, x+width).
func (s *Skyline) MaxDepth(x, width float64) float64 {
	end := x + width
	z := s.DepthAt(x)
	for _, n := range s.nodes[:s.sentinel()] {
		if n.X > x+Epsilon && n.X < end-Epsilon && n.Z > z {
			z = n.Z
		}
	}
	return z
}

// Commit overwrites the occupied depth of [x, x+width) with top.
func (s *Skyline) Commit(x, width, top float64) error {
	end := x + width
	if width <= 0 || x < -Epsilon || end > s.width+Epsilon {
		return fmt.Errorf("commit [%g, %g) on width %g: %w", x, end, s.width, ErrOutOfBounds)
	}
	x, end = s.snap(x), min(s.snap(end), s.width)
	if end <= x {
		return fmt.Errorf("commit [%g, %g) on width %g: %w", x, end, s.width, ErrOutOfBounds)
	}

	last := s.sentinel()
	next := make([]Node, 0, len(s.nodes)+2)
	for _, n := range s.nodes[:last] {
		if n.X < x {
			next = append(next, n)
		}
	}
	next = append(next, Node{X: x, Z: top})
	if end < s.width {
		next = append(next, Node{X: end, Z: s.DepthAt(end)})
		for _, n := range s.nodes[:last] {
			if n.X > end {
				next = append(next, n)
			}
		}
	}
	next = append(next, s.nodes[last])

	s.nodes = mergeRuns(next)
	return nil
}

// snap moves x onto an existing breakpoint lying within Epsilon of it.
func (s *Skyline) snap(x float64) float64 {
	for _, n := range s.nodes {
		if math.Abs(n.X-x) <= Epsilon {
			return n.X
		}
	}
	return x
}

// mergeRuns drops breakpoints that repeat the previous depth. The sentinel is
// always kept.
func mergeRuns(nodes []Node) []Node {
	last := len(nodes) - 1
	out := make([]Node, 1, len(nodes))
	out[0] = nodes[0]
	for _, n := range nodes[1:last] {
		if n.Z != out[len(out)-1].Z {
			out = append(out, n)
		}
	}
	return append(out, nodes[last])
}

// CheckInvariants reports the first broken profile invariant, if any.
func (s *Skyline) CheckInvariants() error {
	if len(s.nodes) < 2 {
		return fmt.Errorf("skyline has %d nodes", len(s.nodes))
	}
	if s.nodes[0].X != 0 {
		return fmt.Errorf("first node at x=%g, want 0", s.nodes[0].X)
	}
	if x := s.nodes[s.sentinel()].X; x != s.width {
		return fmt.Errorf("sentinel at x=%g, want %g", x, s.width)
	}
	for i := 1; i < len(s.nodes); i++ {
		if s.nodes[i].X <= s.nodes[i-1].X {
			return fmt.Errorf("node %d x=%g not after x=%g", i, s.nodes[i].X, s.nodes[i-1].X)
		}
		if i < s.sentinel() && s.nodes[i].Z == s.nodes[i-1].Z {
			return fmt.Errorf("nodes %d and %d share z=%g", i-1, i, s.nodes[i].Z)
		}
	}
	return nil
}
