package model

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

// Offset is a relative (Δrow, Δcol) step from a position to a neighbor.
type Offset struct {
	DRow int
	DCol int
}

// Topology is the structural class of a position on a non-wrapping board.
type Topology int

const (
	Interior Topology = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
	// Isolated is the only cell of a 1x1 board. It has no neighbors.
	Isolated
)

// offsets holds the neighbor set of every class. Applied to a position of
// that class, each offset lands inside the board.
var offsets = [...][]Offset{
	Interior: {
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	},
	CornerTopLeft:     {{0, 1}, {1, 0}, {1, 1}},
	CornerTopRight:    {{0, -1}, {1, -1}, {1, 0}},
	CornerBottomLeft:  {{-1, 0}, {-1, 1}, {0, 1}},
	CornerBottomRight: {{-1, -1}, {-1, 0}, {0, -1}},
	EdgeTop:           {{0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}},
	EdgeBottom:        {{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}},
	EdgeLeft:          {{-1, 0}, {-1, 1}, {0, 1}, {1, 0}, {1, 1}},
	EdgeRight:         {{-1, -1}, {-1, 0}, {0, -1}, {1, -1}, {1, 0}},
	Isolated:          {},
}

var topologyNames = [...]string{
	Interior:          "interior",
	CornerTopLeft:     "corner-top-left",
	CornerTopRight:    "corner-top-right",
	CornerBottomLeft:  "corner-bottom-left",
	CornerBottomRight: "corner-bottom-right",
	EdgeTop:           "edge-top",
	EdgeBottom:        "edge-bottom",
	EdgeLeft:          "edge-left",
	EdgeRight:         "edge-right",
	Isolated:          "isolated",
}

// Classify returns the topology class of p on an n x n board.
// Corners are checked before edges since a corner satisfies two edge conditions.
func Classify(p Position, n int) Topology {
	last := n - 1
	switch {
	case n == 1:
		return Isolated
	case p.Row == 0 && p.Col == 0:
		return CornerTopLeft
	case p.Row == 0 && p.Col == last:
		return CornerTopRight
	case p.Row == last && p.Col == 0:
		return CornerBottomLeft
	case p.Row == last && p.Col == last:
		return CornerBottomRight
	case p.Row == 0:
		return EdgeTop
	case p.Row == last:
		return EdgeBottom
	case p.Col == 0:
		return EdgeLeft
	case p.Col == last:
		return EdgeRight
	default:
		return Interior
	}
}

// Offsets returns the static neighbor offsets of the class. The slice is
// shared and must not be modified.
func (t Topology) Offsets() []Offset {
	if t < 0 || int(t) >= len(offsets) {
		return nil
	}
	return offsets[t]
}

func (t Topology) String() string {
	if t < 0 || int(t) >= len(topologyNames) {
		return "unknown"
	}
	return topologyNames[t]
}

// IsCorner reports whether t is one of the four corner classes.
func (t Topology) IsCorner() bool {
	return t >= CornerTopLeft && t <= CornerBottomRight
}

// IsEdge reports whether t is one of the four edge classes.
func (t Topology) IsEdge() bool {
	return t >= EdgeTop && t <= EdgeRight
}
