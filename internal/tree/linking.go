package tree

import (
	"fmt"
	"strings"
)

// Linking selects how each turn's nodes are attached to the tree.
type Linking int

const (
	// BreadthFirst fills the tree level by level. A FIFO queue starts with the
	// root; each turn takes the next parent from it, puts white on Left and
	// black on Right, then queues white and black in that order.
	BreadthFirst Linking = iota
	// Chain hangs the first white move on root.Left and every later white
	// move on the previous white's Left. A black reply is the Right child
	// of its own turn's white move.
	Chain
	// DualSpine keeps white moves on the root's right spine and black moves
	// on its left spine.
	DualSpine
)

func (l Linking) String() string {
	switch l {
	case BreadthFirst:
		return "bfs"
	case Chain:
		return "chain"
	case DualSpine:
		return "spine"
	default:
		return "unknown"
	}
}

// ParseLinking maps a config value to a Linking.
func ParseLinking(s string) (Linking, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	case "chain":
		return Chain, nil
	case "spine", "dual-spine":
		return DualSpine, nil
	default:
		return BreadthFirst, fmt.Errorf("unknown linking %q", s)
	}
}

// linker attaches one turn. It returns false when there is no slot left.
type linker interface {
	link(white, black *MoveNode) bool
}

func newLinker(l Linking, root *MoveNode) linker {
	switch l {
	case Chain:
		return &chainLinker{last: root}
	case DualSpine:
		return &spineLinker{white: root, black: root}
	default:
		return &queueLinker{queue: []*MoveNode{root}}
	}
}

type queueLinker struct {
	queue []*MoveNode
}

func (q *queueLinker) link(white, black *MoveNode) bool {
	if len(q.queue) == 0 {
		return false
	}
	parent := q.queue[0]
	q.queue = q.queue[1:]

	if white != nil {
		parent.Left = white
		q.queue = append(q.queue, white)
	}
	if black != nil {
		parent.Right = black
		q.queue = append(q.queue, black)
	}
	return true
}

type chainLinker struct {
	last *MoveNode
}

func (c *chainLinker) link(white, black *MoveNode) bool {
	if white == nil {
		// A black move needs its turn's white move to hang from.
		return true
	}
	c.last.Left = white
	c.last = white
	if black != nil {
		white.Right = black
	}
	return true
}

type spineLinker struct {
	white *MoveNode
	black *MoveNode
}

func (s *spineLinker) link(white, black *MoveNode) bool {
	if white != nil {
		s.white.Right = white
		s.white = white
	}
	if black != nil {
		s.black.Left = black
		s.black = black
	}
	return true
}
