// Package tree builds a binary tree of move nodes from SAN game text.
//
// A game always has a synthetic root that holds no move. How turns hang off
// that root is decided by the Builder's Linking convention; see Linking for
// what Left and Right mean under each one. Trees are append-only: a node is
// never re-parented after it is linked, and every Build call returns a fresh
// tree.
package tree

import (
	"github.com/vytor/santree/internal/errors"
	"github.com/vytor/santree/internal/san"
)

// MoveNode is one node of the game tree.
type MoveNode struct {
	Label string
	Move  *san.Move // nil on the root
	Turn  int       // 0 on the root
	Valid bool
	Left  *MoveNode
	Right *MoveNode
}

// IsRoot reports whether n is the synthetic start node.
func (n *MoveNode) IsRoot() bool {
	return n.Move == nil
}

// Game is the result of a Build call.
type Game struct {
	Root *MoveNode
	// Turns counts the turns that were linked into the tree.
	Turns int
	// Valid is false when at least one move failed validation.
	Valid   bool
	Invalid []*errors.MoveError
	// Truncated is set when linking ran out of parent slots and the scan stopped early.
	Truncated bool
}

// Moves returns the number of move nodes, excluding the root.
func (g *Game) Moves() int {
	if g == nil || g.Root == nil {
		return 0
	}
	return Count(g.Root) - 1
}

// Walk visits nodes depth-first, parent before children, left before right.
func Walk(root *MoveNode, fn func(n *MoveNode, depth int)) {
	walk(root, 0, fn)
}

func walk(n *MoveNode, depth int, fn func(*MoveNode, int)) {
	if n == nil {
		return
	}
	fn(n, depth)
	walk(n.Left, depth+1, fn)
	walk(n.Right, depth+1, fn)
}

// Count returns the number of nodes under and including root.
func Count(root *MoveNode) int {
	count := 0
	Walk(root, func(*MoveNode, int) { count++ })
	return count
}

// Labels returns node labels in Walk order.
func Labels(root *MoveNode) []string {
	var out []string
	Walk(root, func(n *MoveNode, _ int) { out = append(out, n.Label) })
	return out
}

// Notations returns the move notations in Walk order, skipping the root.
func Notations(root *MoveNode) []string {
	var out []string
	Walk(root, func(n *MoveNode, _ int) {
		if n.Move != nil {
			out = append(out, n.Move.Notation)
		}
	})
	return out
}

// Equal reports whether two trees have the same shape and labels.
func Equal(a, b *MoveNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Label == b.Label &&
		a.Valid == b.Valid &&
		Equal(a.Left, b.Left) &&
		Equal(a.Right, b.Right)
}
