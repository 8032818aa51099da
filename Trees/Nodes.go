package Trees

import "golang.org/x/exp/constraints"

type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == black {
		return "black"
	}
	return "red"
}

// Node is a handle to a value stored in a RBTree. Only the key is exposed;
// links and color belong to the tree.
// A handle stays valid until the node holding it is deleted. Deleting other
// keys never moves a key into a different Node.
type Node[T constraints.Ordered] struct {
	v       T
	c       color
	l, r, p *Node[T]
}

// Key returns the value held by the node.
func (n *Node[T]) Key() T {
	return n.v
}

// newSentinel returns the black terminator of a tree. All of its links point
// back to itself; they are scratch during deletion and are never meaningful.
func newSentinel[T constraints.Ordered]() *Node[T] {
	z := &Node[T]{c: black}
	z.l, z.r, z.p = z, z, z
	return z
}

// rotateLeft around x. x.r must not be the sentinel.
//
//	    p               p
//	    |               |
//	    x               y
//	   / \             / \
//	  a   y    ->     x   c
//	     / \         / \
//	    b   c       a   b
//
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateLeft(x *Node[T]) {
	y := x.r
	x.r = y.l
	if y.l != u.nilPtr {
		y.l.p = x
	}
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
}

// rotateRight around y, the mirror of rotateLeft. y.l must not be the sentinel.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateRight(y *Node[T]) {
	x := y.l
	y.l = x.r
	if x.r != u.nilPtr {
		x.r.p = y
	}
	x.p = y.p
	if y.p == u.nilPtr {
		u.root = x
	} else if y == y.p.r {
		y.p.r = x
	} else {
		y.p.l = x
	}
	x.r = y
	y.p = x
}

// minNode returns the leftmost node under n, or the sentinel if n is the sentinel.
func (u *RBTree[T]) minNode(n *Node[T]) *Node[T] {
	if n == u.nilPtr {
		return n
	}
	for n.l != u.nilPtr {
		n = n.l
	}
	return n
}

func (u *RBTree[T]) maxNode(n *Node[T]) *Node[T] {
	if n == u.nilPtr {
		return n
	}
	for n.r != u.nilPtr {
		n = n.r
	}
	return n
}
