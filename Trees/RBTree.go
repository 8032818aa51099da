package Trees

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// RBTree is a red-black binary search tree. Repeated values are kept: an
// inserted value goes to the right of every equal value on its search path.
// The height D of a tree holding n values is at most 2*log2(n+1).
// All missing children, and the parent of the root, are the tree's nilPtr.
// RBTree doesn't track its size and isn't safe for concurrent use; readers
// may share a tree only while nothing mutates it.
// A RBTree shouldn't be created with a struct literal; use MakeRBTree or
// MakeRBTreeWith.
type RBTree[T constraints.Ordered] struct {
	root   *Node[T] // nilPtr when empty
	nilPtr *Node[T]
	log    *logrus.Logger
	checks bool
}

// MakeRBTree returns an empty tree using DefaultConfig.
func MakeRBTree[T constraints.Ordered]() *RBTree[T] {
	return MakeRBTreeWith[T](DefaultConfig())
}

// MakeRBTreeWith returns an empty tree using cfg.
func MakeRBTreeWith[T constraints.Ordered](cfg Config) *RBTree[T] {
	z := newSentinel[T]()
	if cfg.Logger == nil {
		cfg.Logger = Log
	}
	return &RBTree[T]{root: z, nilPtr: z, log: cfg.Logger, checks: cfg.CheckInvariants}
}

// Empty reports whether the tree holds no value.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) Empty() bool {
	return u.root == u.nilPtr
}

// Clear drops every value. Handles obtained before are no longer part of the tree.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) Clear() {
	u.root = u.nilPtr
}

// Search returns the node holding v. When v repeats, it is the first equal
// node met from the root.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Search(v T) (*Node[T], bool) {
	if n := u.search(v); n != u.nilPtr {
		return n, true
	}
	return nil, false
}

// Has v in the tree.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Has(v T) bool {
	return u.search(v) != u.nilPtr
}

func (u *RBTree[T]) search(v T) *Node[T] {
	cur := u.root
	for cur != u.nilPtr {
		if v == cur.v {
			return cur
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r // also taken by values that compare with nothing, like NaN
		}
	}
	return u.nilPtr
}

// Minimum value of the tree; false if the tree is empty.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Minimum() (T, bool) {
	n := u.minNode(u.root)
	return n.v, n != u.nilPtr
}

// Maximum value of the tree; false if the tree is empty.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Maximum() (T, bool) {
	n := u.maxNode(u.root)
	return n.v, n != u.nilPtr
}

// Predecessor returns the greatest value strictly less than v.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor returns the smallest value strictly greater than v.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Insert v. It always succeeds; repeated values are kept.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Insert(v T) {
	p, cur := u.nilPtr, u.root
	for cur != u.nilPtr {
		p = cur
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	z := &Node[T]{v: v, c: red, l: u.nilPtr, r: u.nilPtr, p: p}
	if p == u.nilPtr {
		u.root = z
	} else if v < p.v {
		p.l = z
	} else {
		p.r = z
	}
	u.insertFixup(z)
	u.check("insert")
}

// insertFixup removes the red-red edge between z and its parent, if any.
// Every pass either moves the violation two levels up or ends it with at most
// two rotations.
func (u *RBTree[T]) insertFixup(z *Node[T]) {
	for z.p.c == red {
		g := z.p.p // red parent is never the root, so g isn't the sentinel
		if z.p == g.l {
			if y := g.r; y.c == red {
				u.trace("insert", "red uncle", z)
				z.p.c, y.c, g.c = black, black, red
				z = g
				continue
			}
			if z == z.p.r {
				u.trace("insert", "triangle", z)
				z = z.p
				u.rotateLeft(z)
			}
			u.trace("insert", "line", z)
			z.p.c, g.c = black, red
			u.rotateRight(g)
		} else {
			if y := g.l; y.c == red {
				u.trace("insert", "red uncle", z)
				z.p.c, y.c, g.c = black, black, red
				z = g
				continue
			}
			if z == z.p.l {
				u.trace("insert", "triangle", z)
				z = z.p
				u.rotateRight(z)
			}
			u.trace("insert", "line", z)
			z.p.c, g.c = black, red
			u.rotateLeft(g)
		}
	}
	u.root.c = black
}

// Delete one occurrence of v. Deleting an absent value does nothing.
// When the deleted node has two children, its in-order successor node is
// moved into its place, so handles to every other value stay valid.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Delete(v T) {
	z := u.search(v)
	if z == u.nilPtr {
		return
	}
	removed := z.c
	var x *Node[T] // the node now in the removed slot, possibly the sentinel
	if z.l == u.nilPtr {
		x = z.r
		u.transplant(z, z.r)
	} else if z.r == u.nilPtr {
		x = z.l
		u.transplant(z, z.l)
	} else {
		y := u.minNode(z.r)
		removed = y.c
		x = y.r
		if y.p == z {
			x.p = y
		} else {
			u.transplant(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.c = z.c
	}
	if removed == black {
		u.deleteFixup(x)
	}
	z.l, z.r, z.p = nil, nil, nil
	u.resetSentinel()
	u.check("delete")
}

// transplant replaces the subtree at a with the one at b. Colors are untouched.
// b.p is written even when b is the sentinel; deleteFixup relies on it.
func (u *RBTree[T]) transplant(a, b *Node[T]) {
	if a.p == u.nilPtr {
		u.root = b
	} else if a == a.p.l {
		a.p.l = b
	} else {
		a.p.r = b
	}
	b.p = a.p
}

// deleteFixup pays the black missing on every path through x. x may be the
// sentinel, whose parent link transplant has just set.
func (u *RBTree[T]) deleteFixup(x *Node[T]) {
	for x != u.root && x.c == black {
		if x == x.p.l {
			w := x.p.r
			if w.c == red {
				u.trace("delete", "red sibling", x)
				w.c, x.p.c = black, red
				u.rotateLeft(x.p)
				w = x.p.r
			}
			if w.l.c == black && w.r.c == black {
				u.trace("delete", "black nephews", x)
				w.c = red
				x = x.p
				continue
			}
			if w.r.c == black {
				u.trace("delete", "near nephew red", x)
				w.l.c, w.c = black, red
				u.rotateRight(w)
				w = x.p.r
			}
			u.trace("delete", "far nephew red", x)
			w.c, x.p.c, w.r.c = x.p.c, black, black
			u.rotateLeft(x.p)
			x = u.root
		} else {
			w := x.p.l
			if w.c == red {
				u.trace("delete", "red sibling", x)
				w.c, x.p.c = black, red
				u.rotateRight(x.p)
				w = x.p.l
			}
			if w.l.c == black && w.r.c == black {
				u.trace("delete", "black nephews", x)
				w.c = red
				x = x.p
				continue
			}
			if w.l.c == black {
				u.trace("delete", "near nephew red", x)
				w.r.c, w.c = black, red
				u.rotateLeft(w)
				w = x.p.l
			}
			u.trace("delete", "far nephew red", x)
			w.c, x.p.c, w.l.c = x.p.c, black, black
			u.rotateRight(x.p)
			x = u.root
		}
	}
	x.c = black
}

func (u *RBTree[T]) resetSentinel() {
	z := u.nilPtr
	z.l, z.r, z.p, z.c = z, z, z, black
}

func (u *RBTree[T]) trace(op, c string, n *Node[T]) {
	if u.log.IsLevelEnabled(logrus.TraceLevel) {
		u.log.WithFields(logrus.Fields{"op": op, "case": c, "key": n.v}).Trace("fixup")
	}
}

func (u *RBTree[T]) check(op string) {
	if !u.checks {
		return
	}
	if err := u.Verify(); err != nil {
		u.log.WithFields(logrus.Fields{"op": op}).WithError(err).Error("red-black tree corrupt")
		panic(err)
	}
}
