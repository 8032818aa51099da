package Trees

import (
	"iter"
	"strconv"

	"github.com/g-m-twostay/go-rbtree/Queues"
)

// Order of a traversal.
type Order uint8

const (
	InOrder    Order = iota // ascending
	PreOrder                // node, left, right
	PostOrder               // left, right, node
	LevelOrder              // breadth first, left to right
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// Traverse returns the values of the tree in order o. The sequence is lazy
// and can be ranged over any number of times; each range starts from the
// root. The tree mustn't be modified while a range is in progress. Panics if
// o isn't one of the declared orders.
// Time: O(n) for a full range; Space: O(D), O(n) for LevelOrder.
func (u *RBTree[T]) Traverse(o Order) iter.Seq[T] {
	switch o {
	case InOrder:
		return u.inOrder
	case PreOrder:
		return u.preOrder
	case PostOrder:
		return u.postOrder
	case LevelOrder:
		return u.levelOrder
	}
	panic("Trees: unknown traversal " + o.String())
}

// All is Traverse(InOrder).
func (u *RBTree[T]) All() iter.Seq[T] {
	return u.inOrder
}

func (u *RBTree[T]) inOrder(yield func(T) bool) {
	st := make([]*Node[T], 0, 32)
	for cur := u.root; cur != u.nilPtr || len(st) > 0; cur = cur.r {
		for ; cur != u.nilPtr; cur = cur.l {
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if !yield(cur.v) {
			return
		}
	}
}

func (u *RBTree[T]) preOrder(yield func(T) bool) {
	if u.root == u.nilPtr {
		return
	}
	st := append(make([]*Node[T], 0, 32), u.root)
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !yield(cur.v) {
			return
		}
		if cur.r != u.nilPtr {
			st = append(st, cur.r)
		}
		if cur.l != u.nilPtr {
			st = append(st, cur.l)
		}
	}
}

func (u *RBTree[T]) postOrder(yield func(T) bool) {
	st := make([]*Node[T], 0, 32)
	last, cur := u.nilPtr, u.root
	for cur != u.nilPtr || len(st) > 0 {
		for ; cur != u.nilPtr; cur = cur.l {
			st = append(st, cur)
		}
		top := st[len(st)-1]
		if top.r != u.nilPtr && top.r != last {
			cur = top.r // right subtree not visited yet
			continue
		}
		st = st[:len(st)-1]
		if !yield(top.v) {
			return
		}
		last = top
	}
}

func (u *RBTree[T]) levelOrder(yield func(T) bool) {
	if u.root == u.nilPtr {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		if !yield(cur.v) {
			return
		}
		if cur.l != u.nilPtr {
			q.Push(cur.l)
		}
		if cur.r != u.nilPtr {
			q.Push(cur.r)
		}
	}
}

// Height is the number of nodes on the longest root to leaf path, 0 for an
// empty tree.
// Time: O(n); Space: O(n)
func (u *RBTree[T]) Height() uint {
	if u.root == u.nilPtr {
		return 0
	}
	var h uint
	q := Queues.MakeArrayQueue[*Node[T]](16)
	q.Push(u.root)
	for !q.Empty() {
		h++
		for i := q.Size(); i > 0; i-- {
			cur, _ := q.Pop()
			if cur.l != u.nilPtr {
				q.Push(cur.l)
			}
			if cur.r != u.nilPtr {
				q.Push(cur.r)
			}
		}
	}
	return h
}
