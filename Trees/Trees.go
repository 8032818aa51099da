// Package Trees provides RBTree, a red-black tree over ordered values, and
// Index, the contract external code should depend on.
package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Index is an ordered multiset of values. It's the only surface callers such
// as test harnesses or storage layers should use; node colors and links are
// implementation details.
// Receivers that return a bool as the second value use it to tell whether
// the first one is defined.
type Index[T constraints.Ordered] interface {
	//Insert v. Always succeeds; repeated values are kept.
	Insert(v T)
	//Search the node holding v. (nil, false) when v is absent.
	Search(v T) (*Node[T], bool)
	//Delete one occurrence of v. No-op when v is absent.
	Delete(v T)
	//Traverse the values in the given order without modifying the index.
	Traverse(o Order) iter.Seq[T]
}

var _ Index[int] = (*RBTree[int])(nil)
