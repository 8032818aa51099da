package Trees

import "fmt"

// InvariantError describes a broken red-black tree. It's only produced by
// Verify; a correct tree never yields one.
type InvariantError struct {
	Rule string // which property failed
	Key  any    // value of the offending node; nil for the sentinel
	Msg  string
}

func (e *InvariantError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("red-black tree: %s: %s", e.Rule, e.Msg)
	}
	return fmt.Sprintf("red-black tree: %s at %v: %s", e.Rule, e.Key, e.Msg)
}

// Verify checks the tree and returns the first violation found, or nil:
//   - the sentinel is black and its links point to itself;
//   - the root is black and its parent is the sentinel;
//   - no node is reachable twice through child links;
//   - every child's parent link points back to its parent;
//   - no red node has a red child;
//   - every root to sentinel path has the same number of black nodes;
//   - the in-order sequence is non-decreasing.
//
// Time: O(n); Space: O(n)
func (u *RBTree[T]) Verify() error {
	z := u.nilPtr
	if z.c != black {
		return &InvariantError{Rule: "sentinel", Msg: "sentinel is red"}
	}
	if z.l != z || z.r != z || z.p != z {
		return &InvariantError{Rule: "sentinel", Msg: "sentinel links aren't reset"}
	}
	if u.root == z {
		return nil
	}
	if u.root.c != black {
		return &InvariantError{Rule: "black root", Key: u.root.v, Msg: "root is red"}
	}
	if u.root.p != z {
		return &InvariantError{Rule: "parent link", Key: u.root.v, Msg: "root has a parent"}
	}

	type frame struct {
		n      *Node[T]
		blacks int
	}
	want := -1
	seen := map[*Node[T]]struct{}{u.root: {}}
	st := []frame{{u.root, 0}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		n := f.n
		if n.c == black {
			f.blacks++
		}
		for _, c := range [2]*Node[T]{n.l, n.r} {
			if c == z {
				if want < 0 {
					want = f.blacks
				} else if f.blacks != want {
					return &InvariantError{Rule: "black height", Key: n.v,
						Msg: fmt.Sprintf("path has %d black nodes, want %d", f.blacks, want)}
				}
				continue
			}
			if _, in := seen[c]; in {
				return &InvariantError{Rule: "shape", Key: c.v, Msg: fmt.Sprintf("reached again from %v", n.v)}
			}
			seen[c] = struct{}{}
			if c.p != n {
				return &InvariantError{Rule: "parent link", Key: c.v, Msg: fmt.Sprintf("parent should be %v", n.v)}
			}
			if n.c == red && c.c == red {
				return &InvariantError{Rule: "red edge", Key: c.v, Msg: fmt.Sprintf("red child of red %v", n.v)}
			}
			st = append(st, frame{c, f.blacks})
		}
	}

	first, prev := true, *new(T)
	for v := range u.inOrder {
		if !first && v < prev {
			return &InvariantError{Rule: "order", Key: v, Msg: fmt.Sprintf("follows greater value %v", prev)}
		}
		first, prev = false, v
	}
	return nil
}
