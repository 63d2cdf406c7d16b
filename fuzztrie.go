package fuzztrie

import (
	"golang.org/x/exp/slices"
)

// node is a single node of the compressed trie: label is the non-empty
// byte string of the edge leading into it from its parent (empty only for
// the root), terminal marks whether the root-to-node concatenation is a
// stored entry, and children holds at most one entry per distinct first
// byte (siblings never share a first byte — see insertPath/removePath).
type node struct {
	label    []byte
	terminal bool
	children map[byte]*node
}

func newNode(label []byte, terminal bool) *node {
	return &node{label: label, terminal: terminal, children: make(map[byte]*node)}
}

// sortedChildBytes returns this node's children's first bytes in
// ascending order, so traversals visit children in lexicographic order.
func (n *node) sortedChildBytes() []byte {
	keys := make([]byte, 0, len(n.children))
	for b := range n.children {
		keys = append(keys, b)
	}
	slices.Sort(keys)
	return keys
}

// Trie is a path-compressed trie over byte strings. The zero value is not
// usable; construct one with New.
type Trie struct {
	root        *node
	entrySet    map[string]struct{}
	mutable     bool
	allowIndels bool
}

// New builds a Trie holding entries, which may contain duplicates (they
// collapse silently into one stored copy). An empty string entry marks
// the root terminal.
//
// When allowIndels is false, fuzzy search only ever considers
// substitutions, so a query can only match an entry of the same length.
// When immutable is true, Add and Remove fail with ErrImmutable.
func New(entries []string, allowIndels, immutable bool) *Trie {
	t := &Trie{
		root:        newNode(nil, false),
		entrySet:    make(map[string]struct{}, len(entries)),
		mutable:     !immutable,
		allowIndels: allowIndels,
	}
	for _, e := range entries {
		t.insert(e)
	}
	return t
}

// Entries returns every stored entry in lexicographic order.
func (t *Trie) Entries() []string {
	out := make([]string, 0, len(t.entrySet))
	var walk func(n *node, prefix []byte)
	walk = func(n *node, prefix []byte) {
		if n.terminal {
			out = append(out, string(prefix))
		}
		for _, b := range n.sortedChildBytes() {
			c := n.children[b]
			next := make([]byte, 0, len(prefix)+len(c.label))
			next = append(next, prefix...)
			next = append(next, c.label...)
			walk(c, next)
		}
	}
	walk(t.root, nil)
	return out
}

// equalPrefix returns the smallest offset below len(a) and len(b) at
// which a and b differ, or the length of the shorter of the two if they
// don't differ anywhere in that range. It is the trie's one byte-compare
// primitive: every exact label-matching call site (insert, remove and the
// longest-prefix descent) goes through it, so a host that wants a
// SIMD-accelerated compare only has to replace this function. The fuzzy
// descent compares label bytes one at a time and does not use it.
func equalPrefix(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
