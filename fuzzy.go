package fuzztrie

// visitFunc is called by the shared budget-bounded descent at every
// terminal node it reaches within budget. path is the full entry bytes
// reconstructed so far, qpos is how much of the query was consumed to get
// there, and remaining is what's left of the edit budget. Returning true
// stops the whole search (used for early termination once a zero-distance
// match is found).
type visitFunc func(path []byte, qpos, remaining int) bool

// fuzzyDescend is the shared fuzzy-search engine: a budget-bounded
// recursive descent of the compressed trie rooted at root, walking query
// bytes against compressed edge labels. At each position along a label it
// may branch into four moves: Match/Substitute a query byte against
// the current edge byte (cost 0 or 1), or — when allowIndels is set —
// Insert (consume an edge byte without consuming a query byte) or Delete
// (consume a query byte without consuming an edge byte), each costing one
// unit of budget. A branch is abandoned as soon as its remaining budget
// goes negative.
//
// When openEnded is false, a terminal node only counts as a match once the
// whole query has been consumed (with any unconsumed tail treated as a run
// of trailing deletes, when allowIndels allows it) — this is the mode
// Search and SearchCount use, where the query is the complete string to
// match. When openEnded is true, any terminal node reached within budget
// counts as a match regardless of how much of the query remains unread —
// this is the mode SearchSubstring uses, since its "query" is the rest of
// the haystack from some start offset and a match may legitimately end
// long before that.
func fuzzyDescend(root *node, q []byte, budget int, allowIndels, openEnded bool, visit visitFunc) {
	atNode(root, nil, q, 0, budget, allowIndels, openEnded, visit)
}

func atNode(n *node, path []byte, q []byte, qpos, remaining int, allowIndels, openEnded bool, visit visitFunc) bool {
	if remaining < 0 {
		return false
	}
	if n.terminal {
		switch {
		case openEnded:
			if visit(path, qpos, remaining) {
				return true
			}
		case qpos == len(q):
			if visit(path, qpos, remaining) {
				return true
			}
		case allowIndels:
			extra := len(q) - qpos
			if remaining-extra >= 0 {
				if visit(path, len(q), remaining-extra) {
					return true
				}
			}
		}
	}
	for _, b := range n.sortedChildBytes() {
		c := n.children[b]
		if descendEdge(c, c.label, 0, path, q, qpos, remaining, allowIndels, openEnded, visit) {
			return true
		}
	}
	return false
}

// descendEdge walks label byte by byte starting at lpos, exploring the
// Match/Substitute/Insert/Delete moves at each position, and hands off to
// atNode once the whole label has been consumed.
func descendEdge(n *node, label []byte, lpos int, pathPrefix []byte, q []byte, qpos, remaining int, allowIndels, openEnded bool, visit visitFunc) bool {
	if remaining < 0 {
		return false
	}
	if lpos == len(label) {
		full := make([]byte, 0, len(pathPrefix)+len(label))
		full = append(full, pathPrefix...)
		full = append(full, label...)
		return atNode(n, full, q, qpos, remaining, allowIndels, openEnded, visit)
	}
	eb := label[lpos]
	if qpos < len(q) {
		cost := 1
		if q[qpos] == eb {
			cost = 0
		}
		if descendEdge(n, label, lpos+1, pathPrefix, q, qpos+1, remaining-cost, allowIndels, openEnded, visit) {
			return true
		}
	}
	if allowIndels {
		// Insert into Q: consume the edge byte without consuming a query byte.
		if descendEdge(n, label, lpos+1, pathPrefix, q, qpos, remaining-1, allowIndels, openEnded, visit) {
			return true
		}
		// Delete from Q: consume a query byte without consuming the edge byte.
		if qpos < len(q) {
			if descendEdge(n, label, lpos, pathPrefix, q, qpos+1, remaining-1, allowIndels, openEnded, visit) {
				return true
			}
		}
	}
	return false
}

// Search returns the stored entry closest to query within budget edits,
// and the distance achieved, minimizing distance and breaking ties by
// lexicographically smallest entry. budget=0 is equivalent to Contains.
func (t *Trie) Search(query string, budget int) (entry string, distance int, found bool, err error) {
	if budget < 0 {
		return "", -1, false, invalidArgument("Search", "correction budget must be >= 0")
	}
	if e, d, ok := t.searchExact(query); ok {
		return e, d, ok, nil
	}
	if budget == 0 {
		return "", -1, false, nil
	}
	q := []byte(query)
	bestEntry, bestDist := "", budget+1
	visit := func(path []byte, qpos, remaining int) bool {
		dist := budget - remaining
		candidate := string(path)
		if !found || dist < bestDist || (dist == bestDist && candidate < bestEntry) {
			bestEntry, bestDist, found = candidate, dist, true
		}
		return dist == 0
	}
	fuzzyDescend(t.root, q, budget, t.allowIndels, false, visit)
	if !found {
		return "", -1, false, nil
	}
	return bestEntry, bestDist, true, nil
}

// SearchCount returns the number of distinct stored entries within budget
// edits of query.
func (t *Trie) SearchCount(query string, budget int) (int, error) {
	if budget < 0 {
		return 0, invalidArgument("SearchCount", "correction budget must be >= 0")
	}
	if budget == 0 {
		if t.Contains(query) {
			return 1, nil
		}
		return 0, nil
	}
	q := []byte(query)
	seen := make(map[string]struct{})
	visit := func(path []byte, qpos, remaining int) bool {
		seen[string(path)] = struct{}{}
		return false
	}
	fuzzyDescend(t.root, q, budget, t.allowIndels, false, visit)
	return len(seen), nil
}
