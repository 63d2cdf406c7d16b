package fuzztrie

// SearchSubstring locates a window text[start:end] such that some stored
// entry is within budget edits of it, minimizing distance, then start,
// then end-start. It tries every start offset in text and runs the fuzzy
// engine in its open-ended mode, which accepts a match at any terminal
// node without requiring the rest of text to be consumed — the matched
// length comes back from the engine as however much of the window it
// actually read to reach that terminal node.
func (t *Trie) SearchSubstring(text string, budget int) (entry string, distance, start, end int, found bool, err error) {
	if budget < 0 {
		return "", -1, -1, -1, false, invalidArgument("SearchSubstring", "correction budget must be >= 0")
	}
	tb := []byte(text)
	bestDist, bestStart, bestLen := budget + 1, -1, -1
	bestEntry := ""
	for s := 0; s <= len(tb); s++ {
		q := tb[s:]
		localDist, localLen := budget + 1, -1
		localEntry := ""
		localFound := false
		visit := func(path []byte, qpos, remaining int) bool {
			dist := budget - remaining
			length := qpos
			candidate := string(path)
			if !localFound || dist < localDist ||
				(dist == localDist && length < localLen) ||
				(dist == localDist && length == localLen && candidate < localEntry) {
				localEntry, localDist, localLen, localFound = candidate, dist, length, true
			}
			return dist == 0
		}
		fuzzyDescend(t.root, q, budget, t.allowIndels, true, visit)
		if !localFound {
			continue
		}
		if !found || localDist < bestDist ||
			(localDist == bestDist && s < bestStart) ||
			(localDist == bestDist && s == bestStart && localLen < bestLen) {
			bestEntry, bestDist, bestStart, bestLen, found = localEntry, localDist, s, localLen, true
		}
		if localDist == 0 {
			// Distance 0 at the smallest start scanned so far can never be
			// beaten: d has priority over start in the tie-break order.
			break
		}
	}
	if !found {
		return "", -1, -1, -1, false, nil
	}
	return bestEntry, bestDist, bestStart, bestStart + bestLen, true, nil
}

// LongestPrefixMatch returns the longest stored entry that is a prefix of
// text[start:] for some start, with length >= minMatchLength, breaking
// ties by the smallest start. Unlike Search/SearchSubstring this performs
// no fuzzy matching at all: it is a pure exact descent recording the
// deepest terminal node reached from each start.
func (t *Trie) LongestPrefixMatch(text string, minMatchLength int) (entry string, start, length int, found bool, err error) {
	if minMatchLength <= 0 {
		return "", -1, -1, false, invalidArgument("LongestPrefixMatch", "minMatchLength must be > 0")
	}
	tb := []byte(text)
	bestEntry, bestStart, bestLen, found := "", -1, -1, false
	for s := 0; s <= len(tb)-minMatchLength; s++ {
		e, l, ok := deepestTerminal(t.root, tb[s:])
		if !ok || l < minMatchLength {
			continue
		}
		if !found || l > bestLen {
			bestEntry, bestStart, bestLen, found = e, s, l, true
		}
	}
	if !found {
		return "", -1, -1, false, nil
	}
	return bestEntry, bestStart, bestLen, true, nil
}

// deepestTerminal descends along s from n following exact edge matches,
// returning the longest prefix of s that names a terminal node, if any.
func deepestTerminal(n *node, s []byte) (entry string, length int, found bool) {
	cur := n
	var path []byte
	pos := 0
	for {
		if cur.terminal {
			entry, length, found = string(path), pos, true
		}
		if pos >= len(s) {
			break
		}
		c, ok := cur.children[s[pos]]
		if !ok {
			break
		}
		shared := equalPrefix(c.label, s[pos:])
		if shared != len(c.label) {
			break
		}
		path = append(path, c.label...)
		pos += len(c.label)
		cur = c
	}
	return entry, length, found
}
