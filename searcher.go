package suffixtree

// locate walks pattern down from root, returning the cursor's final
// position, the last edge that was fully consumed (needed when the walk
// ends exactly at a node boundary), and whether the whole pattern matched.
func locate(a *arena, alphabet *Alphabet, text []byte, root nodeRef, pattern []byte) (ap activePoint, lastCompletedEdge edgeRef, ok bool) {
	ap = activePoint{node: root, edge: noEdge, depth: 0}
	lastCompletedEdge = noEdge

	for _, c := range pattern {
		if ap.edge == noEdge {
			idx := alphabet.IndexOf(c)
			if idx < 0 {
				return ap, lastCompletedEdge, false
			}
			er := a.nodes[ap.node].children[idx]
			if er == noEdge {
				return ap, lastCompletedEdge, false
			}
			ap.edge = er
		}

		e := a.edges[ap.edge]
		if text[e.start+ap.depth] != c {
			return ap, lastCompletedEdge, false
		}
		ap.depth++
		if ap.depth == a.edgeLen(ap.edge, len(text)) {
			lastCompletedEdge = ap.edge
			ap.node = e.target
			ap.edge = noEdge
			ap.depth = 0
		}
	}
	return ap, lastCompletedEdge, true
}

// indexOf returns the starting offset of the leftmost occurrence of
// pattern in text, or -1 if pattern does not occur.
func indexOf(a *arena, alphabet *Alphabet, text []byte, root nodeRef, pattern []byte) int {
	if len(pattern) == 0 {
		return 0
	}
	ap, lastCompletedEdge, ok := locate(a, alphabet, text, root, pattern)
	if !ok {
		return -1
	}

	var edgeRefFinal edgeRef
	var offFinal int
	if ap.edge != noEdge {
		edgeRefFinal = ap.edge
		offFinal = ap.depth
	} else {
		edgeRefFinal = lastCompletedEdge
		offFinal = a.edgeLen(edgeRefFinal, len(text))
	}

	e := a.edges[edgeRefFinal]
	return e.start + offFinal - len(pattern)
}

// occurrences returns the starting offsets of every occurrence of pattern
// in text, in no particular order, by walking down to the node (or
// mid-edge point) where pattern ends and collecting every leaf beneath it.
// The empty pattern yields only offset 0.
func occurrences(a *arena, alphabet *Alphabet, text []byte, root nodeRef, pattern []byte) []int {
	if len(pattern) == 0 {
		return []int{0}
	}
	ap, _, ok := locate(a, alphabet, text, root, pattern)
	if !ok {
		return nil
	}

	var out []int
	if ap.edge == noEdge {
		collectLeavesUnder(a, ap.node, len(pattern), &out)
		return out
	}

	e := a.edges[ap.edge]
	depthBeforeEdge := len(pattern) - ap.depth
	if e.target < 0 {
		out = append(out, e.start-depthBeforeEdge)
		return out
	}
	collectLeavesUnder(a, e.target, depthBeforeEdge+e.length, &out)
	return out
}

// collectLeavesUnder appends the starting offset of every leaf reachable
// from n, given that n is reached after matching depth characters from
// root. A leaf's offset is its edge's start position minus the depth
// accumulated before that edge, since the path label up to the edge is
// exactly the depth-character prefix of the suffix it represents.
func collectLeavesUnder(a *arena, n nodeRef, depth int, out *[]int) {
	for _, er := range a.nodes[n].children {
		if er == noEdge {
			continue
		}
		e := a.edges[er]
		if e.target < 0 {
			*out = append(*out, e.start-depth)
			continue
		}
		collectLeavesUnder(a, e.target, depth+e.length, out)
	}
}
