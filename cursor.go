package suffixtree

// activePoint locates a position in the tree: a node it descended from,
// the edge it is on (noEdge if sitting exactly at the node), and how many
// characters of that edge have been matched. depth is always 0 when edge
// is noEdge, and always in [1, edgeLen) otherwise.
type activePoint struct {
	node  nodeRef
	edge  edgeRef
	depth int
}

// walkDownOne advances the cursor by exactly one character c, which the
// caller guarantees exists on the tree from the current position. This is
// Ukkonen's Rule 3: it never allocates, it only moves the cursor,
// normalizing onto the next node when the current edge is exhausted.
func (a *arena) walkDownOne(ap *activePoint, alphabet *Alphabet, text []byte, c byte) {
	if ap.depth == 0 {
		idx := alphabet.IndexOf(c)
		ap.edge = a.nodes[ap.node].children[idx]
	}
	ap.depth++
	if ap.depth == a.edgeLen(ap.edge, len(text)) {
		ap.node = a.edges[ap.edge].target
		ap.edge = noEdge
		ap.depth = 0
	}
}

// followSuffixLink moves the cursor to the suffix of the string it
// currently spells out, used by Rule 2 after creating a new branch. It
// jumps to the current node's suffix link and, if the cursor was sitting
// mid-edge, rescans forward from there using skip/count so the rescan
// costs one edge hop per node crossed rather than one comparison per
// character.
//
// Panics if the current node's suffix link has not been set yet; that
// would mean an earlier extension round left an inner node without its
// link, which is a bug in the builder, not a reachable runtime state.
func (a *arena) followSuffixLink(ap *activePoint, alphabet *Alphabet, text []byte) {
	link := a.nodes[ap.node].suffixLink
	if link == unsetSuffixLink {
		panic("suffixtree: suffix link consulted before being set")
	}
	if ap.depth == 0 {
		ap.node = link
		ap.edge = noEdge
		return
	}

	sourceStart := a.edges[ap.edge].start
	depth := ap.depth
	ap.node = link
	processed := 0
	for {
		c := text[sourceStart+processed]
		idx := alphabet.IndexOf(c)
		er := a.nodes[ap.node].children[idx]
		elen := a.edgeLen(er, len(text))
		if depth-processed >= elen {
			processed += elen
			ap.node = a.edges[er].target
			if processed == depth {
				ap.edge = noEdge
				ap.depth = 0
				return
			}
			continue
		}
		ap.edge = er
		ap.depth = depth - processed
		return
	}
}
