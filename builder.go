package suffixtree

import "go.uber.org/zap"

// Builder runs Ukkonen's online construction over a fully-known text,
// extending the tree by one character at a time. It owns the per-instance
// leaf counter: each Builder allocates its own leaf numbers starting at
// -1, so two trees built concurrently never share or race on leaf
// identity.
type Builder struct {
	arena    *arena
	text     []byte
	alphabet *Alphabet

	root  nodeRef
	dummy nodeRef
	ap    activePoint

	nextLeaf nodeRef
	logger   *zap.Logger
}

func newBuilder(a *arena, text []byte, alphabet *Alphabet, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		arena:    a,
		text:     text,
		alphabet: alphabet,
		nextLeaf: 0,
		logger:   logger,
	}
}

// initRootAndDummy creates the root and its dummy superroot. The dummy
// has one edge of length 1 back to root for every symbol of the alphabet,
// which makes the very first extension round behave like every other one:
// following root's suffix link lands on the dummy, and the dummy always
// has a path for whatever character comes next, so Rule 2 never applies
// there and the dummy's own suffix link is never followed.
func (b *Builder) initRootAndDummy() {
	root := b.arena.newNode()
	dummy := b.arena.newNode()

	b.arena.nodes[dummy].suffixLink = dummy
	b.arena.nodes[root].suffixLink = dummy

	for idx := 0; idx < b.alphabet.Size(); idx++ {
		er := b.arena.newEdge()
		b.arena.edges[er] = edge{start: -1, length: 1, target: root}
		b.arena.nodes[dummy].children[idx] = er
	}

	b.root = root
	b.dummy = dummy
	b.ap = activePoint{node: root, edge: noEdge, depth: 0}
}

// build runs one extension round per character of text, in order.
func (b *Builder) build() {
	for i := 0; i < len(b.text); i++ {
		b.extend(i)
	}
}

// extend runs one round of Ukkonen's algorithm for text[i]: Rule 2 as many
// times as needed to branch every suffix that lacks a continuation, then
// Rule 3 once to advance the cursor over the matched character.
//
// Rule 2 has two flavors, handled by the two loops below: splitting
// partway through an existing edge, and adding a fresh leaf edge directly
// from a node. Only splitting creates inner nodes: each one created in a
// round gets its suffix link set to the next one split in the same round,
// and the last one to the node the cursor stands at once splitting stops,
// per Ukkonen's invariant that every node created in one round links to
// the node (new or pre-existing) reached after following its suffix.
func (b *Builder) extend(i int) {
	c := b.text[i]
	b.logger.Debug("extend", zap.Int("pos", i), zap.ByteString("char", []byte{c}))
	lastCreated := b.dummy

	if b.isPositionInEdgeWithoutPath(i) {
		lastCreated = b.addNodeIn()
		b.createNewEdgeToLeafFromNode(i, lastCreated)
		b.arena.followSuffixLink(&b.ap, b.alphabet, b.text)
	}
	for b.isPositionInEdgeWithoutPath(i) {
		newNode := b.addNodeIn()
		b.arena.nodes[lastCreated].suffixLink = newNode
		lastCreated = newNode
		b.createNewEdgeToLeafFromNode(i, newNode)
		b.arena.followSuffixLink(&b.ap, b.alphabet, b.text)
	}

	b.arena.nodes[lastCreated].suffixLink = b.ap.node

	for b.isPositionInNodeWithoutPath(i) {
		b.createNewEdgeToLeafFromNode(i, b.ap.node)
		b.arena.followSuffixLink(&b.ap, b.alphabet, b.text)
	}

	b.arena.walkDownOne(&b.ap, b.alphabet, b.text, c)
}

// isPositionInEdgeWithoutPath reports whether the cursor sits mid-edge and
// the next character on that edge differs from text[pos] — the condition
// for splitting.
func (b *Builder) isPositionInEdgeWithoutPath(pos int) bool {
	if b.ap.depth == 0 {
		return false
	}
	e := b.arena.edges[b.ap.edge]
	return b.text[e.start+b.ap.depth] != b.text[pos]
}

// isPositionInNodeWithoutPath reports whether the cursor sits exactly at a
// node that has no outgoing edge for text[pos] — the condition for adding
// a fresh leaf edge.
func (b *Builder) isPositionInNodeWithoutPath(pos int) bool {
	if b.ap.depth != 0 {
		return false
	}
	idx := b.alphabet.IndexOf(b.text[pos])
	return b.arena.nodes[b.ap.node].children[idx] == noEdge
}

// addNodeIn splits the cursor's current edge at its current depth,
// inserting a fresh inner node at the split point. The lower half keeps
// the original edge's target (leaf or inner); the upper half, reusing the
// original edge's slot, now points at the new node. Returns the new node.
func (b *Builder) addNodeIn() nodeRef {
	oldRef := b.ap.edge
	depth := b.ap.depth
	start0 := b.arena.edges[oldRef].start
	target0 := b.arena.edges[oldRef].target
	chPos := start0 + depth
	ch := b.text[chPos]

	newEdgeRef := b.arena.newEdge()
	newNodeRef := b.arena.newNode()

	b.arena.edges[newEdgeRef].start = chPos
	b.arena.edges[newEdgeRef].target = target0
	if target0 >= 0 {
		b.arena.edges[newEdgeRef].length = b.arena.edges[oldRef].length - depth
	}

	b.arena.edges[oldRef].length = depth
	b.arena.edges[oldRef].target = newNodeRef

	idx := b.alphabet.IndexOf(ch)
	b.arena.nodes[newNodeRef].children[idx] = newEdgeRef

	return newNodeRef
}

// createNewEdgeToLeafFromNode attaches a fresh leaf edge starting at pos
// directly to nodeAddr. The edge's length is never stored: as a
// leaf-targeting edge, arena.edgeLen derives it from the text length.
func (b *Builder) createNewEdgeToLeafFromNode(pos int, nodeAddr nodeRef) {
	leaf := b.allocLeaf()
	er := b.arena.newEdge()
	b.arena.edges[er] = edge{start: pos, target: leaf}
	idx := b.alphabet.IndexOf(b.text[pos])
	b.arena.nodes[nodeAddr].children[idx] = er
}

// allocLeaf hands out the next leaf number for this builder, counting
// down from -1 so leaf refs never collide with inner node refs.
func (b *Builder) allocLeaf() nodeRef {
	b.nextLeaf--
	return b.nextLeaf
}
