package suffixtree

import (
	"fmt"

	"go.uber.org/zap"
)

// Index is a suffix tree built over one text. It is read-only: once Build
// returns, no operation mutates the arena.
type Index struct {
	text     []byte
	alphabet Alphabet
	arena    *arena
	root     nodeRef
}

// Build constructs an Index over text using alphabet. text must contain
// only bytes that belong to alphabet and must not contain the sentinel
// byte, which Build appends internally before running Ukkonen's
// construction.
func Build(text []byte, alphabet Alphabet, opts ...BuildOption) (*Index, error) {
	cfg := buildConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateText(text, alphabet); err != nil {
		return nil, err
	}

	expanded := make([]byte, len(text)+1)
	copy(expanded, text)
	expanded[len(text)] = sentinelByte

	a := newArena(alphabet.Size())
	b := newBuilder(a, expanded, &alphabet, cfg.logger)
	b.initRootAndDummy()
	b.build()

	return &Index{
		text:     expanded,
		alphabet: alphabet,
		arena:    a,
		root:     b.root,
	}, nil
}

func validateText(text []byte, alphabet Alphabet) error {
	for i, c := range text {
		if c == sentinelByte {
			return fmt.Errorf("%w: offset %d", ErrSentinelInText, i)
		}
		if alphabet.IndexOf(c) < 0 {
			return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrAlphabetMismatch, c, i)
		}
	}
	return nil
}

// IndexOf returns the starting offset of the leftmost occurrence of
// pattern, or -1 if pattern does not occur in the indexed text. The empty
// pattern always returns 0.
func (ix *Index) IndexOf(pattern []byte) int {
	return indexOf(ix.arena, &ix.alphabet, ix.text, ix.root, pattern)
}

// Contains reports whether pattern occurs in the indexed text.
func (ix *Index) Contains(pattern []byte) bool {
	return ix.IndexOf(pattern) != -1
}

// Occurrences returns the starting offset of every occurrence of pattern
// in the indexed text, in no particular order. It returns nil if pattern
// does not occur. The empty pattern returns just []int{0}, matching
// IndexOf, rather than every offset.
func (ix *Index) Occurrences(pattern []byte) []int {
	return occurrences(ix.arena, &ix.alphabet, ix.text, ix.root, pattern)
}
