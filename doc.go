// Package suffixtree builds a suffix tree over a single text, using a
// fixed byte alphabet, with Ukkonen's online construction, and answers
// substring queries against it.
//
// The tree is built once from a text and an [Alphabet] and is read-only
// afterwards. Internally it is an arena: nodes and edges live in two
// append-only slices and refer to each other by index rather than by
// pointer, which keeps construction allocation-light and makes the whole
// structure trivially inspectable.
//
//	idx, err := suffixtree.Build([]byte("mississippi"), suffixtree.LowercaseAlphabet())
//	if err != nil {
//		panic(err)
//	}
//	idx.IndexOf([]byte("issi")) // 1
package suffixtree
