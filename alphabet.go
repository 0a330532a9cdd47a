package suffixtree

import "fmt"

// sentinelByte terminates every text indexed by Build. It always occupies
// index 0 of an Alphabet's table and can never appear in caller-supplied
// text or be passed explicitly to NewAlphabet.
const sentinelByte = '$'

// maxAlphabetSize is the size of the lookup table backing an Alphabet: one
// entry per possible byte value.
const maxAlphabetSize = 256

// Alphabet is a closed set of bytes a tree can be built over, plus the
// implicit sentinel. It maps each member byte to a dense index in
// [0, Size()), used throughout the package to size and address per-node
// child arrays.
type Alphabet struct {
	table [maxAlphabetSize]int16
	size  int
}

// NewAlphabet builds an Alphabet containing the sentinel plus every byte in
// chars. Duplicate bytes and the sentinel itself are rejected.
func NewAlphabet(chars ...byte) (Alphabet, error) {
	var a Alphabet
	for i := range a.table {
		a.table[i] = -1
	}
	a.table[sentinelByte] = 0
	a.size = 1

	for _, c := range chars {
		if c == sentinelByte {
			return Alphabet{}, ErrSentinelReserved
		}
		if a.table[c] != -1 {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateAlphabetChar, c)
		}
		if a.size >= maxAlphabetSize {
			return Alphabet{}, ErrAlphabetTooLarge
		}
		a.table[c] = int16(a.size)
		a.size++
	}
	return a, nil
}

// Size reports the number of distinct symbols in the alphabet, sentinel
// included.
func (a Alphabet) Size() int {
	return a.size
}

// IndexOf returns the dense index of c, or -1 if c is not a member.
func (a Alphabet) IndexOf(c byte) int {
	return int(a.table[c])
}

// ContainsOnly reports whether every byte of s belongs to the alphabet.
func (a Alphabet) ContainsOnly(s []byte) bool {
	for _, c := range s {
		if a.IndexOf(c) < 0 {
			return false
		}
	}
	return true
}

// ASCIIPrintableAlphabet is the printable ASCII range 0x20-0x7e, excluding
// the sentinel byte, mirroring the common default alphabet used by most
// callers of the original implementation this package descends from.
func ASCIIPrintableAlphabet() Alphabet {
	chars := make([]byte, 0, '~'-' '+1)
	for c := byte(' '); c <= '~'; c++ {
		if c == sentinelByte {
			continue
		}
		chars = append(chars, c)
	}
	a, err := NewAlphabet(chars...)
	if err != nil {
		panic(err)
	}
	return a
}

// LowercaseAlphabet covers the 26 lowercase ASCII letters.
func LowercaseAlphabet() Alphabet {
	chars := make([]byte, 0, 26)
	for c := byte('a'); c <= 'z'; c++ {
		chars = append(chars, c)
	}
	a, err := NewAlphabet(chars...)
	if err != nil {
		panic(err)
	}
	return a
}

// DNAAlphabet covers the four nucleotide bases.
func DNAAlphabet() Alphabet {
	a, err := NewAlphabet('A', 'C', 'G', 'T')
	if err != nil {
		panic(err)
	}
	return a
}
