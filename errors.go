package suffixtree

import "errors"

var (
	// ErrSentinelInText is returned by Build when the input text contains
	// the reserved sentinel byte, which Build appends internally.
	ErrSentinelInText = errors.New("suffixtree: text contains the reserved sentinel byte")

	// ErrAlphabetMismatch is returned by Build when the input text contains
	// a byte outside the supplied alphabet.
	ErrAlphabetMismatch = errors.New("suffixtree: text contains a byte outside the alphabet")

	// ErrSentinelReserved is returned by NewAlphabet when the caller passes
	// the sentinel byte explicitly; it is always implicit at index 0.
	ErrSentinelReserved = errors.New("suffixtree: sentinel byte is implicit and must not be passed to NewAlphabet")

	// ErrDuplicateAlphabetChar is returned by NewAlphabet when the same
	// byte appears more than once in the requested alphabet.
	ErrDuplicateAlphabetChar = errors.New("suffixtree: duplicate character in alphabet")

	// ErrAlphabetTooLarge is returned by NewAlphabet when more than 255
	// distinct characters are requested (the sentinel reserves index 0 of
	// the 256-entry table).
	ErrAlphabetTooLarge = errors.New("suffixtree: alphabet exceeds 255 characters, sentinel reserved at index 0")
)
