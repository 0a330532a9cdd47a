package suffixtree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, text string) *Index {
	t.Helper()
	ix, err := Build([]byte(text), ASCIIPrintableAlphabet())
	require.NoError(t, err)
	return ix
}

func TestIndexOfSeedScenarios(t *testing.T) {
	cases := []struct {
		text, pattern string
		want          int
		contains      bool
	}{
		{"mississipi", "issip", 4, true},
		{"mississipi", "ssi", 2, true},
		{"mississipi", "xyz", -1, false},
		{"mississipi", "", 0, true},
		{"banana", "ana", 1, true},
		{"aaaaa", "aaa", 0, true},
		{"abcde", "abcdef", -1, false},
	}
	for _, c := range cases {
		ix := mustBuild(t, c.text)
		got := ix.IndexOf([]byte(c.pattern))
		assert.Equal(t, c.want, got, "IndexOf(%q, %q)", c.text, c.pattern)
		assert.Equal(t, c.contains, ix.Contains([]byte(c.pattern)), "Contains(%q, %q)", c.text, c.pattern)
	}
}

func TestBuildRejectsSentinelInText(t *testing.T) {
	_, err := Build([]byte("abc"+string(sentinelByte)), LowercaseAlphabet())
	assert.ErrorIs(t, err, ErrSentinelInText)
}

func TestBuildRejectsOutOfAlphabetText(t *testing.T) {
	_, err := Build([]byte("abc123"), LowercaseAlphabet())
	assert.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestEmptyText(t *testing.T) {
	ix := mustBuild(t, "")
	assert.Equal(t, 0, ix.IndexOf([]byte("")))
	assert.Equal(t, -1, ix.IndexOf([]byte("a")))
	assert.False(t, ix.Contains([]byte("a")))
}

func TestSingleCharacterText(t *testing.T) {
	ix := mustBuild(t, "a")
	assert.Equal(t, 0, ix.IndexOf([]byte("a")))
	assert.Equal(t, -1, ix.IndexOf([]byte("b")))
}

func TestRepeatedCharacterText(t *testing.T) {
	ix := mustBuild(t, "aaaaa")
	assert.Equal(t, 0, ix.IndexOf([]byte("aaaaa")))
	assert.Equal(t, 0, ix.IndexOf([]byte("aaaa")))
	assert.Equal(t, -1, ix.IndexOf([]byte("aaaaaa")))
}

func TestPatternLongerThanText(t *testing.T) {
	ix := mustBuild(t, "abc")
	assert.Equal(t, -1, ix.IndexOf([]byte("abcd")))
}

func TestPatternEqualsText(t *testing.T) {
	ix := mustBuild(t, "mississipi")
	assert.Equal(t, 0, ix.IndexOf([]byte("mississipi")))
}

func TestPatternPrefixSuffixInterior(t *testing.T) {
	ix := mustBuild(t, "mississipi")
	assert.Equal(t, 0, ix.IndexOf([]byte("miss"))) // prefix
	assert.Equal(t, 8, ix.IndexOf([]byte("pi")))   // suffix
	assert.Equal(t, 3, ix.IndexOf([]byte("siss"))) // interior
}

func TestOccurrences(t *testing.T) {
	ix := mustBuild(t, "banana")
	got := ix.Occurrences([]byte("ana"))
	sort.Ints(got)
	assert.Equal(t, []int{1, 3}, got)

	got = ix.Occurrences([]byte("a"))
	sort.Ints(got)
	assert.Equal(t, []int{1, 3, 5}, got)

	assert.Nil(t, ix.Occurrences([]byte("xyz")))
}

func TestSearchIsDeterministic(t *testing.T) {
	ix := mustBuild(t, "mississipi")
	first := ix.IndexOf([]byte("ssi"))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ix.IndexOf([]byte("ssi")))
	}
}
