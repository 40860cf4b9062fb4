package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testOrderedKeyCompare[K OrderedKey](i, j K) int64 {
	if i == j {
		return 0
	} else if i < j {
		return -1
	}
	return 1
}

func TestOrderedKeyComparator(t *testing.T) {
	var intCmp OrderedKeyComparator[int] = testOrderedKeyCompare[int]
	assert.Equal(t, int64(-1), intCmp(1, 2))
	assert.Equal(t, int64(0), intCmp(2, 2))
	assert.Equal(t, int64(1), intCmp(3, 2))

	var strCmp OrderedKeyComparator[string] = testOrderedKeyCompare[string]
	assert.Equal(t, int64(-1), strCmp("abc", "abd"))
	assert.Equal(t, int64(0), strCmp("abc", "abc"))
	assert.Equal(t, int64(1), strCmp("abd", "abc"))

	type myUint uint16
	var aliasCmp OrderedKeyComparator[myUint] = testOrderedKeyCompare[myUint]
	assert.Equal(t, int64(1), aliasCmp(myUint(7), myUint(3)))
}
