package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey constrains the key types accepted by the tree containers.
// byte => ~uint8 and rune => ~int32, so both are covered by Integer.
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator reports the order of i relative to j.
// Assume i is the probe key:
//  1. i == j, return 0.
//  2. i > j, return 1, turn to the right part.
//  3. i < j, return -1, turn to the left part.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64
