package escape

// newByteSet returns a set representation
// of the bytes in the given string.
func newByteSet(s string) *byteSet {
	var set byteSet
	for i := 0; i < len(s); i++ {
		set.set(s[i])
	}
	return &set
}

// byteSet is a compact set of byte values.
type byteSet [4]uint64

// get reports whether b holds the byte x.
func (b *byteSet) get(x uint8) bool {
	return b[x>>6]&(1<<(x&63)) != 0
}

// set ensures that x is in the set.
func (b *byteSet) set(x uint8) {
	b[x>>6] |= 1 << (x & 63)
}

// containsAny reports whether any byte of s is in the set.
func (b *byteSet) containsAny(s string) bool {
	for i := 0; i < len(s); i++ {
		if b.get(s[i]) {
			return true
		}
	}
	return false
}
