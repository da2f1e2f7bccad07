package buf

// isUTFCont reports whether c is a UTF-8 continuation byte.
func isUTFCont(c byte) bool {
	return c&0xc0 == 0x80
}

// UtfCursor steps byte offsets over UTF-8 codepoint boundaries within a
// byte buffer, treating malformed sequences as single-byte codepoints
// rather than decoding or validating them.
type UtfCursor struct {
	b *ByteBuffer
}

// NewUtfCursor returns a cursor stepping over b.
func NewUtfCursor(b *ByteBuffer) *UtfCursor {
	return &UtfCursor{b: b}
}

// Next returns the offset of the codepoint boundary following i, or
// Len() if i is already at or past the end.
func (u *UtfCursor) Next(i int) int {
	n := u.b.Len()
	if i >= n {
		return n
	}
	j := i + 1
	for j < n {
		c, _ := u.b.ByteAt(j)
		if !isUTFCont(c) {
			break
		}
		j++
	}
	return j
}

// Prev returns the offset of the codepoint boundary preceding i, or 0
// if i is already at the start.
func (u *UtfCursor) Prev(i int) int {
	if i == 0 {
		return 0
	}
	i--
	for i > 0 {
		c, _ := u.b.ByteAt(i)
		if !isUTFCont(c) {
			break
		}
		i--
	}
	return i
}
