// Package buf provides the core text storage and positional mapping
// primitives: a flat growable byte store, UTF-8 codepoint-boundary
// stepping, and a cached line-start index.
package buf

// ByteBuffer is a growable flat byte store supporting arbitrary-offset
// insertion and deletion. It doubles capacity on growth, mirroring a
// realloc-by-doubling C buffer, and is the sole owner of the editor's
// text content.
type ByteBuffer struct {
	data []byte
}

// NewByteBuffer returns an empty buffer.
func NewByteBuffer() *ByteBuffer {
	return &ByteBuffer{data: make([]byte, 0, 64)}
}

// NewByteBufferFromString returns a buffer seeded with s.
func NewByteBufferFromString(s string) *ByteBuffer {
	b := &ByteBuffer{data: make([]byte, len(s))}
	copy(b.data, s)
	return b
}

// Len returns the number of bytes currently stored.
func (b *ByteBuffer) Len() int {
	return len(b.data)
}

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's storage and must not be retained across a mutating call.
func (b *ByteBuffer) Bytes() []byte {
	return b.data
}

// String returns the buffer's contents as a string.
func (b *ByteBuffer) String() string {
	return string(b.data)
}

// ByteAt returns the byte at off and true, or 0 and false if off is out
// of range.
func (b *ByteBuffer) ByteAt(off int) (byte, bool) {
	if off < 0 || off >= len(b.data) {
		return 0, false
	}
	return b.data[off], true
}

// Slice returns a copy of the bytes in [start,end).
func (b *ByteBuffer) Slice(start, end int) ([]byte, error) {
	if start < 0 || start > end || end > len(b.data) {
		return nil, ErrRangeInvalid
	}
	out := make([]byte, end-start)
	copy(out, b.data[start:end])
	return out, nil
}

// InsertAt inserts p at offset at, clamping at to [0,Len()]. It returns
// the offset immediately after the inserted bytes.
func (b *ByteBuffer) InsertAt(at int, p []byte) int {
	if at < 0 {
		at = 0
	}
	if at > len(b.data) {
		at = len(b.data)
	}
	n := len(b.data) + len(p)
	if cap(b.data) < n {
		nc := cap(b.data)
		if nc == 0 {
			nc = 64
		}
		for nc < n {
			nc *= 2
		}
		grown := make([]byte, len(b.data), nc)
		copy(grown, b.data)
		b.data = grown
	}
	b.data = b.data[:n]
	copy(b.data[at+len(p):], b.data[at:n-len(p)])
	copy(b.data[at:], p)
	return at + len(p)
}

// DeleteRange deletes the n bytes starting at at, clamping to the
// buffer's bounds. It returns the number of bytes actually removed.
func (b *ByteBuffer) DeleteRange(at, n int) int {
	if at >= len(b.data) || n <= 0 {
		return 0
	}
	if at+n > len(b.data) {
		n = len(b.data) - at
	}
	copy(b.data[at:], b.data[at+n:])
	b.data = b.data[:len(b.data)-n]
	return n
}

// SetLen truncates or zero-extends the buffer to exactly n bytes.
func (b *ByteBuffer) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(b.data) {
		b.data = b.data[:n]
		return
	}
	if cap(b.data) < n {
		grown := make([]byte, len(b.data), n)
		copy(grown, b.data)
		b.data = grown
	}
	old := len(b.data)
	b.data = b.data[:n]
	for i := old; i < n; i++ {
		b.data[i] = 0
	}
}
