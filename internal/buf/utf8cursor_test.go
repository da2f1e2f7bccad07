package buf

import "testing"

func TestUtfCursorNextAscii(t *testing.T) {
	b := NewByteBufferFromString("abc")
	u := NewUtfCursor(b)
	if got := u.Next(0); got != 1 {
		t.Errorf("Next(0) = %d, want 1", got)
	}
	if got := u.Next(2); got != 3 {
		t.Errorf("Next(2) = %d, want 3", got)
	}
	if got := u.Next(3); got != 3 {
		t.Errorf("Next(3) = %d, want 3 (at end)", got)
	}
}

func TestUtfCursorNextMultibyte(t *testing.T) {
	// "a" + euro sign (U+20AC, 3 bytes) + "b"
	b := NewByteBufferFromString("a€b")
	u := NewUtfCursor(b)
	if got := u.Next(1); got != 4 {
		t.Errorf("Next(1) = %d, want 4", got)
	}
	if got := u.Next(4); got != 5 {
		t.Errorf("Next(4) = %d, want 5", got)
	}
}

func TestUtfCursorPrevMultibyte(t *testing.T) {
	b := NewByteBufferFromString("a€b")
	u := NewUtfCursor(b)
	if got := u.Prev(5); got != 4 {
		t.Errorf("Prev(5) = %d, want 4", got)
	}
	if got := u.Prev(4); got != 1 {
		t.Errorf("Prev(4) = %d, want 1", got)
	}
	if got := u.Prev(0); got != 0 {
		t.Errorf("Prev(0) = %d, want 0", got)
	}
}

func TestUtfCursorMalformedBytesConsumeFollowingContinuations(t *testing.T) {
	// a lone continuation byte followed by another continuation byte:
	// Next treats the byte at i as the lead and absorbs the run of
	// continuation bytes that follows it, same as the C original.
	b := NewByteBufferFromString(string([]byte{0x80, 0x80, 'a'}))
	u := NewUtfCursor(b)
	if got := u.Next(0); got != 2 {
		t.Errorf("Next(0) = %d, want 2", got)
	}
}
