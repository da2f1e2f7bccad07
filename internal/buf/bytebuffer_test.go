package buf

import "testing"

func TestByteBufferInsertAt(t *testing.T) {
	b := NewByteBufferFromString("hello")
	end := b.InsertAt(5, []byte(" world"))
	if end != 11 {
		t.Errorf("InsertAt returned %d, want 11", end)
	}
	if got := b.String(); got != "hello world" {
		t.Errorf("String() = %q, want %q", got, "hello world")
	}
}

func TestByteBufferInsertAtMiddle(t *testing.T) {
	b := NewByteBufferFromString("helloworld")
	b.InsertAt(5, []byte(" "))
	if got := b.String(); got != "hello world" {
		t.Errorf("String() = %q, want %q", got, "hello world")
	}
}

func TestByteBufferInsertAtClampsOffset(t *testing.T) {
	b := NewByteBufferFromString("abc")
	b.InsertAt(100, []byte("!"))
	if got := b.String(); got != "abc!" {
		t.Errorf("String() = %q, want %q", got, "abc!")
	}
	b2 := NewByteBufferFromString("abc")
	b2.InsertAt(-5, []byte("!"))
	if got := b2.String(); got != "!abc" {
		t.Errorf("String() = %q, want %q", got, "!abc")
	}
}

func TestByteBufferDeleteRange(t *testing.T) {
	b := NewByteBufferFromString("hello world")
	n := b.DeleteRange(5, 6)
	if n != 6 {
		t.Errorf("DeleteRange returned %d, want 6", n)
	}
	if got := b.String(); got != "hello" {
		t.Errorf("String() = %q, want %q", got, "hello")
	}
}

func TestByteBufferDeleteRangeClampsLength(t *testing.T) {
	b := NewByteBufferFromString("hello")
	n := b.DeleteRange(2, 100)
	if n != 3 {
		t.Errorf("DeleteRange returned %d, want 3", n)
	}
	if got := b.String(); got != "he" {
		t.Errorf("String() = %q, want %q", got, "he")
	}
}

func TestByteBufferDeleteRangePastEnd(t *testing.T) {
	b := NewByteBufferFromString("hi")
	n := b.DeleteRange(5, 1)
	if n != 0 {
		t.Errorf("DeleteRange returned %d, want 0", n)
	}
	if got := b.String(); got != "hi" {
		t.Errorf("String() = %q, want %q", got, "hi")
	}
}

func TestByteBufferSlice(t *testing.T) {
	b := NewByteBufferFromString("hello world")
	got, err := b.Slice(6, 11)
	if err != nil {
		t.Fatalf("Slice returned error: %v", err)
	}
	if string(got) != "world" {
		t.Errorf("Slice = %q, want %q", got, "world")
	}
}

func TestByteBufferSliceInvalidRange(t *testing.T) {
	b := NewByteBufferFromString("hi")
	if _, err := b.Slice(1, 0); err != ErrRangeInvalid {
		t.Errorf("Slice(1,0) error = %v, want ErrRangeInvalid", err)
	}
	if _, err := b.Slice(0, 10); err != ErrRangeInvalid {
		t.Errorf("Slice(0,10) error = %v, want ErrRangeInvalid", err)
	}
}

func TestByteBufferGrowthPreservesContent(t *testing.T) {
	b := NewByteBuffer()
	want := ""
	for i := 0; i < 200; i++ {
		b.InsertAt(b.Len(), []byte("x"))
		want += "x"
	}
	if got := b.String(); got != want {
		t.Errorf("String() length = %d, want %d", len(got), len(want))
	}
}

func TestByteBufferSetLen(t *testing.T) {
	b := NewByteBufferFromString("hello")
	b.SetLen(3)
	if got := b.String(); got != "hel" {
		t.Errorf("String() = %q, want %q", got, "hel")
	}
	b.SetLen(5)
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
}
