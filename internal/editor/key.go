package editor

// Special identifies a non-printable key the terminal layer decoded out
// of raw input (escape sequences, control characters with a dedicated
// vi meaning).
type Special int

// Special key codes, mirroring the original editor's abstract key
// constants (kesc, kenter, kbs, kdel, ...).
const (
	SpecialNone Special = iota
	// SpecialNull is the sentinel ReadKey yields when the blocking read
	// was interrupted by a resize rather than a keypress. HandleKey
	// treats it as a pure no-op: the caller re-queries window size and
	// redraws without touching editor state.
	SpecialNull
	SpecialEsc
	SpecialEnter
	SpecialBackspace
	SpecialDelete
	SpecialHome
	SpecialEnd
	SpecialPageUp
	SpecialPageDown
	SpecialUp
	SpecialDown
	SpecialLeft
	SpecialRight
	SpecialCtrlQ
)

// Key is the abstract, backend-independent key event the modal engine
// consumes. For printable input, Special is SpecialNone and Bytes holds
// the raw UTF-8 encoding of one or more runes typed together (as a
// terminal may deliver a multi-byte codepoint, or a pasted run, in a
// single read); Rune holds the first rune for single-key comparisons.
type Key struct {
	Special Special
	Rune    rune
	Bytes   []byte
}

// Byte constructs a Key for a single ASCII byte (the common case for
// motions, operators, and commands).
func Byte(b byte) Key {
	return Key{Rune: rune(b), Bytes: []byte{b}}
}

// IsRune reports whether k carries printable rune content rather than a
// special key.
func (k Key) IsRune() bool {
	return k.Special == SpecialNone && len(k.Bytes) > 0
}
