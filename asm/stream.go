package asm

// Reference is a label use that is resolved in the second pass.
type Reference struct {
	Width  int    // 1 or 2 bytes.
	Symbol string // Qualified label name.
	Branch bool   // Jump, call or jr destination.
	LineNo int    // Source line of the use.
}

// Relative reports whether the reference is a jr displacement.
func (ref *Reference) Relative() bool {
	return ref.Width == 1 && ref.Branch
}

// Entry is one slot of the byte stream. A slot holding a reference is
// replaced by its resolved byte in the second pass; the second slot of a
// word reference is a zero filler.
type Entry struct {
	Value byte
	Ref   *Reference
}

// Stream is the byte stream built by the first pass.
type Stream []Entry

// Bytes returns the plain byte values of the stream.
func (s Stream) Bytes() (data []byte) {
	data = make([]byte, len(s))
	for n, entry := range s {
		data[n] = entry.Value
	}
	return
}
