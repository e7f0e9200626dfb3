package importer

// Buffer is an in-memory edit buffer: the file's text plus a cursor offset.
// Insertions before the cursor shift it right, mirroring how an editor keeps
// the cursor on the same character across an edit.
type Buffer struct {
	text   string
	cursor int
}

// NewBuffer creates a buffer over text with the cursor at offset.
func NewBuffer(text string, cursor int) *Buffer {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	return &Buffer{text: text, cursor: cursor}
}

// String returns the current buffer text.
func (b *Buffer) String() string {
	return b.text
}

// Cursor returns the current cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Insert inserts s at offset at, shifting the cursor when the insertion is
// at or before it.
func (b *Buffer) Insert(at int, s string) {
	if at < 0 {
		at = 0
	}
	if at > len(b.text) {
		at = len(b.text)
	}
	b.text = b.text[:at] + s + b.text[at:]
	if at <= b.cursor {
		b.cursor += len(s)
	}
}
