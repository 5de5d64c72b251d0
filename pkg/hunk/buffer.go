package hunk

// Buffer accumulates the lines of the hunk currently being read.
type Buffer struct {
	lines []Line
	open  bool
}

// Append adds a non-boundary line to the pending hunk
func (b *Buffer) Append(l Line) {
	b.lines = append(b.lines, l)
}

// Start begins a new hunk with the boundary line l. It returns the lines that
// were pending and whether they formed a hunk; lines read before the first
// boundary do not.
func (b *Buffer) Start(l Line) ([]Line, bool) {
	prev, wasOpen := b.lines, b.open
	b.lines = []Line{l}
	b.open = true
	return prev, wasOpen
}

// Flush returns the pending lines and empties the buffer. It is used at end
// of stream, where the pending lines are emitted whether or not a boundary
// was ever seen.
func (b *Buffer) Flush() []Line {
	lines := b.lines
	b.lines = nil
	b.open = false
	return lines
}

// Len returns the number of pending lines
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Open reports whether a boundary has started the pending hunk
func (b *Buffer) Open() bool {
	return b.open
}
