package bftape

const TapeSize = 30_000

// Tape is a fixed circular array of byte cells with a data pointer.
// All operations wrap, so no index can leave the tape.
type Tape struct {
	Cells   [TapeSize]byte
	Pointer int
}

func (t *Tape) Read() byte {
	return t.Cells[t.Pointer]
}

func (t *Tape) Write(b byte) {
	t.Cells[t.Pointer] = b
}

func (t *Tape) Advance() {
	t.Pointer = (t.Pointer + 1) % len(t.Cells)
}

func (t *Tape) Retreat() {
	t.Pointer = (t.Pointer - 1 + len(t.Cells)) % len(t.Cells)
}

// byte arithmetic wraps at 256
func (t *Tape) Increment() {
	t.Cells[t.Pointer]++
}

func (t *Tape) Decrement() {
	t.Cells[t.Pointer]--
}

// Snapshot copies the first n cells.
func (t *Tape) Snapshot(n int) []byte {
	n = max(0, min(n, len(t.Cells)))
	ret := make([]byte, n)
	copy(ret, t.Cells[:n])
	return ret
}
