package bftape

import (
	"io"
	"strconv"
)

const (
	highlightStart = "\x1b[7m"
	highlightEnd   = "\x1b[0m"
)

// PrintTape writes the first cells of the tape as space separated integers.
// With highlight set, the cell under the pointer is shown in reverse video.
func PrintTape(w io.Writer, tape *Tape, cells int, highlight bool) error {
	var buf []byte
	for i, cell := range tape.Snapshot(cells) {
		if highlight && i == tape.Pointer {
			buf = append(buf, highlightStart...)
			buf = strconv.AppendUint(buf, uint64(cell), 10)
			buf = append(buf, highlightEnd...)
		} else {
			buf = strconv.AppendUint(buf, uint64(cell), 10)
		}
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}
