// Package hexdump renders byte blocks in the classic
// offset / hex / ASCII layout, 16 bytes per row:
//
//	00000000  02 03 1F 00 0D 00 00 00  00 00 00 00 00 00 00 00  |................|
//
// Stateless; rows are built in a fixed scratch buffer, no fmt on the
// way out.
package hexdump

import (
	"io"

	"uartlog-go/x/conv"
)

const rowLen = 16

// Dump writes p as rows starting at display offset zero.
func Dump(w io.Writer, p []byte) error { return DumpAt(w, 0, p) }

// DumpAt is Dump with a caller-chosen starting display offset.
func DumpAt(w io.Writer, base uint32, p []byte) error {
	var scratch [80]byte
	var hx [8]byte
	for len(p) > 0 {
		n := rowLen
		if len(p) < n {
			n = len(p)
		}
		row := scratch[:0]
		row = append(row, conv.U32Hex(hx[:], base)...)
		row = append(row, ' ', ' ')
		for i := 0; i < n; i++ {
			row = append(row, conv.ByteHex(hx[:2], p[i])...)
			row = append(row, ' ')
			if i == 7 {
				// the little gap between each set of 8 bytes
				row = append(row, ' ')
			}
		}
		// Pad short rows so the ASCII column lines up.
		for i := n; i < rowLen; i++ {
			row = append(row, ' ', ' ', ' ')
		}
		if n < 8 {
			row = append(row, ' ')
		}
		row = append(row, ' ', ' ', '|')
		for i := 0; i < n; i++ {
			if p[i] >= ' ' && p[i] <= '~' {
				row = append(row, p[i])
			} else {
				row = append(row, '.')
			}
		}
		row = append(row, '|', '\n')
		if _, err := w.Write(row); err != nil {
			return err
		}
		p = p[n:]
		base += uint32(n)
	}
	return nil
}
