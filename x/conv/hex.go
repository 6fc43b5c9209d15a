package conv

const hexd = "0123456789ABCDEF"

// U32Hex writes 8-digit uppercase hex without 0x, zero-padded.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// ByteHex writes two uppercase hex digits for b.
func ByteHex(buf []byte, b byte) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	buf[0] = hexd[b>>4]
	buf[1] = hexd[b&0xF]
	return buf[:2]
}
