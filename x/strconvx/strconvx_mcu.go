//go:build rp2040

package strconvx

// Minimal, allocation-aware helpers with identical signatures.
// Supported bases: 2..36. FormatFloat is basic fixed-point, not
// IEEE-perfect; use sparingly on MCU.

func Itoa(i int) string { return FormatInt(int64(i), 10) }

func FormatInt(i int64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	neg := i < 0
	var u uint64
	if neg {
		u = uint64(-i)
	} else {
		u = uint64(i)
	}
	s := formatUint(u, base)
	if neg {
		return "-" + s
	}
	return s
}

func FormatUint(u uint64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return formatUint(u, base)
}

func formatUint(u uint64, base int) string {
	if u == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for u > 0 {
		i--
		buf[i] = digits[u%b]
		u /= b
	}
	return string(buf[i:])
}

// FormatFloat renders 'f' style only; other verbs fall back to 'f'.
// prec < 0 is coerced to 6.
func FormatFloat(f float64, _ byte, prec, _ int) string {
	if prec < 0 {
		prec = 6
	}
	neg := f < 0
	if neg {
		f = -f
	}
	whole := uint64(f)
	frac := f - float64(whole)
	s := formatUint(whole, 10)
	if neg {
		s = "-" + s
	}
	if prec == 0 {
		return s
	}
	out := []byte(s)
	out = append(out, '.')
	for j := 0; j < prec; j++ {
		frac *= 10
		d := uint64(frac)
		out = append(out, byte('0'+d))
		frac -= float64(d)
	}
	return string(out)
}
