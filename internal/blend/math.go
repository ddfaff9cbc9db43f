package blend

// div255Exact divides x by 255 exactly, rounding down, without using
// division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for every x in
// [0, 255*255], which covers all sums produced by lerp.
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// lerp interpolates from dst to src by alpha a/255, rounding down:
// floor((src*a + dst*(255-a)) / 255).
func lerp(dst, src, a byte) byte {
	return byte(div255Exact(uint16(src)*uint16(a) + uint16(dst)*uint16(inv255(a))))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
