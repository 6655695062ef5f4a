package blend

// mulDiv255 returns round(a*b/255).
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addDiv255 adds two bytes, saturating at 255.
func addDiv255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// lerp255 returns round(d + (s-d)*t/255).
func lerp255(d, s, t byte) byte {
	return byte((uint16(s)*uint16(t) + uint16(d)*uint16(255-t) + 127) / 255)
}

// unpremul returns c/a scaled to 0-255.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
