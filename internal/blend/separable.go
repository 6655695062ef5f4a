package blend

import "math"

// separable applies a per-channel blend function B(s, d) on unpremultiplied
// channels and combines it as (1-Sa)*D + (1-Da)*S + Sa*Da*B.
func separable(sr, sg, sb, sa, dr, dg, db, da byte, fn func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	ch := func(s, d byte) byte {
		b := fn(unpremul(s, sa), unpremul(d, da))
		return addDiv255(addDiv255(mulDiv255(d, invSa), mulDiv255(s, invDa)), mulDiv255(saDa, b))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), addDiv255(sa, mulDiv255(da, invSa))
}

func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screenChan)
}

func screenChan(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// hardLightChan is Multiply(d, 2s) for s <= 0.5, else Screen(d, 2s-1).
func hardLightChan(s, d byte) byte {
	if s <= 127 {
		return byte((2*uint16(s)*uint16(d) + 127) / 255)
	}
	s2 := 2*uint16(s) - 255
	return byte(uint16(255) - ((255-s2)*uint16(255-d)+127)/255)
}

func overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChan(d, s)
	})
}

func hardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

func darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

func lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

func colorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 0 {
			return 0
		}
		if s == 255 {
			return 255
		}
		v := uint16(d) * 255 / uint16(255-s)
		if v > 255 {
			return 255
		}
		return byte(v)
	})
}

func colorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 255 {
			return 255
		}
		if s == 0 {
			return 0
		}
		v := uint16(255-d) * 255 / uint16(s)
		if v > 255 {
			return 0
		}
		return 255 - byte(v)
	})
}

func softLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		sf := float64(s) / 255
		df := float64(d) / 255

		var v float64
		if sf <= 0.5 {
			v = df - (1-2*sf)*df*(1-df)
		} else {
			var dx float64
			if df <= 0.25 {
				dx = ((16*df-12)*df + 4) * df
			} else {
				dx = math.Sqrt(df)
			}
			v = df + (2*sf-1)*(dx-df)
		}
		return byte(math.Round(math.Max(0, math.Min(1, v)) * 255))
	})
}

func difference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}

func exclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return byte(uint16(s) + uint16(d) - 2*uint16(mulDiv255(s, d)))
	})
}
