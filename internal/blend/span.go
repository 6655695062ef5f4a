package blend

// Span composites src onto dst, both packed premultiplied RGBA of the same
// length. cov holds one coverage byte per pixel; a nil cov means full
// coverage. alpha scales every coverage value.
//
// Each pixel becomes lerp(dst, op(src, dst), cov*alpha), so fully covered
// pixels receive the operator result unchanged and uncovered ones keep dst.
func Span(fn Func, dst, src, cov []byte, alpha byte) {
	n := len(dst) / 4
	for i := range n {
		c := alpha
		if cov != nil {
			c = mulDiv255(cov[i], alpha)
		}
		if c == 0 {
			continue
		}
		o := i * 4
		d := dst[o : o+4 : o+4]
		s := src[o : o+4 : o+4]
		r, g, b, a := fn(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
		if c == 255 {
			d[0], d[1], d[2], d[3] = r, g, b, a
			continue
		}
		d[0] = lerp255(d[0], r, c)
		d[1] = lerp255(d[1], g, c)
		d[2] = lerp255(d[2], b, c)
		d[3] = lerp255(d[3], a, c)
	}
}

// SpanSolid is Span with a single source color for every pixel.
func SpanSolid(fn Func, dst []byte, sr, sg, sb, sa byte, cov []byte, alpha byte) {
	n := len(dst) / 4
	for i := range n {
		c := alpha
		if cov != nil {
			c = mulDiv255(cov[i], alpha)
		}
		if c == 0 {
			continue
		}
		d := dst[i*4 : i*4+4 : i*4+4]
		r, g, b, a := fn(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
		if c == 255 {
			d[0], d[1], d[2], d[3] = r, g, b, a
			continue
		}
		d[0] = lerp255(d[0], r, c)
		d[1] = lerp255(d[1], g, c)
		d[2] = lerp255(d[2], b, c)
		d[3] = lerp255(d[3], a, c)
	}
}
