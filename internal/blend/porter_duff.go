package blend

func clear0(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func srcCopy(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func dstCopy(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// srcOver: S + D*(1-Sa)
func srcOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	invSa := 255 - sa
	return addDiv255(sr, mulDiv255(dr, invSa)),
		addDiv255(sg, mulDiv255(dg, invSa)),
		addDiv255(sb, mulDiv255(db, invSa)),
		addDiv255(sa, mulDiv255(da, invSa))
}

// dstOver: S*(1-Da) + D
func dstOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addDiv255(mulDiv255(sr, invDa), dr),
		addDiv255(mulDiv255(sg, invDa), dg),
		addDiv255(mulDiv255(sb, invDa), db),
		addDiv255(mulDiv255(sa, invDa), da)
}

// srcIn: S*Da
func srcIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// dstIn: D*Sa
func dstIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// srcOut: S*(1-Da)
func srcOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// dstOut: D*(1-Sa)
func dstOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// srcAtop: S*Da + D*(1-Sa), alpha stays Da.
func srcAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addDiv255(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addDiv255(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addDiv255(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// dstAtop: S*(1-Da) + D*Sa, alpha becomes Sa.
func dstAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addDiv255(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		addDiv255(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		addDiv255(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

// xor: S*(1-Da) + D*(1-Sa)
func xor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addDiv255(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addDiv255(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addDiv255(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addDiv255(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// plus: min(S + D, 255)
func plus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addDiv255(sr, dr), addDiv255(sg, dg), addDiv255(sb, db), addDiv255(sa, da)
}
