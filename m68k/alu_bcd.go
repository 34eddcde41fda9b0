package m68k

// bcdAdd implements packed-BCD addition with nibble correction, grounded
// directly on original_source's abcd_8_common: the low nibble is summed
// with the X carry-in first (so ABCD/ADDX chains share the same carry
// plumbing), corrected to decimal if it exceeds 9, then the high nibbles
// are folded in and the whole byte is corrected again if it exceeds 0x99.
func (c *Core) bcdAdd(dst, src uint32) uint32 {
	x := c.xFlagAs1()
	res := (src & 0xF) + (dst & 0xF) + x
	vPre := ^res
	if res > 9 {
		res += 6
	}
	res += (src & 0xF0) + (dst & 0xF0)
	carry := res > 0x99
	if carry {
		c.C = 0x100
	} else {
		c.C = 0
	}
	c.X = c.C
	if carry {
		res -= 0xA0
	}
	c.V = vPre & res
	c.N = res
	resMasked := res & 0xFF
	c.notZ |= resMasked
	return resMasked
}

// bcdSub implements packed-BCD subtraction (dst - src - X) the mirror of
// bcdAdd: unsigned underflow in a nibble/byte wraps past 0xF/0xFF, which
// is exactly how the correction thresholds below detect a borrow. The
// overflow flag on decimal subtraction is undefined on real hardware and
// is left at 0 here rather than guessed at.
func (c *Core) bcdSub(dst, src uint32) uint32 {
	x := c.xFlagAs1()
	res := (dst & 0xF) - (src & 0xF) - x
	if res > 0xF {
		res -= 6
	}
	res += (dst & 0xF0) - (src & 0xF0)
	carry := res > 0xFF
	if carry {
		c.C = 0x100
	} else {
		c.C = 0
	}
	c.X = c.C
	if carry {
		res -= 0x60
	}
	c.V = 0
	c.N = res
	resMasked := res & 0xFF
	c.notZ |= resMasked
	return resMasked
}

func makeAbcdRR(cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		dyi := irDy(c.IR)
		dxi := irDx(c.IR)
		res := c.bcdAdd(c.Reg[dxi]&0xFF, c.Reg[dyi]&0xFF)
		c.setDataSized(dxi, res, 8)
		return cycles, nil
	}
}

func makeAbcdMM(cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		_, dstRef, src, dst, err := c.predecPair(8)
		if err != nil {
			return 0, err
		}
		res := c.bcdAdd(dst, src)
		return cycles, c.commitEA(dstRef, 8, res)
	}
}

func makeSbcdRR(cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		dyi := irDy(c.IR)
		dxi := irDx(c.IR)
		res := c.bcdSub(c.Reg[dxi]&0xFF, c.Reg[dyi]&0xFF)
		c.setDataSized(dxi, res, 8)
		return cycles, nil
	}
}

func makeSbcdMM(cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		_, dstRef, src, dst, err := c.predecPair(8)
		if err != nil {
			return 0, err
		}
		res := c.bcdSub(dst, src)
		return cycles, c.commitEA(dstRef, 8, res)
	}
}

func makeNbcd(mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, src, err := c.resolveEA(mode, reg, 8)
		if err != nil {
			return 0, err
		}
		res := c.bcdSub(0, src)
		return cycles, c.commitEA(ref, 8, res)
	}
}

const (
	abcdRR, abcdMM = 0xC100, 0xC108
	sbcdRR, sbcdMM = 0x8100, 0x8108
	nbcdOp         = 0x4800
)

func bcdFamilyEntries() []tableEntry {
	e := []tableEntry{
		{mask: maskOutXY, match: abcdRR, handler: makeAbcdRR(6)},
		{mask: maskOutXY, match: abcdMM, handler: makeAbcdMM(18)},
		{mask: maskOutXY, match: sbcdRR, handler: makeSbcdRR(6)},
		{mask: maskOutXY, match: sbcdMM, handler: makeSbcdMM(18)},
	}
	nbcdModes := []modeCost{{mDn, 6}, {mAI, 8}, {mPI, 8}, {mPD, 10}, {mDI, 12}, {mIX, 14}, {mAW, 12}, {mAL, 16}}
	for _, mc := range nbcdModes {
		e = append(e, eaEntry(nbcdOp, mc, makeNbcd(mc.mode, mc.cycles)))
	}
	return e
}
