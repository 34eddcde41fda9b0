package m68k

// Shift/rotate flag contract: N/Z always come from the final result: V is
// cleared except for ASL, which tracks whether the sign bit changed value
// on any individual shift step (the only shift/rotate family capable of
// real overflow); C takes the last bit shifted or rotated out; X tracks C
// for every family except the plain rotates (ROL/ROR), which leave X
// untouched — the rotate-through-X pair (ROXL/ROXR) is exactly the family
// for which X participates in the rotation itself. A count of zero (only
// reachable through the register-count form) leaves N/Z set from the
// unshifted operand, clears V and C, and leaves X alone, except for
// ROXL/ROXR where a zero count still copies X into C.

func (c *Core) asl(width int, v, count uint32) uint32 {
	vv := maskW(v, width)
	if count == 0 {
		c.N = vv >> flagShift(width)
		c.V, c.C = 0, 0
		c.notZ = vv
		return vv
	}
	sign := uint32(1) << uint(width-1)
	full := maskW(^uint32(0), width)
	overflow := false
	var lastOut uint32
	for i := uint32(0); i < count; i++ {
		before := vv & sign
		lastOut = (vv >> uint(width-1)) & 1
		vv = (vv << 1) & full
		if before != vv&sign {
			overflow = true
		}
	}
	c.N = vv >> flagShift(width)
	if overflow {
		c.V = 0x80
	} else {
		c.V = 0
	}
	c.C = lastOut << 8
	c.X = c.C
	c.notZ = vv
	return vv
}

func (c *Core) lsl(width int, v, count uint32) uint32 {
	vv := maskW(v, width)
	if count == 0 {
		c.N = vv >> flagShift(width)
		c.V, c.C = 0, 0
		c.notZ = vv
		return vv
	}
	full := maskW(^uint32(0), width)
	var lastOut uint32
	for i := uint32(0); i < count; i++ {
		lastOut = (vv >> uint(width-1)) & 1
		vv = (vv << 1) & full
	}
	c.N = vv >> flagShift(width)
	c.V = 0
	c.C = lastOut << 8
	c.X = c.C
	c.notZ = vv
	return vv
}

func (c *Core) asr(width int, v, count uint32) uint32 {
	vv := maskW(v, width)
	if count == 0 {
		c.N = vv >> flagShift(width)
		c.V, c.C = 0, 0
		c.notZ = vv
		return vv
	}
	sign := uint32(1) << uint(width-1)
	var lastOut uint32
	for i := uint32(0); i < count; i++ {
		lastOut = vv & 1
		vv = (vv >> 1) | (vv & sign)
	}
	c.N = vv >> flagShift(width)
	c.V = 0
	c.C = lastOut << 8
	c.X = c.C
	c.notZ = vv
	return vv
}

func (c *Core) lsr(width int, v, count uint32) uint32 {
	vv := maskW(v, width)
	if count == 0 {
		c.N = vv >> flagShift(width)
		c.V, c.C = 0, 0
		c.notZ = vv
		return vv
	}
	var lastOut uint32
	for i := uint32(0); i < count; i++ {
		lastOut = vv & 1
		vv >>= 1
	}
	c.N = vv >> flagShift(width)
	c.V = 0
	c.C = lastOut << 8
	c.X = c.C
	c.notZ = vv
	return vv
}

func (c *Core) rol(width int, v, count uint32) uint32 {
	vv := maskW(v, width)
	if count == 0 {
		c.N = vv >> flagShift(width)
		c.V, c.C = 0, 0
		c.notZ = vv
		return vv
	}
	sign := uint32(1) << uint(width-1)
	full := maskW(^uint32(0), width)
	var lastOut uint32
	for i := uint32(0); i < count; i++ {
		lastOut = (vv & sign) >> uint(width-1)
		vv = ((vv << 1) | lastOut) & full
	}
	c.N = vv >> flagShift(width)
	c.V = 0
	c.C = lastOut << 8
	c.notZ = vv
	return vv
}

func (c *Core) ror(width int, v, count uint32) uint32 {
	vv := maskW(v, width)
	if count == 0 {
		c.N = vv >> flagShift(width)
		c.V, c.C = 0, 0
		c.notZ = vv
		return vv
	}
	var lastOut uint32
	for i := uint32(0); i < count; i++ {
		lastOut = vv & 1
		vv = (vv >> 1) | (lastOut << uint(width-1))
	}
	c.N = vv >> flagShift(width)
	c.V = 0
	c.C = lastOut << 8
	c.notZ = vv
	return vv
}

func (c *Core) roxl(width int, v, count uint32) uint32 {
	vv := maskW(v, width)
	x := c.xFlagAs1()
	if count == 0 {
		c.N = vv >> flagShift(width)
		c.V = 0
		c.C = x << 8
		c.notZ = vv
		return vv
	}
	sign := uint32(1) << uint(width-1)
	full := maskW(^uint32(0), width)
	for i := uint32(0); i < count; i++ {
		newX := (vv & sign) >> uint(width-1)
		vv = ((vv << 1) | x) & full
		x = newX
	}
	c.N = vv >> flagShift(width)
	c.V = 0
	c.C = x << 8
	c.X = c.C
	c.notZ = vv
	return vv
}

func (c *Core) roxr(width int, v, count uint32) uint32 {
	vv := maskW(v, width)
	x := c.xFlagAs1()
	if count == 0 {
		c.N = vv >> flagShift(width)
		c.V = 0
		c.C = x << 8
		c.notZ = vv
		return vv
	}
	for i := uint32(0); i < count; i++ {
		newX := vv & 1
		vv = (vv >> 1) | (x << uint(width-1))
		x = newX
	}
	c.N = vv >> flagShift(width)
	c.V = 0
	c.C = x << 8
	c.X = c.C
	c.notZ = vv
	return vv
}

// shiftFn is the method-expression shape shared by all eight op kinds,
// letting the table builder below iterate over them uniformly.
type shiftFn func(c *Core, width int, v, count uint32) uint32

func makeShiftReg(fn shiftFn, width int, dynamic bool, baseCycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		var count uint32
		if dynamic {
			count = c.Reg[irDx(c.IR)] % 64
		} else {
			count = c.quick()
		}
		dyi := irDy(c.IR)
		res := fn(c, width, c.Reg[dyi], count)
		c.setDataSized(dyi, res, width)
		return baseCycles + Cycles(2*count), nil
	}
}

func makeShiftMem(fn shiftFn, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, v, err := c.resolveEA(mode, reg, 16)
		if err != nil {
			return 0, err
		}
		res := fn(c, 16, v, 1)
		return cycles, c.commitEA(ref, 16, res)
	}
}

const (
	aslQ8, aslQ16, aslQ32 = 0xE100, 0xE140, 0xE180
	asrQ8, asrQ16, asrQ32 = 0xE000, 0xE040, 0xE080
	lslQ8, lslQ16, lslQ32 = 0xE108, 0xE148, 0xE188
	lsrQ8, lsrQ16, lsrQ32 = 0xE008, 0xE048, 0xE088
	roxlQ8, roxlQ16, roxlQ32 = 0xE110, 0xE150, 0xE190
	roxrQ8, roxrQ16, roxrQ32 = 0xE010, 0xE050, 0xE090
	rolQ8, rolQ16, rolQ32 = 0xE118, 0xE158, 0xE198
	rorQ8, rorQ16, rorQ32 = 0xE018, 0xE058, 0xE098

	regCountBit = 0x20

	aslMem, asrMem   = 0xE1C0, 0xE0C0
	lslMem, lsrMem   = 0xE3C0, 0xE2C0
	roxlMem, roxrMem = 0xE5C0, 0xE4C0
	rolMem, rorMem   = 0xE7C0, 0xE6C0
)

func memShiftModes() []modeCost {
	return []modeCost{{mAI, 8}, {mPI, 8}, {mPD, 10}, {mDI, 12}, {mIX, 14}, {mAW, 12}, {mAL, 16}}
}

// regShiftFamily describes one op kind's quick-form base opcodes per width
// and its function, for building both the immediate and register-count
// table entries from a single data row.
type regShiftFamily struct {
	base8, base16, base32 uint16
	fn                    shiftFn
}

func shiftFamilyEntries() []tableEntry {
	var e []tableEntry

	families := []regShiftFamily{
		{aslQ8, aslQ16, aslQ32, (*Core).asl},
		{asrQ8, asrQ16, asrQ32, (*Core).asr},
		{lslQ8, lslQ16, lslQ32, (*Core).lsl},
		{lsrQ8, lsrQ16, lsrQ32, (*Core).lsr},
		{roxlQ8, roxlQ16, roxlQ32, (*Core).roxl},
		{roxrQ8, roxrQ16, roxrQ32, (*Core).roxr},
		{rolQ8, rolQ16, rolQ32, (*Core).rol},
		{rorQ8, rorQ16, rorQ32, (*Core).ror},
	}
	for _, f := range families {
		e = append(e, tableEntry{mask: maskOutXY, match: f.base8, handler: makeShiftReg(f.fn, 8, false, 6)})
		e = append(e, tableEntry{mask: maskOutXY, match: f.base8 | regCountBit, handler: makeShiftReg(f.fn, 8, true, 6)})
		e = append(e, tableEntry{mask: maskOutXY, match: f.base16, handler: makeShiftReg(f.fn, 16, false, 6)})
		e = append(e, tableEntry{mask: maskOutXY, match: f.base16 | regCountBit, handler: makeShiftReg(f.fn, 16, true, 6)})
		e = append(e, tableEntry{mask: maskOutXY, match: f.base32, handler: makeShiftReg(f.fn, 32, false, 8)})
		e = append(e, tableEntry{mask: maskOutXY, match: f.base32 | regCountBit, handler: makeShiftReg(f.fn, 32, true, 8)})
	}

	memFamilies := []struct {
		base uint16
		fn   shiftFn
	}{
		{aslMem, (*Core).asl}, {asrMem, (*Core).asr},
		{lslMem, (*Core).lsl}, {lsrMem, (*Core).lsr},
		{roxlMem, (*Core).roxl}, {roxrMem, (*Core).roxr},
		{rolMem, (*Core).rol}, {rorMem, (*Core).ror},
	}
	for _, f := range memFamilies {
		for _, mc := range memShiftModes() {
			e = append(e, eaEntry(f.base, mc, makeShiftMem(f.fn, mc.mode, mc.cycles)))
		}
	}

	return e
}
