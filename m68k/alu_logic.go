package m68k

// logicFlags applies the AND/OR/EOR/NOT flag contract: N and Z come from
// the result, V and C are always cleared, and X is left untouched — real
// 68000 logical operations never affect the extend flag.
func (c *Core) logicFlags(width int, res uint32) uint32 {
	resW := maskW(res, width)
	c.N = resW >> flagShift(width)
	c.V = 0
	c.C = 0
	c.notZ = resW
	return resW
}

func makeAndER(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		_, src, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		dxi := irDx(c.IR)
		res := c.logicFlags(width, maskW(c.Reg[dxi], width)&src)
		c.setDataSized(dxi, res, width)
		return cycles, nil
	}
}

func makeAndRE(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		src := maskW(c.Reg[irDx(c.IR)], width)
		res := c.logicFlags(width, dst&src)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeOrER(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		_, src, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		dxi := irDx(c.IR)
		res := c.logicFlags(width, maskW(c.Reg[dxi], width)|src)
		c.setDataSized(dxi, res, width)
		return cycles, nil
	}
}

func makeOrRE(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		src := maskW(c.Reg[irDx(c.IR)], width)
		res := c.logicFlags(width, dst|src)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeEor(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		src := maskW(c.Reg[irDx(c.IR)], width)
		res := c.logicFlags(width, dst^src)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeAndi(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		imm, err := c.immediate(width)
		if err != nil {
			return 0, err
		}
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		res := c.logicFlags(width, dst&imm)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeOri(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		imm, err := c.immediate(width)
		if err != nil {
			return 0, err
		}
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		res := c.logicFlags(width, dst|imm)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeEori(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		imm, err := c.immediate(width)
		if err != nil {
			return 0, err
		}
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		res := c.logicFlags(width, dst^imm)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeNot(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		res := c.logicFlags(width, ^dst)
		return cycles, c.commitEA(ref, width, res)
	}
}

// ANDI/ORI/EORI to CCR: a single immediate byte combined into the five
// condition bits, leaving the unused upper three CCR bits at zero (this
// core has no trace/supervisor/interrupt-mask state to preserve there).
func makeLogicToCCR(cycles Cycles, op func(a, b uint8) uint8) Handler {
	return func(c *Core) (Cycles, error) {
		imm, err := c.immediate(16)
		if err != nil {
			return 0, err
		}
		c.SetConditionCodeRegister(op(c.ConditionCodeRegister(), uint8(imm)&0x1F))
		return cycles, nil
	}
}

const (
	andER8, andER16, andER32 = 0xC000, 0xC040, 0xC080
	andRE8, andRE16, andRE32 = 0xC100, 0xC140, 0xC180
	orER8, orER16, orER32    = 0x8000, 0x8040, 0x8080
	orRE8, orRE16, orRE32    = 0x8100, 0x8140, 0x8180
	eor8, eor16, eor32       = 0xB100, 0xB140, 0xB180

	andi8, andi16, andi32 = 0x0200, 0x0240, 0x0280
	ori8, ori16, ori32    = 0x0000, 0x0040, 0x0080
	eori8, eori16, eori32 = 0x0A00, 0x0A40, 0x0A80

	andiToCCR = 0x023C
	oriToCCR  = 0x003C
	eoriToCCR = 0x0A3C

	notOp8, notOp16, notOp32 = 0x4600, 0x4640, 0x4680
)

// eorModesData is iModesData unchanged: that set already excludes An
// (never valid for EOR), so the An-direct bit pattern CMPM hardwires for
// its own use stays free.
func eorModesData(byteOrWord bool) []modeCost { return iModesData(byteOrWord) }

func logicFamilyEntries() []tableEntry {
	var e []tableEntry

	appendER := func(base uint16, modes []modeCost, width int, f func(int, eaMode, Cycles) Handler) {
		for _, mc := range modes {
			e = append(e, eaEntry(base, mc, f(width, mc.mode, mc.cycles)))
		}
	}

	andModes8 := []modeCost{{mDn, 4}, {mAI, 8}, {mPI, 8}, {mPD, 10}, {mDI, 12}, {mIX, 14}, {mAW, 12}, {mAL, 16}, {mPCDI, 12}, {mPCIX, 14}, {mImm, 8}}
	andModes16 := andModes8
	andModes32 := []modeCost{{mDn, 6}, {mAI, 14}, {mPI, 14}, {mPD, 16}, {mDI, 18}, {mIX, 20}, {mAW, 18}, {mAL, 22}, {mPCDI, 18}, {mPCIX, 20}, {mImm, 16}}

	appendER(andER8, andModes8, 8, makeAndER)
	appendER(andER16, andModes16, 16, makeAndER)
	appendER(andER32, andModes32, 32, makeAndER)
	for _, mc := range reModes(true) {
		e = append(e, eaEntry(andRE8, mc, makeAndRE(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(andRE16, mc, makeAndRE(16, mc.mode, mc.cycles)))
	}
	for _, mc := range reModes(false) {
		e = append(e, eaEntry(andRE32, mc, makeAndRE(32, mc.mode, mc.cycles)))
	}

	appendER(orER8, andModes8, 8, makeOrER)
	appendER(orER16, andModes16, 16, makeOrER)
	appendER(orER32, andModes32, 32, makeOrER)
	for _, mc := range reModes(true) {
		e = append(e, eaEntry(orRE8, mc, makeOrRE(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(orRE16, mc, makeOrRE(16, mc.mode, mc.cycles)))
	}
	for _, mc := range reModes(false) {
		e = append(e, eaEntry(orRE32, mc, makeOrRE(32, mc.mode, mc.cycles)))
	}

	for _, mc := range eorModesData(true) {
		e = append(e, eaEntry(eor8, mc, makeEor(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(eor16, mc, makeEor(16, mc.mode, mc.cycles)))
	}
	for _, mc := range eorModesData(false) {
		e = append(e, eaEntry(eor32, mc, makeEor(32, mc.mode, mc.cycles)))
	}

	for _, mc := range iModesData(true) {
		e = append(e, eaEntry(andi8, mc, makeAndi(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(andi16, mc, makeAndi(16, mc.mode, mc.cycles)))
		e = append(e, eaEntry(ori8, mc, makeOri(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(ori16, mc, makeOri(16, mc.mode, mc.cycles)))
		e = append(e, eaEntry(eori8, mc, makeEori(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(eori16, mc, makeEori(16, mc.mode, mc.cycles)))
	}
	for _, mc := range iModesData(false) {
		e = append(e, eaEntry(andi32, mc, makeAndi(32, mc.mode, mc.cycles)))
		e = append(e, eaEntry(ori32, mc, makeOri(32, mc.mode, mc.cycles)))
		e = append(e, eaEntry(eori32, mc, makeEori(32, mc.mode, mc.cycles)))
	}

	e = append(e, tableEntry{mask: 0xFFFF, match: andiToCCR, handler: makeLogicToCCR(20, func(a, b uint8) uint8 { return a & b })})
	e = append(e, tableEntry{mask: 0xFFFF, match: oriToCCR, handler: makeLogicToCCR(20, func(a, b uint8) uint8 { return a | b })})
	e = append(e, tableEntry{mask: 0xFFFF, match: eoriToCCR, handler: makeLogicToCCR(20, func(a, b uint8) uint8 { return a ^ b })})

	for _, mc := range unaryModes(true) {
		e = append(e, eaEntry(notOp8, mc, makeNot(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(notOp16, mc, makeNot(16, mc.mode, mc.cycles)))
	}
	for _, mc := range unaryModes(false) {
		e = append(e, eaEntry(notOp32, mc, makeNot(32, mc.mode, mc.cycles)))
	}

	return e
}
