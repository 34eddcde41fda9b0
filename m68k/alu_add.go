package m68k

// Flag computation shared by ADD/ADDI/ADDQ/ADDX and by
// SUB/SUBI/SUBQ/SUBX/NEG/NEGX/CMP*, and the width-parametric shift that
// normalizes each to a fixed test bit (see flagShift in registers.go).
// ADDA/SUBA and ADDQ/SUBQ to An update the register directly and set no flags.

// addCarry computes dst+src+carryIn at width, sets N/V/C/X/notZ and
// returns the width-masked result. accumulate selects OR-into-notZ
// (ADDX's sticky-Z, needed so a chain of ADDX instructions across a
// multi-word value only reports Z when every limb was zero) instead of a
// plain assignment.
func (c *Core) addCarry(width int, dst, src, carryIn uint32, accumulate bool) uint32 {
	resFull := uint64(dst) + uint64(src) + uint64(carryIn)
	sh := flagShift(width)
	c.N = uint32(resFull >> sh)
	c.V = uint32(((uint64(src) ^ resFull) & (uint64(dst) ^ resFull)) >> sh)
	c.C = uint32(resFull >> sh)
	c.X = c.C
	resW := uint32(resFull) & maskW(^uint32(0), width)
	if accumulate {
		c.notZ |= resW
	} else {
		c.notZ = resW
	}
	return resW
}

func (c *Core) addOp(width int, dst, src uint32) uint32 {
	return c.addCarry(width, dst, src, 0, false)
}

// subBorrow computes dst-src-borrowIn at width. The (width+1)-bit modular
// subtraction wraps so bit `width` of resFull is exactly the borrow flag,
// the subtraction analogue of addCarry's carry-out bit.
func (c *Core) subBorrow(width int, dst, src, borrowIn uint32, accumulate bool) uint32 {
	wmask1 := uint64(1)<<(uint(width)+1) - 1
	resFull := (uint64(dst) - uint64(src) - uint64(borrowIn)) & wmask1
	sh := flagShift(width)
	c.N = uint32(resFull >> sh)
	c.V = uint32(((uint64(dst) ^ uint64(src)) & (uint64(dst) ^ resFull)) >> sh)
	c.C = uint32(resFull >> sh)
	c.X = c.C
	resW := uint32(resFull) & maskW(^uint32(0), width)
	if accumulate {
		c.notZ |= resW
	} else {
		c.notZ = resW
	}
	return resW
}

func (c *Core) subOp(width int, dst, src uint32) uint32 {
	return c.subBorrow(width, dst, src, 0, false)
}

// cmpOp is subBorrow's flag-only sibling: CMP/CMPA/CMPI/CMPM affect
// N/V/C/Z but leave X untouched, matching real 68000 behaviour.
func (c *Core) cmpOp(width int, dst, src uint32) {
	wmask1 := uint64(1)<<(uint(width)+1) - 1
	resFull := (uint64(dst) - uint64(src)) & wmask1
	sh := flagShift(width)
	c.N = uint32(resFull >> sh)
	c.V = uint32(((uint64(dst) ^ uint64(src)) & (uint64(dst) ^ resFull)) >> sh)
	c.C = uint32(resFull >> sh)
	c.notZ = uint32(resFull) & maskW(^uint32(0), width)
}

// --- ADD: EA -> Dn (er) and Dn -> EA (re) ---

func makeAddER(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		_, src, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		dxi := irDx(c.IR)
		res := c.addOp(width, maskW(c.Reg[dxi], width), src)
		c.setDataSized(dxi, res, width)
		return cycles, nil
	}
}

func makeAddRE(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		src := maskW(c.Reg[irDx(c.IR)], width)
		res := c.addOp(width, dst, src)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeSubER(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		_, src, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		dxi := irDx(c.IR)
		res := c.subOp(width, maskW(c.Reg[dxi], width), src)
		c.setDataSized(dxi, res, width)
		return cycles, nil
	}
}

func makeSubRE(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		src := maskW(c.Reg[irDx(c.IR)], width)
		res := c.subOp(width, dst, src)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeCmpER(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		_, src, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		dst := maskW(c.Reg[irDx(c.IR)], width)
		c.cmpOp(width, dst, src)
		return cycles, nil
	}
}

// --- ADDA/SUBA/CMPA: EA -> An, no flags (except CMPA sets N/V/C/Z) ---

// addaLoad reads the EA operand for an A-form instruction, sign-extending
// word operands to 32 bits. The destination address register is read
// before the source is resolved: if the source addressing mode is
// post-increment/pre-decrement on the same register (Ax==Ay), resolving
// it mutates that register, and the original value must already be
// captured.
func (c *Core) addaLoad(width int, mode eaMode) (dst, src uint32, err error) {
	axIdx := IRAx(c.IR)
	dst = c.Reg[axIdx]
	reg := int(c.IR & 7)
	_, raw, err := c.resolveEA(mode, reg, width)
	if err != nil {
		return
	}
	if width == 16 {
		src = signExtend(raw, 16)
	} else {
		src = raw
	}
	return
}

func makeAdda(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		dst, src, err := c.addaLoad(width, mode)
		if err != nil {
			return 0, err
		}
		c.Reg[IRAx(c.IR)] = dst + src
		return cycles, nil
	}
}

func makeSuba(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		dst, src, err := c.addaLoad(width, mode)
		if err != nil {
			return 0, err
		}
		c.Reg[IRAx(c.IR)] = dst - src
		return cycles, nil
	}
}

func makeCmpa(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		dst, src, err := c.addaLoad(width, mode)
		if err != nil {
			return 0, err
		}
		c.cmpOp(32, dst, src)
		return cycles, nil
	}
}

// --- ADDI/SUBI/CMPI: #imm -> EA, destination Dn or memory ---

func makeAddi(width int, mode eaMode, cycles Cycles) Handler {
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
		res := c.addOp(width, dst, imm)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeSubi(width int, mode eaMode, cycles Cycles) Handler {
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
		res := c.subOp(width, dst, imm)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeCmpi(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		imm, err := c.immediate(width)
		if err != nil {
			return 0, err
		}
		reg := int(c.IR & 7)
		_, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		c.cmpOp(width, dst, imm)
		return cycles, nil
	}
}

// --- ADDQ/SUBQ: quick 1-8 immediate -> Dn/memory (flags) or An (no flags) ---

func makeAddqData(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		q := c.quick()
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		res := c.addOp(width, dst, q)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeSubqData(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		q := c.quick()
		reg := int(c.IR & 7)
		ref, dst, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		res := c.subOp(width, dst, q)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeAddqAddr(cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := 8 + int(c.IR&7)
		c.Reg[reg] += c.quick()
		return cycles, nil
	}
}

func makeSubqAddr(cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := 8 + int(c.IR&7)
		c.Reg[reg] -= c.quick()
		return cycles, nil
	}
}

// --- ADDX/SUBX: register-register and memory-memory (pre-decrement) ---

func makeAddxRR(width int, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		dyi := irDy(c.IR)
		dxi := irDx(c.IR)
		src := maskW(c.Reg[dyi], width)
		dst := maskW(c.Reg[dxi], width)
		res := c.addCarry(width, dst, src, c.xFlagAs1(), true)
		c.setDataSized(dxi, res, width)
		return cycles, nil
	}
}

func makeAddxMM(width int, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		_, dstRef, src, dst, err := c.predecPair(width)
		if err != nil {
			return 0, err
		}
		res := c.addCarry(width, dst, src, c.xFlagAs1(), true)
		return cycles, c.commitEA(dstRef, width, res)
	}
}

func makeSubxRR(width int, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		dyi := irDy(c.IR)
		dxi := irDx(c.IR)
		src := maskW(c.Reg[dyi], width)
		dst := maskW(c.Reg[dxi], width)
		res := c.subBorrow(width, dst, src, c.xFlagAs1(), true)
		c.setDataSized(dxi, res, width)
		return cycles, nil
	}
}

func makeSubxMM(width int, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		_, dstRef, src, dst, err := c.predecPair(width)
		if err != nil {
			return 0, err
		}
		res := c.subBorrow(width, dst, src, c.xFlagAs1(), true)
		return cycles, c.commitEA(dstRef, width, res)
	}
}

func makeCmpm(width int, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		ay := irDy(c.IR)
		ax := irDx(c.IR)
		srcAddr := c.Reg[8+ay]
		c.Reg[8+ay] += stepFor(ay, width)
		src, err := c.busRead(srcAddr, width)
		if err != nil {
			return 0, err
		}
		dstAddr := c.Reg[8+ax]
		c.Reg[8+ax] += stepFor(ax, width)
		dst, err := c.busRead(dstAddr, width)
		if err != nil {
			return 0, err
		}
		c.cmpOp(width, dst, src)
		return cycles, nil
	}
}

// --- NEG/NEGX: unary, dst = 0 - src ---

func makeNeg(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, src, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		res := c.subOp(width, 0, src)
		return cycles, c.commitEA(ref, width, res)
	}
}

func makeNegx(width int, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, src, err := c.resolveEA(mode, reg, width)
		if err != nil {
			return 0, err
		}
		res := c.subBorrow(width, 0, src, c.xFlagAs1(), true)
		return cycles, c.commitEA(ref, width, res)
	}
}

// --- opcode bases (high nibble + 3-bit opmode field at bits 8:6) ---

const (
	addER8, addER16, addER32 = 0xD000, 0xD040, 0xD080
	addRE8, addRE16, addRE32 = 0xD100, 0xD140, 0xD180
	adda16, adda32           = 0xD0C0, 0xD1C0

	subER8, subER16, subER32 = 0x9000, 0x9040, 0x9080
	subRE8, subRE16, subRE32 = 0x9100, 0x9140, 0x9180
	suba16, suba32           = 0x90C0, 0x91C0

	cmp8, cmp16, cmp32 = 0xB000, 0xB040, 0xB080
	cmpa16, cmpa32     = 0xB0C0, 0xB1C0
	cmpm8, cmpm16, cmpm32 = 0xB108, 0xB148, 0xB188

	addi8, addi16, addi32 = 0x0600, 0x0640, 0x0680
	subi8, subi16, subi32 = 0x0400, 0x0440, 0x0480
	cmpi8, cmpi16, cmpi32 = 0x0C00, 0x0C40, 0x0C80

	addq8, addq16, addq32 = 0x5000, 0x5040, 0x5080
	subq8, subq16, subq32 = 0x5100, 0x5140, 0x5180

	addxRR8, addxMM8, addxRR16, addxMM16, addxRR32, addxMM32 = 0xD100, 0xD108, 0xD140, 0xD148, 0xD180, 0xD188
	subxRR8, subxMM8, subxRR16, subxMM16, subxRR32, subxMM32 = 0x9100, 0x9108, 0x9140, 0x9148, 0x9180, 0x9188

	neg8, neg16, neg32   = 0x4400, 0x4440, 0x4480
	negx8, negx16, negx32 = 0x4000, 0x4040, 0x4080
)

// EA catalogs per direction, matching the real 68000's valid-mode subsets.

func erModes8() []modeCost {
	return []modeCost{{mDn, 4}, {mAI, 8}, {mPI, 8}, {mPD, 10}, {mDI, 12}, {mIX, 14}, {mAW, 12}, {mAL, 16}, {mPCDI, 12}, {mPCIX, 14}, {mImm, 10}}
}
func erModes16() []modeCost {
	return []modeCost{{mDn, 4}, {mAn, 4}, {mAI, 8}, {mPI, 8}, {mPD, 10}, {mDI, 12}, {mIX, 14}, {mAW, 12}, {mAL, 16}, {mPCDI, 12}, {mPCIX, 14}, {mImm, 8}}
}
func erModes32() []modeCost {
	return []modeCost{{mDn, 6}, {mAn, 6}, {mAI, 14}, {mPI, 14}, {mPD, 16}, {mDI, 18}, {mIX, 20}, {mAW, 18}, {mAL, 22}, {mPCDI, 18}, {mPCIX, 20}, {mImm, 16}}
}

func reModes(byteOrWord bool) []modeCost {
	if byteOrWord {
		return []modeCost{{mAI, 12}, {mPI, 12}, {mPD, 14}, {mDI, 16}, {mIX, 18}, {mAW, 16}, {mAL, 20}}
	}
	return []modeCost{{mAI, 20}, {mPI, 20}, {mPD, 22}, {mDI, 24}, {mIX, 26}, {mAW, 24}, {mAL, 28}}
}

func aModes16() []modeCost {
	return []modeCost{{mDn, 8}, {mAn, 8}, {mAI, 12}, {mPI, 12}, {mPD, 14}, {mDI, 16}, {mIX, 18}, {mAW, 16}, {mAL, 20}, {mPCDI, 16}, {mPCIX, 18}, {mImm, 14}}
}
func aModes32() []modeCost {
	return []modeCost{{mDn, 6}, {mAn, 6}, {mAI, 14}, {mPI, 14}, {mPD, 16}, {mDI, 18}, {mIX, 20}, {mAW, 18}, {mAL, 22}, {mPCDI, 18}, {mPCIX, 20}, {mImm, 16}}
}

func iModesData(byteOrWord bool) []modeCost {
	if byteOrWord {
		return []modeCost{{mDn, 8}, {mAI, 12}, {mPI, 12}, {mPD, 14}, {mDI, 16}, {mIX, 18}, {mAW, 16}, {mAL, 20}}
	}
	return []modeCost{{mDn, 16}, {mAI, 20}, {mPI, 20}, {mPD, 22}, {mDI, 24}, {mIX, 26}, {mAW, 24}, {mAL, 28}}
}

func iModesCmp(byteOrWord bool) []modeCost {
	if byteOrWord {
		return []modeCost{{mDn, 8}, {mAI, 12}, {mPI, 12}, {mPD, 14}, {mDI, 16}, {mIX, 18}, {mAW, 16}, {mAL, 20}, {mPCDI, 16}, {mPCIX, 18}}
	}
	return []modeCost{{mDn, 14}, {mAI, 20}, {mPI, 20}, {mPD, 22}, {mDI, 24}, {mIX, 26}, {mAW, 24}, {mAL, 28}, {mPCDI, 24}, {mPCIX, 26}}
}

func qModesData(byteOrWord bool) []modeCost {
	if byteOrWord {
		return []modeCost{{mDn, 4}, {mAI, 12}, {mPI, 12}, {mPD, 14}, {mDI, 16}, {mIX, 18}, {mAW, 16}, {mAL, 20}}
	}
	return []modeCost{{mDn, 8}, {mAI, 16}, {mPI, 16}, {mPD, 18}, {mDI, 20}, {mIX, 22}, {mAW, 20}, {mAL, 24}}
}

func unaryModes(byteOrWord bool) []modeCost {
	if byteOrWord {
		return []modeCost{{mDn, 4}, {mAI, 8}, {mPI, 8}, {mPD, 10}, {mDI, 12}, {mIX, 14}, {mAW, 12}, {mAL, 16}}
	}
	return []modeCost{{mDn, 6}, {mAI, 12}, {mPI, 12}, {mPD, 14}, {mDI, 16}, {mIX, 18}, {mAW, 16}, {mAL, 20}}
}

func addFamilyEntries() []tableEntry {
	var e []tableEntry

	appendER := func(base uint16, modes []modeCost, width int, f func(int, eaMode, Cycles) Handler) {
		for _, mc := range modes {
			e = append(e, eaEntry(base, mc, f(width, mc.mode, mc.cycles)))
		}
	}
	appendA := func(base uint16, modes []modeCost, width int, f func(int, eaMode, Cycles) Handler) {
		for _, mc := range modes {
			e = append(e, eaEntry(base, mc, f(width, mc.mode, mc.cycles)))
		}
	}

	appendER(addER8, erModes8(), 8, makeAddER)
	appendER(addER16, erModes16(), 16, makeAddER)
	appendER(addER32, erModes32(), 32, makeAddER)
	for _, mc := range reModes(true) {
		e = append(e, eaEntry(addRE8, mc, makeAddRE(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(addRE16, mc, makeAddRE(16, mc.mode, mc.cycles)))
	}
	for _, mc := range reModes(false) {
		e = append(e, eaEntry(addRE32, mc, makeAddRE(32, mc.mode, mc.cycles)))
	}
	appendA(adda16, aModes16(), 16, makeAdda)
	appendA(adda32, aModes32(), 32, makeAdda)
	for _, mc := range iModesData(true) {
		e = append(e, eaEntry(addi8, mc, makeAddi(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(addi16, mc, makeAddi(16, mc.mode, mc.cycles)))
	}
	for _, mc := range iModesData(false) {
		e = append(e, eaEntry(addi32, mc, makeAddi(32, mc.mode, mc.cycles)))
	}
	for _, mc := range qModesData(true) {
		e = append(e, eaEntry(addq8, mc, makeAddqData(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(addq16, mc, makeAddqData(16, mc.mode, mc.cycles)))
	}
	for _, mc := range qModesData(false) {
		e = append(e, eaEntry(addq32, mc, makeAddqData(32, mc.mode, mc.cycles)))
	}
	e = append(e, eaEntry(addq16, modeCost{mAn, 4}, makeAddqAddr(4)))
	e = append(e, eaEntry(addq32, modeCost{mAn, 8}, makeAddqAddr(8)))

	e = append(e, tableEntry{mask: maskOutXY, match: addxRR8, handler: makeAddxRR(8, 4)})
	e = append(e, tableEntry{mask: maskOutXY, match: addxMM8, handler: makeAddxMM(8, 18)})
	e = append(e, tableEntry{mask: maskOutXY, match: addxRR16, handler: makeAddxRR(16, 4)})
	e = append(e, tableEntry{mask: maskOutXY, match: addxMM16, handler: makeAddxMM(16, 18)})
	e = append(e, tableEntry{mask: maskOutXY, match: addxRR32, handler: makeAddxRR(32, 8)})
	e = append(e, tableEntry{mask: maskOutXY, match: addxMM32, handler: makeAddxMM(32, 30)})

	appendER(subER8, erModes8(), 8, makeSubER)
	appendER(subER16, erModes16(), 16, makeSubER)
	appendER(subER32, erModes32(), 32, makeSubER)
	for _, mc := range reModes(true) {
		e = append(e, eaEntry(subRE8, mc, makeSubRE(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(subRE16, mc, makeSubRE(16, mc.mode, mc.cycles)))
	}
	for _, mc := range reModes(false) {
		e = append(e, eaEntry(subRE32, mc, makeSubRE(32, mc.mode, mc.cycles)))
	}
	appendA(suba16, aModes16(), 16, makeSuba)
	appendA(suba32, aModes32(), 32, makeSuba)
	for _, mc := range iModesData(true) {
		e = append(e, eaEntry(subi8, mc, makeSubi(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(subi16, mc, makeSubi(16, mc.mode, mc.cycles)))
	}
	for _, mc := range iModesData(false) {
		e = append(e, eaEntry(subi32, mc, makeSubi(32, mc.mode, mc.cycles)))
	}
	for _, mc := range qModesData(true) {
		e = append(e, eaEntry(subq8, mc, makeSubqData(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(subq16, mc, makeSubqData(16, mc.mode, mc.cycles)))
	}
	for _, mc := range qModesData(false) {
		e = append(e, eaEntry(subq32, mc, makeSubqData(32, mc.mode, mc.cycles)))
	}
	e = append(e, eaEntry(subq16, modeCost{mAn, 4}, makeSubqAddr(4)))
	e = append(e, eaEntry(subq32, modeCost{mAn, 8}, makeSubqAddr(8)))

	e = append(e, tableEntry{mask: maskOutXY, match: subxRR8, handler: makeSubxRR(8, 4)})
	e = append(e, tableEntry{mask: maskOutXY, match: subxMM8, handler: makeSubxMM(8, 18)})
	e = append(e, tableEntry{mask: maskOutXY, match: subxRR16, handler: makeSubxRR(16, 4)})
	e = append(e, tableEntry{mask: maskOutXY, match: subxMM16, handler: makeSubxMM(16, 18)})
	e = append(e, tableEntry{mask: maskOutXY, match: subxRR32, handler: makeSubxRR(32, 8)})
	e = append(e, tableEntry{mask: maskOutXY, match: subxMM32, handler: makeSubxMM(32, 30)})

	appendER(cmp8, erModes8(), 8, makeCmpER)
	appendER(cmp16, erModes16(), 16, makeCmpER)
	appendER(cmp32, erModes32(), 32, makeCmpER)
	appendA(cmpa16, aModes16(), 16, makeCmpa)
	appendA(cmpa32, aModes32(), 32, makeCmpa)
	for _, mc := range iModesCmp(true) {
		e = append(e, eaEntry(cmpi8, mc, makeCmpi(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(cmpi16, mc, makeCmpi(16, mc.mode, mc.cycles)))
	}
	for _, mc := range iModesCmp(false) {
		e = append(e, eaEntry(cmpi32, mc, makeCmpi(32, mc.mode, mc.cycles)))
	}
	e = append(e, tableEntry{mask: maskOutXY, match: cmpm8, handler: makeCmpm(8, 12)})
	e = append(e, tableEntry{mask: maskOutXY, match: cmpm16, handler: makeCmpm(16, 12)})
	e = append(e, tableEntry{mask: maskOutXY, match: cmpm32, handler: makeCmpm(32, 20)})

	for _, mc := range unaryModes(true) {
		e = append(e, eaEntry(neg8, mc, makeNeg(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(neg16, mc, makeNeg(16, mc.mode, mc.cycles)))
		e = append(e, eaEntry(negx8, mc, makeNegx(8, mc.mode, mc.cycles)))
		e = append(e, eaEntry(negx16, mc, makeNegx(16, mc.mode, mc.cycles)))
	}
	for _, mc := range unaryModes(false) {
		e = append(e, eaEntry(neg32, mc, makeNeg(32, mc.mode, mc.cycles)))
		e = append(e, eaEntry(negx32, mc, makeNegx(32, mc.mode, mc.cycles)))
	}

	return e
}
