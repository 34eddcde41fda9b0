package m68k

// testCondition evaluates one of the sixteen standard 68000 condition
// codes against the current lazy flag state. cc 0b0000 (T) is always true
// and cc 0b0001 (F) is always false; Bcc's own dispatch table omits the F
// slot (it is reserved for BSR, which this core does not implement), but
// DBcc and Scc both use the full sixteen-entry space.
func (c *Core) testCondition(cc uint8) bool {
	ccr := c.ConditionCodeRegister()
	carry := ccr&0x01 != 0
	overflow := ccr&0x02 != 0
	zero := ccr&0x04 != 0
	negative := ccr&0x08 != 0
	switch cc {
	case 0x0:
		return true
	case 0x1:
		return false
	case 0x2:
		return !carry && !zero
	case 0x3:
		return carry || zero
	case 0x4:
		return !carry
	case 0x5:
		return carry
	case 0x6:
		return !zero
	case 0x7:
		return zero
	case 0x8:
		return !overflow
	case 0x9:
		return overflow
	case 0xA:
		return !negative
	case 0xB:
		return negative
	case 0xC:
		return negative == overflow
	case 0xD:
		return negative != overflow
	case 0xE:
		return !zero && negative == overflow
	case 0xF:
		return zero || negative != overflow
	default:
		return false
	}
}

// makeBcc builds a Bcc handler; cc 0b0000 covers what assemblers call BRA
// for free, since an always-true condition is exactly unconditional
// branch. A zero displacement byte means the real 16-bit displacement
// follows as an extension word.
func makeBcc(cc uint8) Handler {
	return func(c *Core) (Cycles, error) {
		startPC := c.PC
		disp8 := int8(c.IR & 0xFF)
		var target uint32
		if disp8 == 0 {
			ext, err := c.fetchExtWord()
			if err != nil {
				return 0, err
			}
			target = startPC + signExtend(uint32(ext), 16)
		} else {
			target = uint32(int32(startPC) + int32(disp8))
		}
		if c.testCondition(cc) {
			c.PC = target
			return 10, nil
		}
		if disp8 == 0 {
			return 12, nil
		}
		return 8, nil
	}
}

// makeDbcc builds a DBcc handler. The displacement word is always
// consumed regardless of outcome; the loop register's low 16 bits are
// decremented only when the condition is false, and the branch taken only
// while that counter has not wrapped past -1.
func makeDbcc(cc uint8) Handler {
	return func(c *Core) (Cycles, error) {
		startPC := c.PC
		disp, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		if c.testCondition(cc) {
			return 12, nil
		}
		dyi := irDy(c.IR)
		lo := uint16(c.Reg[dyi]) - 1
		c.Reg[dyi] = (c.Reg[dyi] &^ 0xFFFF) | uint32(lo)
		if lo != 0xFFFF {
			c.PC = startPC + signExtend(uint32(disp), 16)
			return 10, nil
		}
		return 14, nil
	}
}

// makeScc builds an Scc handler: the destination byte becomes all ones if
// the condition holds, all zeros otherwise. Scc affects no flags.
func makeScc(cc uint8, mode eaMode, cycles Cycles) Handler {
	return func(c *Core) (Cycles, error) {
		reg := int(c.IR & 7)
		ref, _, err := c.resolveEA(mode, reg, 8)
		if err != nil {
			return 0, err
		}
		var v uint32
		if c.testCondition(cc) {
			v = 0xFF
		}
		return cycles, c.commitEA(ref, 8, v)
	}
}

const (
	bccBase  = 0x6000
	dbccBase = 0x50C8
	sccBase  = 0x50C0
)

// sccEntry builds one Scc table entry. Unlike the two-operand ALU families
// eaEntry serves, bits 11:8 here aren't a spare destination-register field —
// they carry the condition code baked into baseOpcode — so the mask must
// keep them significant. maskOutXY/maskOutX both treat bits 11:9 as a
// don't-care "X" field, which would make every cc collapse onto the cc=0
// entry; restore those bits instead of reusing eaEntry's mask.
func sccEntry(baseOpcode uint16, mc modeCost, h Handler) tableEntry {
	info := eaCatalog[mc.mode]
	mask := uint16(0xFFFF)
	if info.varies {
		mask = 0xFFF8
	}
	return tableEntry{mask: mask, match: baseOpcode | info.pattern, handler: h}
}

func condFamilyEntries() []tableEntry {
	var e []tableEntry
	for cc := uint16(0); cc < 16; cc++ {
		if cc != 1 {
			e = append(e, tableEntry{mask: 0xFF00, match: bccBase | cc<<8, handler: makeBcc(uint8(cc))})
		}
		e = append(e, tableEntry{mask: 0xFFF8, match: dbccBase | cc<<8, handler: makeDbcc(uint8(cc))})
		for _, mc := range unaryModes(true) {
			e = append(e, sccEntry(sccBase|cc<<8, mc, makeScc(uint8(cc), mc.mode, mc.cycles)))
		}
	}
	return e
}
