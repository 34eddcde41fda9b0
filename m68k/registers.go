package m68k

// Core holds the full architectural state the instruction-execution layer
// operates on: the 16-slot register file (D0-D7 at indices 0-7, A0-A7 at
// indices 8-15), the program counter, the instruction register, and the
// five lazy condition-code slots.
type Core struct {
	Reg [16]uint32
	PC  uint32
	IR  uint16

	// N, V, C, X hold the last arithmetic/logical result, pre-shifted so
	// that bit 7 is always the sign/overflow test and bit 8 is always the
	// carry test, regardless of the operand width that produced them (see
	// flagShift). notZ is the OR-accumulated "sticky clear" result: it is
	// zero iff every width-masked result contributing to it was zero.
	N, V, C, X, notZ uint32

	bus Bus
}

// New constructs a Core with A7 seeded to initialSP and every other
// register, PC and flag slot at zero.
func New(initialSP uint32, bus Bus) *Core {
	c := &Core{bus: bus}
	c.Reg[15] = initialSP
	return c
}

func (c *Core) D(i int) uint32 { return c.Reg[i] }
func (c *Core) A(i int) uint32 { return c.Reg[8+i] }

// setDataSized writes value into data register i, preserving the bits of
// the register above the operation's width (byte/word writes to a data
// register never touch the untouched high bits).
func (c *Core) setDataSized(i int, value uint32, width int) {
	switch width {
	case 8:
		c.Reg[i] = (c.Reg[i] &^ 0xFF) | (value & 0xFF)
	case 16:
		c.Reg[i] = (c.Reg[i] &^ 0xFFFF) | (value & 0xFFFF)
	default:
		c.Reg[i] = value
	}
}

// flagShift returns the right-shift that normalizes a (width+1)-bit
// intermediate result so bit width-1 (the sign) lands on bit 7 and bit
// width (the carry-out) lands on bit 8, for width in {8,16,32}. This is
// the trick that lets ConditionCodeRegister test a fixed bit position
// without tracking which width last wrote each flag slot.
func flagShift(width int) uint {
	return uint(width - 8)
}

func maskW(v uint32, width int) uint32 {
	switch width {
	case 8:
		return v & 0xFF
	case 16:
		return v & 0xFFFF
	default:
		return v
	}
}

func signExtend(v uint32, width int) uint32 {
	switch width {
	case 8:
		if v&0x80 != 0 {
			return v | 0xFFFFFF00
		}
		return v & 0xFF
	case 16:
		if v&0x8000 != 0 {
			return v | 0xFFFF0000
		}
		return v & 0xFFFF
	default:
		return v
	}
}

// ConditionCodeRegister packs the five lazy flag slots into the standard
// 5-bit CCR layout: bit0=C, bit1=V, bit2=Z, bit3=N, bit4=X.
func (c *Core) ConditionCodeRegister() uint8 {
	var ccr uint8
	if c.C&0x100 != 0 {
		ccr |= 1 << 0
	}
	if c.V&0x80 != 0 {
		ccr |= 1 << 1
	}
	if c.notZ == 0 {
		ccr |= 1 << 2
	}
	if c.N&0x80 != 0 {
		ccr |= 1 << 3
	}
	if c.X&0x100 != 0 {
		ccr |= 1 << 4
	}
	return ccr
}

// SetConditionCodeRegister is the inverse of ConditionCodeRegister: it
// reconstructs flag slots that will read back the given 5-bit CCR value.
func (c *Core) SetConditionCodeRegister(ccr uint8) {
	if ccr&(1<<0) != 0 {
		c.C = 0x100
	} else {
		c.C = 0
	}
	if ccr&(1<<1) != 0 {
		c.V = 0x80
	} else {
		c.V = 0
	}
	if ccr&(1<<2) != 0 {
		c.notZ = 0
	} else {
		c.notZ = 1
	}
	if ccr&(1<<3) != 0 {
		c.N = 0x80
	} else {
		c.N = 0
	}
	if ccr&(1<<4) != 0 {
		c.X = 0x100
	} else {
		c.X = 0
	}
}

// xFlagAs1 returns the X flag as a plain 0/1, the form ADDX/SUBX/ABCD/NBCD
// fold into their carry-in.
func (c *Core) xFlagAs1() uint32 {
	if c.X&0x100 != 0 {
		return 1
	}
	return 0
}

// IR bit-slicing helpers. Dx/Dy are 0-7 data-register indices; Ax/Ay are
// absolute 8-15 indices into Core.Reg.
func irDx(ir uint16) int { return int(ir>>9) & 7 }
func irDy(ir uint16) int { return int(ir) & 7 }

// IRAx and IRAy return the absolute register-array index (8-15) for the
// address register named in IR's X/Y fields.
func IRAx(ir uint16) int { return 8 + irDx(ir) }
func IRAy(ir uint16) int { return 8 + irDy(ir) }
