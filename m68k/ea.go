package m68k

import "fmt"

// eaMode identifies one of the twelve effective-address forms the 6-bit
// mode/register field in bits 5:0 of IR can select.
type eaMode int

const (
	mDn eaMode = iota
	mAn
	mAI
	mPI
	mPD
	mDI
	mIX
	mAW
	mAL
	mPCDI
	mPCIX
	mImm
)

// stepFor returns the post-increment/pre-decrement step for address
// register reg (0-7) at the given width, with the A7-as-stack-pointer byte
// special case: byte-sized accesses through A7 still move it by 2 so the
// stack stays word-aligned.
func stepFor(reg, width int) uint32 {
	step := uint32(width / 8)
	if reg == 7 && width == 8 {
		return 2
	}
	return step
}

func (c *Core) busRead(addr uint32, width int) (uint32, error) {
	switch width {
	case 8:
		v, err := c.bus.ReadDataByte(addr)
		return uint32(v), err
	case 16:
		v, err := c.bus.ReadDataWord(addr)
		return uint32(v), err
	default:
		return c.bus.ReadDataLong(addr)
	}
}

func (c *Core) busWrite(addr uint32, width int, value uint32) error {
	switch width {
	case 8:
		return c.bus.WriteDataByte(addr, uint8(value))
	case 16:
		return c.bus.WriteDataWord(addr, uint16(value))
	default:
		return c.bus.WriteDataLong(addr, value)
	}
}

func (c *Core) fetchExtWord() (uint16, error) {
	w, err := c.bus.ReadDataWord(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC += 2
	return w, nil
}

// indexedAddress resolves a brief-format index extension word against a
// base address (used by both the address-register-indexed and
// PC-indexed modes).
func (c *Core) indexedAddress(base uint32, ext uint16) uint32 {
	regIdx := int(ext>>12) & 7
	var idx uint32
	if ext&0x8000 != 0 {
		idx = c.Reg[8+regIdx]
	} else {
		idx = c.Reg[regIdx]
	}
	if ext&0x0800 == 0 {
		idx = signExtend(idx&0xFFFF, 16)
	}
	disp := signExtend(uint32(ext&0xFF), 8)
	return base + idx + disp
}

// eaAddress computes the effective address for a memory-based mode,
// applying any post-increment/pre-decrement side effect exactly once.
// Register-direct modes (Dn, An) have no address and are handled by the
// caller before reaching here.
func (c *Core) eaAddress(mode eaMode, reg, width int) (uint32, error) {
	switch mode {
	case mAI:
		return c.Reg[8+reg], nil
	case mPI:
		addr := c.Reg[8+reg]
		c.Reg[8+reg] += stepFor(reg, width)
		return addr, nil
	case mPD:
		c.Reg[8+reg] -= stepFor(reg, width)
		return c.Reg[8+reg], nil
	case mDI:
		disp, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		return c.Reg[8+reg] + signExtend(uint32(disp), 16), nil
	case mIX:
		ext, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		return c.indexedAddress(c.Reg[8+reg], ext), nil
	case mAW:
		w, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		return signExtend(uint32(w), 16), nil
	case mAL:
		hi, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		lo, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		return uint32(hi)<<16 | uint32(lo), nil
	case mPCDI:
		base := c.PC
		disp, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		return base + signExtend(uint32(disp), 16), nil
	case mPCIX:
		base := c.PC
		ext, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		return c.indexedAddress(base, ext), nil
	default:
		return 0, fmt.Errorf("m68k: addressing mode %d has no effective address", mode)
	}
}

// eaRef names a resolved operand location so a read-modify-write sequence
// can commit back to the exact slot it read from, without re-running any
// addressing-mode side effect a second time.
type eaRef struct {
	mode eaMode
	reg  int
	addr uint32
}

// resolveEA reads the current value at the given EA and returns a
// reference suitable for a later commitEA call.
func (c *Core) resolveEA(mode eaMode, reg, width int) (eaRef, uint32, error) {
	switch mode {
	case mDn:
		return eaRef{mode: mDn, reg: reg}, maskW(c.Reg[reg], width), nil
	case mAn:
		return eaRef{mode: mAn, reg: reg}, c.Reg[8+reg], nil
	case mImm:
		v, err := c.immediate(width)
		return eaRef{mode: mImm}, v, err
	default:
		addr, err := c.eaAddress(mode, reg, width)
		if err != nil {
			return eaRef{}, 0, err
		}
		v, err := c.busRead(addr, width)
		return eaRef{mode: mode, reg: reg, addr: addr}, v, err
	}
}

func (c *Core) commitEA(ref eaRef, width int, value uint32) error {
	switch ref.mode {
	case mDn:
		c.setDataSized(ref.reg, value, width)
		return nil
	case mAn:
		c.Reg[8+ref.reg] = value
		return nil
	case mImm:
		return fmt.Errorf("m68k: immediate operand is not writable")
	default:
		return c.busWrite(ref.addr, width, value)
	}
}

func (c *Core) immediate(width int) (uint32, error) {
	if width == 32 {
		hi, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		lo, err := c.fetchExtWord()
		if err != nil {
			return 0, err
		}
		return uint32(hi)<<16 | uint32(lo), nil
	}
	w, err := c.fetchExtWord()
	if err != nil {
		return 0, err
	}
	if width == 8 {
		return uint32(w) & 0xFF, nil
	}
	return uint32(w), nil
}

// quick decodes the 3-bit quick-immediate field with the 0-means-8 encoding.
func (c *Core) quick() uint32 {
	q := uint32(irDx(c.IR))
	if q == 0 {
		return 8
	}
	return q
}

// predecPair resolves the ADDX/SUBX/ABCD "mm" source/destination pair:
// -(Ay) is read first, then -(Ax), matching the source-before-destination
// evaluation order used everywhere else in the core.
func (c *Core) predecPair(width int) (srcRef, dstRef eaRef, src, dst uint32, err error) {
	ay := irDy(c.IR)
	ax := irDx(c.IR)
	c.Reg[8+ay] -= stepFor(ay, width)
	srcAddr := c.Reg[8+ay]
	src, err = c.busRead(srcAddr, width)
	if err != nil {
		return
	}
	c.Reg[8+ax] -= stepFor(ax, width)
	dstAddr := c.Reg[8+ax]
	dst, err = c.busRead(dstAddr, width)
	srcRef = eaRef{mode: mPD, reg: ay, addr: srcAddr}
	dstRef = eaRef{mode: mPD, reg: ax, addr: dstAddr}
	return
}
