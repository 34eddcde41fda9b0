package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcdAddNoCarry(t *testing.T) {
	c := newTestCore()
	res := c.bcdAdd(0x09, 0x01)
	require.Equal(t, uint32(0x10), res)
	require.Equal(t, uint8(0), c.ConditionCodeRegister()&0x01, "no decimal carry expected")
}

func TestBcdAddCarries(t *testing.T) {
	c := newTestCore()
	res := c.bcdAdd(0x99, 0x01)
	require.Equal(t, uint32(0x00), res)
	ccr := c.ConditionCodeRegister()
	require.NotEqual(t, uint8(0), ccr&0x01, "99+1 must carry")
	require.NotEqual(t, uint8(0), ccr&0x10, "X mirrors C")
}

func TestBcdAddStickyZeroAcrossLimbs(t *testing.T) {
	c := newTestCore()
	c.bcdAdd(0x00, 0x00) // low limb zero
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x04)
	c.bcdAdd(0x01, 0x00) // high limb nonzero, sticky-OR'd
	require.Equal(t, uint8(0), c.ConditionCodeRegister()&0x04)
}

func TestBcdSubBorrow(t *testing.T) {
	c := newTestCore()
	res := c.bcdSub(0x00, 0x01)
	require.Equal(t, uint32(0x99), res)
	ccr := c.ConditionCodeRegister()
	require.NotEqual(t, uint8(0), ccr&0x01, "0-1 decimal must borrow")
	require.Equal(t, uint8(0), ccr&0x02, "V is left at 0 for decimal subtraction")
}

// ABCD D2,D1 — opcode 0xC100 | (Dx=1)<<9 | Dy(=2).
func TestDispatchAbcdRegisterRegister(t *testing.T) {
	c := newTestCore()
	c.Reg[1] = 0x09
	c.Reg[2] = 0x01
	c.IR = abcdRR | (1 << 9) | 2
	cycles, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, Cycles(6), cycles)
	require.Equal(t, uint32(0x10), c.Reg[1]&0xFF)
}

// NBCD (A0) — opcode 0x4800 | (mode=AI)<<3 | Ay(=0).
func TestDispatchNbcdMemory(t *testing.T) {
	mem := NewFlatMemory(32)
	require.NoError(t, mem.WriteDataByte(0x10, 0x01))
	c := New(0, mem)
	c.Reg[8+0] = 0x10
	c.IR = nbcdOp | (2 << 3) | 0
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	got, err := mem.ReadDataByte(0x10)
	require.NoError(t, err)
	require.Equal(t, uint8(0x99), got, "0 - 1 in BCD wraps to 99")
}
