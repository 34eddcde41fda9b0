package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCore() *Core {
	return New(0, NewFlatMemory(4096))
}

func TestAddCarryFlags(t *testing.T) {
	c := newTestCore()
	res := c.addCarry(8, 0xFF, 0x01, 0, false)
	require.Equal(t, uint32(0x00), res)
	require.Equal(t, uint8(0b00101), c.ConditionCodeRegister()&0b00111) // Z,C set; N,V clear within mask
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x01, "carry should be set")
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x04, "zero should be set")
}

func TestAddCarryOverflow(t *testing.T) {
	c := newTestCore()
	res := c.addCarry(8, 0x7F, 0x01, 0, false)
	require.Equal(t, uint32(0x80), res)
	ccr := c.ConditionCodeRegister()
	require.NotEqual(t, uint8(0), ccr&0x02, "overflow should be set")
	require.NotEqual(t, uint8(0), ccr&0x08, "negative should be set")
	require.Equal(t, uint8(0), ccr&0x01, "carry should be clear")
}

func TestSubBorrowFlags(t *testing.T) {
	c := newTestCore()
	res := c.subBorrow(8, 0x00, 0x01, 0, false)
	require.Equal(t, uint32(0xFF), res)
	ccr := c.ConditionCodeRegister()
	require.NotEqual(t, uint8(0), ccr&0x01, "borrow should set carry")
	require.NotEqual(t, uint8(0), ccr&0x08, "result is negative")
}

func TestCmpOpLeavesXUntouched(t *testing.T) {
	c := newTestCore()
	c.X = 0x100
	c.cmpOp(8, 0x05, 0x05)
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x10, "X must be untouched by CMP")
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x04, "equal operands are zero")
}

func TestAddxStickyZero(t *testing.T) {
	c := newTestCore()
	// Low limb: 0x00 + 0x00 + X(0) = 0, zero so far.
	c.addCarry(8, 0x00, 0x00, 0, true)
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x04)
	// High limb: 0x01 + 0x00 + X(0) -> nonzero result, but notZ is sticky-OR'd.
	c.addCarry(8, 0x01, 0x00, c.xFlagAs1(), true)
	require.Equal(t, uint8(0), c.ConditionCodeRegister()&0x04, "sticky Z must clear once any limb is nonzero")
}

// ADD.B D2,D1 — opcode 0xD000 | (Dx=1)<<9 | (mode=Dn)<<3 | (Dy=2).
func TestDispatchAddByteRegisterToRegister(t *testing.T) {
	c := newTestCore()
	c.Reg[1] = 0x05
	c.Reg[2] = 0x03
	c.IR = 0xD000 | (1 << 9) | 2
	cycles, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, Cycles(4), cycles)
	require.Equal(t, uint32(0x08), c.Reg[1]&0xFF)
}

// ADDA.W (An),Ax — sign-extends a negative word EA operand into a 32-bit
// address register add. opcode 0xD0C0 | (Ax=3)<<9 | (mode=AI)<<3 | Ay(=0).
func TestDispatchAddaWordSignExtends(t *testing.T) {
	mem := NewFlatMemory(32)
	require.NoError(t, mem.WriteDataWord(0x10, 0xFFFE)) // -2 as a word
	c := New(0, mem)
	c.Reg[8+0] = 0x10 // A0 holds the EA
	c.Reg[8+3] = 0x00001000
	c.IR = 0xD0C0 | (3 << 9) | (2 << 3) | 0
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, uint32(0x00000FFE), c.Reg[8+3])
}

// ADDQ.W #4,A2 — no flags affected, opcode 0x5040 | (quick=4)<<9 | (mode=An)<<3 | Ay(=2).
func TestDispatchAddqAddressRegisterNoFlags(t *testing.T) {
	c := newTestCore()
	c.X, c.N, c.V, c.C, c.notZ = 0x100, 0x80, 0x80, 0x100, 0
	c.Reg[8+2] = 100
	c.IR = addq16 | (4 << 9) | (1 << 3) | 2
	cycles, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, Cycles(4), cycles, "ADDQ.W to An is the cheap word form, not the long-form cost")
	require.Equal(t, uint32(104), c.Reg[8+2])
	require.Equal(t, uint8(0b11111), c.ConditionCodeRegister(), "ADDQ to An must not touch flags")
}

// ADDQ.L #4,A2 costs more than the word form.
func TestDispatchAddqAddressRegisterLongCycles(t *testing.T) {
	c := newTestCore()
	c.Reg[8+2] = 100
	c.IR = addq32 | (4 << 9) | (1 << 3) | 2
	cycles, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, Cycles(8), cycles)
	require.Equal(t, uint32(104), c.Reg[8+2])
}

// SUBQ.W #4,A2 mirrors ADDQ's word-vs-long cycle split.
func TestDispatchSubqAddressRegisterWordCycles(t *testing.T) {
	c := newTestCore()
	c.Reg[8+2] = 100
	c.IR = subq16 | (4 << 9) | (1 << 3) | 2
	cycles, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, Cycles(4), cycles)
	require.Equal(t, uint32(96), c.Reg[8+2])
}

// CMPM.B (A0)+,(A1)+ — opcode 0xB108 | (Ax=1)<<9 | Ay(=0).
func TestDispatchCmpmPostIncrementsBoth(t *testing.T) {
	mem := NewFlatMemory(32)
	require.NoError(t, mem.WriteDataByte(0x00, 0x09))
	require.NoError(t, mem.WriteDataByte(0x10, 0x09))
	c := New(0, mem)
	c.Reg[8+0] = 0x00 // Ay
	c.Reg[8+1] = 0x10 // Ax
	c.IR = 0xB108 | (1 << 9) | 0
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01), c.Reg[8+0])
	require.Equal(t, uint32(0x11), c.Reg[8+1])
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x04, "equal operands compare zero")
}

// NEGX.W Dn chains sticky Z the same way ADDX does.
func TestDispatchNegxStickyZero(t *testing.T) {
	c := newTestCore()
	c.Reg[0] = 0x0000
	c.IR = negx16 | 0 // Dn mode pattern is 0, register 0
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x04)
}
