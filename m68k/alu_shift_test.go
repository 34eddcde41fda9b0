package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAslSetsOverflowOnSignChange(t *testing.T) {
	c := newTestCore()
	res := c.asl(8, 0x40, 1) // 0x40 -> 0x80: sign bit flips 0->1
	require.Equal(t, uint32(0x80), res)
	ccr := c.ConditionCodeRegister()
	require.NotEqual(t, uint8(0), ccr&0x02, "ASL must flag overflow when the sign bit changes mid-shift")
}

func TestLslNeverSetsOverflow(t *testing.T) {
	c := newTestCore()
	c.lsl(8, 0x40, 1)
	require.Equal(t, uint8(0), c.ConditionCodeRegister()&0x02)
}

func TestAsrSignExtends(t *testing.T) {
	c := newTestCore()
	res := c.asr(8, 0x80, 1)
	require.Equal(t, uint32(0xC0), res, "ASR fills with the sign bit")
}

func TestLsrFillsWithZero(t *testing.T) {
	c := newTestCore()
	res := c.lsr(8, 0x80, 1)
	require.Equal(t, uint32(0x40), res)
	require.Equal(t, uint8(0), c.ConditionCodeRegister()&0x01, "no bit was shifted out of the bottom")
}

func TestRolWraps(t *testing.T) {
	c := newTestCore()
	res := c.rol(8, 0x80, 1)
	require.Equal(t, uint32(0x01), res)
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x01)
}

func TestRorLeavesXUntouched(t *testing.T) {
	c := newTestCore()
	c.X = 0x100
	c.ror(8, 0x01, 1)
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x10, "ROL/ROR never touch X")
}

func TestRoxlRotatesThroughX(t *testing.T) {
	c := newTestCore()
	c.X = 0 // X enters as 0
	res := c.roxl(8, 0x80, 1)
	require.Equal(t, uint32(0x00), res, "the old sign bit exits to C/X, X(0) enters at the bottom")
	ccr := c.ConditionCodeRegister()
	require.NotEqual(t, uint8(0), ccr&0x01)
	require.NotEqual(t, uint8(0), ccr&0x10)
}

func TestShiftCountZeroClearsVAndCButLeavesX(t *testing.T) {
	c := newTestCore()
	c.X = 0x100
	c.V, c.C = 0x80, 0x100
	c.asl(8, 0x55, 0)
	ccr := c.ConditionCodeRegister()
	require.Equal(t, uint8(0), ccr&0x02)
	require.Equal(t, uint8(0), ccr&0x01)
	require.NotEqual(t, uint8(0), ccr&0x10, "a zero count must not disturb X")
}

// ASL.B #1,D0 — opcode 0xE100 | (count=1)<<9 | Dy(=0).
func TestDispatchAslQuickOnRegister(t *testing.T) {
	c := newTestCore()
	c.Reg[0] = 0x01
	c.IR = aslQ8 | (1 << 9) | 0
	cycles, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, Cycles(8), cycles) // base 6 + 2*1
	require.Equal(t, uint32(0x02), c.Reg[0]&0xFF)
}

// LSR.W (A0) memory form, always a single bit — opcode 0xE2C0 | (mode=AI)<<3.
func TestDispatchLsrMemory(t *testing.T) {
	mem := NewFlatMemory(32)
	require.NoError(t, mem.WriteDataWord(0x10, 0x0003))
	c := New(0, mem)
	c.Reg[8+0] = 0x10
	c.IR = lsrMem | (2 << 3) | 0
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	got, err := mem.ReadDataWord(0x10)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0001), got)
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x01)
}
