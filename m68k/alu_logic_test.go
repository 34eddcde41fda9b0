package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogicFlagsNeverSetVOrC(t *testing.T) {
	c := newTestCore()
	c.V, c.C = 0x80, 0x100
	res := c.logicFlags(8, 0xF0)
	require.Equal(t, uint32(0xF0), res)
	ccr := c.ConditionCodeRegister()
	require.Equal(t, uint8(0), ccr&0x01)
	require.Equal(t, uint8(0), ccr&0x02)
	require.NotEqual(t, uint8(0), ccr&0x08, "0xF0 is negative at width 8")
}

func TestLogicFlagsLeavesXUntouched(t *testing.T) {
	c := newTestCore()
	c.X = 0x100
	c.logicFlags(8, 0x00)
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x10, "X must survive a logic op")
}

// AND.B D2,D1 — opcode 0xC000 | (Dx=1)<<9 | Dy(=2).
func TestDispatchAndRegisterToRegister(t *testing.T) {
	c := newTestCore()
	c.Reg[1] = 0xFF
	c.Reg[2] = 0x0F
	c.IR = andER8 | (1 << 9) | 2
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, uint32(0x0F), c.Reg[1]&0xFF)
}

// OR.B D1,(A0) — opcode 0x8100 | (Dx=1)<<9 | (mode=AI)<<3 | Ay(=0).
func TestDispatchOrRegisterToMemory(t *testing.T) {
	mem := NewFlatMemory(32)
	require.NoError(t, mem.WriteDataByte(0x10, 0x0F))
	c := New(0, mem)
	c.Reg[1] = 0xF0
	c.Reg[8+0] = 0x10
	c.IR = orRE8 | (1 << 9) | (2 << 3) | 0
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	got, err := mem.ReadDataByte(0x10)
	require.NoError(t, err)
	require.Equal(t, uint8(0xFF), got)
}

// EOR.W D0,D0 self-XOR always clears to zero.
func TestDispatchEorSelfClears(t *testing.T) {
	c := newTestCore()
	c.Reg[0] = 0xBEEF
	c.IR = eor16 | (0 << 9) | 0
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, uint32(0), c.Reg[0]&0xFFFF)
	require.NotEqual(t, uint8(0), c.ConditionCodeRegister()&0x04)
}

// NOT.B D0.
func TestDispatchNot(t *testing.T) {
	c := newTestCore()
	c.Reg[0] = 0x0F
	c.IR = notOp8 | 0
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, uint32(0xF0), c.Reg[0]&0xFF)
}

// ANDI #$0F,CCR.
func TestDispatchAndiToCCR(t *testing.T) {
	mem := NewFlatMemory(16)
	require.NoError(t, mem.WriteDataWord(0, 0x000F))
	c := New(0, mem)
	c.SetConditionCodeRegister(0x1F)
	c.PC = 0
	c.IR = andiToCCR
	_, err := dispatchTable[c.IR](c)
	require.NoError(t, err)
	require.Equal(t, uint8(0x0F), c.ConditionCodeRegister())
}
