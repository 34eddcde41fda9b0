package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ADD.B D2,D1 laid out as a real instruction word in memory, run through the
// full fetch/decode/execute path rather than a direct table lookup.
func TestExecuteOneFetchesAdvancesPCAndRuns(t *testing.T) {
	mem := NewFlatMemory(16)
	require.NoError(t, mem.WriteDataWord(0, 0xD000|(1<<9)|2))
	c := New(0, mem)
	c.PC = 0
	c.Reg[1] = 0x05
	c.Reg[2] = 0x03
	cycles, err := c.ExecuteOne()
	require.NoError(t, err)
	require.Equal(t, Cycles(4), cycles)
	require.Equal(t, uint32(2), c.PC, "PC must land past the fetched instruction word")
	require.Equal(t, uint32(0x08), c.Reg[1]&0xFF)
}

func TestExecuteOneSurfacesIllegalInstruction(t *testing.T) {
	mem := NewFlatMemory(16)
	require.NoError(t, mem.WriteDataWord(0, 0xA000)) // unbound Line-A opcode
	c := New(0, mem)
	c.PC = 0
	_, err := c.ExecuteOne()
	require.Error(t, err)
	var illegal *IllegalInstruction
	require.ErrorAs(t, err, &illegal)
	require.Equal(t, uint16(0xA000), illegal.IR)
	require.Equal(t, uint32(0), illegal.PC, "PC in the error points at the instruction word, not past it")
}

func TestExecuteOneBusErrorOnFetchLeavesPCUnadvanced(t *testing.T) {
	mem := NewFlatMemory(4) // too small for a word fetch at 0x10
	c := New(0, mem)
	c.PC = 0x10
	_, err := c.ExecuteOne()
	require.Error(t, err)
	require.Equal(t, uint32(0x10), c.PC, "a failed fetch never advances PC")
}

// Execute accumulates cycles across several NOPs-worth of ADD instructions
// until it has met or exceeded the requested budget.
func TestExecuteAccumulatesCyclesAcrossInstructions(t *testing.T) {
	mem := NewFlatMemory(16)
	addD1D2 := uint16(0xD000 | (1 << 9) | 2)
	require.NoError(t, mem.WriteDataWord(0, addD1D2))
	require.NoError(t, mem.WriteDataWord(2, addD1D2))
	require.NoError(t, mem.WriteDataWord(4, addD1D2))
	c := New(0, mem)
	c.PC = 0
	c.Reg[1] = 0
	c.Reg[2] = 1
	total, err := c.Execute(10) // 3 instructions * 4 cycles = 12 >= 10
	require.NoError(t, err)
	require.Equal(t, Cycles(12), total)
	require.Equal(t, uint32(3), c.Reg[1]&0xFF)
}

// Execute stops immediately and reports the error once an instruction fails,
// including the cycle cost (zero) of the failing instruction itself.
func TestExecuteStopsOnErrorAndReportsPartialTotal(t *testing.T) {
	mem := NewFlatMemory(16)
	addD1D2 := uint16(0xD000 | (1 << 9) | 2)
	require.NoError(t, mem.WriteDataWord(0, addD1D2))
	require.NoError(t, mem.WriteDataWord(2, 0xA000)) // illegal
	c := New(0, mem)
	c.PC = 0
	c.Reg[1] = 0
	c.Reg[2] = 1
	total, err := c.Execute(100)
	require.Error(t, err)
	require.Equal(t, Cycles(4), total, "only the first instruction's cycles are counted")
	var illegal *IllegalInstruction
	require.ErrorAs(t, err, &illegal)
}
