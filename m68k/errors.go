package m68k

import "fmt"

// IllegalInstruction is returned by ExecuteOne/Execute when the fetched
// instruction word has no handler bound in the dispatch table. PC is the
// address of the instruction word itself, not the address past it.
type IllegalInstruction struct {
	IR uint16
	PC uint32
}

func (e *IllegalInstruction) Error() string {
	return fmt.Sprintf("m68k: illegal instruction %04X at %06X", e.IR, e.PC)
}
