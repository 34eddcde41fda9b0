package m68k

// fetch16 reads the word at PC and advances PC past it. A bus failure
// leaves PC unadvanced — there is nothing to point past if the fetch
// itself never completed.
func (c *Core) fetch16() (uint16, error) {
	w, err := c.bus.ReadDataWord(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC += 2
	return w, nil
}

// ExecuteOne fetches, decodes and runs a single instruction, returning its
// cycle cost. A bus error during fetch or during operand access propagates
// unchanged; an unbound opcode yields *IllegalInstruction.
func (c *Core) ExecuteOne() (Cycles, error) {
	ir, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	c.IR = ir
	return dispatchTable[ir](c)
}

// Execute runs instructions until at least nCycles have elapsed or an
// instruction returns an error, whichever comes first. The cycle total
// returned includes the instruction whose error aborted the loop.
func (c *Core) Execute(nCycles int) (Cycles, error) {
	var total Cycles
	for int(total) < nCycles {
		n, err := c.ExecuteOne()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
