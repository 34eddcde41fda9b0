package m68k

// Cycles is the clock-cycle cost a handler reports back to the caller.
type Cycles int

// Handler is the uniform shape every dispatch-table slot holds.
type Handler func(c *Core) (Cycles, error)

const tableSize = 1 << 16

// MASK_OUT_X_Y clears the destination-register field (bits 11:9) and the
// EA register field (bits 2:0), leaving the EA mode field (bits 5:3) and
// every other opcode bit significant. Used for addressing modes where the
// register-within-mode varies (Dn, An, (An), (An)+, -(An), (d16,An),
// (d8,An,Xn)).
const maskOutXY uint16 = 0xF1F8

// MASK_OUT_X clears only the destination-register field (bits 11:9);
// every EA bit participates in the match. Used for the absolute/PC-
// relative/immediate modes, where the "register" field selects a fixed
// submode rather than varying a register number.
const maskOutX uint16 = 0xF1FF

type tableEntry struct {
	mask, match uint16
	handler     Handler
}

func illegalHandler(c *Core) (Cycles, error) {
	return 0, &IllegalInstruction{IR: c.IR, PC: c.PC - 2}
}

// buildTable initializes every slot to illegalHandler, then overwrites
// with each entry in turn; entries are expected to be disjoint, but later
// entries winning on overlap matches the "install to every matching
// opcode slot" description handlers are built from.
func buildTable(entries []tableEntry) *[tableSize]Handler {
	var t [tableSize]Handler
	for i := range t {
		t[i] = illegalHandler
	}
	for _, e := range entries {
		for op := 0; op < tableSize; op++ {
			if uint16(op)&e.mask == e.match {
				t[op] = e.handler
			}
		}
	}
	return &t
}

// dispatchTable is built once per process and shared read-only by every
// Core: handler behaviour depends only on the IR/Core passed to it at call
// time, never on anything chosen when a particular Core was constructed,
// so there is nothing to gain by rebuilding it per instance.
var dispatchTable = buildTable(allEntries())

func allEntries() []tableEntry {
	var e []tableEntry
	e = append(e, addFamilyEntries()...)
	e = append(e, bcdFamilyEntries()...)
	e = append(e, logicFamilyEntries()...)
	e = append(e, shiftFamilyEntries()...)
	e = append(e, condFamilyEntries()...)
	return e
}

// eaModeInfo describes one of the twelve EA forms for table-entry
// generation: its fixed 6-bit field pattern and whether the low 3 bits of
// that field select a varying register (true) or a fixed submode (false,
// so maskOutX rather than maskOutXY is used).
type eaModeInfo struct {
	mode    eaMode
	pattern uint16
	varies  bool
}

var eaCatalog = map[eaMode]eaModeInfo{
	mDn:   {mDn, 0b000_000, true},
	mAn:   {mAn, 0b001_000, true},
	mAI:   {mAI, 0b010_000, true},
	mPI:   {mPI, 0b011_000, true},
	mPD:   {mPD, 0b100_000, true},
	mDI:   {mDI, 0b101_000, true},
	mIX:   {mIX, 0b110_000, true},
	mAW:   {mAW, 0b111_000, false},
	mAL:   {mAL, 0b111_001, false},
	mPCDI: {mPCDI, 0b111_010, false},
	mPCIX: {mPCIX, 0b111_011, false},
	mImm:  {mImm, 0b111_100, false},
}

// modeCost pairs an EA mode with the instruction-specific cycle cost for
// that mode.
type modeCost struct {
	mode   eaMode
	cycles Cycles
}

// eaEntry builds one table entry for an EA-bearing opcode: baseOpcode
// already has its X field and its 6-bit EA field zeroed. In lines 0
// (immediate forms), 4 (NEG/NEGX/NOT/NBCD) and E (memory-form shifts, the
// only line-E callers) bits 11:9 are part of the opcode rather than an X
// field, so they stay significant in the mask.
func eaEntry(baseOpcode uint16, mc modeCost, h Handler) tableEntry {
	info := eaCatalog[mc.mode]
	mask := maskOutX
	if info.varies {
		mask = maskOutXY
	}
	if line := baseOpcode >> 12; line == 0x0 || line == 0x4 || line == 0xE {
		mask |= 0x0E00
	}
	return tableEntry{mask: mask, match: baseOpcode | info.pattern, handler: h}
}
