package m68k

// Bus is the abstract memory/peripheral interface the core reads
// instructions and operands through. The core never interprets an address
// itself — chip-select, MMIO, wait states and bus-error generation are all
// the embedder's concern. A non-nil error from any method propagates
// unchanged out of the handler that triggered it; the core does not retry,
// roll back partial register writes, or synthesize a bus-error exception.
type Bus interface {
	ReadDataByte(addr uint32) (uint8, error)
	ReadDataWord(addr uint32) (uint16, error)
	ReadDataLong(addr uint32) (uint32, error)

	WriteDataByte(addr uint32, value uint8) error
	WriteDataWord(addr uint32, value uint16) error
	WriteDataLong(addr uint32, value uint32) error
}
