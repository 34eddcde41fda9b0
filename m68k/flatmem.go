package m68k

import "fmt"

// FlatMemory is the simplest possible Bus implementation: one contiguous
// big-endian byte slice with bounds-checked access. It has no MMIO, no
// chip-select, no DMA — just enough to drive a Core from a test or from
// the CLI's loaded program image.
type FlatMemory struct {
	buf []byte
}

// NewFlatMemory allocates a zeroed FlatMemory of the given size in bytes.
func NewFlatMemory(size int) *FlatMemory {
	return &FlatMemory{buf: make([]byte, size)}
}

// Load copies data into memory starting at addr, for seeding a program
// image or test fixture before execution begins.
func (m *FlatMemory) Load(addr uint32, data []byte) error {
	if int(addr)+len(data) > len(m.buf) {
		return fmt.Errorf("m68k: load of %d bytes at %06X exceeds %d-byte memory", len(data), addr, len(m.buf))
	}
	copy(m.buf[addr:], data)
	return nil
}

func (m *FlatMemory) bounds(addr uint32, width int) error {
	if int(addr)+width/8 > len(m.buf) {
		return fmt.Errorf("m68k: access at %06X (width %d) exceeds %d-byte memory", addr, width, len(m.buf))
	}
	return nil
}

func (m *FlatMemory) ReadDataByte(addr uint32) (uint8, error) {
	if err := m.bounds(addr, 8); err != nil {
		return 0, err
	}
	return m.buf[addr], nil
}

func (m *FlatMemory) ReadDataWord(addr uint32) (uint16, error) {
	if err := m.bounds(addr, 16); err != nil {
		return 0, err
	}
	return uint16(m.buf[addr])<<8 | uint16(m.buf[addr+1]), nil
}

func (m *FlatMemory) ReadDataLong(addr uint32) (uint32, error) {
	if err := m.bounds(addr, 32); err != nil {
		return 0, err
	}
	return uint32(m.buf[addr])<<24 | uint32(m.buf[addr+1])<<16 | uint32(m.buf[addr+2])<<8 | uint32(m.buf[addr+3]), nil
}

func (m *FlatMemory) WriteDataByte(addr uint32, v uint8) error {
	if err := m.bounds(addr, 8); err != nil {
		return err
	}
	m.buf[addr] = v
	return nil
}

func (m *FlatMemory) WriteDataWord(addr uint32, v uint16) error {
	if err := m.bounds(addr, 16); err != nil {
		return err
	}
	m.buf[addr] = uint8(v >> 8)
	m.buf[addr+1] = uint8(v)
	return nil
}

func (m *FlatMemory) WriteDataLong(addr uint32, v uint32) error {
	if err := m.bounds(addr, 32); err != nil {
		return err
	}
	m.buf[addr] = uint8(v >> 24)
	m.buf[addr+1] = uint8(v >> 16)
	m.buf[addr+2] = uint8(v >> 8)
	m.buf[addr+3] = uint8(v)
	return nil
}
