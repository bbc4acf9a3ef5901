// Package ram provides the flat byte-addressable storage backing WRAM
// and HRAM. Bank switching is the caller's concern;
// RAM itself is just a bounds-checked byte slice.
package ram

import "fmt"

// RAM is anything addressable like a byte-addressed memory device.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Ram is a flat, zero-initialized block of bytes.
type Ram struct {
	data []byte
}

// NewRAM returns size bytes of zeroed RAM.
func NewRAM(size uint32) *Ram {
	return &Ram{data: make([]byte, size)}
}

// Read returns the value at the given offset.
func (r *Ram) Read(address uint16) uint8 {
	if int(address) >= len(r.data) {
		panic(fmt.Sprintf("ram: address out of bounds: %#04X (size %d)", address, len(r.data)))
	}
	return r.data[address]
}

// Write stores the value at the given offset.
func (r *Ram) Write(address uint16, value uint8) {
	if int(address) >= len(r.data) {
		panic(fmt.Sprintf("ram: address out of bounds: %#04X (size %d)", address, len(r.data)))
	}
	r.data[address] = value
}

// Len returns the RAM's size in bytes.
func (r *Ram) Len() int {
	return len(r.data)
}
