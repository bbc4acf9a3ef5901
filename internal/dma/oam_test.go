package dma

import "testing"

func TestOAM_StartupDelay(t *testing.T) {
	src := make([]byte, 0x10000)
	src[0xC000] = 0x42
	var dst [0xA0]byte

	d := NewOAM()
	d.ReadBus = func(addr uint16) uint8 { return src[addr] }
	d.WriteOAM = func(offset uint8, value uint8) { dst[offset] = value }

	d.Start(0xC0)
	if !d.Active() {
		t.Fatalf("expected transfer active immediately after Start")
	}

	for i := 0; i < startupTCycles; i++ {
		d.Tick()
	}
	if dst[0] != 0 {
		t.Fatalf("byte copied before startup delay elapsed")
	}

	for i := 0; i < 4; i++ {
		d.Tick()
	}
	if dst[0] != 0x42 {
		t.Fatalf("dst[0] = %#02x, want 0x42 after first M-cycle past startup", dst[0])
	}
}

func TestOAM_FullTransferEndsActive(t *testing.T) {
	src := make([]byte, 0x10000)
	var dst [0xA0]byte

	d := NewOAM()
	d.ReadBus = func(addr uint16) uint8 { return src[addr] }
	d.WriteOAM = func(offset uint8, value uint8) { dst[offset] = value }

	d.Start(0xC0)
	total := startupTCycles + 0xA0*4
	for i := 0; i < total; i++ {
		d.Tick()
	}
	if d.Active() {
		t.Fatalf("expected transfer finished after 160 bytes")
	}
}

func TestOAM_RetriggerResetsOffset(t *testing.T) {
	src := make([]byte, 0x10000)
	var dst [0xA0]byte

	d := NewOAM()
	d.ReadBus = func(addr uint16) uint8 { return src[addr] }
	d.WriteOAM = func(offset uint8, value uint8) { dst[offset] = value }

	d.Start(0xC0)
	for i := 0; i < startupTCycles+4*4; i++ {
		d.Tick()
	}
	d.Start(0xD0) // retrigger mid-transfer
	if d.Source() != 0xD0 {
		t.Fatalf("Source() = %#02x, want 0xD0", d.Source())
	}
	if !d.Active() {
		t.Fatalf("expected still active after retrigger")
	}
}
