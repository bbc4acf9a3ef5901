package gomeboy

import "testing"

func blankROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00
	rom[0x148] = 0x00
	rom[0x149] = 0x00
	var sum uint8
	for i := 0x34; i <= 0x4C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestNew_PublicSurfaceConstructsAnEngine(t *testing.T) {
	e, err := New(blankROM(), WithModel(CGB))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.RunFrame()
	if len(e.FrameBuffer()) != 160*144*4 {
		t.Fatalf("FrameBuffer length = %d, want %d", len(e.FrameBuffer()), 160*144*4)
	}
	e.Press(ButtonStart)
	e.Release(ButtonStart)
}
