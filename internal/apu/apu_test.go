package apu

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/types"
)

func TestNew_DefaultsSampleRateWhenZero(t *testing.T) {
	a := New(types.DMG, nil, 0)
	if a.samplePeriod != float64(tCyclesPerSecond)/float64(defaultSampleRate) {
		t.Errorf("samplePeriod = %v, want default-derived period", a.samplePeriod)
	}
}

func TestNew_HonorsExplicitSampleRate(t *testing.T) {
	a := New(types.DMG, nil, 44100)
	want := float64(tCyclesPerSecond) / float64(44100)
	if a.samplePeriod != want {
		t.Errorf("samplePeriod = %v, want %v", a.samplePeriod, want)
	}
}

func TestWrite_RegistersIgnoredWhilePoweredOff(t *testing.T) {
	a := New(types.DMG, nil, 0)
	a.Write(types.NR10, 0x7F)
	if got := a.Read(types.NR10); got != 0x80 {
		t.Errorf("NR10 after write while powered off = %#02x, want %#02x (unchanged)", got, 0x80)
	}
}

func TestWriteNR52_PowerOnThenOffClearsRegisters(t *testing.T) {
	a := New(types.DMG, nil, 0)
	a.Write(types.NR52, 0x80)
	a.Write(types.NR10, 0x7F)
	if got := a.Read(types.NR10); got != 0xFF {
		t.Fatalf("NR10 after write while powered on = %#02x, want %#02x", got, 0xFF)
	}

	a.Write(types.NR52, 0x00)
	if got := a.Read(types.NR10); got != 0x80 {
		t.Errorf("NR10 after power-off = %#02x, want reset to %#02x", got, 0x80)
	}
	if got := a.Read(types.NR52); got&0x80 != 0 {
		t.Errorf("NR52 bit 7 set after writing power-off, want cleared")
	}
}

func TestReadNR52_ReportsChannelEnableBits(t *testing.T) {
	a := New(types.DMG, nil, 0)
	a.Write(types.NR52, 0x80)
	a.Write(types.NR11, 0x80)
	a.Write(types.NR12, 0xF0)
	a.Write(types.NR14, 0x80)

	got := a.Read(types.NR52)
	if got&0x01 == 0 {
		t.Errorf("NR52 = %#02x, want channel 1 enable bit set after triggering it", got)
	}
	if got&0x70 != 0x70 {
		t.Errorf("NR52 = %#02x, want the unused upper bits to read back as 1", got)
	}
}

func TestNR50NR51_RoundTripThroughReadWrite(t *testing.T) {
	a := New(types.DMG, nil, 0)
	a.Write(types.NR52, 0x80)

	a.Write(types.NR50, 0x77)
	if got := a.Read(types.NR50); got != 0x77 {
		t.Errorf("NR50 round-trip = %#02x, want %#02x", got, 0x77)
	}

	a.Write(types.NR51, 0xF3)
	if got := a.Read(types.NR51); got != 0xF3 {
		t.Errorf("NR51 round-trip = %#02x, want %#02x", got, 0xF3)
	}
}

func TestTick_MixesASampleAfterOneSamplePeriod(t *testing.T) {
	a := New(types.DMG, nil, 1)
	a.Write(types.NR52, 0x80)
	a.Write(types.NR50, 0x77)
	a.Write(types.NR51, 0xFF)

	var gotSample bool
	a.Sink = func(left, right int16) { gotSample = true }

	for i := 0; i < tCyclesPerSecond+1; i++ {
		a.Tick()
	}
	if !gotSample {
		t.Fatal("Sink never called after ticking past one full sample period")
	}
}

func TestMixSample_NilSinkDoesNotPanic(t *testing.T) {
	a := New(types.DMG, nil, 0)
	a.Write(types.NR52, 0x80)
	for i := 0; i < 100; i++ {
		a.Tick()
	}
}

func TestRead_UnmappedAddressReturnsFF(t *testing.T) {
	a := New(types.DMG, nil, 0)
	if got := a.Read(0xFF27); got != 0xFF {
		t.Errorf("Read(unmapped) = %#02x, want %#02x", got, 0xFF)
	}
}

func TestWaveRAM_AccessibleRegardlessOfPower(t *testing.T) {
	a := New(types.DMG, nil, 0)
	a.Write(0xFF30, 0xAB)
	if got := a.Read(0xFF30); got != 0xAB {
		t.Errorf("wave RAM byte = %#02x, want %#02x", got, 0xAB)
	}
}
