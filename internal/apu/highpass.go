package apu

// highPassFilter is the first-order IIR capacitor-charge filter real
// Game Boy audio hardware applies per output side, supplemented from
// the reference emulator since the teacher's APU has none: op-amps in
// the console bias the DAC output around a capacitor that slowly
// discharges, subtracting out DC bias over time.
type highPassFilter struct {
	capacitor float32
	charge    float32
}

// newHighPassFilter derives the per-sample charge factor from the
// sampling rate: 1 - 1/(sampleRate * 0.004), which is about 0.9948 at
// the default 48 kHz rate.
func newHighPassFilter(sampleRate float32) *highPassFilter {
	return &highPassFilter{charge: 1 - 1/(sampleRate*0.004)}
}

func (h *highPassFilter) step(in float32, dacsEnabled bool) float32 {
	if !dacsEnabled {
		return 0
	}
	out := in - h.capacitor
	h.capacitor = in - out*h.charge
	return out
}
