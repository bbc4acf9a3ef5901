// Package apu synthesizes the Game Boy's four-channel audio output:
// two pulse channels (one with frequency sweep), a programmable wave
// channel, and an LFSR noise channel, mixed through NR50/NR51 and a
// per-side high-pass filter into a caller-supplied sink.
package apu

import (
	"github.com/thelolagemann/gomeboy/internal/types"
)

// defaultSampleRate is the mixing rate New falls back to when given 0.
const (
	defaultSampleRate    = 48000
	tCyclesPerSecond     = 4194304
	frameSequencerRate   = 512
	frameSequencerPeriod = tCyclesPerSecond / frameSequencerRate
)

// AudioSink receives one mixed stereo sample at a time, replacing the
// host audio device the teacher drove directly through SDL.
type AudioSink func(left, right int16)

// APU is the Game Boy's audio processing unit.
type APU struct {
	enabled bool

	chan1 *channel1
	chan2 *channel2
	chan3 *channel3
	chan4 *channel4

	frameSequencerCounter  int
	frameSequencerStep     uint8
	sampleCounter          float64
	samplePeriod           float64
	firstHalfOfLengthPeriod bool

	vinLeft, vinRight       bool
	volumeLeft, volumeRight uint8
	leftEnable, rightEnable [4]bool

	hpfLeft, hpfRight *highPassFilter

	model types.Model
	Sink  AudioSink

	Debug struct {
		ChannelEnabled [4]bool
	}
}

// New returns an APU with all channels powered down, matching the
// console's post-reset state. sampleRate is the rate, in Hz, Sink
// receives mixed stereo samples at; 0 selects defaultSampleRate.
func New(model types.Model, sink AudioSink, sampleRate int) *APU {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	a := &APU{
		chan1:        newChannel1(),
		chan2:        newChannel2(),
		chan3:        newChannel3(),
		chan4:        newChannel4(),
		samplePeriod: float64(tCyclesPerSecond) / float64(sampleRate),
		model:        model,
		Sink:         sink,
		hpfLeft:      newHighPassFilter(float32(sampleRate)),
		hpfRight:     newHighPassFilter(float32(sampleRate)),
		frameSequencerCounter: frameSequencerPeriod,
	}
	a.Debug.ChannelEnabled = [4]bool{true, true, true, true}
	return a
}

// Tick advances every channel's frequency divider, the frame
// sequencer, and the sample-rate mixer by one T-cycle.
func (a *APU) Tick() {
	if a.enabled {
		a.frameSequencerCounter--
		if a.frameSequencerCounter <= 0 {
			a.frameSequencerCounter = frameSequencerPeriod
			a.stepFrameSequencer()
		}

		a.chan1.step()
		a.chan2.step()
		a.chan3.step()
		a.chan4.step()
	}

	a.sampleCounter++
	if a.sampleCounter >= a.samplePeriod {
		a.sampleCounter -= a.samplePeriod
		a.mixSample()
	}
}

func (a *APU) stepFrameSequencer() {
	a.firstHalfOfLengthPeriod = a.frameSequencerStep&0x01 == 0

	switch a.frameSequencerStep {
	case 0, 4:
		a.chan1.lengthStep()
		a.chan2.lengthStep()
		a.chan3.lengthStep()
		a.chan4.lengthStep()
	case 2, 6:
		a.chan1.lengthStep()
		a.chan2.lengthStep()
		a.chan3.lengthStep()
		a.chan4.lengthStep()
		a.chan1.sweepClock()
	case 7:
		a.chan1.volumeStep()
		a.chan2.volumeStep()
		a.chan4.volumeStep()
	}

	a.frameSequencerStep = (a.frameSequencerStep + 1) & 7
}

func (a *APU) mixSample() {
	if a.Sink == nil {
		return
	}

	amplitudes := [4]float32{
		a.chan1.getAmplitude(),
		a.chan2.getAmplitude(),
		a.chan3.getAmplitude(),
		a.chan4.getAmplitude(),
	}

	var left, right float32
	for i, amp := range amplitudes {
		if !a.Debug.ChannelEnabled[i] {
			continue
		}
		if a.leftEnable[i] {
			left += amp
		}
		if a.rightEnable[i] {
			right += amp
		}
	}

	left = (float32(a.volumeLeft) / 7) * left / 4
	right = (float32(a.volumeRight) / 7) * right / 4

	left = a.hpfLeft.step(left, a.enabled)
	right = a.hpfRight.step(right, a.enabled)

	a.Sink(floatToPCM16(left), floatToPCM16(right))
}

func floatToPCM16(f float32) int16 {
	if f > 1 {
		f = 1
	} else if f < -1 {
		f = -1
	}
	return int16(f * 32767)
}

// Read dispatches an I/O read to the register or channel it belongs
// to; NR1x/NR2x/NR3x/NR4x write-only registers read back 0xFF.
func (a *APU) Read(address uint16) uint8 {
	switch address {
	case types.NR10:
		return a.chan1.ReadNR10()
	case types.NR11:
		return a.chan1.ReadNR11()
	case types.NR12:
		return a.chan1.ReadNR12()
	case types.NR14:
		return a.chan1.ReadNR14()
	case types.NR21:
		return a.chan2.ReadNR21()
	case types.NR22:
		return a.chan2.getNRx2()
	case types.NR24:
		return a.chan2.ReadNR24()
	case types.NR30:
		return a.chan3.ReadNR30()
	case types.NR32:
		return a.chan3.ReadNR32()
	case types.NR34:
		return a.chan3.ReadNR34()
	case types.NR42:
		return a.chan4.ReadNR42()
	case types.NR43:
		return a.chan4.ReadNR43()
	case types.NR44:
		return a.chan4.ReadNR44()
	case types.NR50:
		return a.readNR50()
	case types.NR51:
		return a.readNR51()
	case types.NR52:
		return a.readNR52()
	}
	if address >= 0xFF30 && address <= 0xFF3F {
		return a.chan3.readWaveRAM(address)
	}
	return 0xFF
}

// Write dispatches an I/O write. Writes to any register besides NR52
// are ignored while the APU is powered off, matching hardware.
func (a *APU) Write(address uint16, value uint8) {
	if address >= 0xFF30 && address <= 0xFF3F {
		a.chan3.writeWaveRAM(address, value)
		return
	}

	if address == types.NR52 {
		a.writeNR52(value)
		return
	}
	if !a.enabled {
		return
	}

	switch address {
	case types.NR10:
		a.chan1.WriteNR10(value)
	case types.NR11:
		a.chan1.WriteNR11(value)
	case types.NR12:
		a.chan1.WriteNR12(value)
	case types.NR13:
		a.chan1.WriteNR13(value)
	case types.NR14:
		a.chan1.WriteNR14(value, a.firstHalfOfLengthPeriod)
	case types.NR21:
		a.chan2.WriteNR21(value)
	case types.NR22:
		a.chan2.setNRx2(value)
	case types.NR23:
		a.chan2.WriteNR23(value)
	case types.NR24:
		a.chan2.WriteNR24(value, a.firstHalfOfLengthPeriod)
	case types.NR30:
		a.chan3.WriteNR30(value)
	case types.NR31:
		a.chan3.WriteNR31(value)
	case types.NR32:
		a.chan3.WriteNR32(value)
	case types.NR33:
		a.chan3.WriteNR33(value)
	case types.NR34:
		a.chan3.WriteNR34(value, a.firstHalfOfLengthPeriod)
	case types.NR41:
		a.chan4.WriteNR41(value)
	case types.NR42:
		a.chan4.setNRx2(value)
	case types.NR43:
		a.chan4.WriteNR43(value)
	case types.NR44:
		a.chan4.WriteNR44(value, a.firstHalfOfLengthPeriod)
	case types.NR50:
		a.writeNR50(value)
	case types.NR51:
		a.writeNR51(value)
	}
}

func (a *APU) readNR50() uint8 {
	b := a.volumeRight | a.volumeLeft<<4
	if a.vinRight {
		b |= 0x08
	}
	if a.vinLeft {
		b |= 0x80
	}
	return b
}

func (a *APU) writeNR50(value uint8) {
	a.volumeRight = value & 0x7
	a.volumeLeft = (value >> 4) & 0x7
	a.vinRight = value&0x08 != 0
	a.vinLeft = value&0x80 != 0
}

func (a *APU) readNR51() uint8 {
	b := uint8(0)
	for i := 0; i < 4; i++ {
		if a.rightEnable[i] {
			b |= 1 << i
		}
		if a.leftEnable[i] {
			b |= 1 << (i + 4)
		}
	}
	return b
}

func (a *APU) writeNR51(value uint8) {
	for i := 0; i < 4; i++ {
		a.rightEnable[i] = value&(1<<i) != 0
		a.leftEnable[i] = value&(1<<(i+4)) != 0
	}
}

func (a *APU) readNR52() uint8 {
	b := uint8(0)
	if a.enabled {
		b |= 0x80
	}
	if a.chan1.isEnabled() {
		b |= 0x01
	}
	if a.chan2.isEnabled() {
		b |= 0x02
	}
	if a.chan3.isEnabled() {
		b |= 0x04
	}
	if a.chan4.isEnabled() {
		b |= 0x08
	}
	return b | 0x70
}

// writeNR52 handles the master power switch: powering off zeroes every
// other APU register (NR10-NR51), matching the hardware's silent
// reset; powering back on resets the frame sequencer.
func (a *APU) writeNR52(value uint8) {
	wasEnabled := a.enabled
	a.enabled = value&0x80 != 0

	if wasEnabled && !a.enabled {
		for addr := uint16(types.NR10); addr <= types.NR51; addr++ {
			a.Write(addr, 0)
		}
		a.chan1 = newChannel1()
		a.chan2 = newChannel2()
		a.chan3 = newChannel3()
		a.chan4 = newChannel4()
		a.volumeLeft, a.volumeRight = 0, 0
		a.vinLeft, a.vinRight = false, false
		a.leftEnable = [4]bool{}
		a.rightEnable = [4]bool{}
	} else if !wasEnabled && a.enabled {
		a.frameSequencerStep = 0
	}
}
