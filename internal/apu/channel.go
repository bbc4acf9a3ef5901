package apu

// channel holds the state every APU channel shares: a length counter,
// a frequency divider driving its waveform generator, and the
// per-channel hooks that plug the shared clocking into each channel's
// own waveform/period math.
type channel struct {
	enabled    bool
	dacEnabled bool

	lengthCounter        uint
	lengthCounterEnabled bool

	frequencyTimer uint16

	reloadFrequencyTimer func()
	stepWaveGeneration   func()
}

func newChannel() *channel {
	return &channel{}
}

// step advances the frequency divider by one T-cycle unit, stepping
// the waveform generator once the divider reaches zero.
func (c *channel) step() {
	c.frequencyTimer--
	if c.frequencyTimer == 0 {
		c.reloadFrequencyTimer()
		c.stepWaveGeneration()
	}
}

func (c *channel) isEnabled() bool {
	return c.enabled && c.dacEnabled
}

// lengthStep decrements the length counter once per frame-sequencer
// length clock (steps 0, 2, 4, 6), switching the channel off at zero.
func (c *channel) lengthStep() {
	if c.lengthCounterEnabled && c.lengthCounter > 0 {
		c.lengthCounter--
		c.enabled = c.lengthCounter > 0
	}
}

// volumeChannel adds the shared envelope state pulse and noise
// channels carry (the wave channel has no envelope).
type volumeChannel struct {
	*channel

	startingVolume  uint8
	envelopeAddMode bool
	period          uint8

	volumeEnvelopeTimer      uint8
	currentVolume            uint8
	volumeEnvelopeIsUpdating bool
}

func newVolumeChannel(c *channel) *volumeChannel {
	return &volumeChannel{channel: c}
}

// volumeStep advances the envelope once per frame-sequencer envelope
// clock (step 7).
func (v *volumeChannel) volumeStep() {
	if v.period == 0 || v.volumeEnvelopeTimer == 0 {
		return
	}
	v.volumeEnvelopeTimer--
	if v.volumeEnvelopeTimer != 0 {
		return
	}
	v.volumeEnvelopeTimer = v.period
	switch {
	case v.currentVolume < 0xF && v.envelopeAddMode:
		v.currentVolume++
	case v.currentVolume > 0 && !v.envelopeAddMode:
		v.currentVolume--
	default:
		v.volumeEnvelopeIsUpdating = false
	}
}

// setNRx2 applies an NRx2 (volume/envelope) register write, including
// the documented "zombie mode" glitch that lets writes to NRx2 nudge
// the volume of an already-running channel.
func (v *volumeChannel) setNRx2(value uint8) {
	envelopeAddMode := value&0x08 != 0

	if v.enabled {
		if v.period == 0 && v.volumeEnvelopeIsUpdating || !v.envelopeAddMode {
			v.currentVolume++
		}
		if envelopeAddMode != v.envelopeAddMode {
			v.currentVolume = 0x10 - v.currentVolume
		}
		v.currentVolume &= 0x0F
	}

	v.startingVolume = value >> 4
	v.envelopeAddMode = envelopeAddMode
	v.period = value & 0x7
	v.dacEnabled = value&0xF8 > 0
	if !v.dacEnabled {
		v.enabled = false
	}
}

func (v *volumeChannel) getNRx2() uint8 {
	b := v.startingVolume<<4 | v.period
	if v.envelopeAddMode {
		b |= 0x08
	}
	return b
}

func (v *volumeChannel) initVolumeEnvelope() {
	v.volumeEnvelopeTimer = v.period
	v.currentVolume = v.startingVolume
	v.volumeEnvelopeIsUpdating = true
}
