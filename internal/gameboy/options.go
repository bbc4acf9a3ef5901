package gameboy

import (
	"github.com/thelolagemann/gomeboy/internal/apu"
	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/internal/xlog"
)

// config accumulates every New option before construction begins.
type config struct {
	model        types.Model
	bootROM      []byte
	sampleRate   int
	audioSink    apu.AudioSink
	cartridgeRAM []byte
	logger       xlog.Logger
}

// Opt configures an Engine at construction time.
type Opt func(cfg *config)

// WithModel selects which hardware model to emulate. The default is
// DMG.
func WithModel(m types.Model) Opt {
	return func(cfg *config) {
		cfg.model = m
	}
}

// WithBootROM supplies a boot ROM image (256 bytes for DMG/MGB, 2304
// for CGB) to run before handing off to the cartridge, instead of
// initializing registers directly to their post-boot values.
func WithBootROM(rom []byte) Opt {
	return func(cfg *config) {
		cfg.bootROM = rom
	}
}

// WithSampleRate sets the rate, in Hz, at which AudioSink receives
// mixed stereo samples. The default is 48000.
func WithSampleRate(hz int) Opt {
	return func(cfg *config) {
		cfg.sampleRate = hz
	}
}

// WithAudioSink registers the callback that receives one mixed
// stereo sample at a time. Without this option the APU still runs
// but produces no audible output.
func WithAudioSink(sink apu.AudioSink) Opt {
	return func(cfg *config) {
		cfg.audioSink = sink
	}
}

// WithCartridgeRAM preloads the cartridge's external RAM from a prior
// save, equivalent to calling Engine.LoadCartridgeRAM immediately
// after New.
func WithCartridgeRAM(data []byte) Opt {
	return func(cfg *config) {
		cfg.cartridgeRAM = data
	}
}

// WithLogger routes the engine's diagnostic logging through log instead
// of discarding it. New logs one Info line summarising the cartridge
// header (title, type, ROM and RAM sizes, RTC presence); nothing else
// is logged.
func WithLogger(log xlog.Logger) Opt {
	return func(cfg *config) {
		cfg.logger = log
	}
}
