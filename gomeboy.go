// Package gomeboy is a thin, re-exported facade over internal/gameboy:
// the engine itself lives there (and in the other internal packages it
// wires together) so test code across the module can reach unexported
// helpers, while external callers import this package for the stable
// public surface.
package gomeboy

import (
	"github.com/thelolagemann/gomeboy/internal/apu"
	"github.com/thelolagemann/gomeboy/internal/gameboy"
	"github.com/thelolagemann/gomeboy/internal/joypad"
	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/internal/xlog"
)

// Logger is the logging surface the engine accepts via WithLogger.
type Logger = xlog.Logger

// Engine is a complete, headless Game Boy/Game Boy Color core.
type Engine = gameboy.Engine

// Opt configures an Engine at construction time.
type Opt = gameboy.Opt

// Model selects which hardware the engine emulates.
type Model = types.Model

// Button is a physical Game Boy button.
type Button = joypad.Button

// AudioSink receives one mixed stereo sample at a time.
type AudioSink = apu.AudioSink

const (
	DMG = types.DMG
	MGB = types.MGB
	CGB = types.CGB
)

const (
	ButtonA      = joypad.ButtonA
	ButtonB      = joypad.ButtonB
	ButtonSelect = joypad.ButtonSelect
	ButtonStart  = joypad.ButtonStart
	ButtonRight  = joypad.ButtonRight
	ButtonLeft   = joypad.ButtonLeft
	ButtonUp     = joypad.ButtonUp
	ButtonDown   = joypad.ButtonDown
)

// New parses rom's header, wires every subsystem, and returns a
// ready-to-run Engine.
func New(rom []byte, opts ...Opt) (*Engine, error) {
	return gameboy.New(rom, opts...)
}

// WithModel selects which hardware model to emulate. The default is DMG.
func WithModel(m Model) Opt { return gameboy.WithModel(m) }

// WithBootROM supplies a boot ROM image to run before handing off to
// the cartridge.
func WithBootROM(rom []byte) Opt { return gameboy.WithBootROM(rom) }

// WithSampleRate sets the rate, in Hz, at which AudioSink receives
// mixed stereo samples.
func WithSampleRate(hz int) Opt { return gameboy.WithSampleRate(hz) }

// WithAudioSink registers the callback that receives mixed stereo
// samples.
func WithAudioSink(sink AudioSink) Opt { return gameboy.WithAudioSink(sink) }

// WithCartridgeRAM preloads the cartridge's external RAM from a prior
// save.
func WithCartridgeRAM(data []byte) Opt { return gameboy.WithCartridgeRAM(data) }

// WithLogger routes the engine's diagnostic logging through log.
func WithLogger(log Logger) Opt { return gameboy.WithLogger(log) }
