// Command gomeboy is a minimal headless host for internal/gameboy.Engine:
// it decodes a ROM, runs it for a fixed number of frames with no display
// of its own, and writes out the final framebuffer (and, optionally, the
// audio it produced) so the library surface can be exercised end to end
// without a GUI toolkit.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gomeboy/internal/gameboy"
	"github.com/thelolagemann/gomeboy/internal/ppu"
	"github.com/thelolagemann/gomeboy/internal/romload"
	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/internal/xlog"
)

func main() {
	romPath := flag.String("rom", "", "path to the ROM image to run (.gb, .gbc, or a supported archive)")
	bootPath := flag.String("boot", "", "optional boot ROM image")
	model := flag.String("model", "dmg", "hardware model to emulate: dmg or cgb")
	frames := flag.Int("frames", 60, "number of frames to run before exiting")
	outPNG := flag.String("out", "frame.png", "where to write the final frame as a PNG")
	outWAV := flag.String("wav", "", "if set, record audio and write it here as a 16-bit PCM WAV")
	verbose := flag.Bool("v", false, "log engine diagnostics to stderr")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "gomeboy: -rom is required")
		os.Exit(2)
	}

	rom, err := romload.Load(*romPath)
	if err != nil {
		log.Fatalf("gomeboy: %v", err)
	}

	opts := []gameboy.Opt{}
	switch *model {
	case "dmg":
		opts = append(opts, gameboy.WithModel(types.DMG))
	case "cgb":
		opts = append(opts, gameboy.WithModel(types.CGB))
	default:
		log.Fatalf("gomeboy: unknown -model %q (want dmg or cgb)", *model)
	}

	if *bootPath != "" {
		boot, err := romload.Load(*bootPath)
		if err != nil {
			log.Fatalf("gomeboy: %v", err)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}

	if *verbose {
		opts = append(opts, gameboy.WithLogger(xlog.New(logrus.InfoLevel)))
	}

	var recorder *pcmRecorder
	if *outWAV != "" {
		recorder = newPCMRecorder()
		opts = append(opts, gameboy.WithAudioSink(recorder.sink))
	}

	engine, err := gameboy.New(rom, opts...)
	if err != nil {
		log.Fatalf("gomeboy: %v", err)
	}

	for i := 0; i < *frames; i++ {
		engine.RunFrame()
	}

	if err := writePNG(*outPNG, engine.FrameBuffer()); err != nil {
		log.Fatalf("gomeboy: %v", err)
	}

	if recorder != nil {
		if err := recorder.writeWAV(*outWAV); err != nil {
			log.Fatalf("gomeboy: %v", err)
		}
	}
}

// writePNG encodes buf, a 160x144 RGBA8888 framebuffer, as a PNG.
func writePNG(path string, buf []byte) error {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	copy(img.Pix, buf)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// pcmRecorder buffers every sample the APU produces so it can be
// flushed to a WAV file once the run finishes.
type pcmRecorder struct {
	samples []int16
}

func newPCMRecorder() *pcmRecorder {
	return &pcmRecorder{}
}

func (r *pcmRecorder) sink(left, right int16) {
	r.samples = append(r.samples, left, right)
}

// writeWAV writes r's buffered stereo samples as a standard 16-bit PCM
// RIFF/WAVE file with a fixed 48000 Hz sample rate in its header.
func (r *pcmRecorder) writeWAV(path string) error {
	const (
		sampleRate    = 48000
		channels      = 2
		bitsPerSample = 16
	)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := len(r.samples) * 2

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()

	write := func(v ...interface{}) {
		for _, x := range v {
			binary.Write(f, binary.LittleEndian, x)
		}
	}

	f.WriteString("RIFF")
	write(uint32(36 + dataSize))
	f.WriteString("WAVE")
	f.WriteString("fmt ")
	write(uint32(16), uint16(1), uint16(channels), uint32(sampleRate), uint32(byteRate), uint16(blockAlign), uint16(bitsPerSample))
	f.WriteString("data")
	write(uint32(dataSize))
	return binary.Write(f, binary.LittleEndian, r.samples)
}
