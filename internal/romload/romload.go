// Package romload reads a cartridge image from disk, transparently
// decompressing it first if its extension names a supported archive
// format. Only byte-level decompression is kept from the teacher's
// pkg/utils.LoadFile: host file-dialog prompting has no place in a
// headless core.
package romload

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// Load reads the ROM image at path, decompressing it first if its
// extension is .gz, .zip, or .7z (the first entry in an archive is
// used). Plain .gb/.gbc cartridge images and .bin boot ROMs are
// returned as-is.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("romload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("romload: %w", err)
	}

	switch filepath.Ext(path) {
	case ".gb", ".gbc", ".bin":
		return data, nil
	case ".gz":
		return decompressGzip(data)
	case ".zip":
		return decompressZip(data)
	case ".7z":
		return decompressSevenZip(data)
	default:
		return data, nil
	}
}

func decompressGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("romload: gzip: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("romload: gzip: %w", err)
	}
	return out, nil
}

func decompressZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("romload: zip: %w", err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("romload: zip: archive is empty")
	}
	rc, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romload: zip: %w", err)
	}
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("romload: zip: %w", err)
	}
	return out, nil
}

func decompressSevenZip(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("romload: 7z: %w", err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("romload: 7z: archive is empty")
	}
	rc, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romload: 7z: %w", err)
	}
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("romload: 7z: %w", err)
	}
	return out, nil
}
