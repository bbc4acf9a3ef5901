package romload

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_PlainGBPassesThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.gb")
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load(%q) = %v, want %v", path, got, want)
	}
}

func TestLoad_Gzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.gb.gz")
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(want); err != nil {
		t.Fatal(err)
	}
	gw.Close()

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load(%q) = %v, want %v", path, got, want)
	}
}

func TestLoad_Zip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.zip")
	want := []byte{0xAA, 0xBB, 0xCC}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("game.gb")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(want); err != nil {
		t.Fatal(err)
	}
	zw.Close()

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load(%q) = %v, want %v", path, got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.gb")); err == nil {
		t.Fatal("Load on a missing file, want an error")
	}
}
