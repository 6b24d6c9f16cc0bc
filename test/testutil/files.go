package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// GenerateVideoBytes returns a deterministic blob of the given size that
// starts with an mp4 "ftyp" box, enough for roundtrip assertions without
// shipping a real video in the repo.
func GenerateVideoBytes(size int) []byte {
	header := []byte{0x00, 0x00, 0x00, 0x20, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'}
	buf := bytes.NewBuffer(header)
	for i := 0; buf.Len() < size; i++ {
		buf.WriteByte(byte(i % 251))
	}
	return buf.Bytes()[:size]
}

// WriteSampleVideo writes a generated video file under dir and returns
// its path and contents.
func WriteSampleVideo(t *testing.T, dir, name string, size int) (string, []byte) {
	t.Helper()
	content := GenerateVideoBytes(size)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write sample video %q: %v", path, err)
	}
	return path, content
}
