package file

import (
	"bytes"
	"codeberg.org/miketth/hyprtint/pkg/settings"
	"errors"
	"path/filepath"
	"testing"
)

func TestStore(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "settings.dat"))

	if _, err := s.Read(); !errors.Is(err, settings.ErrNotFound) {
		t.Fatalf("Read on empty store error = %v, want ErrNotFound", err)
	}

	for _, data := range [][]byte{[]byte("first blob"), []byte("2nd")} {
		if err := s.Write(data); err != nil {
			t.Fatalf("Write: %v", err)
		}
		got, err := s.Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("Read() = %q, want %q", got, data)
		}
	}
}

func TestStoreUnreadable(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	_, err := s.Read()
	if err == nil || errors.Is(err, settings.ErrNotFound) {
		t.Fatalf("Read of directory error = %v, want read error", err)
	}
}
