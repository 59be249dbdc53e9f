package assets

import (
	"encoding/binary"
	"testing"
)

func TestToneLength(t *testing.T) {
	pcm := Tone(44100, 220)
	if len(pcm) != 44100*4 {
		t.Fatalf("expected one second of stereo 16-bit audio, got %d bytes", len(pcm))
	}
}

func TestToneLoopsSeamlessly(t *testing.T) {
	pcm := Tone(8000, 220)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	if first != 0 {
		t.Errorf("expected tone to start at zero, got %d", first)
	}
	left := binary.LittleEndian.Uint16(pcm[400:])
	right := binary.LittleEndian.Uint16(pcm[402:])
	if left != right {
		t.Errorf("expected identical channels, got %d and %d", left, right)
	}
}

func TestDecodeMusicUnsupported(t *testing.T) {
	if _, err := DecodeMusic([]byte("x"), ".mp3", 44100); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestDecodeMusicFileMissing(t *testing.T) {
	if _, err := DecodeMusicFile("does-not-exist.ogg", 44100); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeModelEmptyPath(t *testing.T) {
	if _, err := DecodeModel(""); err == nil {
		t.Fatal("expected error for empty model path")
	}
}
