package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ToneSource names the synthesised track used when no music file is available.
const ToneSource = "tone"

// DecodeMusicFile reads an .ogg or .wav file from disk and returns 16-bit stereo PCM
// at sampleRate.
func DecodeMusicFile(path string, sampleRate int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}
	return DecodeMusic(data, filepath.Ext(path), sampleRate)
}

// DecodeMusic decodes an encoded track. ext selects the codec.
func DecodeMusic(data []byte, ext string, sampleRate int) ([]byte, error) {
	var stream io.Reader
	switch strings.ToLower(ext) {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg: %w", err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav: %w", err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio: %w", err)
	}
	return pcm, nil
}

// Tone synthesises one second of a soft two-note chord as 16-bit stereo PCM.
// hz is rounded to whole cycles per second so the buffer loops without a click.
func Tone(sampleRate int, hz float64) []byte {
	const amplitude = 0.2 * math.MaxInt16
	base := math.Round(hz)
	fifth := math.Round(hz * 1.5)

	pcm := make([]byte, sampleRate*4)
	for i := 0; i < sampleRate; i++ {
		t := float64(i) / float64(sampleRate)
		v := 0.6*math.Sin(2*math.Pi*base*t) + 0.4*math.Sin(2*math.Pi*fifth*t)
		s := uint16(int16(v * amplitude))
		binary.LittleEndian.PutUint16(pcm[i*4:], s)
		binary.LittleEndian.PutUint16(pcm[i*4+2:], s)
	}
	return pcm
}

// NewLoopPlayer wraps decoded PCM in an endless loop.
func NewLoopPlayer(ctx *audio.Context, pcm []byte) (*audio.Player, error) {
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return ctx.NewPlayer(loop)
}
