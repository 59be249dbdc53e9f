package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
)

// DecodeModel reads the player billboard image from disk. The ebiten image is created
// later on the update goroutine.
func DecodeModel(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no player model configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode model %s: %w", path, err)
	}
	return img, nil
}
