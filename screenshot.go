package main

import (
	"image"
	"image/png"
	"os"
)

// writePNG encodes img to path. The close error is returned when encoding
// succeeded.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
