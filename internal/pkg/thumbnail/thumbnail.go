package thumbnail

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// Side is the edge length of generated thumbnails.
	Side = 60
	// JPEGQuality matches what the photo clients expect.
	JPEGQuality = 85
)

// FromJPEG produces a Side×Side center-cropped JPEG thumbnail from full
// image bytes. The source is scaled to cover the square before cropping so
// aspect ratio is preserved.
func FromJPEG(src []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fill(img, Side, Side, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
