package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 150, B: 220, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode source image: %v", err)
	}
	return buf.Bytes()
}

func TestFromJPEGCoversSquare(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"landscape", 320, 200},
		{"portrait", 200, 320},
		{"square", 100, 100},
		{"smaller than target", 30, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FromJPEG(encodeJPEG(t, tt.w, tt.h))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("output is not decodable: %v", err)
			}
			if format != "jpeg" {
				t.Errorf("format = %q, want jpeg", format)
			}
			if cfg.Width != Side || cfg.Height != Side {
				t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, Side, Side)
			}
		})
	}
}

func TestFromJPEGRejectsGarbage(t *testing.T) {
	if _, err := FromJPEG([]byte("not an image")); err == nil {
		t.Fatal("expected an error for non-image input")
	}
}
