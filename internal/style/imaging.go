package style

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const (
	FormatPNG  = "png"
	FormatWebP = "webp"

	maxPixels = 40_000_000

	brightnessFactor = 1.1
	contrastFactor   = 1.05
)

// DecodeDataURL reads a base64 image, with or without the data URL prefix.
// PNG, JPEG and WebP are accepted.
func DecodeDataURL(raw string) (image.Image, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, httperr.ErrRequired("image")
	}

	payload := raw
	if strings.HasPrefix(raw, "data:") {
		comma := strings.IndexByte(raw, ',')
		if comma < 0 || !strings.Contains(raw[:comma], ";base64") {
			return nil, httperr.ErrInvalid("image", "image must be a base64 data URL")
		}
		payload = raw[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return nil, httperr.ErrInvalid("image", "image is not valid base64")
		}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, httperr.ErrInvalid("image", "image must be PNG, JPEG or WebP")
	}
	if cfg.Width*cfg.Height > maxPixels {
		return nil, httperr.ErrInvalid("image", "image is too large")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, httperr.ErrInvalid("image", "image could not be decoded")
	}
	return img, nil
}

// Fit scales img down so neither side exceeds maxDim. Smaller images are
// copied unchanged into an NRGBA buffer.
func Fit(img image.Image, maxDim int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = max(1, h*maxDim/w)
			w = maxDim
		} else {
			w = max(1, w*maxDim/h)
			h = maxDim
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst
}

// Enhance brightens by 10% and then raises contrast by 5% around the mean
// luminance. Alpha is kept.
func Enhance(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Rect)

	for i := 0; i < len(img.Pix); i += 4 {
		out.Pix[i] = clamp(float64(img.Pix[i]) * brightnessFactor)
		out.Pix[i+1] = clamp(float64(img.Pix[i+1]) * brightnessFactor)
		out.Pix[i+2] = clamp(float64(img.Pix[i+2]) * brightnessFactor)
		out.Pix[i+3] = img.Pix[i+3]
	}

	mean := meanLuminance(out)

	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := float64(out.Pix[i+c])
			out.Pix[i+c] = clamp(mean + (v-mean)*contrastFactor)
		}
	}

	return out
}

func meanLuminance(img *image.NRGBA) float64 {
	n := len(img.Pix) / 4
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < len(img.Pix); i += 4 {
		y, _, _ := color.RGBToYCbCr(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		sum += float64(y)
	}
	return float64(int(sum/float64(n) + 0.5))
}

func clamp(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// Encode writes img as PNG or lossless WebP and returns the bytes with their
// MIME type.
func Encode(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer

	switch format {
	case "", FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	case FormatWebP:
		if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
			return nil, "", fmt.Errorf("encode webp: %w", err)
		}
		return buf.Bytes(), "image/webp", nil
	default:
		return nil, "", errInvalidFormat()
	}
}

func errInvalidFormat() error {
	return httperr.ErrInvalid("format", "format must be png or webp")
}

func DataURL(data []byte, mime string) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
