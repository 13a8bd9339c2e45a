package style

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores rendered previews and returns their public URL.
type Uploader interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type Preview struct {
	DataURL string
	URL     string
}

type Service struct {
	maxDim int
	store  Uploader
}

// NewService returns a preview renderer. store may be nil, in which case
// previews are only returned inline.
func NewService(maxDim int, store Uploader) *Service {
	return &Service{maxDim: maxDim, store: store}
}

// Render decodes the uploaded image, applies the placeholder restyle and
// re-encodes it. An upload failure is logged and the inline preview is
// still returned.
func (s *Service) Render(ctx context.Context, rawImage, format string) (Preview, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" && format != FormatPNG && format != FormatWebP {
		return Preview{}, errInvalidFormat()
	}

	img, err := DecodeDataURL(rawImage)
	if err != nil {
		return Preview{}, err
	}

	out := Enhance(Fit(img, s.maxDim))

	data, mime, err := Encode(out, format)
	if err != nil {
		return Preview{}, err
	}

	p := Preview{DataURL: DataURL(data, mime)}

	if s.store != nil {
		key := "previews/" + uuid.NewString() + "." + strings.TrimPrefix(mime, "image/")
		url, err := s.store.Put(ctx, key, data, mime)
		if err != nil {
			slog.WarnContext(ctx, "preview upload failed", "error", err, "key", key)
		} else {
			p.URL = url
		}
	}

	return p, nil
}
