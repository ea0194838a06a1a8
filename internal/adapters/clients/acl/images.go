package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"strings"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// ImageFetcher implements ports.ImageFetcher. It downloads report images
// from arbitrary hosts, so its client has no base URL.
type ImageFetcher struct {
	BaseAdapter
	maxBytes int64
	logger   *slog.Logger
}

// NewImageFetcher creates an image fetcher that refuses bodies over maxBytes.
func NewImageFetcher(client *clients.Client, maxBytes int64, logger *slog.Logger) *ImageFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageFetcher{
		BaseAdapter: NewBaseAdapter(client),
		maxBytes:    maxBytes,
		logger:      logger.With(slog.String("component", "acl.ImageFetcher")),
	}
}

// FetchImage downloads imageURL. The MIME type comes from the response and
// falls back to image/jpeg when missing or not an image type.
func (f *ImageFetcher) FetchImage(ctx context.Context, imageURL string) (*domain.Image, error) {
	resp, err := f.Get(ctx, imageURL, "fetch image")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, domain.NewUnavailableError(f.ServiceName(), "reading image: "+err.Error())
	}
	if int64(len(data)) > f.maxBytes {
		return nil, domain.NewUnavailableError(f.ServiceName(),
			fmt.Sprintf("image exceeds %d bytes", f.maxBytes))
	}
	if len(data) == 0 {
		return nil, domain.NewUnavailableError(f.ServiceName(), "image is empty")
	}

	img := &domain.Image{
		Data:     data,
		MIMEType: imageMIMEType(resp.Header.Get("Content-Type")),
	}

	f.logger.DebugContext(ctx, "image fetched",
		slog.String("mime_type", img.MIMEType),
		slog.Int("bytes", len(data)),
	)

	return img, nil
}

func imageMIMEType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return domain.DefaultImageMIMEType
	}
	return mediaType
}
