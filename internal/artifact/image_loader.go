package artifact

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"fed-sentiment/internal/domain"
)

// ImageLoader descarga (o lee de disco) una imagen y la recodifica como PNG.
type ImageLoader struct {
	client *http.Client
	logger *zap.Logger
}

// NewImageLoader construye el loader. timeout 0 significa sin limite.
func NewImageLoader(timeout time.Duration, logger *zap.Logger) *ImageLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageLoader{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (l *ImageLoader) Load(ctx context.Context, ref domain.ArtifactRef) (domain.LoadedArtifact, error) {
	var (
		raw []byte
		err error
	)
	if ref.IsRemote() {
		raw, err = l.fetch(ctx, ref)
	} else {
		raw, err = os.ReadFile(ref.Location)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrUnavailable, ref.Name, err)
		}
	}
	if err != nil {
		return domain.LoadedArtifact{}, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return domain.LoadedArtifact{}, fmt.Errorf("%w: %s: %v", ErrNotImage, ref.Name, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return domain.LoadedArtifact{}, fmt.Errorf("encode %s: %w", ref.Name, err)
	}

	bounds := img.Bounds()
	return domain.LoadedArtifact{
		Ref: ref,
		Image: &domain.Image{
			PNG:    buf.Bytes(),
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		},
	}, nil
}

func (l *ImageLoader) fetch(ctx context.Context, ref domain.ArtifactRef) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.Location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: create request: %v", ErrUnavailable, ref.Name, err)
	}

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, ref.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.logger.Warn("artifact fetch status",
			zap.String("artifact", ref.Name),
			zap.String("url", ref.Location),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %s: status=%d", ErrUnexpectedStatus, ref.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %v", ErrUnavailable, ref.Name, err)
	}
	l.logger.Debug("artifact fetched",
		zap.String("artifact", ref.Name),
		zap.Int("bytes", len(body)),
		zap.Duration("latency", time.Since(start)),
	)
	return body, nil
}
