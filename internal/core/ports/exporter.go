package ports

import (
	"context"
	"io"

	"go.trai.ch/kin/internal/core/domain"
)

// Exporter writes a scene snapshot as an image.
//
//go:generate mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type Exporter interface {
	Export(ctx context.Context, scene *domain.Scene, w io.Writer) error
	// ContentType is the media type of the exported image.
	ContentType() string
}
