package artifact

import (
	"context"
	"errors"
	"fmt"

	"fed-sentiment/internal/domain"
)

// Loader resuelve un artefacto externo. No inspecciona su contenido mas alla de decodificarlo.
type Loader interface {
	Load(ctx context.Context, ref domain.ArtifactRef) (domain.LoadedArtifact, error)
}

var (
	ErrUnavailable      = errors.New("artifact unavailable")
	ErrUnexpectedStatus = errors.New("artifact unexpected status")
	ErrNotImage         = errors.New("artifact is not an image")
	ErrUnsupportedKind  = errors.New("artifact kind unsupported")
)

// Resolver despacha cada referencia al loader de su tipo.
type Resolver struct {
	images Loader
	tables Loader
}

// NewResolver crea un Resolver con loaders de imagenes y tablas.
func NewResolver(images, tables Loader) *Resolver {
	return &Resolver{images: images, tables: tables}
}

func (r *Resolver) Load(ctx context.Context, ref domain.ArtifactRef) (domain.LoadedArtifact, error) {
	switch ref.Kind {
	case domain.ArtifactImage:
		if r.images == nil {
			return domain.LoadedArtifact{}, fmt.Errorf("%w: no image loader for %q", ErrUnsupportedKind, ref.Name)
		}
		return r.images.Load(ctx, ref)
	case domain.ArtifactTable:
		if r.tables == nil {
			return domain.LoadedArtifact{}, fmt.Errorf("%w: no table loader for %q", ErrUnsupportedKind, ref.Name)
		}
		return r.tables.Load(ctx, ref)
	default:
		return domain.LoadedArtifact{}, fmt.Errorf("%w: %q has kind %q", ErrUnsupportedKind, ref.Name, ref.Kind)
	}
}
