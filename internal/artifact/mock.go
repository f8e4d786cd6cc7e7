package artifact

import (
	"context"
	"fmt"
	"sync"

	"fed-sentiment/internal/domain"
)

// StubLoader permite tests sin red ni disco.
type StubLoader struct {
	Tables map[string]domain.Table
	Images map[string]domain.Image
	Errs   map[string]error

	mu    sync.Mutex
	calls []string
}

func (s *StubLoader) Load(ctx context.Context, ref domain.ArtifactRef) (domain.LoadedArtifact, error) {
	s.mu.Lock()
	s.calls = append(s.calls, ref.Name)
	s.mu.Unlock()

	if err, ok := s.Errs[ref.Name]; ok {
		return domain.LoadedArtifact{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.LoadedArtifact{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, ref.Name, err)
	}
	switch ref.Kind {
	case domain.ArtifactTable:
		table := s.Tables[ref.Name]
		return domain.LoadedArtifact{Ref: ref, Table: &table}, nil
	case domain.ArtifactImage:
		img, ok := s.Images[ref.Name]
		if !ok {
			img = domain.Image{PNG: []byte(ref.Name), Width: 1, Height: 1}
		}
		return domain.LoadedArtifact{Ref: ref, Image: &img}, nil
	default:
		return domain.LoadedArtifact{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, ref.Kind)
	}
}

// Calls devuelve los nombres pedidos, en orden.
func (s *StubLoader) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
